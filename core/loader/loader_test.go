package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Skips Disabled", func(t *testing.T) {
		on := &stubFeature{name: "catalog", enabled: true}
		off := &stubFeature{name: "legacy"}

		m := NewManager()
		m.Register(on)
		m.Register(off)

		loaded, err := m.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.Equal(t, []string{"catalog"}, loaded)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("Stops On Error", func(t *testing.T) {
		m := NewManager()
		m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
		m.Register(&stubFeature{name: "after", enabled: true})

		loaded, err := m.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature broken")
		assert.Empty(t, loaded)
	})
}
