package classify

import (
	"testing"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		model string
		want  models.Category
	}{
		{"METEOR B30 WIFI H 24", models.CategoryMeteor},
		{"Laggartt 24", models.CategoryLaggartt},
		{"ГАЗ 6000 24", models.CategoryLaggartt},
		{"Devotion 28", models.CategoryDevotion},
		{"MK 18", models.CategoryMK},
		{"Baxi Eco", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.model))
		})
	}
}

func TestPowerTier(t *testing.T) {
	tests := []struct {
		power string
		want  models.PowerTier
	}{
		{"12", models.PowerTierLow},
		{"20", models.PowerTierLow},
		{"21", models.PowerTierMedium},
		{"24", models.PowerTierMedium},
		{"30", models.PowerTierMedium},
		{"31", models.PowerTierHigh},
		{models.PowerUnspecified, models.PowerTierUnknown},
		{"", models.PowerTierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.power, func(t *testing.T) {
			assert.Equal(t, tt.want, PowerTier(tt.power))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, models.StatusInStock, StatusLabel(3))
	assert.Equal(t, models.StatusOutOfStock, StatusLabel(0))
}

func TestImages_Ref(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		model  string
		want   string
		wantOK bool
	}{
		{"Sub-model", "/static", "METEOR B30 WIFI H 24", "/static/meteor-b30.jpg", true},
		{"Lower-case input", "/static/", "meteor t2 24", "/static/meteor-t2.jpg", true},
		{"Gas alias", "/static", "ГАЗ 6000 24", "/static/laggartt.jpg", true},
		{"Family fallback", "/static", "METEOR LUX 24", "/static/default.jpg", false},
		{"MK", "", "MK 18", "mk.jpg", true},
		{"URL base", "https://cdn.example.com/img/", "Devotion 28", "https://cdn.example.com/img/devotion.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := NewImages(tt.base).Ref(tt.model)
			assert.Equal(t, tt.want, ref)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
