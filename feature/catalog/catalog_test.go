package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"
	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSyncer records the options it was called with and replays a canned result.
type fakeSyncer struct {
	calls  []catalogsync.Options
	result *models.SyncResult
	err    error
	onRun  func()
}

func (f *fakeSyncer) Run(_ context.Context, opts catalogsync.Options) (*models.SyncResult, error) {
	f.calls = append(f.calls, opts)
	if f.onRun != nil {
		f.onRun()
	}
	if f.result == nil {
		return &models.SyncResult{RunID: "run-1"}, f.err
	}
	return f.result, f.err
}

func setupStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	st := store.New(db)
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func seed(t *testing.T, st *store.GormStore, recs ...models.CanonicalRecord) {
	t.Helper()
	for _, r := range recs {
		_, err := st.Insert(context.Background(), r)
		require.NoError(t, err)
	}
}

func product(article, name string, category models.Category, qty int) models.CanonicalRecord {
	return models.CanonicalRecord{
		Article:     article,
		ModelName:   name,
		Description: "Газовый котел " + name,
		Price:       1000,
		Quantity:    qty,
		InStock:     qty > 0,
		Power:       "24",
		Contours:    models.ContoursDouble,
		Category:    category,
		PowerTier:   models.PowerTierMedium,
		ImageRef:    "/static/default.jpg",
		StatusLabel: "",
	}
}

type testEnv struct {
	app       *fiber.App
	service   *Service
	store     *store.GormStore
	syncer    *fakeSyncer
	snapshots *snapshot.FileStore
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()
	st := setupStore(t)
	snaps := snapshot.NewFileStore(filepath.Join(t.TempDir(), "products.json"))
	syncer := &fakeSyncer{}

	cfg := Config{CacheTTLSeconds: 60, SnapshotMaxAgeHours: 25, PurgeStale: true}
	svc := NewService(syncer, st, snaps, cfg, zap.NewNop())

	app := fiber.New()
	require.NoError(t, NewFeature(svc).Load(app))

	return &testEnv{app: app, service: svc, store: st, syncer: syncer, snapshots: snaps}
}
