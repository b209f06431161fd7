package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	s := store.New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func rec(article string, price float64) models.CanonicalRecord {
	return models.CanonicalRecord{
		Article:     article,
		ModelName:   "MK 18",
		Price:       price,
		Power:       "18",
		Contours:    models.ContoursDouble,
		Category:    models.CategoryMK,
		PowerTier:   models.PowerTierLow,
		StatusLabel: models.StatusOutOfStock,
	}
}

func TestReconcile_CreateThenUpdate(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	sum, err := Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 10), rec("A2", 20)}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Summary{Created: 2}, sum)

	sum, err = Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 11), rec("A3", 30)}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Summary{Created: 1, Updated: 1, Stale: 1}, sum)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "stale products are kept")
}

func TestReconcile_PreservesIdentity(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	require.NoError(t, s.DB().Create(&models.Product{ID: 7, Article: "A1", Name: "MK 18", Price: 10, ViewsCount: 42}).Error)

	sum, err := Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 99)}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Updated)

	p, err := s.FindByArticle(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, 42, p.ViewsCount)
	assert.Equal(t, 99.0, p.Price)
}

func TestReconcile_Idempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	batch := []models.CanonicalRecord{rec("A1", 10), rec("A2", 20)}

	_, err := Reconcile(ctx, s, batch, Options{})
	require.NoError(t, err)
	first, err := s.ListAll(ctx)
	require.NoError(t, err)

	sum, err := Reconcile(ctx, s, batch, Options{})
	require.NoError(t, err)
	assert.Equal(t, Summary{Updated: 2}, sum)
	second, err := s.ListAll(ctx)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].CreatedAt.Unix(), second[i].CreatedAt.Unix())
		first[i].CreatedAt, first[i].UpdatedAt = time.Time{}, time.Time{}
		second[i].CreatedAt, second[i].UpdatedAt = time.Time{}, time.Time{}
		assert.Equal(t, first[i], second[i])
	}
}

func TestReconcile_DryRunWritesNothing(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	sum, err := Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 10)}, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, Summary{Created: 1}, sum)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReconcile_PurgeStale(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 10), rec("A2", 20)}, Options{})
	require.NoError(t, err)

	sum, err := Reconcile(ctx, s, []models.CanonicalRecord{rec("A1", 10)}, Options{PurgeStale: true})
	require.NoError(t, err)
	assert.Equal(t, Summary{Updated: 1, Stale: 1, Deleted: 1}, sum)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A1", all[0].Article)
}

// failingStore fails inserts after a number of successes.
type failingStore struct {
	store.Store
	okInserts int
}

func (f *failingStore) Insert(ctx context.Context, r models.CanonicalRecord) (*models.Product, error) {
	if f.okInserts == 0 {
		return nil, errors.New("write failed")
	}
	f.okInserts--
	return f.Store.Insert(ctx, r)
}

func (f *failingStore) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.Transaction(ctx, func(tx store.Store) error {
		return fn(&failingStore{Store: tx, okInserts: f.okInserts})
	})
}

func TestReconcile_FailureRollsBackWholeBatch(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := Reconcile(ctx, &failingStore{Store: s, okInserts: 1}, []models.CanonicalRecord{rec("A1", 10), rec("A2", 20)}, Options{})

	var recErr *Error
	require.True(t, errors.As(err, &recErr))
	assert.ErrorContains(t, err, "write failed")

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "first insert must be rolled back")
}
