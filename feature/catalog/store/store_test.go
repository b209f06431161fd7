package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func record(article string, price float64, qty int) models.CanonicalRecord {
	return models.CanonicalRecord{
		Article:     article,
		ModelName:   "METEOR B30 WIFI H 24",
		Price:       price,
		Quantity:    qty,
		InStock:     qty > 0,
		Power:       "24",
		Contours:    models.ContoursSingle,
		WiFi:        true,
		Category:    models.CategoryMeteor,
		PowerTier:   models.PowerTierMedium,
		ImageRef:    "/static/meteor-b30.jpg",
		StatusLabel: models.StatusInStock,
	}
}

func TestGormStore_InsertFind(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p, err := s.Insert(ctx, record("A100", 45000, 3))
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Zero(t, p.ViewsCount)

	found, err := s.FindByArticle(ctx, "A100")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, 45000.0, found.Price)
	assert.Equal(t, "Одноконтурный", found.Specifications.Contours)

	missing, err := s.FindByArticle(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormStore_UpdatePreservesStoreFields(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.db.Create(&models.Product{ID: 7, Article: "A100", Name: "old", Price: 1, ViewsCount: 42}).Error)
	existing, err := s.FindByArticle(ctx, "A100")
	require.NoError(t, err)

	updated, err := s.Update(ctx, existing, record("A100", 50000, 0))
	require.NoError(t, err)
	assert.Equal(t, uint(7), updated.ID)

	reloaded, err := s.FindByArticle(ctx, "A100")
	require.NoError(t, err)
	assert.Equal(t, uint(7), reloaded.ID)
	assert.Equal(t, 42, reloaded.ViewsCount)
	assert.Equal(t, 50000.0, reloaded.Price)
	assert.Equal(t, 0, reloaded.StockQuantity)
	assert.False(t, reloaded.InStock)
	assert.Equal(t, existing.CreatedAt.Unix(), reloaded.CreatedAt.Unix())
}

func TestGormStore_ListDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, a := range []string{"A1", "A2", "A3"} {
		_, err := s.Insert(ctx, record(a, 10, 1))
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteByArticle(ctx, "A2"))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A1", all[0].Article)
	assert.Equal(t, "A3", all[1].Article)
}

func TestGormStore_TransactionRollsBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	err := s.Transaction(ctx, func(tx Store) error {
		if _, err := tx.Insert(ctx, record("A1", 10, 1)); err != nil {
			return err
		}
		return errors.New("abort batch")
	})
	assert.EqualError(t, err, "abort batch")

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGormStore_DuplicateArticleRejected(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, record("A1", 10, 1))
	require.NoError(t, err)
	_, err = s.Insert(ctx, record("A1", 11, 1))
	assert.ErrorContains(t, err, "failed to insert product A1")
}

func TestGormStore_InsertErrorWithMock(t *testing.T) {
	db, mock := setupMockDB(t)
	s := New(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Transaction(context.Background(), func(tx Store) error {
		_, err := tx.Insert(context.Background(), record("A1", 10, 1))
		return err
	})
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Queries(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	recs := []models.CanonicalRecord{
		record("M1", 100, 2),
		{Article: "L1", ModelName: "Laggartt 40", Category: models.CategoryLaggartt, Contours: models.ContoursDouble, Power: "40"},
		{Article: "D1", ModelName: "Devotion 28", Category: models.CategoryDevotion, Quantity: 1, InStock: true, Contours: models.ContoursDouble, Power: "28"},
	}
	for _, r := range recs {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}

	t.Run("Filter by category", func(t *testing.T) {
		got, err := s.List(ctx, Filter{Category: "laggartt"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "L1", got[0].Article)
	})

	t.Run("Search name or article", func(t *testing.T) {
		got, err := s.List(ctx, Filter{Search: "devot"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "D1", got[0].Article)

		got, err = s.List(ctx, Filter{Search: "m1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("In stock only", func(t *testing.T) {
		got, err := s.List(ctx, Filter{InStock: true})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Categories", func(t *testing.T) {
		got, err := s.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []CategoryCount{{"devotion", 1}, {"laggartt", 1}, {"meteor", 1}}, got)
	})

	t.Run("View increments counter", func(t *testing.T) {
		p, err := s.View(ctx, "M1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 1, p.ViewsCount)

		p, err = s.View(ctx, "M1")
		require.NoError(t, err)
		assert.Equal(t, 2, p.ViewsCount)

		missing, err := s.View(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Stats", func(t *testing.T) {
		st, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), st.Total)
		assert.Equal(t, int64(2), st.InStock)
		assert.Equal(t, int64(2), st.TotalViews)
	})
}
