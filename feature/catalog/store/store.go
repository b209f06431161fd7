package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"gorm.io/gorm"
)

// Store is the product store used by the reconciler. Methods called on the
// value passed to Transaction's callback run inside that transaction.
type Store interface {
	// FindByArticle returns nil when no product has the article.
	FindByArticle(ctx context.Context, article string) (*models.Product, error)
	Insert(ctx context.Context, rec models.CanonicalRecord) (*models.Product, error)
	Update(ctx context.Context, existing *models.Product, rec models.CanonicalRecord) (*models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	DeleteByArticle(ctx context.Context, article string) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// New creates a store on db.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// Migrate creates or updates the products table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products: %w", err)
	}
	return nil
}

// DB exposes the underlying connection for schema inspection.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) FindByArticle(ctx context.Context, article string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("article = ?", article).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", article, err)
	}
	return &p, nil
}

func (s *GormStore) Insert(ctx context.Context, rec models.CanonicalRecord) (*models.Product, error) {
	p := models.NewProduct(rec)
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to insert product %s: %w", rec.Article, err)
	}
	return &p, nil
}

// Update writes only the record-derived columns so concurrent view counting is never overwritten.
func (s *GormStore) Update(ctx context.Context, existing *models.Product, rec models.CanonicalRecord) (*models.Product, error) {
	updated := *existing
	updated.Apply(rec)
	updated.UpdatedAt = s.now()

	columns := append([]string{"updated_at"}, models.DerivedColumns...)
	err := s.db.WithContext(ctx).Model(existing).Select(columns).Updates(&updated).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", rec.Article, err)
	}
	return &updated, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *GormStore) DeleteByArticle(ctx context.Context, article string) error {
	if err := s.db.WithContext(ctx).Where("article = ?", article).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", article, err)
	}
	return nil
}

// Transaction runs fn in one database transaction. Any error from fn rolls back every write.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, now: s.now})
	})
}
