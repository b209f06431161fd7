package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"gorm.io/gorm"
)

// Filter narrows a product listing.
type Filter struct {
	Category string
	// Search matches a substring of the name or the article, case-insensitively.
	Search string
	// InStock keeps only products with stock when set.
	InStock bool
}

// CategoryCount is one row of the category summary.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Stats summarizes the catalog.
type Stats struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"in_stock"`
	TotalViews int64 `json:"total_views"`
}

// List returns products matching f ordered by name.
func (s *GormStore) List(ctx context.Context, f Filter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(article) LIKE ?", like, like)
	}
	if f.InStock {
		q = q.Where("in_stock = ?", true)
	}

	var products []models.Product
	if err := q.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Categories counts products per category.
func (s *GormStore) Categories(ctx context.Context) ([]CategoryCount, error) {
	var out []CategoryCount
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	return out, nil
}

// Stats returns catalog totals.
func (s *GormStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.db.WithContext(ctx).Model(&models.Product{})
	if err := db.Count(&st.Total).Error; err != nil {
		return st, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("in_stock = ?", true).Count(&st.InStock).Error; err != nil {
		return st, fmt.Errorf("failed to count stocked products: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Select("COALESCE(SUM(views_count), 0)").Scan(&st.TotalViews).Error; err != nil {
		return st, fmt.Errorf("failed to sum views: %w", err)
	}
	return st, nil
}

// View returns the product and increments its view counter.
// It returns nil when the article is unknown.
func (s *GormStore) View(ctx context.Context, article string) (*models.Product, error) {
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("article = ?", article).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to count view of %s: %w", article, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.FindByArticle(ctx, article)
}
