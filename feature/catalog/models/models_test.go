package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRawTable(t *testing.T) {
	table := NewRawTable(SourceStock, []string{"Артикул", "Остаток"}, [][]string{
		{"A100", "3"},
		{"A200"},
		{"A300", "1", "extra"},
	})

	assert.Equal(t, SourceStock, table.Source)
	assert.Len(t, table.Rows, 3)
	assert.Equal(t, RawRow{"Артикул": "A200", "Остаток": ""}, table.Rows[1])
	assert.Equal(t, RawRow{"Артикул": "A300", "Остаток": "1"}, table.Rows[2])
}

func TestProductApply(t *testing.T) {
	rec := CanonicalRecord{
		Article:     "A100",
		ModelName:   "METEOR B30 WIFI H 24",
		Description: "Газовый котел METEOR B30 WIFI H 24",
		Price:       45000,
		Quantity:    3,
		InStock:     true,
		Power:       "24",
		Contours:    ContoursSingle,
		WiFi:        true,
		Category:    CategoryMeteor,
		PowerTier:   PowerTierMedium,
		ImageRef:    "/static/meteor-b30.jpg",
		StatusLabel: StatusInStock,
	}

	p := Product{ID: 7, ViewsCount: 42}
	p.Apply(rec)

	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, 42, p.ViewsCount)
	assert.Equal(t, "A100", p.Article)
	assert.Equal(t, 3, p.StockQuantity)
	assert.Equal(t, "medium", p.PowerLevel)
	assert.Equal(t, Specifications{Power: "24 кВт", Contours: "Одноконтурный", WiFi: "Да"}, p.Specifications)

	fresh := NewProduct(rec)
	assert.Zero(t, fresh.ID)
	assert.Zero(t, fresh.ViewsCount)
}

func TestSpecificationsOf_Unspecified(t *testing.T) {
	specs := SpecificationsOf(CanonicalRecord{Power: PowerUnspecified, Contours: ContoursDouble})
	assert.Equal(t, Specifications{Power: PowerUnspecified, Contours: "Двухконтурный", WiFi: "Нет"}, specs)
}
