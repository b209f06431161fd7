package normalize

import (
	"github.com/Budomar/ProductCatalog/feature/catalog/columns"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Degradation records a non-empty cell that fell back to its default.
type Degradation struct {
	Source  models.Source
	Row     int
	Article string
	Field   string
	Raw     string
}

// PriceRows parses every pricing row. Rows are never dropped here.
func PriceRows(table models.RawTable, cm columns.ColumnMap) ([]models.PriceRow, []Degradation) {
	rows := make([]models.PriceRow, 0, len(table.Rows))
	var degraded []Degradation

	for i, raw := range table.Rows {
		article := cm.Cell(raw, columns.RoleArticle)
		cell := cm.Cell(raw, columns.RolePrice)

		price, bad := parsePrice(cell)
		if bad {
			degraded = append(degraded, Degradation{
				Source: table.Source, Row: i, Article: article, Field: "price", Raw: cell,
			})
		}

		rows = append(rows, models.PriceRow{
			Article:   article,
			ModelName: cm.Cell(raw, columns.RoleModelName),
			Price:     price,
		})
	}
	return rows, degraded
}

// StockRows parses every stock row.
func StockRows(table models.RawTable, cm columns.ColumnMap) ([]models.StockRow, []Degradation) {
	rows := make([]models.StockRow, 0, len(table.Rows))
	var degraded []Degradation

	for i, raw := range table.Rows {
		article := cm.Cell(raw, columns.RoleArticle)
		cell := cm.Cell(raw, columns.RoleQuantity)

		qty, bad := parseQuantity(cell)
		if bad {
			degraded = append(degraded, Degradation{
				Source: table.Source, Row: i, Article: article, Field: "quantity", Raw: cell,
			})
		}

		rows = append(rows, models.StockRow{Article: article, Quantity: qty})
	}
	return rows, degraded
}
