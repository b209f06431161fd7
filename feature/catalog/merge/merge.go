package merge

import (
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Result is the joined set plus counts of rows that could not take part.
type Result struct {
	Rows []models.MergedRow

	// DroppedPrice counts pricing rows with a blank article.
	DroppedPrice int
	// DroppedStock counts stock rows with a blank article.
	DroppedStock int
	// DuplicatePrice counts pricing rows that overwrote an earlier row for the same article.
	DuplicatePrice int
	// Unmatched counts priced articles without a stock row.
	Unmatched int
}

// LeftJoin joins stock onto prices by trimmed article. Every priced article
// appears once, in order of first appearance, carrying the values of its last
// pricing row. Missing stock means quantity 0. Repeated stock rows resolve to
// the last one.
func LeftJoin(prices []models.PriceRow, stock []models.StockRow) Result {
	var res Result

	quantities := make(map[string]int, len(stock))
	for _, s := range stock {
		article := strings.TrimSpace(s.Article)
		if article == "" {
			res.DroppedStock++
			continue
		}
		quantities[article] = s.Quantity
	}

	index := make(map[string]int, len(prices))
	for _, p := range prices {
		article := strings.TrimSpace(p.Article)
		if article == "" {
			res.DroppedPrice++
			continue
		}

		row := models.MergedRow{
			Article:   article,
			ModelName: strings.TrimSpace(p.ModelName),
			Price:     p.Price,
		}
		if pos, seen := index[article]; seen {
			res.Rows[pos] = row
			res.DuplicatePrice++
			continue
		}
		index[article] = len(res.Rows)
		res.Rows = append(res.Rows, row)
	}

	for i := range res.Rows {
		qty, ok := quantities[res.Rows[i].Article]
		if !ok {
			res.Unmatched++
		}
		res.Rows[i].Quantity = qty
	}

	return res
}
