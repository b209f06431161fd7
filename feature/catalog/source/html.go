package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"github.com/PuerkitoBio/goquery"
)

// HTMLFetcher reads the first table of a page, e.g. a sheet published to the web.
type HTMLFetcher struct {
	source   models.Source
	url      string
	client   *http.Client
	maxBytes int64
}

// NewHTMLFetcher creates a fetcher for url.
func NewHTMLFetcher(src models.Source, url string, client *http.Client) *HTMLFetcher {
	return &HTMLFetcher{source: src, url: url, client: client, maxBytes: DefaultMaxBytes}
}

func (f *HTMLFetcher) Fetch(ctx context.Context) (models.RawTable, error) {
	body, _, err := get(ctx, f.client, f.url, f.maxBytes)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: %w", f.source, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: failed to parse html: %w", f.source, err)
	}
	return parseTable(f.source, doc)
}

// parseTable collects the td cells of the first table. Rows made only of th
// cells are skipped, and so are th cells inside data rows: published sheets use
// them for the column letters and row numbers.
func parseTable(src models.Source, doc *goquery.Document) (models.RawTable, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return models.RawTable{}, fmt.Errorf("%s: no table in page: %w", src, ErrEmpty)
	}

	var records [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		record := make([]string, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			record = append(record, strings.TrimSpace(td.Text()))
		})
		records = append(records, record)
	})
	return buildTable(src, records)
}
