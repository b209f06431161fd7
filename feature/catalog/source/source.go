package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Fetcher supplies one raw dataset.
type Fetcher interface {
	Fetch(ctx context.Context) (models.RawTable, error)
}

// ErrEmpty means the source answered but held no header row or no data rows.
var ErrEmpty = errors.New("source is empty")

const bom = "\uFEFF"

// buildTable turns positional records into a RawTable. Leading blank lines are
// skipped, the first remaining record is the header, blank rows are dropped and
// repeated headers get ".1", ".2" suffixes so no column is shadowed.
func buildTable(src models.Source, records [][]string) (models.RawTable, error) {
	start := 0
	for start < len(records) && blank(records[start]) {
		start++
	}
	if start == len(records) {
		return models.RawTable{}, fmt.Errorf("%s: %w", src, ErrEmpty)
	}

	headers := dedupe(records[start])
	var body [][]string
	for _, rec := range records[start+1:] {
		if !blank(rec) {
			body = append(body, rec)
		}
	}
	if len(body) == 0 {
		return models.RawTable{}, fmt.Errorf("%s: no data rows: %w", src, ErrEmpty)
	}
	return models.NewRawTable(src, headers, body), nil
}

func dedupe(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n+1)
		} else {
			seen[h] = 0
		}
		headers[i] = h
	}
	return headers
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
