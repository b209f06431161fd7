package models

// Source tags which feed a table came from.
type Source string

const (
	SourcePricing Source = "pricing"
	SourceStock   Source = "stock"
)

// RawRow maps header to cell text. Header order lives on the owning RawTable.
type RawRow map[string]string

// RawTable is one fetched dataset: headers in their original order plus rows.
type RawTable struct {
	Source  Source
	Headers []string
	Rows    []RawRow
}

// NewRawTable builds a table from a header line and positional records.
// Short records are padded with empty cells and extra cells are dropped.
func NewRawTable(source Source, headers []string, records [][]string) RawTable {
	rows := make([]RawRow, 0, len(records))
	for _, rec := range records {
		row := make(RawRow, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return RawTable{Source: source, Headers: headers, Rows: rows}
}
