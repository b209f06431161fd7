// Package source fetches the pricing and stock datasets.
//
// Every fetcher yields a models.RawTable regardless of where the data lives:
// a CSV export link, the Sheets API, a published HTML table, an object in the
// storage bucket or a local file.
package source
