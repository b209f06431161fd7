package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/Budomar/ProductCatalog/core/utils"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// SheetsBaseURL is the Sheets API v4 root.
	SheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	// SheetsScope grants read access to spreadsheets.
	SheetsScope = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// SheetsFetcher reads a range through the Sheets API values endpoint.
type SheetsFetcher struct {
	source        models.Source
	client        *http.Client
	baseURL       string
	spreadsheetID string
	rng           string
}

// NewSheetsFetcher creates a fetcher using an already authorised client.
func NewSheetsFetcher(src models.Source, client *http.Client, spreadsheetID, rng string) *SheetsFetcher {
	return &SheetsFetcher{
		source:        src,
		client:        client,
		baseURL:       SheetsBaseURL,
		spreadsheetID: spreadsheetID,
		rng:           rng,
	}
}

// WithBaseURL points the fetcher at another API root.
func (f *SheetsFetcher) WithBaseURL(base string) *SheetsFetcher {
	f.baseURL = base
	return f
}

// GoogleClient builds an HTTP client from a service-account credentials file.
func GoogleClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read google credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, SheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}
	return oauth2.NewClient(ctx, creds.TokenSource), nil
}

type valueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

func (f *SheetsFetcher) Fetch(ctx context.Context) (models.RawTable, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", f.baseURL, url.PathEscape(f.spreadsheetID), url.PathEscape(f.rng))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: failed to build request: %w", f.source, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: sheets request failed: %w", f.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return models.RawTable{}, fmt.Errorf("%s: sheets api returned %d: %s", f.source, resp.StatusCode, body)
	}

	var vr valueRange
	if err := json.NewDecoder(io.LimitReader(resp.Body, DefaultMaxBytes)).Decode(&vr); err != nil {
		return models.RawTable{}, fmt.Errorf("%s: failed to decode sheets response: %w", f.source, err)
	}

	records := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		records[i] = utils.ToStrings(row)
	}
	return buildTable(f.source, records)
}
