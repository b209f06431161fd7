package source

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// DefaultMaxBytes caps a downloaded sheet.
const DefaultMaxBytes = 32 << 20

// NewHTTPClient returns a client whose whole request, body included, is bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// CSVFetcher downloads a CSV export, e.g. a Google Sheets export?format=csv link.
type CSVFetcher struct {
	source   models.Source
	url      string
	client   *http.Client
	maxBytes int64
}

// NewCSVFetcher creates a fetcher for url.
func NewCSVFetcher(src models.Source, url string, client *http.Client) *CSVFetcher {
	return &CSVFetcher{source: src, url: url, client: client, maxBytes: DefaultMaxBytes}
}

func (f *CSVFetcher) Fetch(ctx context.Context) (models.RawTable, error) {
	body, contentType, err := get(ctx, f.client, f.url, f.maxBytes)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: %w", f.source, err)
	}
	defer body.Close()

	// A private sheet answers 200 with its login page.
	if isHTML(contentType) {
		return models.RawTable{}, fmt.Errorf("%s: got an HTML page instead of CSV, is the sheet shared?", f.source)
	}
	return parseCSV(f.source, body)
}

// FileFetcher reads a CSV file from disk.
type FileFetcher struct {
	source models.Source
	path   string
}

// NewFileFetcher creates a fetcher for path.
func NewFileFetcher(src models.Source, path string) *FileFetcher {
	return &FileFetcher{source: src, path: path}
}

func (f *FileFetcher) Fetch(_ context.Context) (models.RawTable, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: %w", f.source, err)
	}
	defer file.Close()
	return parseCSV(f.source, file)
}

func parseCSV(src models.Source, r io.Reader) (models.RawTable, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: failed to parse csv: %w", src, err)
	}
	return buildTable(src, records)
}

// get issues a GET and returns the size-capped body of a 200 response along
// with its Content-Type.
func get(ctx context.Context, client *http.Client, url string, maxBytes int64) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body := limitedBody{Reader: &cappedReader{r: resp.Body, remaining: maxBytes}, Closer: resp.Body}
	return body, resp.Header.Get("Content-Type"), nil
}

// ErrTooLarge means a download went past its size cap. A truncated sheet is
// never parsed.
var ErrTooLarge = errors.New("response body exceeds size limit")

func isHTML(contentType string) bool {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	return mediaType == "text/html"
}

type limitedBody struct {
	io.Reader
	io.Closer
}

// cappedReader fails with ErrTooLarge once more than remaining bytes arrive.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		return 0, ErrTooLarge
	}
	// Allow one byte past the cap so an exact-size body still reaches EOF.
	if int64(len(p)) > c.remaining+1 {
		p = p[:c.remaining+1]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		return 0, ErrTooLarge
	}
	return n, err
}
