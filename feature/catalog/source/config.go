package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Budomar/ProductCatalog/core/storage"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Source kinds.
const (
	KindCSV    = "csv"
	KindSheets = "sheets"
	KindHTML   = "html"
	KindObject = "object"
	KindFile   = "file"
)

// Config locates one dataset. URL holds the export link, the page, the
// spreadsheet id, the object name or the file path depending on Kind.
type Config struct {
	Kind  string `mapstructure:"kind"`
	URL   string `mapstructure:"url"`
	Range string `mapstructure:"range"`
}

// Deps are the shared clients a fetcher may need.
type Deps struct {
	HTTP            *http.Client
	Storage         storage.Client
	Bucket          string
	CredentialsFile string
}

// New builds the fetcher described by cfg.
func New(ctx context.Context, src models.Source, cfg Config, deps Deps) (Fetcher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%s: source url is empty", src)
	}

	switch cfg.Kind {
	case KindCSV, "":
		return NewCSVFetcher(src, cfg.URL, deps.HTTP), nil
	case KindHTML:
		return NewHTMLFetcher(src, cfg.URL, deps.HTTP), nil
	case KindFile:
		return NewFileFetcher(src, cfg.URL), nil
	case KindObject:
		if deps.Storage == nil {
			return nil, fmt.Errorf("%s: object source needs a storage client", src)
		}
		return NewObjectFetcher(src, deps.Storage, deps.Bucket, cfg.URL), nil
	case KindSheets:
		if deps.CredentialsFile == "" {
			return nil, fmt.Errorf("%s: sheets source needs google credentials", src)
		}
		client, err := GoogleClient(ctx, deps.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		if deps.HTTP != nil {
			client.Timeout = deps.HTTP.Timeout
		}
		rng := cfg.Range
		if rng == "" {
			rng = "A:Z"
		}
		return NewSheetsFetcher(src, client, cfg.URL, rng), nil
	default:
		return nil, fmt.Errorf("%s: unknown source kind %q", src, cfg.Kind)
	}
}
