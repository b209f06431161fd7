package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

var (
	// ErrNotFound means no snapshot has been written yet.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorrupt means a snapshot exists but cannot be used.
	ErrCorrupt = errors.New("snapshot corrupt")
)

// Snapshot is the last successfully synced record set.
type Snapshot struct {
	Records     []models.CanonicalRecord `json:"records"`
	LastUpdated time.Time                `json:"last_updated"`
}

// Store persists and reloads snapshots.
type Store interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	// Location describes where the snapshot lives, for logs.
	Location() string
}

func encode(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// decode rejects anything the reconciler could not consume as-is.
func decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.LastUpdated.IsZero() {
		return nil, fmt.Errorf("%w: missing last_updated", ErrCorrupt)
	}

	seen := make(map[string]struct{}, len(snap.Records))
	for i, r := range snap.Records {
		if strings.TrimSpace(r.Article) == "" || r.Article != strings.TrimSpace(r.Article) {
			return nil, fmt.Errorf("%w: record %d has an invalid article %q", ErrCorrupt, i, r.Article)
		}
		if _, dup := seen[r.Article]; dup {
			return nil, fmt.Errorf("%w: duplicate article %s", ErrCorrupt, r.Article)
		}
		seen[r.Article] = struct{}{}
	}
	return &snap, nil
}
