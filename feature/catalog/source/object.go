package source

import (
	"context"
	"fmt"

	"github.com/Budomar/ProductCatalog/core/storage"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// ObjectFetcher reads a CSV object from the storage bucket.
type ObjectFetcher struct {
	source models.Source
	client storage.Client
	bucket string
	object string
}

// NewObjectFetcher creates a fetcher for bucket/object.
func NewObjectFetcher(src models.Source, client storage.Client, bucket, object string) *ObjectFetcher {
	return &ObjectFetcher{source: src, client: client, bucket: bucket, object: object}
}

func (f *ObjectFetcher) Fetch(ctx context.Context) (models.RawTable, error) {
	obj, err := f.client.GetObject(ctx, f.bucket, f.object, minio.GetObjectOptions{})
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%s: failed to open %s/%s: %w", f.source, f.bucket, f.object, err)
	}
	defer obj.Close()
	return parseCSV(f.source, obj)
}
