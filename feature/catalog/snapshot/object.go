package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Budomar/ProductCatalog/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the snapshot as an object in the storage bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store writing bucket/object.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

func (s *ObjectStore) Location() string {
	return s.bucket + "/" + s.object
}

func (s *ObjectStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := encode(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot to %s: %w", s.Location(), err)
	}
	return nil
}

func (s *ObjectStore) Load(ctx context.Context) (*Snapshot, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open snapshot %s: %w", s.Location(), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.Location(), err)
	}
	return decode(data)
}
