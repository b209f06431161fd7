// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so callers can be
// tested against the mock in core/storage/mocks. Both AWS S3 and self-hosted MinIO
// endpoints are supported.
//
// The catalog uses object storage in two places: as a source kind (a CSV sheet
// uploaded to the bucket) and as the location of the fallback snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
