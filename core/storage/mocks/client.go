package mocks

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client.
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	info, _ := args.Get(0).(minio.UploadInfo)
	return info, args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

// ExpectObject serves body for bucket/object on any context.
func (m *Client) ExpectObject(bucket, object, body string) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, object, minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(body)), nil)
}

// ExpectMissingObject behaves like minio for an absent key: the open succeeds
// and the first Read fails with NoSuchKey.
func (m *Client) ExpectMissingObject(bucket, object string) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, object, minio.GetObjectOptions{}).
		Return(io.NopCloser(errReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}), nil)
}

// ExpectGetError fails the open of bucket/object with err.
func (m *Client) ExpectGetError(bucket, object string, err error) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, object, minio.GetObjectOptions{}).
		Return(nil, err)
}

// ExpectUpload accepts one JSON upload to bucket/object.
func (m *Client) ExpectUpload(bucket, object string) *mock.Call {
	return m.On("PutObject", mock.Anything, bucket, object, mock.Anything, mock.AnythingOfType("int64"),
		minio.PutObjectOptions{ContentType: "application/json"}).Return(minio.UploadInfo{Bucket: bucket, Key: object}, nil)
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}
