package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the file storage surface the services depend on.
type ObjectStore interface {
	Upload(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error)
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}

type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStore{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		secure:   cfg.Secure,
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}

// Fetch downloads a stored object by its public URL. Only URLs produced by
// Upload are accepted.
func (s *MinioStore) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return nil, fmt.Errorf("invalid file url: %w", err)
	}

	objectName := strings.TrimPrefix(parsed.Path, "/"+s.bucket+"/")
	if objectName == "" || objectName == parsed.Path {
		return nil, fmt.Errorf("url %s does not belong to bucket %s", fileURL, s.bucket)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return data, nil
}
