// Package storage adapts the external object-storage service. Documents are
// stored as raw bytes under owner-scoped keys; the database only keeps the
// public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrObjectExists is returned by Put when the key is already taken.
// Uploads never silently overwrite.
var ErrObjectExists = fmt.Errorf("object already exists")

// ObjectStore provides access to object storage.
type ObjectStore interface {
	// Put uploads an object. It fails with ErrObjectExists if the key is taken.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PublicURL returns the stable public URL for a key.
	PublicURL(key string) string
	// KeyFromURL recovers the storage key from a URL produced by PublicURL.
	KeyFromURL(rawURL string) (string, bool)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// MinioStore implements ObjectStore for MinIO/S3 compatible storage.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore connects to the storage endpoint and ensures the bucket
// exists. publicBaseURL overrides the endpoint in generated links when the
// bucket is served through a CDN or proxy; pass "" to use the endpoint.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool, publicBaseURL string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	baseURL := strings.TrimSuffix(publicBaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(client.EndpointURL().String(), "/")
	}

	return &MinioStore{client: client, bucket: bucket, baseURL: baseURL}, nil
}

// Put uploads an object, refusing to overwrite an existing key.
func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err == nil {
		return ErrObjectExists
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// PublicURL returns the public URL for a key. The bucket is expected to
// allow anonymous reads; keys are unguessable enough (owner/asset scoped
// with a millisecond timestamp) that the URL itself is the capability.
func (m *MinioStore) PublicURL(key string) string {
	return m.baseURL + "/" + m.bucket + "/" + key
}

// KeyFromURL recovers the storage key from a public URL.
func (m *MinioStore) KeyFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	prefix := "/" + m.bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// Delete removes an object.
func (m *MinioStore) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
