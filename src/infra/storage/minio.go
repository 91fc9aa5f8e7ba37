// Package storage implements the blob storage port on MinIO/S3.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
	"kioku/src/infra/config"
)

// Object keys are laid out as {kind}/{uuid}.{ext}, keyed off the upload
// content type. Anything outside this table is rejected.
var objectKinds = map[string]struct {
	kind string
	ext  string
}{
	"image/png":   {"image", "png"},
	"image/jpeg":  {"image", "jpg"},
	"image/jpg":   {"image", "jpg"},
	"image/webp":  {"image", "webp"},
	"audio/mpeg":  {"audio", "mp3"},
	"audio/x-m4a": {"audio", "m4a"},
	"video/mp4":   {"video", "mp4"},
}

// MinioStore implements ports.StoragePort for MinIO/S3 compatible storage.
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	log           *slog.Logger
}

// NewMinioStore connects to MinIO and ensures the bucket exists.
func NewMinioStore(cfg config.StorageConfig, log *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		log:           log,
	}, nil
}

// PutObject stores the blob under a fresh key and returns its public URL.
func (m *MinioStore) PutObject(ctx context.Context, up ports.Upload) (string, error) {
	key, err := ObjectKey(up.ContentType)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, up.Body, up.Size,
		minio.PutObjectOptions{ContentType: up.ContentType})
	if err != nil {
		return "", domain.NewSystemError("put object: "+key, err)
	}

	m.log.Info("object stored", "key", key, "content_type", up.ContentType)
	return m.publicBaseURL + "/" + key, nil
}

// ObjectKey derives the storage key for a content type.
func ObjectKey(contentType string) (string, error) {
	k, ok := objectKinds[contentType]
	if !ok {
		return "", domain.NewSystemError(fmt.Sprintf("unsupported content type: %q", contentType), nil)
	}
	return fmt.Sprintf("%s/%s.%s", k.kind, uuid.NewString(), k.ext), nil
}
