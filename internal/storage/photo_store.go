package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/spec-kit/repairhub/internal/config"
)

// PhotoStore uploads issue photos to object storage and hands back the
// public URL that gets persisted. Image bytes are never stored locally.
type PhotoStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// NewPhotoStore connects to the object store and ensures the bucket exists.
func NewPhotoStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*PhotoStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.Info("created storage bucket", zap.String("bucket", cfg.Bucket))
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &PhotoStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}, nil
}

// Upload stores photo bytes under a generated key and returns the URL.
func (s *PhotoStore) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	key := objectKey(fileName)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	s.logger.Debug("photo uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

func objectKey(fileName string) string {
	ext := path.Ext(fileName)
	return "issues/" + uuid.NewString() + strings.ToLower(ext)
}
