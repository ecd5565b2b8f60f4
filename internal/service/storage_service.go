package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/config"
)

// ErrNoStorage is returned when the storage backend was not configured at
// startup.
var ErrNoStorage = errors.New("storage not configured")

type StorageService interface {
	// Upload stores the local file under memories/{ownerID}/{logicalName}
	// and returns that backend-relative path. The local file must exist.
	Upload(ctx context.Context, localPath, logicalName, ownerID, contentType string) (string, error)
	// PublicURL composes the publicly resolvable URL for a stored path.
	PublicURL(storagePath string) string
}

type storageService struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewStorageService(client *minio.Client, cfg *config.Config) StorageService {
	return &storageService{
		client:  client,
		bucket:  cfg.StorageBucket,
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
	}
}

func (s *storageService) Upload(ctx context.Context, localPath, logicalName, ownerID, contentType string) (string, error) {
	if s.client == nil {
		return "", ErrNoStorage
	}

	if _, err := os.Stat(localPath); err != nil {
		return "", fmt.Errorf("local file missing: %w", err)
	}

	storagePath := fmt.Sprintf("memories/%s/%s", ownerID, logicalName)

	_, err := s.client.FPutObject(ctx, s.bucket, storagePath, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", storagePath, err)
	}

	log.Info().Str("storage_path", storagePath).Str("content_type", contentType).Msg("media uploaded")
	return storagePath, nil
}

func (s *storageService) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}
