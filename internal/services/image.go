package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tuyoleni/nust-competion-api/types"
)

// ImageRepository defines persistence operations for uploaded image records.
type ImageRepository interface {
	Create(ctx context.Context, image types.Image) (types.Image, error)
}

// ObjectStore is the object storage surface the image service uses.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ImageService stores image bytes in object storage and records their URLs.
type ImageService struct {
	repo    ImageRepository
	objects ObjectStore
}

func NewImageService(repo ImageRepository, objects ObjectStore) *ImageService {
	return &ImageService{repo: repo, objects: objects}
}

// Upload stores the file bytes under a unique key, persists an image row
// referencing the resulting URL, and returns the record. If the row insert
// fails, the stored object is deleted best-effort so no orphan survives.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, data []byte, uploaderID int) (types.Image, error) {
	key := fmt.Sprintf("%s_%s", uuid.NewString(), filename)

	if err := s.objects.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return types.Image{}, err
	}

	image, err := s.repo.Create(ctx, types.Image{
		URL:        s.objects.URL(key),
		UploaderID: uploaderID,
	})
	if err != nil {
		_ = s.objects.Delete(ctx, key)
		return types.Image{}, err
	}
	return image, nil
}
