package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// ImageRepository handles persistence for uploaded image records.
type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, image types.Image) (types.Image, error) {
	image.CreatedAt = time.Now()

	const query = `
		INSERT INTO images (url, uploader_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING image_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		image.URL,
		image.UploaderID,
		image.CreatedAt,
	).Scan(&image.ID); err != nil {
		return types.Image{}, err
	}
	return image, nil
}
