package repository

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// MediaRepository records metadata for uploaded files. The file bytes are
// already on disk by the time a row is written.
type MediaRepository interface {
	// Create inserts a media row and fills in its generated id.
	Create(ctx context.Context, media *models.Media) error
}

// mediaRepository implements MediaRepository
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		observability.RecordMutation("upload_media", "error")
		return models.NewInternalError(err)
	}
	observability.RecordMutation("upload_media", "ok")
	return nil
}
