package repository

import (
	"context"
	"errors"

	"chirp/internal/models"
	"chirp/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// LikeRepository toggles like rows.
type LikeRepository interface {
	// Toggle inserts a like row; when the row already exists (the insert
	// hits the uniqueness constraint) it removes the row instead. Both
	// outcomes succeed. The insert-then-catch-conflict order is what makes
	// the toggle safe under concurrent retries.
	Toggle(ctx context.Context, userID, tweetID uint) error
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(ctx context.Context, userID, tweetID uint) error {
	like := models.Like{UserID: userID, TweetID: tweetID}

	err := r.db.WithContext(ctx).Create(&like).Error
	if err == nil {
		observability.RecordMutation("toggle_like", "liked")
		return nil
	}
	if !isUniqueViolation(err) {
		observability.RecordMutation("toggle_like", "error")
		return models.NewInternalError(err)
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{}).Error
	if err != nil {
		observability.RecordMutation("toggle_like", "error")
		return models.NewInternalError(err)
	}
	observability.RecordMutation("toggle_like", "unliked")
	return nil
}
