package repository

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// FollowerRepository manages follow edges. Unlike the like toggle, follow and
// unfollow are two distinct verb-driven operations; the asymmetry is
// deliberate and must not be unified into a single conflict-driven toggle.
type FollowerRepository interface {
	// Follow inserts a follow edge. Following someone twice is a conflict.
	Follow(ctx context.Context, followerID, followedID uint) error
	// Unfollow removes a follow edge. Removing an absent edge is a no-op.
	Unfollow(ctx context.Context, followerID, followedID uint) error
}

// followerRepository implements FollowerRepository
type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository creates a new follower repository
func NewFollowerRepository(db *gorm.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	edge := models.Follower{FollowerID: followerID, FollowedID: followedID}

	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isUniqueViolation(err) {
			observability.RecordMutation("follow", "conflict")
			return models.NewConflictError("already following this user")
		}
		observability.RecordMutation("follow", "error")
		return models.NewInternalError(err)
	}
	observability.RecordMutation("follow", "ok")
	return nil
}

func (r *followerRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follower{}).Error
	if err != nil {
		observability.RecordMutation("unfollow", "error")
		return models.NewInternalError(err)
	}
	observability.RecordMutation("unfollow", "ok")
	return nil
}
