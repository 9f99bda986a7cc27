// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strconv"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines identity resolution and profile assembly.
type UserRepository interface {
	// GetByAPIKey resolves an opaque api key to its unique user row.
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	// GetByID looks a user up by numeric id.
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetProfile assembles the public profile for the given user id,
	// including following and follower lists.
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", apiKey)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// relationRow is the scan target for the profile relationship queries.
type relationRow struct {
	ID   uint
	Name string
}

func (r *userRepository) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Self-follow edges are filtered out of the following list here rather
	// than prevented at insert time.
	var following []relationRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT f.followed_id AS id, u.name
		FROM followers f
		JOIN users u ON u.id = f.followed_id
		WHERE f.follower_id = ? AND f.followed_id != ?`,
		userID, userID,
	).Scan(&following).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	var followers []relationRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT f.follower_id AS id, u.name
		FROM followers f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followed_id = ?`,
		userID,
	).Scan(&followers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &models.Profile{
		ID:        user.ID,
		Name:      user.Name,
		Following: toUserRefs(following),
		Followers: toUserRefs(followers),
	}, nil
}

func toUserRefs(rows []relationRow) []models.UserRef {
	refs := make([]models.UserRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, models.UserRef{
			ID:   strconv.FormatUint(uint64(row.ID), 10),
			Name: row.Name,
		})
	}
	return refs
}
