package repository

import (
	"context"
	"strconv"
	"time"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// TweetRepository defines tweet mutations and feed assembly.
type TweetRepository interface {
	// Create inserts a tweet and fills in its generated id. The api key on
	// the row is stored exactly as supplied.
	Create(ctx context.Context, tweet *models.Tweet) error
	// Delete removes a tweet by primary key. A missing row is NotFound.
	Delete(ctx context.Context, tweetID uint) error
	// GetFeed returns every tweet visible to userID (own tweets plus tweets
	// of followed authors), ordered by like count descending and enriched
	// with attachments, author, and liker list.
	GetFeed(ctx context.Context, userID uint) ([]models.FeedTweet, error)
}

// tweetRepository implements TweetRepository
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		observability.RecordMutation("post_tweet", "error")
		return models.NewInternalError(err)
	}
	observability.RecordMutation("post_tweet", "ok")
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, tweetID uint) error {
	res := r.db.WithContext(ctx).Where("tweet_id = ?", tweetID).Delete(&models.Tweet{})
	if res.Error != nil {
		observability.RecordMutation("delete_tweet", "error")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		observability.RecordMutation("delete_tweet", "not_found")
		return models.NewNotFoundError("Tweet", tweetID)
	}
	observability.RecordMutation("delete_tweet", "ok")
	return nil
}

// feedRow is the scan target for the base feed query.
type feedRow struct {
	TweetID       uint
	TweetData     string
	TweetMediaIDs *uint
	APIKey        string
}

// feedQuery selects all tweets authored by the viewer or by authors the
// viewer follows. The follower match is an EXISTS subquery so each tweet is
// evaluated by a single predicate and can never be duplicated by join fanout.
// Tie order between equal like counts is unspecified.
const feedQuery = `
	WITH like_counts AS (
		SELECT tweet_id, COUNT(*) AS num_likes
		FROM likes
		GROUP BY tweet_id
	)
	SELECT t.tweet_id, t.tweet_data, t.tweet_media_ids, t.api_key
	FROM tweets t
	JOIN users u ON t.api_key = u.api_key
	LEFT JOIN like_counts lc ON t.tweet_id = lc.tweet_id
	WHERE u.id = ?
	   OR EXISTS (
		SELECT 1 FROM followers f
		WHERE f.followed_id = u.id AND f.follower_id = ?
	   )
	ORDER BY COALESCE(lc.num_likes, 0) DESC`

func (r *tweetRepository) GetFeed(ctx context.Context, userID uint) ([]models.FeedTweet, error) {
	start := time.Now()

	var rows []feedRow
	if err := r.db.WithContext(ctx).Raw(feedQuery, userID, userID).Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	feed := make([]models.FeedTweet, 0, len(rows))
	if len(rows) == 0 {
		observability.ObserveFeedAssembly(start, 0)
		return feed, nil
	}

	tweetIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		tweetIDs = append(tweetIDs, row.TweetID)
	}

	attachments, err := r.attachmentsFor(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}
	authors, err := r.authorsFor(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}
	likes, err := r.likersFor(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		tweet := models.FeedTweet{
			ID:          strconv.FormatUint(uint64(row.TweetID), 10),
			Content:     row.TweetData,
			Attachments: attachments[row.TweetID],
			Author:      authors[row.TweetID],
			Likes:       likes[row.TweetID],
		}
		if tweet.Attachments == nil {
			tweet.Attachments = []string{}
		}
		if tweet.Likes == nil {
			tweet.Likes = []models.LikeEntry{}
		}
		feed = append(feed, tweet)
	}

	observability.ObserveFeedAssembly(start, len(feed))
	return feed, nil
}

// attachmentsFor resolves media file paths per tweet.
func (r *tweetRepository) attachmentsFor(ctx context.Context, tweetIDs []uint) (map[uint][]string, error) {
	var rows []struct {
		TweetID  uint
		FilePath string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.tweet_id, m.file_path
		FROM media m
		JOIN tweets t ON m.id = t.tweet_media_ids
		WHERE t.tweet_id IN ?`,
		tweetIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	attachments := make(map[uint][]string, len(rows))
	for _, row := range rows {
		attachments[row.TweetID] = append(attachments[row.TweetID], row.FilePath)
	}
	return attachments, nil
}

// authorsFor resolves the author {id, name} per tweet via the api_key link.
func (r *tweetRepository) authorsFor(ctx context.Context, tweetIDs []uint) (map[uint]*models.TweetAuthor, error) {
	var rows []struct {
		TweetID uint
		ID      uint
		Name    string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.tweet_id, u.id, u.name
		FROM users u
		JOIN tweets t ON u.api_key = t.api_key
		WHERE t.tweet_id IN ?`,
		tweetIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	authors := make(map[uint]*models.TweetAuthor, len(rows))
	for _, row := range rows {
		authors[row.TweetID] = &models.TweetAuthor{ID: row.ID, Name: row.Name}
	}
	return authors, nil
}

// likersFor resolves the full liker list per tweet.
func (r *tweetRepository) likersFor(ctx context.Context, tweetIDs []uint) (map[uint][]models.LikeEntry, error) {
	var rows []struct {
		TweetID uint
		UserID  uint
		Name    string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.tweet_id, l.user_id, u.name
		FROM likes l
		JOIN users u ON l.user_id = u.id
		WHERE l.tweet_id IN ?`,
		tweetIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	likes := make(map[uint][]models.LikeEntry, len(rows))
	for _, row := range rows {
		likes[row.TweetID] = append(likes[row.TweetID], models.LikeEntry{
			UserID: strconv.FormatUint(uint64(row.UserID), 10),
			Name:   row.Name,
		})
	}
	return likes, nil
}
