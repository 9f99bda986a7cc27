package models

// Tweet represents a posted message. The author reference is the raw api_key
// string, deliberately without a schema-level foreign key onto users.
type Tweet struct {
	TweetID   uint   `gorm:"column:tweet_id;primaryKey" json:"tweet_id"`
	TweetData string `gorm:"column:tweet_data;not null" json:"tweet_data"`
	// TweetMediaIDs keeps the historical plural column name, but the column
	// holds at most one media reference.
	TweetMediaIDs *uint  `gorm:"column:tweet_media_ids" json:"tweet_media_ids,omitempty"`
	APIKey        string `gorm:"column:api_key;not null" json:"api_key"`
}

// TableName returns the database table name for Tweet.
func (Tweet) TableName() string {
	return "tweets"
}

// TweetAuthor is the {id, name} author block attached to feed entries.
type TweetAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LikeEntry identifies one user who liked a tweet.
type LikeEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// FeedTweet is one fully enriched entry in a user's feed: the tweet body plus
// resolved attachments, author, and the list of likers.
type FeedTweet struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Attachments []string     `json:"attachments"`
	Author      *TweetAuthor `json:"author"`
	Likes       []LikeEntry  `json:"likes"`
}
