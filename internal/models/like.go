package models

// Like represents a user's like on a tweet. The (user_id, tweet_id) pair is
// the primary key, so a user can like a given tweet at most once; the toggle
// operation relies on that constraint being enforced atomically by the store.
type Like struct {
	UserID  uint `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	TweetID uint `gorm:"column:tweet_id;primaryKey;autoIncrement:false" json:"tweet_id"`
}

// TableName returns the database table name for Like.
func (Like) TableName() string {
	return "likes"
}
