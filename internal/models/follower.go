package models

// Follower represents a follow edge between two users. The composite primary
// key keeps the edge unique. Self-follows are not prevented at this level;
// profile queries filter them out at display time.
type Follower struct {
	FollowerID uint `gorm:"column:follower_id;primaryKey;autoIncrement:false" json:"follower_id"`
	FollowedID uint `gorm:"column:followed_id;primaryKey;autoIncrement:false" json:"followed_id"`
}

// TableName returns the database table name for Follower.
func (Follower) TableName() string {
	return "followers"
}
