// Package models contains data structures for the application's domain models.
package models

// User represents an account row. The api_key is the sole identity
// credential: an opaque token, unique per user, with no expiry or rotation.
type User struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Name   string `gorm:"column:name;not null" json:"name"`
	APIKey string `gorm:"column:api_key;not null;uniqueIndex" json:"api_key"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}

// UserRef is the compact {id, name} shape used in profile relationship lists.
// IDs are rendered as strings to match the public API contract.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is a user's public profile including who they follow and who
// follows them. APIKey is only populated for the owner's own profile.
type Profile struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key,omitempty"`
	Following []UserRef `json:"following"`
	Followers []UserRef `json:"followers"`
}
