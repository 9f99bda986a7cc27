package models

// Media records metadata for an uploaded file. The bytes themselves are
// persisted by the storage collaborator before this row is written.
type Media struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	FilePath string `gorm:"column:file_path;not null" json:"file_path"`
	APIKey   string `gorm:"column:api_key;not null" json:"api_key"`
}

// TableName returns the database table name for Media.
func (Media) TableName() string {
	return "media"
}
