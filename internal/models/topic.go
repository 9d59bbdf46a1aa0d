package models

// Topic is a category articles are filed under. Slug is the natural key.
type Topic struct {
	Slug        string `gorm:"primaryKey;size:100" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}
