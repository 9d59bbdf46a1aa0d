package models

// User is seeded reference data; authors of articles and comments point at Username.
type User struct {
	Username  string `gorm:"primaryKey;size:100" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}
