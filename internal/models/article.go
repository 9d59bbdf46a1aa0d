package models

import (
	"time"
)

const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

type Article struct {
	ArticleID     int       `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"not null;index;size:100" json:"topic"`
	TopicRef      Topic     `gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Author        string    `gorm:"not null;index;size:100" json:"author"`
	User          User      `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Votes         int       `gorm:"not null;default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url;size:1000;default:'https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700'" json:"article_img_url"`

	// Not a column; filled from a left-joined count over comments.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
}

// ArticleSummary is the list projection of an article; it never carries the body.
type ArticleSummary struct {
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ArticleID     int       `json:"article_id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}
