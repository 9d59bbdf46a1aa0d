package services

import (
	"context"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TopicService struct {
	db *gorm.DB
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{db: db}
}

func (s *TopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := s.db.WithContext(ctx).Find(&topics).Error; err != nil {
		return nil, errors.Wrap(err, "list topics")
	}
	return topics, nil
}

// TopicExists rejects with 404 when slug names no topic. An empty slug means no
// filter was asked for and always passes.
func (s *TopicService) TopicExists(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "check topic")
	}
	if count == 0 {
		return apperr.NotFound("Topic does not exist")
	}
	return nil
}
