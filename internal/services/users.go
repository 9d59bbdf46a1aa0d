package services

import (
	"context"

	"ncnews/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// FindUserByUsername returns nil, nil when there is no such user; deciding that
// this is a 404 is up to the caller.
func (s *UserService) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
