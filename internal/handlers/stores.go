package handlers

import (
	"context"

	"ncnews/internal/models"
	"ncnews/internal/services"
)

// The handlers depend on these rather than on the services directly so they
// can be exercised without a database.

type TopicStore interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type ArticleStore interface {
	ListArticles(ctx context.Context, q services.ArticleQuery) ([]models.ArticleSummary, error)
	GetArticleByID(ctx context.Context, id int) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id, delta int) (*models.Article, error)
	CreateArticle(ctx context.Context, in services.NewArticle) (*models.Article, error)
}

type CommentStore interface {
	ListCommentsByArticle(ctx context.Context, articleID int, q services.PageQuery) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID int, in services.NewComment) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

// Pinger reports whether the store is reachable.
type Pinger func(ctx context.Context) error
