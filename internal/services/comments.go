package services

import (
	"context"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var newestCommentsFirst = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "created_at"}, Desc: true},
	{Column: clause.Column{Name: "comment_id"}, Desc: true},
}}

// NewComment is the body of a comment submission.
type NewComment struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListCommentsByArticle checks the article exists before validating limit and p,
// then returns one page of its comments, newest first.
func (s *CommentService) ListCommentsByArticle(ctx context.Context, articleID int, q PageQuery) ([]models.Comment, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Article{}).Where("article_id = ?", articleID).Count(&count).Error
	if err != nil {
		return nil, errors.Wrapf(err, "check article %d", articleID)
	}
	if count == 0 {
		return nil, apperr.NotFound("Article not found")
	}

	page, err := paginate(q)
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	err = s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Clauses(newestCommentsFirst).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list comments of article %d", articleID)
	}
	return comments, nil
}

// CreateComment requires an author then a body. Only absence is rejected here;
// an unknown article or author fails on the foreign keys.
func (s *CommentService) CreateComment(ctx context.Context, articleID int, in NewComment) (*models.Comment, error) {
	if in.Username == nil {
		return nil, apperr.BadRequest("Author missing")
	}
	if in.Body == nil {
		return nil, apperr.BadRequest("Comment missing")
	}

	comment := models.Comment{
		ArticleID: articleID,
		Author:    *in.Username,
		Body:      *in.Body,
	}
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.Returning{}).
		Create(&comment).Error
	if err != nil {
		return nil, errors.Wrapf(err, "create comment on article %d", articleID)
	}
	return &comment, nil
}

func (s *CommentService) UpdateCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var comment models.Comment
	res := s.db.WithContext(ctx).
		Model(&comment).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "update votes of comment %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound(apperr.MsgItemMissing)
	}
	return &comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete comment %d", id)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(apperr.MsgItemMissing)
	}
	return nil
}
