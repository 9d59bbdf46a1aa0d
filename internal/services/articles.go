package services

import (
	"context"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const articleSummaryColumns = "articles.author, articles.title, articles.article_id, articles.topic, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id)::INT AS comment_count"

// updateArticleVotesSQL applies the delta and reads back the row, with its
// comment count, in one statement. No row comes back when the id is unknown.
const updateArticleVotesSQL = `
WITH updated AS (
	UPDATE articles SET votes = votes + ? WHERE article_id = ? RETURNING *
)
SELECT updated.*,
	(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
FROM updated`

// NewArticle is the body of an article submission. Pointers distinguish an
// absent field from an empty one.
type NewArticle struct {
	Username      *string `json:"username"`
	Topic         *string `json:"topic"`
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	ArticleImgURL *string `json:"article_img_url"`
}

type ArticleService struct {
	db     *gorm.DB
	topics *TopicService
}

func NewArticleService(db *gorm.DB, topics *TopicService) *ArticleService {
	return &ArticleService{db: db, topics: topics}
}

// withCommentCount starts a query over articles left-joined to their comments,
// one row per article.
func (s *ArticleService) withCommentCount(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("articles").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// ListArticles validates sort_by, order, topic, limit and p in that order, and
// returns one page of article summaries. A known topic with no articles gives an
// empty slice.
func (s *ArticleService) ListArticles(ctx context.Context, q ArticleQuery) ([]models.ArticleSummary, error) {
	order, err := orderBy(q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}
	if err := s.topics.TopicExists(ctx, q.Topic); err != nil {
		return nil, err
	}
	page, err := paginate(PageQuery{Limit: q.Limit, Page: q.Page})
	if err != nil {
		return nil, err
	}

	tx := s.withCommentCount(ctx).Select(articleSummaryColumns)
	if q.Topic != "" {
		tx = tx.Where("articles.topic = ?", q.Topic)
	}

	articles := []models.ArticleSummary{}
	err = tx.Clauses(order).Limit(page.Limit).Offset(page.Offset).Scan(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "list articles")
	}
	return articles, nil
}

func (s *ArticleService) GetArticleByID(ctx context.Context, id int) (*models.Article, error) {
	var articles []models.Article
	err := s.withCommentCount(ctx).
		Select("articles.*, COUNT(comments.comment_id)::INT AS comment_count").
		Where("articles.article_id = ?", id).
		Scan(&articles).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get article %d", id)
	}
	if len(articles) == 0 {
		return nil, apperr.NotFound(apperr.MsgItemMissing)
	}
	return &articles[0], nil
}

// UpdateArticleVotes adds delta to the article's votes and returns the updated
// record. A zero delta still returns the current record.
func (s *ArticleService) UpdateArticleVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	var articles []models.Article
	err := s.db.WithContext(ctx).Raw(updateArticleVotesSQL, delta, id).Scan(&articles).Error
	if err != nil {
		return nil, errors.Wrapf(err, "update votes of article %d", id)
	}
	if len(articles) == 0 {
		return nil, apperr.NotFound(apperr.MsgItemMissing)
	}
	return &articles[0], nil
}

// CreateArticle checks the required fields author, topic, title, body in that
// order and rejects on the first one missing. Unknown authors or topics are left
// to the foreign keys.
func (s *ArticleService) CreateArticle(ctx context.Context, in NewArticle) (*models.Article, error) {
	if err := validateNewArticle(in); err != nil {
		return nil, err
	}

	article := models.Article{
		Author: *in.Username,
		Topic:  *in.Topic,
		Title:  *in.Title,
		Body:   *in.Body,
	}
	if in.ArticleImgURL != nil {
		article.ArticleImgURL = *in.ArticleImgURL
	}

	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.Returning{}).
		Create(&article).Error
	if err != nil {
		return nil, errors.Wrap(err, "create article")
	}
	article.CommentCount = 0
	return &article, nil
}

type requiredField struct {
	value   *string
	message string
}

// firstMissing returns the rejection for the first field that is absent or empty.
func firstMissing(fields ...requiredField) error {
	for _, f := range fields {
		if f.value == nil || *f.value == "" {
			return apperr.BadRequest(f.message)
		}
	}
	return nil
}

func validateNewArticle(in NewArticle) error {
	return firstMissing(
		requiredField{in.Username, "Author missing"},
		requiredField{in.Topic, "Topic missing"},
		requiredField{in.Title, "Title missing"},
		requiredField{in.Body, "Body missing"},
	)
}
