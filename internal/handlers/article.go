package handlers

import (
	"net/http"

	"ncnews/internal/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles ArticleStore
}

func NewArticleHandler(articles ArticleStore) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List GET /api/articles?topic=&sort_by=&order=&limit=&p=
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.ListArticles(c.Request.Context(), services.ArticleQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get GET /api/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	article, err := h.articles.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in services.NewArticle
	if !bindSubmission(c, &in) {
		return
	}
	article, err := h.articles.CreateArticle(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateVotes PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	delta, ok := bindVoteDelta(c)
	if !ok {
		return
	}
	article, err := h.articles.UpdateArticleVotes(c.Request.Context(), id, delta)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
