package handlers

import (
	"net/http"

	"ncnews/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments CommentStore
}

func NewCommentHandler(comments CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListByArticle GET /api/articles/:article_id/comments?limit=&p=
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	comments, err := h.comments.ListCommentsByArticle(c.Request.Context(), articleID, services.PageQuery{
		Limit: c.Query("limit"),
		Page:  c.Query("p"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	var in services.NewComment
	if !bindSubmission(c, &in) {
		return
	}
	comment, err := h.comments.CreateComment(c.Request.Context(), articleID, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateVotes PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	delta, ok := bindVoteDelta(c)
	if !ok {
		return
	}
	comment, err := h.comments.UpdateCommentVotes(c.Request.Context(), id, delta)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.comments.DeleteComment(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
