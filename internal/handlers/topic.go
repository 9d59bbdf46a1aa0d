package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topics TopicStore
}

func NewTopicHandler(topics TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// List GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.ListTopics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
