package handlers

import (
	"net/http"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get GET /api/users/:username
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.FindUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	if user == nil {
		c.Error(apperr.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
