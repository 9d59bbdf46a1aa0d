package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Endpoint describes one route in the GET /api catalogue.
type Endpoint struct {
	Description     string      `json:"description"`
	Queries         []string    `json:"queries,omitempty"`
	ExampleResponse interface{} `json:"exampleResponse,omitempty"`
}

// APIHandler serves the endpoint catalogue. Endpoints is filled in by the
// router from the same table it registers routes with.
type APIHandler struct {
	Endpoints map[string]Endpoint
}

// List GET /api
func (h *APIHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": h.Endpoints})
}

type HealthHandler struct {
	ping Pinger
}

func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check GET /healthz
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
