package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/syslinkats/ats-harness/api/v1"
	"github.com/syslinkats/ats-harness/internal/store"
)

type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GetHealth reports that the ledger is reachable
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	if _, err := h.store.Instances().Count(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, v1.ErrorResponse{Error: "ledger unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
