package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Raymon-Lange/gardenhive/internal/api/response"
	"github.com/Raymon-Lange/gardenhive/internal/models"
)

// HarvestStore is the harvest record collaborator contract.
type HarvestStore interface {
	BulkInsert(ctx context.Context, harvests []models.Harvest) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Harvest, error)
}

// HarvestHandler serves harvest records.
type HarvestHandler struct {
	harvests HarvestStore
}

// NewHarvestHandler creates a new harvest handler.
func NewHarvestHandler(harvests HarvestStore) *HarvestHandler {
	return &HarvestHandler{harvests: harvests}
}

// HandleListHarvests handles GET /api/v1/harvests, newest first.
func (h *HarvestHandler) HandleListHarvests(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	harvests, err := h.harvests.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, fmt.Sprintf("failed to list harvests: %v", err))
		return
	}
	if harvests == nil {
		harvests = []models.Harvest{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"harvests": harvests,
		"total":    len(harvests),
	})
}
