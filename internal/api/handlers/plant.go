package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Raymon-Lange/gardenhive/internal/api/response"
	"github.com/Raymon-Lange/gardenhive/internal/models"
	"github.com/Raymon-Lange/gardenhive/internal/repository"
)

// PlantCatalog is the plant catalog collaborator contract consumed by the
// import workflow.
type PlantCatalog interface {
	ListVisible(ctx context.Context) ([]models.Plant, error)
}

// PlantStore extends the catalog contract with single-plant lookup.
type PlantStore interface {
	PlantCatalog
	GetByID(ctx context.Context, id uuid.UUID) (*models.Plant, error)
}

// PlantHandler serves the plant catalog.
type PlantHandler struct {
	plants PlantStore
}

// NewPlantHandler creates a new plant handler.
func NewPlantHandler(plants PlantStore) *PlantHandler {
	return &PlantHandler{plants: plants}
}

// HandleListPlants handles GET /api/v1/plants. The resolution UI uses this
// list to offer "pick a different plant" for unmatched rows.
func (h *PlantHandler) HandleListPlants(c *gin.Context) {
	plants, err := h.plants.ListVisible(c.Request.Context())
	if err != nil {
		response.InternalError(c, fmt.Sprintf("failed to list plants: %v", err))
		return
	}
	if plants == nil {
		plants = []models.Plant{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"plants": plants,
		"total":  len(plants),
	})
}

// HandleGetPlant handles GET /api/v1/plants/:plant_id.
func (h *PlantHandler) HandleGetPlant(c *gin.Context) {
	plantID, err := uuid.Parse(c.Param("plant_id"))
	if err != nil {
		response.BadRequest(c, "invalid plant_id", nil)
		return
	}

	plant, err := h.plants.GetByID(c.Request.Context(), plantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "plant not found")
			return
		}
		response.InternalError(c, fmt.Sprintf("failed to get plant: %v", err))
		return
	}

	response.Success(c, http.StatusOK, plant)
}
