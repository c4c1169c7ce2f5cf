package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymon-Lange/gardenhive/internal/models"
	"github.com/Raymon-Lange/gardenhive/internal/repository"
)

type fakePlantStore struct {
	fakeCatalog
}

func (f *fakePlantStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	for i := range f.plants {
		if f.plants[i].ID == id {
			return &f.plants[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func setupPlantRouter(store PlantStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPlantHandler(store)
	r.GET("/api/v1/plants", h.HandleListPlants)
	r.GET("/api/v1/plants/:plant_id", h.HandleGetPlant)
	return r
}

func TestHandleListPlants(t *testing.T) {
	store := &fakePlantStore{fakeCatalog{plants: []models.Plant{
		{ID: uuid.New(), Name: "Tomato", Emoji: "🍅"},
		{ID: uuid.New(), Name: "Carrot", Emoji: "🥕"},
	}}}
	r := setupPlantRouter(store)

	req := httptest.NewRequest("GET", "/api/v1/plants", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var resp struct {
		Data struct {
			Plants []models.Plant `json:"plants"`
			Total  int            `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	assert.Len(t, resp.Data.Plants, 2)
}

func TestHandleGetPlant(t *testing.T) {
	plant := models.Plant{ID: uuid.New(), Name: "Tomato", Emoji: "🍅"}
	store := &fakePlantStore{fakeCatalog{plants: []models.Plant{plant}}}
	r := setupPlantRouter(store)

	req := httptest.NewRequest("GET", "/api/v1/plants/"+plant.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Tomato")
}

func TestHandleGetPlant_NotFound(t *testing.T) {
	store := &fakePlantStore{}
	r := setupPlantRouter(store)

	req := httptest.NewRequest("GET", "/api/v1/plants/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func TestHandleGetPlant_InvalidID(t *testing.T) {
	r := setupPlantRouter(&fakePlantStore{})

	req := httptest.NewRequest("GET", "/api/v1/plants/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
