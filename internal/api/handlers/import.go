package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Raymon-Lange/gardenhive/internal/api/response"
	"github.com/Raymon-Lange/gardenhive/internal/config"
	"github.com/Raymon-Lange/gardenhive/internal/importer"
	"github.com/Raymon-Lange/gardenhive/internal/models"
)

// ImportHandler drives the CSV import workflow: preview, commit, template.
type ImportHandler struct {
	catalog  PlantCatalog
	harvests HarvestStore
	cfg      *config.Config
}

// NewImportHandler creates a new import handler.
func NewImportHandler(catalog PlantCatalog, harvests HarvestStore, cfg *config.Config) *ImportHandler {
	return &ImportHandler{catalog: catalog, harvests: harvests, cfg: cfg}
}

// ImportRow is one resolved row submitted to the commit endpoint.
type ImportRow struct {
	PlantID     uuid.UUID `json:"plant_id" binding:"required"`
	HarvestedAt time.Time `json:"harvested_at" binding:"required"`
	Quantity    float64   `json:"quantity"`
}

type commitRequest struct {
	Rows []ImportRow `json:"rows"`
}

// HandlePreview handles POST /api/v1/imports/preview. The upload is
// classified against the plant catalog and nothing is persisted; the same
// file previews to the same result.
func (h *ImportHandler) HandlePreview(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required", nil)
		return
	}

	// Validate file type (content-type + extension)
	if !h.isCSV(file.Header.Get("Content-Type"), file.Filename) {
		response.BadRequest(c, "file must be a CSV", nil)
		return
	}

	// The whole file is parsed in memory, so cap the size up front.
	if file.Size > h.cfg.Upload.MaxFileSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("file exceeds max size of %d bytes", h.cfg.Upload.MaxFileSize), nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, "failed to open uploaded file")
		return
	}
	defer src.Close()

	rows, err := importer.ParseFile(src)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("CSV validation failed: %v", err), nil)
		return
	}

	plants, err := h.catalog.ListVisible(c.Request.Context())
	if err != nil {
		response.InternalError(c, fmt.Sprintf("failed to load plant catalog: %v", err))
		return
	}

	resolver := importer.NewResolver(plants, h.cfg.Import.FuzzyThreshold)
	preview := importer.Classify(rows, resolver)

	response.Success(c, http.StatusOK, preview)
}

// HandleCommit handles POST /api/v1/imports/commit. Every ambiguity must
// already be resolved by the caller; rows are inserted blindly with no
// dedup, so a double-submitted commit creates duplicate records.
func (h *ImportHandler) HandleCommit(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err), nil)
		return
	}
	if len(req.Rows) == 0 {
		response.BadRequest(c, "rows must be non-empty", nil)
		return
	}

	now := time.Now().UTC()
	harvests := make([]models.Harvest, len(req.Rows))
	for i, row := range req.Rows {
		if row.Quantity < 0 {
			response.BadRequest(c, fmt.Sprintf("row %d: quantity must be non-negative", i+1), nil)
			return
		}
		harvests[i] = models.Harvest{
			ID:          uuid.New(),
			UserID:      userID,
			PlantID:     row.PlantID,
			Quantity:    row.Quantity,
			Unit:        models.UnitOunces,
			HarvestedAt: row.HarvestedAt.UTC(),
			CreatedAt:   now,
		}
	}

	if err := h.harvests.BulkInsert(c.Request.Context(), harvests); err != nil {
		response.InternalError(c, fmt.Sprintf("failed to insert harvest records: %v", err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"imported": len(harvests),
		"harvests": harvests,
	})
}

// HandleTemplate handles GET /api/v1/imports/template: a downloadable CSV
// whose header is exactly the required columns.
func (h *ImportHandler) HandleTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="harvest_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", importer.Template())
}

func (h *ImportHandler) isCSV(contentType, filename string) bool {
	for _, allowed := range h.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return filepath.Ext(filename) == ".csv"
}
