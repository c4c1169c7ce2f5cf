package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Raymon-Lange/gardenhive/internal/api/handlers"
	"github.com/Raymon-Lange/gardenhive/internal/api/middleware"
	"github.com/Raymon-Lange/gardenhive/internal/config"
	"github.com/Raymon-Lange/gardenhive/internal/repository"
	"github.com/Raymon-Lange/gardenhive/pkg/auth"
)

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.CorrelationMiddleware())
	r.Use(middleware.StructuredLogging())

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "gardenhive",
		})
	})

	// Initialize repositories
	plantRepo := repository.NewPlantRepository(pool)
	harvestRepo := repository.NewHarvestRepository(pool)

	// Initialize handlers
	importHandler := handlers.NewImportHandler(plantRepo, harvestRepo, cfg)
	plantHandler := handlers.NewPlantHandler(plantRepo)
	harvestHandler := handlers.NewHarvestHandler(harvestRepo)

	// API v1 routes (authenticated)
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(&cfg.JWT))
	{
		// CSV import workflow: preview -> (caller resolves) -> commit
		v1.POST("/imports/preview", importHandler.HandlePreview)
		v1.POST("/imports/commit", importHandler.HandleCommit)
		v1.GET("/imports/template", importHandler.HandleTemplate)

		// Plant catalog, used by the resolution UI
		v1.GET("/plants", plantHandler.HandleListPlants)
		v1.GET("/plants/:plant_id", plantHandler.HandleGetPlant)

		// Harvest log
		v1.GET("/harvests", harvestHandler.HandleListHarvests)
	}

	// Token generation endpoint (dev only — generates test JWTs)
	r.POST("/dev/token", devTokenHandler(cfg))

	return r
}

// devTokenHandler returns a handler that generates test JWTs for development.
func devTokenHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "invalid request"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid user_id"})
			return
		}
		if req.Role == "" {
			req.Role = "gardener"
		}

		token, err := auth.GenerateToken(cfg.JWT.Secret, cfg.JWT.Issuer, userID, req.Role, cfg.JWT.ExpiryHours)
		if err != nil {
			c.JSON(500, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(200, gin.H{"token": token})
	}
}
