package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Raymon-Lange/gardenhive/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PlantRepository handles data access for the plant catalog
type PlantRepository struct {
	pool *pgxpool.Pool
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(pool *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{pool: pool}
}

// ListVisible retrieves the visible plant catalog in stable order. Import
// classification resolves raw names against this snapshot; the ordering
// decides fuzzy-match ties, so it must be deterministic.
func (r *PlantRepository) ListVisible(ctx context.Context) ([]models.Plant, error) {
	query := `
		SELECT id, name, emoji, visible, created_at
		FROM plants
		WHERE visible = TRUE
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		var p models.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Emoji, &p.Visible, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		plants = append(plants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plants, nil
}

// GetByID retrieves a single plant.
func (r *PlantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	query := `
		SELECT id, name, emoji, visible, created_at
		FROM plants
		WHERE id = $1
	`

	var p models.Plant
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Emoji, &p.Visible, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}

	return &p, nil
}
