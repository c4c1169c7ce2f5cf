package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Raymon-Lange/gardenhive/internal/models"
)

// HarvestRepository handles data access for harvest records
type HarvestRepository struct {
	pool *pgxpool.Pool
}

// NewHarvestRepository creates a new harvest repository
func NewHarvestRepository(pool *pgxpool.Pool) *HarvestRepository {
	return &HarvestRepository{pool: pool}
}

// BulkInsert performs a batch insert of harvest records using parameterized
// queries. Each row is an independent insert; the first failing row fails
// the whole call, with no partial-commit recovery.
func (r *HarvestRepository) BulkInsert(ctx context.Context, harvests []models.Harvest) error {
	if len(harvests) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	query := `
		INSERT INTO harvests (
			id, user_id, plant_id, quantity, unit, harvested_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	for _, h := range harvests {
		batch.Queue(
			query,
			h.ID,
			h.UserID,
			h.PlantID,
			h.Quantity,
			h.Unit,
			h.HarvestedAt,
			h.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(harvests); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// ListByUser retrieves all harvest records owned by a user, newest first.
func (r *HarvestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Harvest, error) {
	query := `
		SELECT id, user_id, plant_id, quantity, unit, harvested_at, created_at
		FROM harvests
		WHERE user_id = $1
		ORDER BY harvested_at DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var harvests []models.Harvest
	for rows.Next() {
		var h models.Harvest
		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.PlantID,
			&h.Quantity,
			&h.Unit,
			&h.HarvestedAt,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		harvests = append(harvests, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return harvests, nil
}
