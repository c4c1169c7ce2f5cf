package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitOunces is the native unit of the CSV import format. Imported
// quantities are always ounces; no unit conversion is performed.
const UnitOunces = "oz"

// Plant is an entry in the plant catalog against which imported names
// are resolved.
// DB columns: id, name, emoji, visible, created_at
type Plant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Visible   bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Harvest is a durable harvest record owned by a user.
// DB columns: id, user_id, plant_id, quantity, unit, harvested_at, created_at
type Harvest struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PlantID     uuid.UUID `json:"plant_id"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	HarvestedAt time.Time `json:"harvested_at"`
	CreatedAt   time.Time `json:"created_at"`
}
