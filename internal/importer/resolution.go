package importer

import (
	"fmt"

	"github.com/google/uuid"
)

// Decision records the caller's choice for one unmatched row: an explicit
// plant, or a skip. Decisions live only in the caller's session between
// preview and commit; the server never stores them.
type Decision struct {
	PlantID uuid.UUID `json:"plant_id,omitempty"`
	Skipped bool      `json:"skipped,omitempty"`
}

// CommitRow is one resolved {plant, date, quantity} triple, ready for the
// commit call.
type CommitRow struct {
	PlantID     uuid.UUID `json:"plant_id"`
	HarvestedAt string    `json:"harvested_at"`
	Quantity    float64   `json:"quantity"`
}

// ApplyDecisions assembles the commit payload from a preview and the
// per-row decisions, keyed by row number. Matched rows are carried over
// as-is; every unmatched row must carry a decision (skipped rows are
// dropped, chosen rows keep their parsed date and quantity); error rows
// never reach the payload.
func ApplyDecisions(preview PreviewResult, decisions map[int]Decision) ([]CommitRow, error) {
	rows := make([]CommitRow, 0, len(preview.Matched)+len(preview.Unmatched))

	for _, m := range preview.Matched {
		rows = append(rows, CommitRow{
			PlantID:     m.PlantID,
			HarvestedAt: m.Date,
			Quantity:    m.Quantity,
		})
	}

	for _, u := range preview.Unmatched {
		decision, ok := decisions[u.RowNumber]
		if !ok {
			return nil, fmt.Errorf("row %d: unresolved plant name %q", u.RowNumber, u.RawName)
		}
		if decision.Skipped {
			continue
		}
		if decision.PlantID == uuid.Nil {
			return nil, fmt.Errorf("row %d: decision must pick a plant or skip", u.RowNumber)
		}
		rows = append(rows, CommitRow{
			PlantID:     decision.PlantID,
			HarvestedAt: u.Date,
			Quantity:    u.Quantity,
		})
	}

	return rows, nil
}
