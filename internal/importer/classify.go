package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Fields a row-local error can point at.
const (
	FieldDate     = "date"
	FieldQuantity = "quantity"
)

// MatchedRow is a row whose plant name matched the catalog exactly and
// whose date and quantity both parsed.
type MatchedRow struct {
	RowNumber  int       `json:"row_number"`
	PlantID    uuid.UUID `json:"plant_id"`
	PlantName  string    `json:"plant_name"`
	PlantEmoji string    `json:"plant_emoji"`
	Date       string    `json:"date"`
	Quantity   float64   `json:"quantity"`
}

// UnmatchedRow parsed cleanly but its plant name had no exact match. The
// suggestion, when present, still needs explicit confirmation by the caller.
type UnmatchedRow struct {
	RowNumber  int         `json:"row_number"`
	RawName    string      `json:"raw_name"`
	Suggestion *Suggestion `json:"suggestion"`
	Date       string      `json:"date"`
	Quantity   float64     `json:"quantity"`
}

// ErrorRow reports a row whose date or quantity failed to parse. Such rows
// are excluded from name reconciliation entirely.
type ErrorRow struct {
	RowNumber int    `json:"row_number"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

// PreviewResult is the read-only classification of an upload. Every input
// row lands in exactly one of the three buckets.
type PreviewResult struct {
	TotalRows int            `json:"total_rows"`
	Matched   []MatchedRow   `json:"matched"`
	Unmatched []UnmatchedRow `json:"unmatched"`
	Errors    []ErrorRow     `json:"errors"`
}

// Classify sorts every raw row into matched, unmatched, or errored. Per
// row the quantity is checked first, then the date; the plant name is only
// resolved once both parse. The pass is stateless: re-classifying the same
// file against the same catalog yields the same result.
func Classify(rows []RawRow, resolver *Resolver) PreviewResult {
	result := PreviewResult{
		TotalRows: len(rows),
		Matched:   []MatchedRow{},
		Unmatched: []UnmatchedRow{},
		Errors:    []ErrorRow{},
	}

	for _, row := range rows {
		quantity, err := parseQuantity(row.Quantity)
		if err != nil {
			result.Errors = append(result.Errors, ErrorRow{
				RowNumber: row.RowNumber,
				Field:     FieldQuantity,
				Message:   err.Error(),
			})
			continue
		}

		date, err := NormalizeDate(row.Date)
		if err != nil {
			result.Errors = append(result.Errors, ErrorRow{
				RowNumber: row.RowNumber,
				Field:     FieldDate,
				Message:   err.Error(),
			})
			continue
		}
		instant := FormatInstant(date)

		if plant, suggestion := resolver.Resolve(row.PlantName); plant != nil {
			result.Matched = append(result.Matched, MatchedRow{
				RowNumber:  row.RowNumber,
				PlantID:    plant.ID,
				PlantName:  plant.Name,
				PlantEmoji: plant.Emoji,
				Date:       instant,
				Quantity:   quantity,
			})
		} else {
			result.Unmatched = append(result.Unmatched, UnmatchedRow{
				RowNumber:  row.RowNumber,
				RawName:    strings.TrimSpace(row.PlantName),
				Suggestion: suggestion,
				Date:       instant,
				Quantity:   quantity,
			})
		}
	}

	return result
}

func parseQuantity(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity must be a number, got %q", trimmed)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("quantity must be a finite number, got %q", trimmed)
	}
	if v < 0 {
		return 0, fmt.Errorf("quantity must be non-negative, got %v", v)
	}
	return v, nil
}
