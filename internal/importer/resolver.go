package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Raymon-Lange/gardenhive/internal/models"
)

// DefaultFuzzyThreshold is the maximum edit distance at which a catalog
// plant is still offered as a suggestion.
const DefaultFuzzyThreshold = 3

// Suggestion identifies the catalog plant closest to an unmatched raw name.
type Suggestion struct {
	PlantID    uuid.UUID `json:"plant_id"`
	PlantName  string    `json:"plant_name"`
	PlantEmoji string    `json:"plant_emoji"`
}

// Resolver maps raw plant-name strings to catalog plants, exactly or
// approximately. It takes a read-only snapshot of the catalog; candidate
// order is the catalog order and decides fuzzy ties.
type Resolver struct {
	plants     []models.Plant
	normalized []string
	threshold  int
}

// NewResolver builds a resolver over the given catalog snapshot. A
// non-positive threshold falls back to DefaultFuzzyThreshold.
func NewResolver(plants []models.Plant, threshold int) *Resolver {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	normalized := make([]string, len(plants))
	for i, p := range plants {
		normalized[i] = normalizeName(p.Name)
	}
	return &Resolver{plants: plants, normalized: normalized, threshold: threshold}
}

// Resolve returns the exactly-matching plant, or, failing that, the closest
// fuzzy suggestion within the threshold. An exact hit bypasses fuzzy
// matching entirely; a fuzzy hit is only ever a suggestion, never a match.
func (r *Resolver) Resolve(rawName string) (*models.Plant, *Suggestion) {
	name := normalizeName(rawName)

	for i, candidate := range r.normalized {
		if candidate == name {
			return &r.plants[i], nil
		}
	}

	best := -1
	bestDist := 0
	for i, candidate := range r.normalized {
		d := levenshtein(name, candidate)
		if best == -1 || d < bestDist { // first at minimum distance wins ties
			best = i
			bestDist = d
		}
	}
	if best == -1 || bestDist > r.threshold {
		return nil, nil
	}

	p := r.plants[best]
	return nil, &Suggestion{PlantID: p.ID, PlantName: p.Name, PlantEmoji: p.Emoji}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// levenshtein computes the edit distance between a and b with unit
// insertion/deletion/substitution costs, keeping only two rolling rows of
// length len(b)+1.
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(br) == 0 {
		return len(ar)
	}
	if len(ar) == 0 {
		return len(br)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			ins := curr[j] + 1
			del := prev[j+1] + 1
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min3(ins, del, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
