package star

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownCategory is returned when a category label is not in the table.
var ErrUnknownCategory = errors.New("star: unknown category")

// Category labels a star type.
type Category string

// Built-in categories, rarest first.
const (
	Gigantic Category = "gigantic"
	Large    Category = "large"
	Medium   Category = "medium"
	Small    Category = "small"
)

// Spec is one row of the category table.
type Spec struct {
	Category Category `yaml:"category" json:"category" validate:"required"`
	Color    string   `yaml:"color" json:"color" validate:"omitempty,hexcolor"`
	Size     int      `yaml:"size" json:"size" validate:"gte=1"`
	MaxLanes int      `yaml:"max_lanes" json:"max_lanes" validate:"gte=1"`
	Weight   float64  `yaml:"weight" json:"weight" validate:"gt=0"`
}

// Table is an ordered list of category specs. Order matters for Draw.
type Table []Spec

// DefaultTable returns the standard four-category table.
func DefaultTable() Table {
	return Table{
		{Category: Gigantic, Color: "#ff0000", Size: 6, MaxLanes: 7, Weight: 1},
		{Category: Large, Color: "#0000ff", Size: 5, MaxLanes: 5, Weight: 2},
		{Category: Medium, Color: "#00ff00", Size: 4, MaxLanes: 3, Weight: 4},
		{Category: Small, Color: "#ffff00", Size: 3, MaxLanes: 3, Weight: 8},
	}
}

// Lookup returns the spec for c.
func (t Table) Lookup(c Category) (Spec, error) {
	for _, s := range t {
		if s.Category == c {
			return s, nil
		}
	}

	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// MaxLanes returns the lane cap of c, or 0 for an unknown category.
func (t Table) MaxLanes(c Category) int {
	s, err := t.Lookup(c)
	if err != nil {
		return 0
	}

	return s.MaxLanes
}

// HighestCap returns the largest lane cap in the table.
func (t Table) HighestCap() int {
	best := 0
	for _, s := range t {
		best = max(best, s.MaxLanes)
	}

	return best
}

// Thresholds returns the cumulative draw thresholds, one per row.
// The last threshold is always 1.
func (t Table) Thresholds() []float64 {
	total := 0.0
	for _, s := range t {
		total += s.Weight
	}
	out := make([]float64, len(t))
	cum := 0.0
	for i, s := range t {
		cum += s.Weight
		out[i] = cum / total
	}
	if len(out) > 0 {
		out[len(out)-1] = 1
	}

	return out
}

// Draw picks a category with one r.Float64() draw against Thresholds.
func (t Table) Draw(r *rand.Rand) Category {
	return t.pick(r.Float64())
}

func (t Table) pick(u float64) Category {
	th := t.Thresholds()
	for i, limit := range th {
		if u < limit {
			return t[i].Category
		}
	}

	return t[len(t)-1].Category
}
