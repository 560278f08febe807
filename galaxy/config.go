package galaxy

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/eointolster/VoroniGalaxy/prim_kruskal"
	"github.com/eointolster/VoroniGalaxy/star"
)

// Bridge policies applied when a fragment cannot be joined within range.
const (
	// BridgeStrict fails generation with ErrUnresolvableBridge.
	BridgeStrict = "strict"
	// BridgeForce joins the closest pair regardless of distance and segment adjacency.
	BridgeForce = "force"
	// BridgePrune drops every star outside the largest component.
	BridgePrune = "prune"
)

// Config holds every tunable of a generation run.
type Config struct {
	MSTMethod             string     `yaml:"mst_method" json:"mst_method" validate:"oneof=kruskal prim"`
	BridgePolicy          string     `yaml:"bridge_policy" json:"bridge_policy" validate:"oneof=strict force prune"`
	RowProfile            []int      `yaml:"row_profile" json:"row_profile" validate:"min=1,dive,gte=1"`
	Categories            star.Table `yaml:"categories" json:"categories" validate:"min=1,dive"`
	Width                 float64    `yaml:"width" json:"width" validate:"gt=0"`
	Height                float64    `yaml:"height" json:"height" validate:"gt=0"`
	SegmentSize           float64    `yaml:"segment_size" json:"segment_size" validate:"gt=0"`
	MaxConnectionDistance float64    `yaml:"max_connection_distance" json:"max_connection_distance" validate:"gte=0"`
	MinDistance           float64    `yaml:"min_distance" json:"min_distance" validate:"gte=0"`
	NeighborhoodFactor    float64    `yaml:"neighborhood_factor" json:"neighborhood_factor" validate:"gt=0"`
	AcceptanceDivisor     float64    `yaml:"acceptance_divisor" json:"acceptance_divisor" validate:"gte=0"`
	Seed                  int64      `yaml:"seed" json:"seed"`
	TotalStars            int        `yaml:"total_stars" json:"total_stars" validate:"gte=0"`
	VirtualColumns        int        `yaml:"virtual_columns" json:"virtual_columns" validate:"gte=1"`
	MaxCrossings          int        `yaml:"max_crossings" json:"max_crossings" validate:"gte=0"`
	AttemptFactor         int        `yaml:"attempt_factor" json:"attempt_factor" validate:"gte=1"`
}

// DefaultRowProfile returns the 85-row lens-shaped segment profile (704 segments).
func DefaultRowProfile() []int {
	rows := []int{2}
	for _, band := range []struct{ n, count int }{
		{4, 8}, {6, 8}, {8, 8}, {10, 8}, {12, 27}, {10, 4}, {8, 4}, {6, 8}, {4, 8},
	} {
		for i := 0; i < band.count; i++ {
			rows = append(rows, band.n)
		}
	}

	return append(rows, 2)
}

// DefaultConfig returns the standard 1200×900 galaxy configuration.
func DefaultConfig() Config {
	return Config{
		Width:              1200,
		Height:             900,
		TotalStars:         500000,
		SegmentSize:        240,
		MinDistance:        5,
		VirtualColumns:     12,
		NeighborhoodFactor: 1.5,
		RowProfile:         DefaultRowProfile(),
		MaxCrossings:       3,
		AttemptFactor:      10,
		Categories:         star.DefaultTable(),
		MSTMethod:          prim_kruskal.MethodKruskal,
		BridgePolicy:       BridgeStrict,
	}
}

// MaxDistance returns the maximum lane length: MaxConnectionDistance when
// set, SegmentSize × 1.1 otherwise.
func (c Config) MaxDistance() float64 {
	if c.MaxConnectionDistance > 0 {
		return c.MaxConnectionDistance
	}

	return c.SegmentSize * 1.1
}

// Acceptance returns the lane acceptance divisor: AcceptanceDivisor when set,
// the highest lane cap among Categories otherwise.
func (c Config) Acceptance() float64 {
	if c.AcceptanceDivisor > 0 {
		return c.AcceptanceDivisor
	}

	return float64(c.Categories.HighestCap())
}

// SegmentCount returns the number of segments in the row profile.
func (c Config) SegmentCount() int {
	n := 0
	for _, k := range c.RowProfile {
		n += k
	}

	return n
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// Validate checks field ranges and cross-field rules.
// Failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i, n := range c.RowProfile {
		if n > c.VirtualColumns {
			return fmt.Errorf("%w: row %d has %d segments, more than %d columns", ErrInvalidConfig, i, n, c.VirtualColumns)
		}
	}
	seen := make(map[star.Category]bool, len(c.Categories))
	for _, s := range c.Categories {
		if seen[s.Category] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidConfig, s.Category)
		}
		seen[s.Category] = true
	}

	return nil
}
