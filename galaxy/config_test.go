package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/star"
)

func TestDefaultConfig(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.RowProfile, 85)
	assert.Equal(t, 704, cfg.SegmentCount())
	assert.InDelta(t, 264.0, cfg.MaxDistance(), 1e-9)

	cfg.MaxConnectionDistance = 100
	assert.Equal(t, 100.0, cfg.MaxDistance())
}

func TestAcceptanceDivisor(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	assert.Zero(t, cfg.AcceptanceDivisor)
	assert.Equal(t, 7.0, cfg.Acceptance(), "derived from the highest default cap")

	cfg.Categories = star.Table{
		{Category: star.Small, Size: 3, MaxLanes: 2, Weight: 1},
		{Category: star.Large, Size: 7, MaxLanes: 4, Weight: 1},
	}
	assert.Equal(t, 4.0, cfg.Acceptance())

	cfg.AcceptanceDivisor = 2.5
	assert.Equal(t, 2.5, cfg.Acceptance())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*galaxy.Config)
	}{
		{"zero width", func(c *galaxy.Config) { c.Width = 0 }},
		{"negative min distance", func(c *galaxy.Config) { c.MinDistance = -1 }},
		{"unknown policy", func(c *galaxy.Config) { c.BridgePolicy = "hope" }},
		{"unknown mst", func(c *galaxy.Config) { c.MSTMethod = "boruvka" }},
		{"empty profile", func(c *galaxy.Config) { c.RowProfile = nil }},
		{"row wider than columns", func(c *galaxy.Config) { c.RowProfile = []int{2, 13} }},
		{"negative divisor", func(c *galaxy.Config) { c.AcceptanceDivisor = -1 }},
		{"no categories", func(c *galaxy.Config) { c.Categories = nil }},
		{"duplicate category", func(c *galaxy.Config) {
			c.Categories = append(c.Categories, c.Categories[0])
		}},
		{"bad category cap", func(c *galaxy.Config) {
			c.Categories = star.Table{{Category: star.Small, Size: 3, MaxLanes: 0, Weight: 1}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := galaxy.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), galaxy.ErrInvalidConfig)
		})
	}
}

func TestSegments(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	segs := galaxy.Segments(cfg)
	require.Len(t, segs, 704)

	first := segs[0]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 0, first.Col)
	assert.InDelta(t, 500.0, first.Bounds.Min.X, 1e-9, "two-wide row is centred")
	assert.InDelta(t, 600.0, first.Bounds.Max.X, 1e-9)
	assert.InDelta(t, 900.0/85, first.Bounds.Max.Y, 1e-9)
	assert.Equal(t, 500000/704, first.Target)

	for i, s := range segs {
		assert.Equal(t, i, s.Index)
		assert.GreaterOrEqual(t, s.Bounds.Min.X, 0.0)
		assert.LessOrEqual(t, s.Bounds.Max.X, cfg.Width+1e-9)
	}
	last := segs[len(segs)-1]
	assert.Equal(t, 84, last.Row)
	assert.InDelta(t, cfg.Height, last.Bounds.Max.Y, 1e-9)
}
