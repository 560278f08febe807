package galaxy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
)

// smallConfig is a 12-segment galaxy of up to 240 stars.
func smallConfig() galaxy.Config {
	cfg := galaxy.DefaultConfig()
	cfg.Width = 600
	cfg.Height = 400
	cfg.VirtualColumns = 4
	cfg.RowProfile = []int{2, 4, 4, 2}
	cfg.SegmentSize = 150
	cfg.TotalStars = 240
	cfg.BridgePolicy = galaxy.BridgePrune
	cfg.Seed = 42

	return cfg
}

func generate(t *testing.T, cfg galaxy.Config, opts ...galaxy.Option) *galaxy.Galaxy {
	t.Helper()
	gen, err := galaxy.New(cfg, opts...)
	require.NoError(t, err)
	g, err := gen.Generate(context.Background())
	require.NoError(t, err)

	return g
}

func TestGenerate_Invariants(t *testing.T) {
	cfg := smallConfig()
	capViolations := 0
	obs := galaxy.ObserverFuncs{OnSegment: func(e galaxy.SegmentEvent) {
		for _, n := range e.Workspace.Nodes() {
			if e.Workspace.Degree(n.ID) > cfg.Categories.MaxLanes(n.Category) {
				capViolations++
			}
		}
	}}

	g := generate(t, cfg, galaxy.WithObserver(obs))
	require.NoError(t, g.Check())
	assert.Zero(t, capViolations, "selection never exceeds a lane cap")
	assert.Equal(t, int64(42), g.Seed)
	assert.Greater(t, g.StarCount(), 100)
	assert.InDelta(t, 165.0, g.MaxDistance, 1e-9)

	for i, a := range g.Stars {
		assert.True(t, geometry.R(0, 0, cfg.Width, cfg.Height).Contains(a.Pos))
		for _, b := range g.Stars[i+1:] {
			require.GreaterOrEqual(t, geometry.Dist(a.Pos, b.Pos), cfg.MinDistance)
		}
	}
	for _, l := range g.Lanes {
		assert.LessOrEqual(t, l.Distance, g.MaxDistance)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, smallConfig())
	b := generate(t, smallConfig())

	require.Equal(t, len(a.Stars), len(b.Stars))
	for i := range a.Stars {
		assert.Equal(t, a.Stars[i].Pos, b.Stars[i].Pos)
		assert.Equal(t, a.Stars[i].Category, b.Stars[i].Category)
		assert.Equal(t, a.Stars[i].Name, b.Stars[i].Name)
	}
	assert.Equal(t, a.Lanes, b.Lanes)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerate_ObserverAndLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var segments int
	var stages []string
	obs := galaxy.ObserverFuncs{
		OnSegment: func(e galaxy.SegmentEvent) {
			segments++
			assert.Equal(t, 12, e.Total)
		},
		OnStage: func(e galaxy.StageEvent) { stages = append(stages, e.Stage) },
	}

	generate(t, smallConfig(), galaxy.WithLogger(zap.New(core)), galaxy.WithObserver(obs))

	assert.Equal(t, 12, segments)
	want := []string{galaxy.StageSample, galaxy.StageRepair, galaxy.StageRefine, galaxy.StageAssemble}
	assert.Equal(t, want, stages)
	assert.Equal(t, 4, logs.FilterMessage("stage done").Len())
	assert.Zero(t, logs.FilterMessage("segment done").Len(), "segment records are debug level")
}

func TestGenerate_ZeroSeedIsRecorded(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 0
	cfg.TotalStars = 48
	g := generate(t, cfg)
	assert.NotZero(t, g.Seed)
}

func TestGenerate_Cancelled(t *testing.T) {
	gen, err := galaxy.New(smallConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.SegmentSize = 0
	_, err := galaxy.New(cfg)
	assert.ErrorIs(t, err, galaxy.ErrInvalidConfig)
}

func TestGenerate_EmptyGalaxy(t *testing.T) {
	cfg := smallConfig()
	cfg.TotalStars = 0
	gen, err := galaxy.New(cfg)
	require.NoError(t, err)
	_, err = gen.Generate(context.Background())
	assert.ErrorIs(t, err, galaxy.ErrEmptyGalaxy)
}

func TestDeriveSeed(t *testing.T) {
	seen := map[int64]bool{}
	for i := uint64(0); i < 64; i++ {
		s := galaxy.DeriveSeed(7, i)
		assert.NotZero(t, s)
		assert.False(t, seen[s])
		seen[s] = true
	}
	assert.Equal(t, galaxy.DeriveSeed(7, 3), galaxy.DeriveSeed(7, 3))
	assert.Equal(t, int64(5), galaxy.ResolveSeed(5))
}
