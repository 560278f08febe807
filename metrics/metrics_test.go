package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/metrics"
)

func TestCollector_Events(t *testing.T) {
	c := metrics.NewCollector("galaxy")
	c.SegmentDone(galaxy.SegmentEvent{
		Sampled:    10,
		Attempts:   14,
		Candidates: 20,
		Selection:  galaxy.Selection{Accepted: 6, TooLong: 1, AtCap: 3, Declined: 10},
	})
	c.StageDone(galaxy.StageEvent{
		Stage:      galaxy.StageRefine,
		Elapsed:    20 * time.Millisecond,
		Nodes:      10,
		Lanes:      9,
		Components: 1,
		Bridges:    2,
		Stripped:   1,
	})

	path := filepath.Join(t.TempDir(), "galaxy.prom")
	require.NoError(t, c.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	for _, line := range []string{
		"galaxy_segments_total 1",
		"galaxy_stars_sampled_total 10",
		"galaxy_sample_attempts_total 14",
		`galaxy_lane_decisions_total{outcome="accepted"} 6`,
		`galaxy_lane_decisions_total{outcome="declined"} 10`,
		`galaxy_bridges_total{kind="bridge",stage="refine"} 2`,
		"galaxy_lanes_stripped_total 1",
		"galaxy_stars 10",
		"galaxy_lanes 9",
		"galaxy_components 1",
		`galaxy_stage_duration_seconds_count{stage="refine"} 1`,
	} {
		assert.Contains(t, text, line+"\n")
	}
}

func TestCollector_ObservesGeneration(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	cfg.Width, cfg.Height = 600, 400
	cfg.VirtualColumns = 4
	cfg.RowProfile = []int{2, 4, 4, 2}
	cfg.SegmentSize = 150
	cfg.TotalStars = 120
	cfg.BridgePolicy = galaxy.BridgePrune
	cfg.Seed = 11

	c := metrics.NewCollector("galaxy")
	gen, err := galaxy.New(cfg, galaxy.WithObserver(c))
	require.NoError(t, err)
	g, err := gen.Generate(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, c.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "galaxy_segments_total 12\n")
	assert.Contains(t, string(data), "galaxy_components 1\n")
	assert.Positive(t, g.StarCount())
}

func TestCollectorsAreIndependent(t *testing.T) {
	a, b := metrics.NewCollector("galaxy"), metrics.NewCollector("galaxy")
	a.SegmentDone(galaxy.SegmentEvent{})
	assert.NotSame(t, a.Registry(), b.Registry())

	mfs, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "galaxy_segments_total" {
			assert.Zero(t, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}
