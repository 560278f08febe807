// Package metrics exposes generation progress as Prometheus metrics.
//
// A Collector is a galaxy.Observer. It owns a private registry, so several
// collectors can coexist in one process; WriteTextfile exports the registry
// in the node_exporter textfile format. All methods are safe for concurrent
// use, so one Collector may observe several generations at once.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eointolster/VoroniGalaxy/galaxy"
)

// Collector holds all Prometheus metrics for galaxy generation.
type Collector struct {
	registry *prometheus.Registry

	// Segment pass
	Segments   prometheus.Counter
	Sampled    prometheus.Counter
	Attempts   prometheus.Counter
	Candidates prometheus.Counter
	Lanes      *prometheus.CounterVec

	// Repair and refine
	Bridges    *prometheus.CounterVec
	Pruned     prometheus.Counter
	Reinserted prometheus.Counter
	Rejected   prometheus.Counter
	Stripped   prometheus.Counter

	// Stages
	StageDuration *prometheus.HistogramVec
	Stars         prometheus.Gauge
	LaneCount     prometheus.Gauge
	Components    prometheus.Gauge
}

// NewCollector creates a collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Segments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_total",
			Help:      "Segments sampled and triangulated",
		}),
		Sampled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stars_sampled_total",
			Help:      "Stars placed by the sampler",
		}),
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_attempts_total",
			Help:      "Placement attempts spent by the sampler",
		}),
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lane_candidates_total",
			Help:      "Candidate lanes proposed by triangulation",
		}),
		Lanes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lane_decisions_total",
			Help:      "Lane selection outcomes",
		}, []string{"outcome"}),
		Bridges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridges_total",
			Help:      "Bridging lanes added, by stage and kind",
		}, []string{"stage", "kind"}),
		Pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stars_pruned_total",
			Help:      "Stars removed by the prune bridge policy",
		}),
		Reinserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lanes_reinserted_total",
			Help:      "Non-tree lanes kept by the refiner",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lanes_rejected_total",
			Help:      "Non-tree lanes dropped for crossing too many lanes",
		}),
		Stripped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lanes_stripped_total",
			Help:      "Lanes removed for exceeding the maximum distance",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"stage"}),
		Stars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stars",
			Help:      "Stars after the most recent stage",
		}),
		LaneCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lanes",
			Help:      "Lanes after the most recent stage",
		}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "components",
			Help:      "Connected components after the most recent stage",
		}),
	}
	c.registry.MustRegister(
		c.Segments, c.Sampled, c.Attempts, c.Candidates, c.Lanes,
		c.Bridges, c.Pruned, c.Reinserted, c.Rejected, c.Stripped,
		c.StageDuration, c.Stars, c.LaneCount, c.Components,
	)

	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// SegmentDone implements galaxy.Observer.
func (c *Collector) SegmentDone(e galaxy.SegmentEvent) {
	c.Segments.Inc()
	c.Sampled.Add(float64(e.Sampled))
	c.Attempts.Add(float64(e.Attempts))
	c.Candidates.Add(float64(e.Candidates))
	c.Lanes.WithLabelValues("accepted").Add(float64(e.Selection.Accepted))
	c.Lanes.WithLabelValues("too_long").Add(float64(e.Selection.TooLong))
	c.Lanes.WithLabelValues("at_cap").Add(float64(e.Selection.AtCap))
	c.Lanes.WithLabelValues("declined").Add(float64(e.Selection.Declined))
	c.Lanes.WithLabelValues("duplicate").Add(float64(e.Selection.Duplicate))
}

// StageDone implements galaxy.Observer.
func (c *Collector) StageDone(e galaxy.StageEvent) {
	c.StageDuration.WithLabelValues(e.Stage).Observe(e.Elapsed.Seconds())
	c.Bridges.WithLabelValues(e.Stage, "bridge").Add(float64(e.Bridges))
	c.Bridges.WithLabelValues(e.Stage, "forced").Add(float64(e.Forced))
	c.Pruned.Add(float64(e.Pruned))
	c.Reinserted.Add(float64(e.Reinserted))
	c.Rejected.Add(float64(e.Rejected))
	c.Stripped.Add(float64(e.Stripped))
	c.Stars.Set(float64(e.Nodes))
	c.LaneCount.Set(float64(e.Lanes))
	c.Components.Set(float64(e.Components))
}

// WriteTextfile writes the registry to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
