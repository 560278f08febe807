// File: generator.go
// Role: Drives the full pipeline: segments, repair, refine, assemble.
// Determinism:
//   - For a fixed non-zero Config.Seed the galaxy (except its ID) is
//     reproducible; Seed 0 is replaced by a time-derived seed that is
//     recorded in Galaxy.Seed.
// Concurrency:
//   - A Generator may run several Generate calls concurrently; each call
//     owns its workspace and random stream. Observers are invoked on the
//     calling goroutine.

package galaxy

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eointolster/VoroniGalaxy/sampler"
)

// Generator builds galaxies from a validated Config.
type Generator struct {
	log       *zap.Logger
	observers []Observer
	cfg       Config
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithObserver adds a progress observer. May be repeated.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs one generation. ctx is checked between segments and stages.
func (g *Generator) Generate(ctx context.Context) (*Galaxy, error) {
	cfg := g.cfg
	cfg.Seed = ResolveSeed(cfg.Seed)
	r := NewRand(cfg.Seed)
	log := g.log.With(zap.Int64("seed", cfg.Seed))

	w := NewWorkspace(gridCell(cfg))
	segs := Segments(cfg)

	start := time.Now()
	for _, seg := range segs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := sampler.Sample(r, sampler.Request{
			Bounds:        seg.Bounds,
			Categories:    cfg.Categories,
			Target:        seg.Target,
			AttemptFactor: cfg.AttemptFactor,
			MinDistance:   cfg.MinDistance,
		}, w.Grid())
		if err != nil {
			return nil, fmt.Errorf("galaxy: segment %d,%d: %w", seg.Row, seg.Col, err)
		}
		fresh := make([]int, len(res.Stars))
		for i, s := range res.Stars {
			fresh[i] = w.AddNode(s.Pos, s.Category)
		}
		cands := Triangulate(w, fresh, seg, cfg.NeighborhoodFactor)
		sel, err := SelectLanes(w, cands, r, cfg)
		if err != nil {
			return nil, fmt.Errorf("galaxy: segment %d,%d: %w", seg.Row, seg.Col, err)
		}

		log.Debug("segment done",
			zap.Int("row", seg.Row),
			zap.Int("col", seg.Col),
			zap.Int("sampled", len(fresh)),
			zap.Int("candidates", len(cands)),
			zap.Int("accepted", sel.Accepted),
		)
		g.segmentDone(SegmentEvent{
			Workspace:  w,
			Segment:    seg,
			Selection:  sel,
			Sampled:    len(fresh),
			Attempts:   res.Attempts,
			Candidates: len(cands),
			Total:      len(segs),
		})
	}
	g.stageDone(log, StageEvent{Stage: StageSample, Workspace: w, Elapsed: time.Since(start)})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	rs, err := Repair(w, cfg, r)
	if err != nil {
		log.Warn("repair failed", zap.Error(err))
		return nil, err
	}
	g.stageDone(log, StageEvent{
		Stage:     StageRepair,
		Workspace: w,
		Elapsed:   time.Since(start),
		Bridges:   rs.Bridges,
		Forced:    rs.Forced,
		Pruned:    rs.Pruned,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	fs, err := Refine(w, cfg)
	if err != nil {
		log.Warn("refine failed", zap.Error(err))
		return nil, err
	}
	g.stageDone(log, StageEvent{
		Stage:      StageRefine,
		Workspace:  w,
		Elapsed:    time.Since(start),
		Bridges:    fs.Bridges,
		Forced:     fs.Forced,
		Pruned:     fs.Pruned,
		Reinserted: fs.Reinserted,
		Rejected:   fs.Rejected,
		Stripped:   fs.Stripped,
	})

	start = time.Now()
	out, err := Assemble(w, cfg, r)
	if err != nil {
		return nil, err
	}
	if err := out.Check(); err != nil {
		return nil, err
	}
	g.stageDone(log, StageEvent{Stage: StageAssemble, Workspace: w, Elapsed: time.Since(start)})

	return out, nil
}

func (g *Generator) segmentDone(e SegmentEvent) {
	for _, o := range g.observers {
		o.SegmentDone(e)
	}
}

func (g *Generator) stageDone(log *zap.Logger, e StageEvent) {
	e.Nodes = e.Workspace.NodeCount()
	e.Lanes = e.Workspace.LaneCount()
	comps, err := e.Workspace.Components()
	if err != nil {
		log.Warn("component count failed", zap.Error(err))
	}
	e.Components = len(comps)
	log.Info("stage done",
		zap.String("stage", e.Stage),
		zap.Int("nodes", e.Nodes),
		zap.Int("lanes", e.Lanes),
		zap.Int("components", e.Components),
		zap.Int("bridges", e.Bridges+e.Forced),
		zap.Duration("elapsed", e.Elapsed),
	)
	for _, o := range g.observers {
		o.StageDone(e)
	}
}

// gridCell sizes the spatial index so that minimum-distance probes touch a
// handful of cells.
func gridCell(cfg Config) float64 {
	return max(2*cfg.MinDistance, cfg.SegmentSize/24, 1)
}
