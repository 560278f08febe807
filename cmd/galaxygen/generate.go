package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eointolster/VoroniGalaxy/artifact"
	"github.com/eointolster/VoroniGalaxy/config"
	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/metrics"
	"github.com/eointolster/VoroniGalaxy/render"
	"github.com/eointolster/VoroniGalaxy/store"
)

type generateFlags struct {
	logFlags
	config    string
	out       string
	db        string
	svg       string
	snapshots string
	metrics   string
	seed      int64
	stars     int
	every     int
	count     int
	jobs      int
}

// job is one galaxy of a batch.
type job struct {
	seed  int64
	index int
}

func runGenerate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var f generateFlags
	fs := newFlagSet("generate", stderr)
	f.register(fs)
	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.out, "out", "galaxy_data.json", "artifact output path; empty disables")
	fs.StringVar(&f.db, "db", "", "SQLite database to save into")
	fs.StringVar(&f.svg, "svg", "", "write the finished map as SVG")
	fs.StringVar(&f.snapshots, "snapshots", "", "directory for in-progress SVG snapshots")
	fs.IntVar(&f.every, "every", 50, "snapshot interval in segments")
	fs.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this textfile")
	fs.Int64Var(&f.seed, "seed", 0, "override the configured seed")
	fs.IntVar(&f.stars, "stars", 0, "override the configured star total")
	fs.IntVar(&f.count, "count", 1, "number of galaxies to generate")
	fs.IntVar(&f.jobs, "jobs", 1, "galaxies generated in parallel")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if f.count < 1 || f.jobs < 1 {
		return fmt.Errorf("%w: --count and --jobs must be positive", errUsage)
	}

	log, err := newLogger(f.logFlags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.stars > 0 {
		cfg.TotalStars = f.stars
	}

	var db *store.Store
	if f.db != "" {
		db, err = store.Open(ctx, f.db, store.WithLogger(log))
		if err != nil {
			return err
		}
		defer db.Close()
	}

	var collector *metrics.Collector
	if f.metrics != "" {
		collector = metrics.NewCollector("galaxygen")
	}

	base := galaxy.ResolveSeed(cfg.Seed)
	jobs := make([]job, f.count)
	for i := range jobs {
		jobs[i] = job{index: i, seed: base}
		if f.count > 1 {
			jobs[i].seed = galaxy.DeriveSeed(base, uint64(i))
		}
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(f.jobs)
	for _, j := range jobs {
		eg.Go(func() error {
			g, err := generateOne(ctx, cfg, j, f, collector, log)
			if err != nil {
				return fmt.Errorf("galaxy %d (seed %d): %w", j.index, j.seed, err)
			}
			if db != nil {
				if err := db.Save(ctx, g); err != nil {
					return err
				}
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(stdout, "%s seed=%d stars=%d lanes=%d\n", g.ID, g.Seed, g.StarCount(), len(g.Lanes))
			return nil
		})
	}
	err = eg.Wait()

	if collector != nil {
		if werr := collector.WriteTextfile(f.metrics); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}

// generateOne runs a single generation and writes its per-galaxy outputs.
func generateOne(
	ctx context.Context,
	cfg galaxy.Config,
	j job,
	f generateFlags,
	collector *metrics.Collector,
	log *zap.Logger,
) (*galaxy.Galaxy, error) {
	cfg.Seed = j.seed
	log = log.With(zap.Int("galaxy", j.index), zap.Int64("seed", j.seed))

	opts := []galaxy.Option{galaxy.WithLogger(log)}
	if collector != nil {
		opts = append(opts, galaxy.WithObserver(collector))
	}
	var snaps *render.SnapshotObserver
	if f.snapshots != "" {
		dir := f.snapshots
		if f.count > 1 {
			dir = filepath.Join(dir, fmt.Sprintf("galaxy-%03d", j.index))
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		snaps = render.NewSnapshotObserver(dir, f.every, cfg, log)
		opts = append(opts, galaxy.WithObserver(snaps))
	}

	gen, err := galaxy.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	g, err := gen.Generate(ctx)
	if err != nil {
		return nil, err
	}
	if snaps != nil {
		if err := snaps.Err(); err != nil {
			return nil, err
		}
	}

	if f.out != "" {
		if err := writeFile(numbered(f.out, j.index, f.count), func(w io.Writer) error {
			return artifact.Encode(w, g)
		}); err != nil {
			return nil, err
		}
	}
	if f.svg != "" {
		if err := writeFile(numbered(f.svg, j.index, f.count), func(w io.Writer) error {
			return render.SVG(w, render.FromGalaxy(g), cfg.Categories)
		}); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// numbered inserts "-NNN" before the extension of path when count > 1.
func numbered(path string, i, count int) string {
	if count <= 1 {
		return path
	}
	ext := filepath.Ext(path)

	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}

// writeFile creates path and hands it to fn, keeping the first error.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(file)
}
