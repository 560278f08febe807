package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eointolster/VoroniGalaxy/artifact"
	"github.com/eointolster/VoroniGalaxy/config"
	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
	"github.com/eointolster/VoroniGalaxy/store"
)

// sourceFlags select a saved galaxy: an artifact file or a database row.
// The configuration supplies the category table stars are checked against.
type sourceFlags struct {
	logFlags
	config string
	in     string
	db     string
	id     string
}

func (s *sourceFlags) register(fs *flag.FlagSet) {
	s.logFlags.register(fs)
	fs.StringVar(&s.config, "config", "", "YAML configuration whose categories the galaxy uses")
	fs.StringVar(&s.in, "in", "", "artifact file to read")
	fs.StringVar(&s.db, "db", "", "SQLite database to read")
	fs.StringVar(&s.id, "id", "", "galaxy ID inside --db")
}

func (s *sourceFlags) check() error {
	if (s.in == "") == (s.db == "") {
		return fmt.Errorf("%w: exactly one of --in or --db is required", errUsage)
	}

	return nil
}

// load reads the selected galaxy.
func (s *sourceFlags) load(ctx context.Context, log *zap.Logger) (*galaxy.Galaxy, error) {
	cfg, err := config.Load(s.config)
	if err != nil {
		return nil, err
	}
	if s.in != "" {
		f, err := os.Open(s.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return artifact.Decode(f, artifact.WithTable(cfg.Categories))
	}
	if s.id == "" {
		return nil, fmt.Errorf("%w: --id is required with --db", errUsage)
	}
	id, err := uuid.Parse(s.id)
	if err != nil {
		return nil, fmt.Errorf("%w: --id: %v", errUsage, err)
	}
	db, err := store.Open(ctx, s.db, store.WithLogger(log), store.WithTable(cfg.Categories))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.Load(ctx, id)
}

func runRoute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var src sourceFlags
	var hops bool
	var maxHops int
	fs := newFlagSet("route", stderr)
	src.register(fs)
	fs.BoolVar(&hops, "hops", false, "minimise jumps instead of distance")
	fs.IntVar(&maxHops, "max-hops", 0, "fail unless a route of at most N jumps exists (implies --hops)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if maxHops < 0 {
		return fmt.Errorf("%w: --max-hops must not be negative", errUsage)
	}
	if err := src.check(); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: route needs FROM and TO star indices", errUsage)
	}
	from, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("%w: FROM: %v", errUsage, err)
	}
	to, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("%w: TO: %v", errUsage, err)
	}

	log, err := newLogger(src.logFlags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := src.load(ctx, log)
	if err != nil {
		return err
	}
	var r galaxy.Route
	if hops || maxHops > 0 {
		r, err = g.RouteHopsWithin(from, to, maxHops)
	} else {
		r, err = g.Route(from, to)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "route %d -> %d: %d hops, distance %.2f\n", from, to, r.Hops(), r.Distance)
	for _, i := range r.Stars {
		s := g.Stars[i]
		fmt.Fprintf(stdout, "  %6d  %-12s %-9s (%.1f, %.1f)  %s\n",
			s.Index, s.Name, s.Category, s.Pos.X, s.Pos.Y, galaxy.Locate(s.Pos))
	}

	return nil
}

func runInspect(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var src sourceFlags
	var at string
	fs := newFlagSet("inspect", stderr)
	src.register(fs)
	fs.StringVar(&at, "at", "", "report the star nearest to X,Y")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := src.check(); err != nil {
		return err
	}

	log, err := newLogger(src.logFlags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if src.db != "" && src.id == "" {
		return listGalaxies(ctx, src.db, log, stdout)
	}

	g, err := src.load(ctx, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "id:        %s\n", g.ID)
	fmt.Fprintf(stdout, "seed:      %d\n", g.Seed)
	fmt.Fprintf(stdout, "policy:    %s\n", g.BridgePolicy)
	fmt.Fprintf(stdout, "size:      %.0fx%.0f\n", g.Width, g.Height)
	fmt.Fprintf(stdout, "stars:     %d\n", g.StarCount())
	fmt.Fprintf(stdout, "lanes:     %d\n", len(g.Lanes))
	// load rejects galaxies that fail their checks.
	fmt.Fprintln(stdout, "check:     ok")
	for _, c := range categoryCounts(g) {
		fmt.Fprintf(stdout, "  %-9s %d\n", c.cat, c.n)
	}

	if at == "" {
		return nil
	}
	p, err := parsePoint(at)
	if err != nil {
		return err
	}
	i, d, err := g.Nearest(p)
	if err != nil {
		return err
	}
	s := g.Stars[i]
	fmt.Fprintf(stdout, "nearest:   %d %s (%s) at %.2f, %d lanes, %s\n",
		i, s.Name, s.Category, d, s.Lanes, galaxy.Locate(s.Pos))

	return nil
}

func listGalaxies(ctx context.Context, path string, log *zap.Logger, stdout io.Writer) error {
	db, err := store.Open(ctx, path, store.WithLogger(log))
	if err != nil {
		return err
	}
	defer db.Close()

	sums, err := db.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range sums {
		fmt.Fprintf(stdout, "%s  %s  seed=%d stars=%d lanes=%d policy=%s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Seed, s.Stars, s.Lanes, s.Policy)
	}

	return nil
}

type categoryCount struct {
	cat star.Category
	n   int
}

// categoryCounts tallies stars per category, most common first.
func categoryCounts(g *galaxy.Galaxy) []categoryCount {
	counts := make(map[star.Category]int)
	for _, s := range g.Stars {
		counts[s.Category]++
	}
	out := make([]categoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, categoryCount{cat: c, n: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].cat < out[j].cat
	})

	return out
}

var errBadPoint = errors.New("want X,Y")

func parsePoint(s string) (geometry.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Point{}, fmt.Errorf("%w: --at %q: %v", errUsage, s, errBadPoint)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%w: --at %q: %v", errUsage, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%w: --at %q: %v", errUsage, s, err)
	}

	return geometry.Point{X: x, Y: y}, nil
}
