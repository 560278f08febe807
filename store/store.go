// Package store persists galaxies in SQLite.
//
// A galaxy is spread over three tables: galaxies (one row of metadata),
// stars (one row per indexed star) and lanes (one row per lane, in lane
// order). Saving a galaxy whose ID already exists replaces it.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

// ErrNotFound is returned when no galaxy has the requested ID.
var ErrNotFound = errors.New("store: galaxy not found")

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

// Store is a SQLite-backed galaxy store.
type Store struct {
	sql   *sql.DB
	log   *zap.Logger
	now   func() time.Time
	table star.Table
}

// Summary describes a stored galaxy without its stars and lanes.
type Summary struct {
	CreatedAt time.Time
	Policy    string
	ID        uuid.UUID
	Seed      int64
	Stars     int
	Lanes     int
	Width     float64
	Height    float64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for migrations.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTable sets the category table loaded galaxies are checked against.
// The default is star.DefaultTable.
func WithTable(t star.Table) Option {
	return func(s *Store) {
		if len(t) > 0 {
			s.table = t
		}
	}
}

// Open opens (or creates) the database at path and runs migrations.
// Use Memory for a throwaway database.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One connection keeps :memory: databases shared and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}

	s := &Store{sql: sqlDB, log: zap.NewNop(), now: time.Now, table: star.DefaultTable()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	version := 0
	// A fresh database has no schema_version table yet.
	_ = s.sql.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS galaxies (
				id            TEXT PRIMARY KEY,
				seed          INTEGER NOT NULL,
				width         REAL NOT NULL,
				height        REAL NOT NULL,
				max_distance  REAL NOT NULL,
				bridge_policy TEXT NOT NULL,
				star_count    INTEGER NOT NULL,
				lane_count    INTEGER NOT NULL,
				created_at    TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_galaxies_created ON galaxies(created_at);

			CREATE TABLE IF NOT EXISTS stars (
				galaxy_id TEXT NOT NULL REFERENCES galaxies(id),
				idx       INTEGER NOT NULL,
				x         REAL NOT NULL,
				y         REAL NOT NULL,
				category  TEXT NOT NULL,
				name      TEXT NOT NULL,
				lanes     INTEGER NOT NULL,
				PRIMARY KEY (galaxy_id, idx)
			);

			CREATE TABLE IF NOT EXISTS lanes (
				galaxy_id  TEXT NOT NULL REFERENCES galaxies(id),
				seq        INTEGER NOT NULL,
				start_star INTEGER NOT NULL,
				end_star   INTEGER NOT NULL,
				distance   REAL NOT NULL,
				PRIMARY KEY (galaxy_id, seq)
			);
			CREATE INDEX IF NOT EXISTS idx_lanes_start ON lanes(galaxy_id, start_star);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		s.log.Info("applied migration", zap.Int("version", 1))
	}

	return nil
}

// Save stores g, replacing any galaxy with the same ID.
func (s *Store) Save(ctx context.Context, g *galaxy.Galaxy) error {
	if g == nil {
		return errors.New("store: nil galaxy")
	}
	id := g.ID.String()

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if err := deleteRows(ctx, tx, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO galaxies (id, seed, width, height, max_distance, bridge_policy, star_count, lane_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, g.Seed, g.Width, g.Height, g.MaxDistance, g.BridgePolicy, len(g.Stars), len(g.Lanes),
		s.now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("store: insert galaxy %s: %w", id, err)
	}

	starStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stars (galaxy_id, idx, x, y, category, name, lanes) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare stars: %w", err)
	}
	defer starStmt.Close()
	for _, st := range g.Stars {
		if _, err := starStmt.ExecContext(ctx, id, st.Index, st.Pos.X, st.Pos.Y, string(st.Category), st.Name, st.Lanes); err != nil {
			return fmt.Errorf("store: insert star %d: %w", st.Index, err)
		}
	}

	laneStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lanes (galaxy_id, seq, start_star, end_star, distance) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare lanes: %w", err)
	}
	defer laneStmt.Close()
	for i, l := range g.Lanes {
		if _, err := laneStmt.ExecContext(ctx, id, i, l.Start, l.End, l.Distance); err != nil {
			return fmt.Errorf("store: insert lane %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Load returns the galaxy with the given ID. A stored galaxy that fails
// galaxy.Validate is reported with the check's error (galaxy.ErrMalformed).
func (s *Store) Load(ctx context.Context, id uuid.UUID) (*galaxy.Galaxy, error) {
	key := id.String()
	g := &galaxy.Galaxy{ID: id}
	var stars, lanes int
	err := s.sql.QueryRowContext(ctx, `
		SELECT seed, width, height, max_distance, bridge_policy, star_count, lane_count
		FROM galaxies WHERE id = ?`, key,
	).Scan(&g.Seed, &g.Width, &g.Height, &g.MaxDistance, &g.BridgePolicy, &stars, &lanes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load galaxy %s: %w", key, err)
	}

	g.Stars = make([]galaxy.Star, 0, stars)
	rows, err := s.sql.QueryContext(ctx, `
		SELECT idx, x, y, category, name, lanes FROM stars WHERE galaxy_id = ? ORDER BY idx`, key)
	if err != nil {
		return nil, fmt.Errorf("store: load stars: %w", err)
	}
	for rows.Next() {
		var (
			st       galaxy.Star
			x, y     float64
			category string
		)
		if err := rows.Scan(&st.Index, &x, &y, &category, &st.Name, &st.Lanes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan star: %w", err)
		}
		st.Pos = geometry.Pt(x, y)
		st.Category = star.Category(category)
		g.Stars = append(g.Stars, st)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	g.Lanes = make([]galaxy.LaneDetail, 0, lanes)
	rows, err = s.sql.QueryContext(ctx, `
		SELECT start_star, end_star, distance FROM lanes WHERE galaxy_id = ? ORDER BY seq`, key)
	if err != nil {
		return nil, fmt.Errorf("store: load lanes: %w", err)
	}
	for rows.Next() {
		var l galaxy.LaneDetail
		if err := rows.Scan(&l.Start, &l.End, &l.Distance); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan lane: %w", err)
		}
		g.Lanes = append(g.Lanes, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	if err := g.Validate(s.table); err != nil {
		return nil, fmt.Errorf("store: galaxy %s: %w", key, err)
	}

	return g, nil
}

// List returns summaries of all stored galaxies, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.sql.QueryContext(ctx, `
		SELECT id, seed, width, height, bridge_policy, star_count, lane_count, created_at
		FROM galaxies ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	var out []Summary
	for rows.Next() {
		var (
			sum         Summary
			id, created string
		)
		if err := rows.Scan(&id, &sum.Seed, &sum.Width, &sum.Height, &sum.Policy, &sum.Stars, &sum.Lanes, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: scan summary: %w", err)
		}
		if sum.ID, err = uuid.Parse(id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: galaxy id %q: %w", id, err)
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: created_at %q: %w", created, err)
		}
		out = append(out, sum)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the galaxy with the given ID.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	key := id.String()
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM galaxies WHERE id = ?", key)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := deleteRows(ctx, tx, key); err != nil {
		return err
	}

	return tx.Commit()
}

func deleteRows(ctx context.Context, tx *sql.Tx, id string) error {
	for _, q := range []string{
		"DELETE FROM lanes WHERE galaxy_id = ?",
		"DELETE FROM stars WHERE galaxy_id = ?",
		"DELETE FROM galaxies WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("store: clear %s: %w", id, err)
		}
	}

	return nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("store: rows: %w", err)
	}

	return rows.Close()
}
