package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

// ErrMalformed is returned for input that does not describe a valid galaxy.
var ErrMalformed = errors.New("artifact: malformed galaxy")

type coord [2]float64

type laneRecord struct {
	Start    int     `json:"start_star"`
	End      int     `json:"end_star"`
	Distance float64 `json:"distance"`
}

type metaRecord struct {
	ID           string  `json:"id,omitempty"`
	BridgePolicy string  `json:"bridge_policy,omitempty"`
	Seed         int64   `json:"seed"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MaxDistance  float64 `json:"max_distance"`
}

type record struct {
	Meta             *metaRecord    `json:"meta,omitempty"`
	ConnectionCounts map[string]int `json:"connection_counts"`
	Points           []coord        `json:"points"`
	Types            []string       `json:"types"`
	Connections      [][2]coord     `json:"connections"`
	StarNames        []string       `json:"star_names"`
	LaneDetails      []laneRecord   `json:"lane_details"`
}

// Encode writes g to w.
func Encode(w io.Writer, g *galaxy.Galaxy) error {
	if g == nil {
		return fmt.Errorf("%w: nil galaxy", ErrMalformed)
	}
	rec := record{
		Meta: &metaRecord{
			ID:           g.ID.String(),
			BridgePolicy: g.BridgePolicy,
			Seed:         g.Seed,
			Width:        g.Width,
			Height:       g.Height,
			MaxDistance:  g.MaxDistance,
		},
		Points:           make([]coord, len(g.Stars)),
		Types:            make([]string, len(g.Stars)),
		StarNames:        make([]string, len(g.Stars)),
		ConnectionCounts: make(map[string]int, len(g.Stars)),
		Connections:      make([][2]coord, len(g.Lanes)),
		LaneDetails:      make([]laneRecord, len(g.Lanes)),
	}
	for i, s := range g.Stars {
		rec.Points[i] = coord{s.Pos.X, s.Pos.Y}
		rec.Types[i] = string(s.Category)
		rec.StarNames[i] = s.Name
		rec.ConnectionCounts[PointKey(s.Pos)] = s.Lanes
	}
	for i, l := range g.Lanes {
		if l.Start < 0 || l.Start >= len(g.Stars) || l.End < 0 || l.End >= len(g.Stars) {
			return fmt.Errorf("%w: lane %d references %d-%d", ErrMalformed, i, l.Start, l.End)
		}
		rec.Connections[i] = [2]coord{rec.Points[l.Start], rec.Points[l.End]}
		rec.LaneDetails[i] = laneRecord{Start: l.Start, End: l.End, Distance: l.Distance}
	}

	if err := json.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("artifact: encode: %w", err)
	}

	return nil
}

// Marshal returns the encoding of g.
func Marshal(g *galaxy.Galaxy) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Option configures decoding.
type Option func(*decodeOptions)

type decodeOptions struct {
	table star.Table
}

// WithTable sets the category table star types are checked against.
// The default is star.DefaultTable.
func WithTable(t star.Table) Option {
	return func(o *decodeOptions) {
		if len(t) > 0 {
			o.table = t
		}
	}
}

// Decode reads one galaxy from r. The result passes galaxy.Check and every
// star type is a category of the table; anything else wraps ErrMalformed.
func Decode(r io.Reader, opts ...Option) (*galaxy.Galaxy, error) {
	o := decodeOptions{table: star.DefaultTable()}
	for _, opt := range opts {
		opt(&o)
	}
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	g, err := fromRecord(rec)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(o.table); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return g, nil
}

// Unmarshal decodes a galaxy from data.
func Unmarshal(data []byte, opts ...Option) (*galaxy.Galaxy, error) {
	return Decode(bytes.NewReader(data), opts...)
}

func fromRecord(rec record) (*galaxy.Galaxy, error) {
	n := len(rec.Points)
	if n == 0 {
		return nil, fmt.Errorf("%w: no points", ErrMalformed)
	}
	if len(rec.Types) != n {
		return nil, fmt.Errorf("%w: %d points but %d types", ErrMalformed, n, len(rec.Types))
	}
	if len(rec.StarNames) != 0 && len(rec.StarNames) != n {
		return nil, fmt.Errorf("%w: %d points but %d names", ErrMalformed, n, len(rec.StarNames))
	}
	for key := range rec.ConnectionCounts {
		if _, err := ParsePointKey(key); err != nil {
			return nil, err
		}
	}

	g := &galaxy.Galaxy{Stars: make([]galaxy.Star, n)}
	index := make(map[geometry.Point]int, n)
	for i, c := range rec.Points {
		p := geometry.Pt(c[0], c[1])
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrMalformed, i)
		}
		if rec.Types[i] == "" {
			return nil, fmt.Errorf("%w: point %d has no type", ErrMalformed, i)
		}
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: point %v listed twice", ErrMalformed, p)
		}
		index[p] = i
		g.Stars[i] = galaxy.Star{Index: i, Pos: p, Category: star.Category(rec.Types[i])}
		if len(rec.StarNames) > 0 {
			g.Stars[i].Name = rec.StarNames[i]
		}
	}

	lanes, err := lanesOf(rec, index)
	if err != nil {
		return nil, err
	}
	g.Lanes = lanes
	for _, l := range lanes {
		g.Stars[l.Start].Lanes++
		g.Stars[l.End].Lanes++
	}

	if m := rec.Meta; m != nil {
		g.Seed, g.Width, g.Height = m.Seed, m.Width, m.Height
		g.MaxDistance, g.BridgePolicy = m.MaxDistance, m.BridgePolicy
		if m.ID != "" {
			id, err := uuid.Parse(m.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: id: %v", ErrMalformed, err)
			}
			g.ID = id
		}
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	return g, nil
}

// lanesOf prefers lane_details and falls back to coordinate connections.
func lanesOf(rec record, index map[geometry.Point]int) ([]galaxy.LaneDetail, error) {
	n := len(rec.Points)
	if len(rec.LaneDetails) > 0 || len(rec.Connections) == 0 {
		out := make([]galaxy.LaneDetail, len(rec.LaneDetails))
		for i, l := range rec.LaneDetails {
			if l.Start < 0 || l.Start >= n || l.End < 0 || l.End >= n || l.Start == l.End {
				return nil, fmt.Errorf("%w: lane %d joins %d-%d", ErrMalformed, i, l.Start, l.End)
			}
			if !finite(l.Distance) || l.Distance < 0 {
				return nil, fmt.Errorf("%w: lane %d distance %v", ErrMalformed, i, l.Distance)
			}
			out[i] = galaxy.LaneDetail{Start: l.Start, End: l.End, Distance: l.Distance}
		}
		return out, nil
	}

	out := make([]galaxy.LaneDetail, len(rec.Connections))
	for i, c := range rec.Connections {
		a, okA := index[geometry.Pt(c[0][0], c[0][1])]
		b, okB := index[geometry.Pt(c[1][0], c[1][1])]
		if !okA || !okB || a == b {
			return nil, fmt.Errorf("%w: connection %d does not join two listed points", ErrMalformed, i)
		}
		out[i] = galaxy.LaneDetail{Start: a, End: b, Distance: geometry.Dist(geometry.Pt(c[0][0], c[0][1]), geometry.Pt(c[1][0], c[1][1]))}
	}

	return out, nil
}

// PointKey formats p as a connection_counts key, e.g. "(12.5, 300.0)".
func PointKey(p geometry.Point) string {
	return "(" + pyFloat(p.X) + ", " + pyFloat(p.Y) + ")"
}

// ParsePointKey parses a key written by PointKey.
func ParsePointKey(key string) (geometry.Point, error) {
	inner, ok := strings.CutPrefix(key, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	parts := strings.Split(inner, ",")
	if !ok || len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("%w: key %q", ErrMalformed, key)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return geometry.Point{}, fmt.Errorf("%w: key %q", ErrMalformed, key)
	}

	return geometry.Pt(x, y), nil
}

// pyFloat formats v the way Python's repr does for ordinary magnitudes.
func pyFloat(v float64) string {
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
