package sampler

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

// ErrBadRequest is returned for a request that cannot be sampled.
var ErrBadRequest = errors.New("sampler: invalid request")

// DefaultAttemptFactor bounds placement attempts at factor × target.
const DefaultAttemptFactor = 10

// Occupancy answers whether a position is already crowded.
// *geometry.Grid implements it.
type Occupancy interface {
	AnyWithin(p geometry.Point, r float64) bool
}

// Request describes one sampling call.
type Request struct {
	Bounds        geometry.Rect
	Categories    star.Table
	Target        int
	AttemptFactor int
	MinDistance   float64
}

// Star is a sampled position with its category.
type Star struct {
	Category star.Category
	Pos      geometry.Point
}

// Result carries the stars and the number of attempts spent.
type Result struct {
	Stars    []Star
	Attempts int
}

// Sample places up to req.Target stars in req.Bounds. existing may be nil.
//
// Complexity: O(A·k) for A attempts and k stars per checked grid cell.
func Sample(r *rand.Rand, req Request, existing Occupancy) (Result, error) {
	if r == nil {
		return Result{}, fmt.Errorf("%w: nil rand", ErrBadRequest)
	}
	if req.Target < 0 || req.MinDistance < 0 || req.Bounds.Dx() <= 0 || req.Bounds.Dy() <= 0 {
		return Result{}, fmt.Errorf("%w: target=%d min=%v bounds=%v", ErrBadRequest, req.Target, req.MinDistance, req.Bounds)
	}
	if len(req.Categories) == 0 {
		return Result{}, fmt.Errorf("%w: empty category table", ErrBadRequest)
	}
	factor := req.AttemptFactor
	if factor <= 0 {
		factor = DefaultAttemptFactor
	}

	local := geometry.NewGrid(max(req.MinDistance, 1))
	res := Result{Stars: make([]Star, 0, req.Target)}
	limit := req.Target * factor
	for len(res.Stars) < req.Target && res.Attempts < limit {
		res.Attempts++
		p := geometry.Pt(
			req.Bounds.Min.X+r.Float64()*req.Bounds.Dx(),
			req.Bounds.Min.Y+r.Float64()*req.Bounds.Dy(),
		)
		if local.AnyWithin(p, req.MinDistance) {
			continue
		}
		if existing != nil && existing.AnyWithin(p, req.MinDistance) {
			continue
		}
		local.Insert(len(res.Stars), p)
		res.Stars = append(res.Stars, Star{Pos: p, Category: req.Categories.Draw(r)})
	}

	return res, nil
}
