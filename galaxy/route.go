package galaxy

import (
	"errors"
	"fmt"

	"github.com/eointolster/VoroniGalaxy/bfs"
	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/dijkstra"
)

// Route is a path of star indices.
type Route struct {
	Stars    []int
	Distance float64
}

// Hops returns the number of lanes travelled.
func (r Route) Hops() int { return max(len(r.Stars)-1, 0) }

// Route returns the shortest route by total lane length between two stars.
func (g *Galaxy) Route(from, to int) (Route, error) {
	lg, err := g.routeEnds(from, to)
	if err != nil {
		return Route{}, err
	}
	dist, prev, err := dijkstra.Dijkstra(lg, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return Route{}, fmt.Errorf("galaxy: route %d→%d: %w", from, to, err)
	}
	path, err := dijkstra.PathTo(prev, from, to)
	if err != nil {
		if errors.Is(err, dijkstra.ErrUnreachable) {
			return Route{}, fmt.Errorf("%w: %d→%d", ErrNoRoute, from, to)
		}
		return Route{}, err
	}

	return Route{Stars: path, Distance: dist[to]}, nil
}

// RouteHops returns a route with the fewest lanes between two stars.
// Among equal-hop routes the one found first by breadth-first search wins.
func (g *Galaxy) RouteHops(from, to int) (Route, error) {
	return g.RouteHopsWithin(from, to, 0)
}

// errReached stops the search once the destination is visited.
var errReached = errors.New("destination reached")

// RouteHopsWithin is RouteHops bounded to at most maxHops lanes.
// maxHops == 0 means no bound; a negative bound is an error.
func (g *Galaxy) RouteHopsWithin(from, to, maxHops int) (Route, error) {
	lg, err := g.routeEnds(from, to)
	if err != nil {
		return Route{}, err
	}
	stop := bfs.WithOnVisit(func(id, _ int) error {
		if id == to {
			return errReached
		}
		return nil
	})
	res, err := bfs.BFS(lg, from, bfs.WithMaxDepth(maxHops), stop)
	if err != nil && !errors.Is(err, errReached) {
		return Route{}, fmt.Errorf("galaxy: route %d→%d: %w", from, to, err)
	}
	path, err := res.PathTo(to)
	if err != nil {
		if maxHops > 0 {
			return Route{}, fmt.Errorf("%w: %d→%d within %d hops", ErrNoRoute, from, to, maxHops)
		}
		return Route{}, fmt.Errorf("%w: %d→%d", ErrNoRoute, from, to)
	}

	r := Route{Stars: path}
	for i := 1; i < len(path); i++ {
		e, err := lg.EdgeBetween(path[i-1], path[i])
		if err != nil {
			return Route{}, err
		}
		r.Distance += e.Weight
	}

	return r, nil
}

func (g *Galaxy) routeEnds(from, to int) (*core.Graph, error) {
	if _, err := g.Star(from); err != nil {
		return nil, err
	}
	if _, err := g.Star(to); err != nil {
		return nil, err
	}

	return g.laneGraph()
}
