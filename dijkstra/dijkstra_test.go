package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/dijkstra"
)

type DijkstraSuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest builds:
//
//	0 —1— 1 —1— 2
//	 \          /
//	  ——— 5 ———
//	3 isolated
func (s *DijkstraSuite) SetupTest() {
	s.g = core.NewGraph(core.WithWeighted())
	_, _ = s.g.AddEdge(0, 1, 1)
	_, _ = s.g.AddEdge(1, 2, 1)
	_, _ = s.g.AddEdge(0, 2, 5)
	s.Require().NoError(s.g.AddVertex(3))
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}

func (s *DijkstraSuite) TestDistancesAndPath() {
	dist, prev, err := dijkstra.Dijkstra(s.g, dijkstra.Source(0), dijkstra.WithReturnPath())
	s.Require().NoError(err)
	s.Equal(0.0, dist[0])
	s.Equal(1.0, dist[1])
	s.Equal(2.0, dist[2])
	s.True(math.IsInf(dist[3], 1))

	path, err := dijkstra.PathTo(prev, 0, 2)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2}, path)

	_, err = dijkstra.PathTo(prev, 0, 3)
	s.ErrorIs(err, dijkstra.ErrUnreachable)

	self, err := dijkstra.PathTo(prev, 0, 0)
	s.Require().NoError(err)
	s.Equal([]int{0}, self)
}

func (s *DijkstraSuite) TestNoPathMapByDefault() {
	_, prev, err := dijkstra.Dijkstra(s.g, dijkstra.Source(2))
	s.Require().NoError(err)
	s.Nil(prev)
}

func (s *DijkstraSuite) TestInfEdgeThresholdForcesDetour() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(0, 2, 6)
	_, _ = g.AddEdge(2, 1, 6)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(10))
	s.Require().NoError(err)
	s.Equal(12.0, dist[1])
}

func (s *DijkstraSuite) TestMaxDistance() {
	dist, _, err := dijkstra.Dijkstra(s.g, dijkstra.Source(0), dijkstra.WithMaxDistance(1))
	s.Require().NoError(err)
	s.Equal(1.0, dist[1])
	s.True(math.IsInf(dist[2], 1))
}

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex(0))

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(9))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}
