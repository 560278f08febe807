package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/sampler"
	"github.com/eointolster/VoroniGalaxy/star"
)

func request(target int, minDist float64) sampler.Request {
	return sampler.Request{
		Bounds:      geometry.R(100, 50, 200, 60.6),
		Categories:  star.DefaultTable(),
		Target:      target,
		MinDistance: minDist,
	}
}

func TestSample_MinDistanceAndBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	req := request(40, 5)
	res, err := sampler.Sample(r, req, nil)
	require.NoError(t, err)
	require.NotEmpty(t, res.Stars)
	assert.LessOrEqual(t, len(res.Stars), 40)
	assert.LessOrEqual(t, res.Attempts, 400)

	for i, a := range res.Stars {
		assert.True(t, req.Bounds.Contains(a.Pos), "star %d out of bounds: %v", i, a.Pos)
		for j := i + 1; j < len(res.Stars); j++ {
			assert.GreaterOrEqual(t, geometry.Dist(a.Pos, res.Stars[j].Pos), 5.0)
		}
		_, err := star.DefaultTable().Lookup(a.Category)
		assert.NoError(t, err)
	}
}

func TestSample_RespectsExisting(t *testing.T) {
	existing := geometry.NewGrid(5)
	// Block the whole segment except its far right end.
	for x := 100.0; x < 180; x += 3 {
		for y := 50.0; y < 61; y += 3 {
			existing.Insert(int(x*100+y), geometry.Pt(x, y))
		}
	}
	r := rand.New(rand.NewSource(2))
	res, err := sampler.Sample(r, request(20, 5), existing)
	require.NoError(t, err)
	for _, s := range res.Stars {
		assert.False(t, existing.AnyWithin(s.Pos, 5), "star at %v too close to an existing star", s.Pos)
	}
}

func TestSample_UnderSamplingIsNotAnError(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	req := request(500, 20)
	res, err := sampler.Sample(r, req, nil)
	require.NoError(t, err)
	assert.Less(t, len(res.Stars), 500)
	assert.Equal(t, 5000, res.Attempts)
}

func TestSample_Deterministic(t *testing.T) {
	a, err := sampler.Sample(rand.New(rand.NewSource(77)), request(30, 5), nil)
	require.NoError(t, err)
	b, err := sampler.Sample(rand.New(rand.NewSource(77)), request(30, 5), nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_BadRequest(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	_, err := sampler.Sample(nil, request(1, 1), nil)
	assert.ErrorIs(t, err, sampler.ErrBadRequest)

	req := request(1, 1)
	req.Bounds = geometry.R(0, 0, 0, 10)
	_, err = sampler.Sample(r, req, nil)
	assert.ErrorIs(t, err, sampler.ErrBadRequest)

	req = request(1, 1)
	req.Categories = nil
	_, err = sampler.Sample(r, req, nil)
	assert.ErrorIs(t, err, sampler.ErrBadRequest)

	res, err := sampler.Sample(r, request(0, 1), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Stars)
}
