package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
	"github.com/eointolster/VoroniGalaxy/store"
)

func openTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), store.Memory, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleGalaxy() *galaxy.Galaxy {
	return &galaxy.Galaxy{
		ID:           uuid.New(),
		Seed:         99,
		Width:        1200,
		Height:       900,
		MaxDistance:  264,
		BridgePolicy: galaxy.BridgeStrict,
		Stars: []galaxy.Star{
			{Index: 0, Pos: geometry.Pt(10.25, 20.5), Category: "gigantic", Name: "Alpha Prime-1", Lanes: 2},
			{Index: 1, Pos: geometry.Pt(110.25, 20.5), Category: "small", Name: "Beta Minor-2", Lanes: 1},
			{Index: 2, Pos: geometry.Pt(10.25, 120.5), Category: "medium", Name: "Iota Sextus-3", Lanes: 1},
		},
		Lanes: []galaxy.LaneDetail{
			{Start: 0, End: 1, Distance: 100},
			{Start: 2, End: 0, Distance: 100},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	g := sampleGalaxy()
	require.NoError(t, s.Save(ctx, g))

	back, err := s.Load(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, back.ID)
	assert.Equal(t, g.Seed, back.Seed)
	assert.Equal(t, g.MaxDistance, back.MaxDistance)
	assert.Equal(t, g.BridgePolicy, back.BridgePolicy)
	assert.Equal(t, g.Stars, back.Stars)
	assert.Equal(t, g.Lanes, back.Lanes)
	require.NoError(t, back.Check())
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	g := sampleGalaxy()
	require.NoError(t, s.Save(ctx, g))

	g.Stars[1].Name = "Renamed"
	g.Lanes = g.Lanes[:1]
	g.Stars = g.Stars[:2]
	g.Stars[0].Lanes = 1
	require.NoError(t, s.Save(ctx, g))

	back, err := s.Load(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, back.Stars, 2)
	assert.Len(t, back.Lanes, 1)
	assert.Equal(t, "Renamed", back.Stars[1].Name)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := openTestStore(t, store.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	first, second := sampleGalaxy(), sampleGalaxy()
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, 3, list[0].Stars)
	assert.Equal(t, 2, list[0].Lanes)
	assert.Equal(t, int64(99), list[0].Seed)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 6, 5, 0, time.UTC), list[0].CreatedAt)

	require.NoError(t, s.Delete(ctx, first.ID))
	_, err = s.Load(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, first.ID), store.ErrNotFound)

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReopenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "galaxies.db")
	g := sampleGalaxy()

	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, g))
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	back, err := s.Load(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Lanes, back.Lanes)
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*galaxy.Galaxy)
	}{
		{"unknown category", func(g *galaxy.Galaxy) { g.Stars[1].Category = "bogus" }},
		{"distance disagrees with geometry", func(g *galaxy.Galaxy) { g.Lanes[0].Distance = 999 }},
		{"duplicate lane", func(g *galaxy.Galaxy) {
			g.Lanes = append(g.Lanes, galaxy.LaneDetail{Start: 1, End: 0, Distance: 100})
			g.Stars[0].Lanes++
			g.Stars[1].Lanes++
		}},
		{"disconnected", func(g *galaxy.Galaxy) {
			g.Stars = append(g.Stars, galaxy.Star{Index: 3, Pos: geometry.Pt(900, 800), Category: "small"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := openTestStore(t)
			g := sampleGalaxy()
			tt.mutate(g)
			require.NoError(t, s.Save(ctx, g))

			back, err := s.Load(ctx, g.ID)
			assert.ErrorIs(t, err, galaxy.ErrMalformed)
			assert.Nil(t, back)
		})
	}
}

func TestLoadWithTable(t *testing.T) {
	ctx := context.Background()
	g := sampleGalaxy()
	for i := range g.Stars {
		g.Stars[i].Category = "hub"
	}

	s := openTestStore(t)
	require.NoError(t, s.Save(ctx, g))
	_, err := s.Load(ctx, g.ID)
	assert.ErrorIs(t, err, star.ErrUnknownCategory)

	s = openTestStore(t, store.WithTable(star.Table{{Category: "hub", Size: 5, MaxLanes: 4, Weight: 1}}))
	require.NoError(t, s.Save(ctx, g))
	back, err := s.Load(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, star.Category("hub"), back.Stars[0].Category)
}
