package star_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/star"
)

func TestDefaultTable_Thresholds(t *testing.T) {
	th := star.DefaultTable().Thresholds()
	require.Len(t, th, 4)
	assert.InDelta(t, 1.0/15, th[0], 1e-15)
	assert.InDelta(t, 1.0/5, th[1], 1e-15)
	assert.InDelta(t, 7.0/15, th[2], 1e-15)
	assert.Equal(t, 1.0, th[3])
}

func TestTable_Pick(t *testing.T) {
	tbl := star.DefaultTable()
	tests := []struct {
		u    float64
		want star.Category
	}{
		{0, star.Gigantic},
		{0.066, star.Gigantic},
		{0.067, star.Large},
		{0.199, star.Large},
		{0.2, star.Medium},
		{0.466, star.Medium},
		{0.467, star.Small},
		{0.999, star.Small},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tbl.Pick(tc.u), "u=%v", tc.u)
	}
}

func TestTable_DrawDistribution(t *testing.T) {
	tbl := star.DefaultTable()
	r := rand.New(rand.NewSource(3))
	counts := map[star.Category]int{}
	const n = 60000
	for i := 0; i < n; i++ {
		counts[tbl.Draw(r)]++
	}
	assert.InDelta(t, n*1/15, counts[star.Gigantic], n*0.01)
	assert.InDelta(t, n*2/15, counts[star.Large], n*0.01)
	assert.InDelta(t, n*4/15, counts[star.Medium], n*0.01)
	assert.InDelta(t, n*8/15, counts[star.Small], n*0.01)
}

func TestTable_Lookup(t *testing.T) {
	tbl := star.DefaultTable()
	s, err := tbl.Lookup(star.Large)
	require.NoError(t, err)
	assert.Equal(t, 5, s.MaxLanes)
	assert.Equal(t, 5, s.Size)

	_, err = tbl.Lookup("neutron")
	assert.ErrorIs(t, err, star.ErrUnknownCategory)
	assert.Equal(t, 0, tbl.MaxLanes("neutron"))
	assert.Equal(t, 7, tbl.HighestCap())
}

func TestName(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	re := regexp.MustCompile(`^(Alpha|Beta|Gamma|Delta|Epsilon|Zeta|Eta|Theta|Iota|Kappa) ` +
		`(Prime|Major|Minor|Secundus|Tertius|Quartus|Quintus|Sextus|Septimus|Octavus)-([1-9][0-9]{0,2}|1000)$`)
	for i := 0; i < 500; i++ {
		assert.Regexp(t, re, star.Name(r))
	}
}
