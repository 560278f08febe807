package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/eointolster/VoroniGalaxy/sampler"
)

// BenchmarkSample_Segment samples one default-sized segment at the default
// star budget, which saturates long before the target.
func BenchmarkSample_Segment(b *testing.B) {
	req := request(710, 5)
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sampler.Sample(r, req, nil)
	}
}
