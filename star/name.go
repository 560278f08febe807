package star

import (
	"fmt"
	"math/rand"
)

var (
	namePrefixes = [...]string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa"}
	nameSuffixes = [...]string{"Prime", "Major", "Minor", "Secundus", "Tertius", "Quartus", "Quintus", "Sextus", "Septimus", "Octavus"}
)

// MaxNameNumber is the largest number a generated name can carry.
const MaxNameNumber = 1000

// Name returns a random display name such as "Theta Minor-417".
func Name(r *rand.Rand) string {
	prefix := namePrefixes[r.Intn(len(namePrefixes))]
	suffix := nameSuffixes[r.Intn(len(nameSuffixes))]

	return fmt.Sprintf("%s %s-%d", prefix, suffix, 1+r.Intn(MaxNameNumber))
}
