package galaxy

import "math"

// cellIndex is floor(v / size) as an int.
func cellIndex(v, size float64) int {
	return int(math.Floor(v / size))
}

// mod returns v modulo size in [0, size).
func mod(v, size float64) float64 {
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}

	return m
}
