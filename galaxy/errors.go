package galaxy

import "errors"

// Sentinel errors.
var (
	// ErrInvalidConfig is returned by Config.Validate and New.
	ErrInvalidConfig = errors.New("galaxy: invalid config")

	// ErrUnresolvableBridge means a fragment could not be joined to the rest of
	// the galaxy within the maximum connection distance.
	ErrUnresolvableBridge = errors.New("galaxy: unresolvable bridge")

	// ErrEmptyGalaxy is returned when no star survived generation, or when a
	// query needs at least one star.
	ErrEmptyGalaxy = errors.New("galaxy: no stars")

	// ErrUnknownStar is returned for an out-of-range star index or node ID.
	ErrUnknownStar = errors.New("galaxy: unknown star")

	// ErrNoRoute is returned when two stars are not connected by lanes.
	ErrNoRoute = errors.New("galaxy: no route")

	// ErrMalformed is returned by Galaxy.Check when a galaxy breaks a
	// structural invariant.
	ErrMalformed = errors.New("galaxy: malformed")
)
