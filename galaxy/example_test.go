package galaxy_test

import (
	"fmt"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
)

// ExampleLocate names the map region of a position.
func ExampleLocate() {
	fmt.Println(galaxy.Locate(geometry.Pt(640, 260)))
	// Output:
	// Beta Quadrant, Segment (1, 2)
}

// ExampleGalaxy_Route plans a trip along three lanes.
func ExampleGalaxy_Route() {
	g := &galaxy.Galaxy{
		MaxDistance: 264,
		Stars: []galaxy.Star{
			{Index: 0, Pos: geometry.Pt(0, 0), Lanes: 1},
			{Index: 1, Pos: geometry.Pt(100, 0), Lanes: 2},
			{Index: 2, Pos: geometry.Pt(100, 100), Lanes: 1},
		},
		Lanes: []galaxy.LaneDetail{
			{Start: 0, End: 1, Distance: 100},
			{Start: 1, End: 2, Distance: 100},
		},
	}
	r, err := g.Route(0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Stars, r.Hops(), r.Distance)
	// Output:
	// [0 1 2] 2 200
}
