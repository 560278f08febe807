// Package galaxy generates galaxy maps: star positions typed by category,
// joined by a sparse, connected lane graph.
//
// Pipeline (Generator.Generate):
//
//  1. Segments lays the row profile over the canvas. Each segment is filled
//     by sampler.Sample against every star placed so far.
//  2. Triangulate proposes lanes from a Delaunay triangulation of the new
//     stars plus their older neighbours; SelectLanes keeps them subject to
//     length, per-category lane caps and a cap-scaled acceptance draw.
//  3. Repair bridges every component into the largest one.
//  4. Refine keeps a minimum spanning forest plus lanes with few crossings,
//     strips lanes longer than the maximum distance and reconnects
//     stragglers.
//  5. Assemble freezes the result into an indexed Galaxy.
//
// Nodes are identified by arena index from creation, never by coordinates.
// All randomness flows from one *rand.Rand seeded by Config.Seed.
//
// Errors:
//
//   - ErrInvalidConfig       Config.Validate failed.
//   - ErrUnresolvableBridge  A fragment cannot be joined under BridgeStrict.
//   - ErrEmptyGalaxy         No star survived, or a query needs one.
//   - ErrUnknownStar         Bad star index or node ID.
//   - ErrNoRoute             Stars are not connected.
//   - ErrMalformed           Galaxy.Check found a broken invariant.
package galaxy
