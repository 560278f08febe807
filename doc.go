// Package voronigalaxy generates procedural galaxy maps: a few hundred
// thousand stars scattered over a lens-shaped grid of segments and joined by
// hyperspace lanes into a single connected, mostly planar network.
//
// Generation runs in four stages:
//
//	sample     segment by segment, Poisson-style star placement (sampler/)
//	           and local Delaunay triangulation (delaunay/) feeding a capped,
//	           probabilistic lane selector
//	repair     bridges disconnected fragments between adjacent segments
//	refine     minimum spanning forest (prim_kruskal/) plus crossing-limited
//	           reinsertion of the remaining lanes
//	assemble   indexes stars, names them and freezes the lane list
//
// Packages:
//
//	core/           thread-safe weighted graph with stable edge IDs
//	bfs/            traversal and connected components
//	dijkstra/       shortest lane routes
//	prim_kruskal/   minimum spanning trees and forests
//	geometry/       points, segment tests and spatial hashes
//	delaunay/       Bowyer–Watson triangulation
//	star/           category table and star names
//	sampler/        per-segment point sampling
//	galaxy/         configuration, the generator and the finished Galaxy
//	artifact/       JSON artifact read by the map viewer
//	store/          SQLite persistence
//	render/         SVG maps and progress snapshots
//	metrics/        Prometheus counters for generation runs
//	config/         YAML and environment configuration
//	cmd/galaxygen   command-line front end
//
// Quick start:
//
//	gen, err := galaxy.New(galaxy.DefaultConfig(), galaxy.WithLogger(logger))
//	if err != nil { ... }
//	g, err := gen.Generate(ctx)
//	if err != nil { ... }
//	route, err := g.Route(0, 42)
package voronigalaxy
