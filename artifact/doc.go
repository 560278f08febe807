// Package artifact reads and writes galaxies in the JSON layout consumed by
// the map viewer:
//
//	{
//	  "points":            [[x, y], ...],
//	  "types":             ["small", ...],
//	  "connections":       [[[x1, y1], [x2, y2]], ...],
//	  "connection_counts": {"(x, y)": n, ...},
//	  "star_names":        ["Theta Minor-417", ...],
//	  "lane_details":      [{"start_star": i, "end_star": j, "distance": d}, ...],
//	  "meta":              {"id": ..., "seed": ..., ...}
//	}
//
// points, types and star_names are parallel. Coordinate keys of
// connection_counts use the "(x, y)" form with Python float formatting.
// meta is optional on input; files without it decode with a fresh ID.
//
// Decode validates structure and fails with ErrMalformed; it never returns a
// partially filled galaxy. Lane counts are always recomputed from the lanes.
package artifact
