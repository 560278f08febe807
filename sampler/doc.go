// Package sampler places stars inside a rectangle under a minimum-distance
// constraint.
//
// Sample draws uniform candidate positions until it has Target stars or has
// spent Target×AttemptFactor attempts. A candidate is kept only if it is at
// least MinDistance from every star already accepted in this call and from
// every star in the caller's Occupancy. Each kept star immediately gets a
// category from the table's cumulative draw.
//
// Returning fewer than Target stars is normal for crowded segments.
//
// Random draws per attempt: X, then Y, then (on acceptance) the category.
package sampler
