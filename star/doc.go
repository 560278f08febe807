// Package star describes star categories and the per-category table that
// drives sampling and lane budgets.
//
// Each category carries a render size, a lane cap (maximum degree), a
// relative sampling weight and a display colour. Categories are drawn with
// cumulative thresholds built from the weights in table order; the default
// table (weights 1, 2, 4, 8) yields the thresholds 1/15, 1/5 and 7/15.
//
// Name generates display names of the form "{Prefix} {Suffix}-{N}".
// Names are not unique.
package star
