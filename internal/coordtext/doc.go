// Package coordtext recognises free-form coordinate text and produces the
// entry-position strings the C-130J CNI-MU accepts.
//
// It contains the two pure components at the centre of hercnav:
//
//   - Parser: an ordered waterfall of notation matchers that normalises
//     user text to a domain.Coordinate
//   - Encoder: turns a coordinate into the single string the aircraft
//     stores, preferring a grid reference and falling back to the
//     degrees/decimal-minutes form when the grid zone would trigger the
//     avionics zone fault
//
// Both are stateless and safe for concurrent use. Grid mathematics is
// delegated to a converter supplied by the caller; everything else here is
// bounded string computation with no side effects.
package coordtext
