// Package hierarchy models the per-level record sets supplied by the data
// source and provides LevelOrdering: validating and sorting the configured
// levels by their integer order.
//
// A hierarchy is a fixed-depth stack of levels (plant → workshop → machine).
// Order 0 is the root; the highest order is the leaf level. Orders must be
// distinct, non-negative and dense from 0. A malformed hierarchy is reported
// as an error and callers treat it as "no data" rather than rendering a
// partial graph.
//
// Every record attribute is wrapped in Attr[T], which carries a Status next
// to the value, so that records whose attributes are still loading can be
// skipped without being confused with legitimate zero values.
//
// Errors:
//
//	ErrNoLevels         - no level configured.
//	ErrEmptyLevelID     - a level has an empty identifier.
//	ErrDuplicateLevelID - two levels share an identifier.
//	ErrNegativeOrder    - a level order is below zero.
//	ErrDuplicateOrder   - two levels share an order.
//	ErrOrderGap         - orders are not dense from 0.
package hierarchy
