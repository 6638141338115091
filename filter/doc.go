// Package filter narrows a raw flow graph to a single energy category by
// recomputing ancestor values from the qualifying leaves.
//
// Apply sweeps levels bottom-up, from the level just above the leaves down
// to the root. Each non-leaf node receives the sum of its direct children
// that either are qualifying leaves (leaf level, category match) or are
// non-leaf nodes already recomputed by the sweep. For the root this covers
// both the level-1 children and leaves attached straight to the root by a
// skip link. When a non-root node's value changes, every link entering it
// is rewritten to the new value so link widths follow the filtered flow.
//
// Only direct children are summed. The view package owns the recursive
// fallback for ancestors whose direct sum is zero.
//
// Apply never mutates its argument: it recomputes a Clone and returns it.
// With category.All the clone is returned unchanged.
//
// Complexity: O(V + E).
package filter
