// Package view projects a filtered flow graph onto what one screen shows.
//
// Scope runs three steps on a copy of its input:
//
//  1. PruneCategory keeps the leaves of the selected category and every
//     ancestor with a kept child, then recomputes each kept ancestor from its
//     remaining out-links. An ancestor whose direct sum is zero falls back to
//     the qualifying leaves among all its descendants (cycle guarded); if that
//     is also zero the original value stays.
//  2. Overview (no selection) repairs level-1 and root values from their
//     children tagged with the category. Under category.All no child is
//     tagged, so measured workshop values stand and the root sums its
//     level-1 children. It then keeps the root nodes, the level-1 nodes fed by
//     the root, and leaves attached straight to the root. Only root-sourced
//     links survive.
//  3. Detail (a node is selected) keeps the selected node, its qualifying
//     children and the links between them. The selected value becomes the
//     children sum when that sum is positive.
//
// A selection that no longer names a node of the pruned graph falls back to
// the overview.
//
// Navigator holds the selection between rebuilds and applies the click
// transition: clicking the selected node clears the selection, clicking a
// level-1 node selects it, any other click only notifies the level binding.
//
// Pruning and Detail treat category.All as matching every node, untagged
// ones included.
package view
