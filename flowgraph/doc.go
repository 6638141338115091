// Package flowgraph defines the weighted directed flow graph produced by the
// builder and consumed by the filter and view stages.
//
// A Graph is plain data: a node slice, a link slice and the level summary.
// Nothing is hidden behind locks because a Graph is owned by exactly one
// rebuild until it is published, and treated as immutable afterwards. Stages
// that change values work on a Clone and return it.
//
// Invariants:
//
//   - Node.ID is unique within a Graph and equals "<LevelID>_<Name>".
//   - Every Link endpoint exists in Nodes (see Restrict and Validate).
//   - A (Source, Target) pair occurs at most once.
//   - Node order is first-seen order, which keeps rendering stable.
//
// Lookups go through an Index, a read-only snapshot of id → position and
// out/in adjacency in link order. Index.Descendants is the single
// cycle-guarded depth-first descendant search shared by every stage.
//
// Errors:
//
//	ErrEmptyNodeID     - a node has an empty ID.
//	ErrDuplicateNodeID - two nodes share an ID.
//	ErrDanglingLink    - a link endpoint is not a node of the graph.
//	ErrDuplicateLink   - a (source, target) pair occurs twice.
//	ErrNodeNotFound    - a lookup referenced a missing node.
package flowgraph
