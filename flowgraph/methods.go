// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Copying, narrowing and querying graphs.
// Policy:
//   - No method mutates its receiver except SetLinkValueInto.
//   - Results preserve node and link order of the receiver.

package flowgraph

import (
	"fmt"
	"sort"
)

// linkKey identifies a link by its endpoints.
type linkKey struct{ source, target string }

// Clone returns a deep copy of g. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{
		Nodes:  make([]Node, len(g.Nodes)),
		Links:  make([]Link, len(g.Links)),
		Levels: append(g.Levels[:0:0], g.Levels...),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Links, g.Links)

	return out
}

// Restrict returns the subgraph induced by the nodes satisfying keep:
// every kept node, and every link whose both endpoints are kept.
// The receiver is not modified.
// Complexity: O(V + E).
func (g *Graph) Restrict(keep func(n Node) bool) *Graph {
	out := &Graph{
		Nodes:  make([]Node, 0, len(g.Nodes)),
		Links:  make([]Link, 0, len(g.Links)),
		Levels: append(g.Levels[:0:0], g.Levels...),
	}
	kept := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if keep(n) {
			out.Nodes = append(out.Nodes, n)
			kept[n.ID] = struct{}{}
		}
	}
	for _, l := range g.Links {
		_, okS := kept[l.Source]
		_, okT := kept[l.Target]
		if okS && okT {
			out.Links = append(out.Links, l)
		}
	}

	return out
}

// Empty reports whether g has no nodes.
func (g *Graph) Empty() bool {
	return g == nil || len(g.Nodes) == 0
}

// AllZero reports whether every node value is zero. An empty graph is
// all-zero.
func (g *Graph) AllZero() bool {
	if g == nil {
		return true
	}
	for _, n := range g.Nodes {
		if n.Value != 0 {
			return false
		}
	}

	return true
}

// MaxLevel returns the highest node level present, or -1 for an empty graph.
func (g *Graph) MaxLevel() int {
	maxLevel := -1
	if g == nil {
		return maxLevel
	}
	for _, n := range g.Nodes {
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}

	return maxLevel
}

// NodesAt returns the IDs of nodes at the given level, in node order.
func (g *Graph) NodesAt(level int) []string {
	var ids []string
	for _, n := range g.Nodes {
		if n.Level == level {
			ids = append(ids, n.ID)
		}
	}

	return ids
}

// NodeIDs returns every node ID sorted lexicographically.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	sort.Strings(ids)

	return ids
}

// Validate checks the structural invariants of g, in this priority:
// node IDs non-empty, node IDs unique, link endpoints present, link pairs
// unique. It returns the first violation found.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w (name %q)", ErrEmptyNodeID, n.Name)
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = struct{}{}
	}
	pairs := make(map[linkKey]struct{}, len(g.Links))
	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			return fmt.Errorf("%w: source %q", ErrDanglingLink, l.Source)
		}
		if _, ok := ids[l.Target]; !ok {
			return fmt.Errorf("%w: target %q", ErrDanglingLink, l.Target)
		}
		k := linkKey{l.Source, l.Target}
		if _, dup := pairs[k]; dup {
			return fmt.Errorf("%w: %q → %q", ErrDuplicateLink, l.Source, l.Target)
		}
		pairs[k] = struct{}{}
	}

	return nil
}

// SetLinkValueInto overwrites the value of every link targeting id and
// returns how many links changed. It is the only in-place mutator and is
// meant for the graph instance a stage owns.
func (g *Graph) SetLinkValueInto(id string, v float64) int {
	changed := 0
	for i := range g.Links {
		if g.Links[i].Target == id {
			g.Links[i].Value = v
			changed++
		}
	}

	return changed
}
