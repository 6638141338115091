// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Read-only adjacency snapshot and the canonical descendant search.
// Determinism:
//   - Children, OutLinks and InLinks follow link order.
//   - Descendants is a pre-order DFS following link order.

package flowgraph

import "fmt"

// Index maps node IDs to positions and records out/in adjacency as link
// positions. It reflects the node set and link topology at construction time;
// node and link values are read live from the indexed graph, so value
// rewrites stay visible while appends or reorders invalidate the Index.
type Index struct {
	g   *Graph
	pos map[string]int   // node ID → position in g.Nodes
	out map[string][]int // source ID → positions in g.Links
	in  map[string][]int // target ID → positions in g.Links
}

// Index builds the lookup snapshot of g.
// Complexity: O(V + E).
func (g *Graph) Index() *Index {
	ix := &Index{
		g:   g,
		pos: make(map[string]int, len(g.Nodes)),
		out: make(map[string][]int),
		in:  make(map[string][]int),
	}
	for i, n := range g.Nodes {
		if _, seen := ix.pos[n.ID]; !seen {
			ix.pos[n.ID] = i // first occurrence wins on malformed input
		}
	}
	for i, l := range g.Links {
		ix.out[l.Source] = append(ix.out[l.Source], i)
		ix.in[l.Target] = append(ix.in[l.Target], i)
	}

	return ix
}

// Has reports whether id is a node of the indexed graph.
func (ix *Index) Has(id string) bool {
	_, ok := ix.pos[id]

	return ok
}

// Node returns the current state of node id.
func (ix *Index) Node(id string) (Node, bool) {
	p, ok := ix.pos[id]
	if !ok {
		return Node{}, false
	}

	return ix.g.Nodes[p], true
}

// Pos returns the position of node id in the graph's node slice.
func (ix *Index) Pos(id string) (int, bool) {
	p, ok := ix.pos[id]

	return p, ok
}

// Children returns the targets of links leaving id, in link order.
func (ix *Index) Children(id string) []string {
	positions := ix.out[id]
	ids := make([]string, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, ix.g.Links[p].Target)
	}

	return ids
}

// OutLinks returns copies of the links leaving id, in link order.
func (ix *Index) OutLinks(id string) []Link {
	return ix.links(ix.out[id])
}

// InLinks returns copies of the links entering id, in link order.
func (ix *Index) InLinks(id string) []Link {
	return ix.links(ix.in[id])
}

func (ix *Index) links(positions []int) []Link {
	out := make([]Link, 0, len(positions))
	for _, p := range positions {
		out = append(out, ix.g.Links[p])
	}

	return out
}

// Descendants returns every node reachable from id through one or more
// links, in depth-first pre-order, excluding id itself. Each node appears
// once; cycles terminate through the visited set. Targets that are not
// nodes of the graph are skipped.
//
// Errors:
//   - ErrNodeNotFound if id is not a node.
//
// Complexity: O(V + E) time, O(V) space.
func (ix *Index) Descendants(id string) ([]string, error) {
	if !ix.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	w := &walker{ix: ix, visited: map[string]bool{id: true}}
	w.walk(id)

	return w.order, nil
}

// walker carries the state of one descendant search.
type walker struct {
	ix      *Index
	visited map[string]bool
	order   []string
}

func (w *walker) walk(id string) {
	for _, p := range w.ix.out[id] {
		next := w.ix.g.Links[p].Target
		if w.visited[next] || !w.ix.Has(next) {
			continue
		}
		w.visited[next] = true
		w.order = append(w.order, next)
		w.walk(next)
	}
}
