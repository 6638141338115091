// SPDX-License-Identifier: MIT
//
// File: scope.go
// Role: Scope entry point, options and the category prune.
// Policy:
//   - Every function returns a new Graph; inputs are never mutated.
//   - Levels are compared by Node.Level, never by ID prefix.

package view

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
)

// ErrNilGraph indicates a projection was requested without a graph.
var ErrNilGraph = errors.New("view: graph is nil")

// Option customizes Scope and NewNavigator.
type Option func(*viewConfig)

type viewConfig struct {
	logger *slog.Logger
}

func newViewConfig(opts ...Option) viewConfig {
	cfg := viewConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes view diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("view: WithLogger(nil)")
	}
	return func(c *viewConfig) {
		c.logger = l.With(slog.String("component", "view"))
	}
}

// Result is one scoped projection.
type Result struct {
	// Graph is the projected graph; never nil.
	Graph *flowgraph.Graph

	// Selected is the node the detail view was built for, or "" when the
	// overview is shown.
	Selected string
}

// IsOverview reports whether the result is the overview projection.
func (r *Result) IsOverview() bool { return r.Selected == "" }

// Scope prunes g to cat and projects it to the overview, or to the detail
// view of selected when selected names a node of the pruned graph.
//
// Errors:
//   - ErrNilGraph if g is nil.
func Scope(g *flowgraph.Graph, cat category.Category, selected string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newViewConfig(opts...)

	pruned := PruneCategory(g, cat)
	if selected != "" {
		if pruned.Index().Has(selected) {
			return &Result{Graph: Detail(pruned, selected, cat), Selected: selected}, nil
		}
		cfg.logger.Info("selected node not in graph, showing overview",
			slog.String("selected", selected),
			slog.String("category", cat.String()))
	}

	return &Result{Graph: Overview(pruned, cat)}, nil
}

// hasTags reports whether any node of g carries a category tag.
func hasTags(g *flowgraph.Graph) bool {
	for _, n := range g.Nodes {
		if n.Category != "" {
			return true
		}
	}

	return false
}

// PruneCategory keeps the leaves matching cat and their ancestors, then
// recomputes ancestor values. A graph is copied unchanged when cat is All or
// when no node carries a tag.
// Complexity: O(V·(V + E)) in the worst case of the descendant fallback.
func PruneCategory(g *flowgraph.Graph, cat category.Category) *flowgraph.Graph {
	if cat.IsAll() || !hasTags(g) {
		return g.Clone()
	}

	leafOrder := g.MaxLevel()
	ix := g.Index()
	kept := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Level == leafOrder && cat.Matches(n.Category) {
			kept[n.ID] = true
		}
	}
	for level := leafOrder - 1; level >= 0; level-- {
		for _, n := range g.Nodes {
			if n.Level != level {
				continue
			}
			for _, c := range ix.Children(n.ID) {
				if kept[c] {
					kept[n.ID] = true
					break
				}
			}
		}
	}

	out := g.Restrict(func(n flowgraph.Node) bool { return kept[n.ID] })
	recomputeAncestors(out, leafOrder, cat)

	return out
}

// recomputeAncestors rewrites every non-leaf value of g from its out-links,
// falling back to the qualifying leaves among its descendants.
func recomputeAncestors(g *flowgraph.Graph, leafOrder int, cat category.Category) {
	ix := g.Index()
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Level == leafOrder {
			continue
		}
		var sum float64
		for _, l := range ix.OutLinks(n.ID) {
			sum += l.Value
		}
		if sum == 0 {
			sum = descendantLeafSum(ix, n.ID, leafOrder, cat)
		}
		if sum != 0 {
			n.Value = sum
		}
	}
}

// descendantLeafSum adds the values of every qualifying leaf below id.
func descendantLeafSum(ix *flowgraph.Index, id string, leafOrder int, cat category.Category) float64 {
	ids, err := ix.Descendants(id)
	if err != nil {
		return 0
	}
	var sum float64
	for _, d := range ids {
		dn, _ := ix.Node(d)
		if dn.Level == leafOrder && cat.Matches(dn.Category) {
			sum += dn.Value
		}
	}

	return sum
}
