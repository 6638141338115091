// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
)

// Detail returns the one-hop projection of selected: the selected node
// followed by its qualifying children in link order, and the links from
// selected to them. A child qualifies when it sits above the leaf level or
// matches cat. The selected value becomes the children sum when positive.
// A selected ID that is not a node yields an empty graph.
func Detail(g *flowgraph.Graph, selected string, cat category.Category) *flowgraph.Graph {
	if g == nil {
		return nil
	}
	out := flowgraph.New(g.Levels)
	ix := g.Index()

	sel, ok := ix.Node(selected)
	if !ok {
		return out
	}
	leafOrder := g.MaxLevel()

	var sum float64
	var children []flowgraph.Node
	for _, l := range ix.OutLinks(selected) {
		c, ok := ix.Node(l.Target)
		if !ok || (c.Level == leafOrder && !cat.Matches(c.Category)) {
			continue
		}
		children = append(children, c)
		out.Links = append(out.Links, l)
		sum += c.Value
	}
	if sum > 0 {
		sel.Value = sum
	}
	out.Nodes = append(out.Nodes, sel)
	out.Nodes = append(out.Nodes, children...)

	return out
}
