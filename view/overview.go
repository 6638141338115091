// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
)

// Overview returns the root projection of g.
//
// Values are repaired first: each level-1 node becomes the sum of its
// level-2 children tagged cat, then each root node becomes the sum of its
// level-1 children plus its level-2 children tagged cat. No tag is ever
// tagged All, so under All the measured level-1 values stand and the root
// sums them alone. A repair that sums to zero keeps the previous value.
//
// The projection keeps every root node, every level-1 node targeted by a
// root link and every deeper node that only the root feeds, or nothing
// feeds at all. Only links leaving a root node are kept.
func Overview(g *flowgraph.Graph, cat category.Category) *flowgraph.Graph {
	if g == nil {
		return nil
	}
	work := g.Clone()
	ix := work.Index()

	tagged := func(c flowgraph.Node) bool {
		return c.Level == 2 && !cat.IsAll() && cat.Matches(c.Category)
	}
	repair(work, ix, 1, tagged)
	repair(work, ix, 0, func(c flowgraph.Node) bool {
		return c.Level == 1 || tagged(c)
	})

	fedByRoot := make(map[string]bool)
	fedBelowRoot := make(map[string]bool)
	for _, l := range work.Links {
		src, ok := ix.Node(l.Source)
		if !ok {
			continue
		}
		if src.Level == 0 {
			fedByRoot[l.Target] = true
		} else {
			fedBelowRoot[l.Target] = true
		}
	}

	out := work.Restrict(func(n flowgraph.Node) bool {
		switch {
		case n.Level == 0:
			return true
		case n.Level == 1:
			return fedByRoot[n.ID]
		default:
			return !fedBelowRoot[n.ID]
		}
	})
	rootLinks := out.Links[:0]
	for _, l := range out.Links {
		if src, _ := ix.Node(l.Source); src.Level == 0 {
			rootLinks = append(rootLinks, l)
		}
	}
	out.Links = rootLinks

	return out
}

// repair rewrites the value of every node at level with the sum of its
// children accepted by count, when that sum is positive.
func repair(g *flowgraph.Graph, ix *flowgraph.Index, level int, count func(c flowgraph.Node) bool) {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Level != level {
			continue
		}
		var sum float64
		for _, c := range ix.Children(n.ID) {
			if cn, ok := ix.Node(c); ok && count(cn) {
				sum += cn.Value
			}
		}
		if sum > 0 {
			n.Value = sum
		}
	}
}
