// SPDX-License-Identifier: MIT
// Package: energyflow/builder
//
// build.go: the two-pass graph construction.
//
// Contract:
//   • levels must satisfy levels[i].Order == i (see hierarchy.Sort).
//   • Unavailable or non-numeric records are skipped and counted.
//   • Node and link order is first-seen order; the output is a pure
//     function of the input.
//
// Complexity: O(R) time and space over R records.

package builder

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
)

// Result is the outcome of one Build.
type Result struct {
	// Graph is the raw graph; never nil.
	Graph *flowgraph.Graph

	// HasData reports whether the node pass produced at least one node.
	HasData bool

	// HasNonZero reports whether at least one node value is non-zero.
	HasNonZero bool

	// Skipped counts records dropped for an unavailable or non-numeric
	// name or value.
	Skipped int
}

// Build constructs the raw flow graph from a sorted hierarchy.
//
// Errors:
//   - ErrUnsortedLevels if levels[i].Order != i for some i.
func Build(levels hierarchy.Levels, opts ...Option) (*Result, error) {
	for i, lc := range levels {
		if lc.Order != i {
			return nil, fmt.Errorf("%w: position %d holds level %q of order %d",
				ErrUnsortedLevels, i, lc.ID, lc.Order)
		}
	}
	cfg := newBuilderConfig(opts...)

	b := &graphBuild{
		cfg:    cfg,
		levels: levels,
		g:      flowgraph.New(levels.Infos()),
		nodes:  make(map[string]int),
		links:  make(map[linkPair]int),
	}
	b.nodePass()
	if len(b.g.Nodes) > 0 {
		b.linkPass()
	}

	res := &Result{
		Graph:      b.g,
		HasData:    len(b.g.Nodes) > 0,
		HasNonZero: !b.g.AllZero(),
		Skipped:    b.skipped,
	}
	cfg.logger.Debug("graph built",
		slog.Int("nodes", len(b.g.Nodes)),
		slog.Int("links", len(b.g.Links)),
		slog.Int("skipped", b.skipped))

	return res, nil
}

// linkPair is the merge key of the link pass.
type linkPair struct{ source, target string }

// graphBuild carries the state of one Build call.
type graphBuild struct {
	cfg     builderConfig
	levels  hierarchy.Levels
	g       *flowgraph.Graph
	nodes   map[string]int   // node ID → position in g.Nodes
	links   map[linkPair]int // (source, target) → position in g.Links
	perLvl  []int            // nodes created so far per level
	skipped int
}

// usable extracts the name and value of r, reporting false when the record
// must be skipped.
func usable(r hierarchy.Record) (string, float64, bool) {
	name, ok := r.Name.Get()
	if !ok || strings.TrimSpace(name) == "" {
		return "", 0, false
	}
	v, ok := r.Value.Get()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", 0, false
	}

	return name, v, true
}

// tagOf resolves the category tag of a record on the given level.
func (b *graphBuild) tagOf(r hierarchy.Record, name string, order int) string {
	if tag, ok := r.Category.Get(); ok {
		if norm := category.Normalize(tag); norm != "" {
			return norm
		}
	}
	if b.cfg.inferCategories && order == b.levels.LeafOrder() {
		if c, ok := category.Infer(name); ok {
			return c.String()
		}
	}

	return ""
}

func (b *graphBuild) nodePass() {
	b.perLvl = make([]int, len(b.levels))
	for _, lc := range b.levels {
		for _, r := range lc.Records {
			name, v, ok := usable(r)
			if !ok {
				b.skipped++
				continue
			}
			id := flowgraph.NodeID(lc.ID, name)
			tag := b.tagOf(r, name, lc.Order)

			if p, seen := b.nodes[id]; seen {
				n := &b.g.Nodes[p]
				n.Value += v
				if n.Category == "" {
					n.Category = tag
				}
				continue
			}
			b.nodes[id] = len(b.g.Nodes)
			b.g.Nodes = append(b.g.Nodes, flowgraph.Node{
				ID:       id,
				Name:     name,
				Value:    v,
				Level:    lc.Order,
				LevelID:  lc.ID,
				Category: tag,
				Index:    b.perLvl[lc.Order],
			})
			b.perLvl[lc.Order]++
		}
	}
}

func (b *graphBuild) linkPass() {
	leaf := b.levels.LeafOrder()
	for _, lc := range b.levels {
		if lc.Order == 0 {
			continue
		}
		for _, r := range lc.Records {
			name, v, ok := usable(r)
			if !ok {
				continue
			}
			child := flowgraph.NodeID(lc.ID, name)

			parent, found := b.parentNode(r, lc.Order-1)
			if !found && lc.Order == leaf && lc.Order-1 != 0 {
				parent, found = b.parentNode(r, 0)
			}
			if !found {
				b.cfg.logger.Debug("record has no parent node",
					slog.String("node", child))
				continue
			}
			b.addLink(parent, child, v)
		}
	}
}

// parentNode resolves the parent reference of r at the given order to an
// existing node ID.
func (b *graphBuild) parentNode(r hierarchy.Record, order int) (string, bool) {
	name, ok := r.Parent(order)
	if !ok {
		return "", false
	}
	id := flowgraph.NodeID(b.levels[order].ID, name)
	if _, exists := b.nodes[id]; !exists {
		return "", false
	}

	return id, true
}

// addLink appends source→target or, when the pair exists, adds v to it.
func (b *graphBuild) addLink(source, target string, v float64) {
	k := linkPair{source, target}
	if p, seen := b.links[k]; seen {
		b.g.Links[p].Value += v
		return
	}
	b.links[k] = len(b.g.Links)
	b.g.Links = append(b.g.Links, flowgraph.Link{Source: source, Target: target, Value: v})
}
