// SPDX-License-Identifier: MIT
// Package: energyflow/builder
//
// nodata.go: placeholder graph for periods without records.

package builder

import (
	"fmt"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
)

// SynthesizeNoData returns one zero-valued placeholder node per level,
// "<levelID>_No data", chained from each level to the next by a zero-valued
// link. Nodes carry cat unless cat is All.
//
// Errors:
//   - ErrUnsortedLevels if levels[i].Order != i for some i.
//
// Complexity: O(L) over L levels.
func SynthesizeNoData(levels hierarchy.Levels, cat category.Category, opts ...Option) (*flowgraph.Graph, error) {
	for i, lc := range levels {
		if lc.Order != i {
			return nil, fmt.Errorf("%w: position %d holds level %q of order %d",
				ErrUnsortedLevels, i, lc.ID, lc.Order)
		}
	}
	cfg := newBuilderConfig(opts...)

	tag := ""
	if !cat.IsAll() {
		tag = cat.String()
	}

	g := flowgraph.New(levels.Infos())
	for _, lc := range levels {
		g.Nodes = append(g.Nodes, flowgraph.Node{
			ID:       flowgraph.NodeID(lc.ID, PlaceholderName),
			Name:     cfg.placeholderName(lc),
			Level:    lc.Order,
			LevelID:  lc.ID,
			Category: tag,
		})
	}
	for i := 0; i+1 < len(g.Nodes); i++ {
		g.Links = append(g.Links, flowgraph.Link{Source: g.Nodes[i].ID, Target: g.Nodes[i+1].ID})
	}
	cfg.logger.Debug("placeholder graph synthesized", "levels", len(levels))

	return g, nil
}
