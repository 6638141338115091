// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
)

// ErrNilGraph indicates Apply was called without a graph.
var ErrNilGraph = errors.New("filter: graph is nil")

// Option customizes Apply.
type Option func(*filterConfig)

type filterConfig struct {
	logger *slog.Logger
}

func newFilterConfig(opts ...Option) filterConfig {
	cfg := filterConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes recompute diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("filter: WithLogger(nil)")
	}
	return func(c *filterConfig) {
		c.logger = l.With(slog.String("component", "filter"))
	}
}

// Apply returns a copy of g whose non-leaf values count only the flow of
// category cat. See the package documentation for the recompute rule.
//
// Errors:
//   - ErrNilGraph if g is nil.
func Apply(g *flowgraph.Graph, cat category.Category, opts ...Option) (*flowgraph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := g.Clone()
	if cat.IsAll() {
		return out, nil
	}
	cfg := newFilterConfig(opts...)

	leafOrder := out.MaxLevel()
	ix := out.Index()
	recomputed := 0
	for level := leafOrder - 1; level >= 0; level-- {
		for i := range out.Nodes {
			n := &out.Nodes[i]
			if n.Level != level {
				continue
			}
			sum := childSum(ix, n.ID, leafOrder, cat)
			if sum == n.Value {
				continue
			}
			cfg.logger.Debug("node value recomputed",
				slog.String("node", n.ID),
				slog.Float64("from", n.Value),
				slog.Float64("to", sum))
			n.Value = sum
			recomputed++
			if level > 0 {
				out.SetLinkValueInto(n.ID, sum)
			}
		}
	}
	cfg.logger.Debug("category filter applied",
		slog.String("category", cat.String()),
		slog.Int("recomputed", recomputed))

	return out, nil
}

// childSum adds the values of id's direct children that are qualifying
// leaves or non-leaf nodes.
func childSum(ix *flowgraph.Index, id string, leafOrder int, cat category.Category) float64 {
	var sum float64
	for _, child := range ix.Children(id) {
		cn, ok := ix.Node(child)
		if !ok {
			continue
		}
		if cn.Level < leafOrder || cat.Matches(cn.Category) {
			sum += cn.Value
		}
	}

	return sum
}
