// SPDX-License-Identifier: MIT
// Package: energyflow/builder
//
// options.go: functional options and resolved configuration.
//
// Contract:
//   • Options are functions over builderConfig, applied left to right.
//   • Option constructors panic on nil arguments; Build never panics.
//   • Defaults are deterministic: discard logger, inference on,
//     placeholder name "No data (<level name>)".

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/energyflow/hierarchy"
)

// PlaceholderName is the record name every placeholder node is built from,
// so that placeholder IDs read "<levelID>_No data".
const PlaceholderName = "No data"

// Option customizes Build and SynthesizeNoData.
type Option func(*builderConfig)

// builderConfig aggregates all knobs of this package.
type builderConfig struct {
	logger          *slog.Logger
	inferCategories bool
	placeholderName func(lc hierarchy.LevelConfig) string
}

// defaultPlaceholderName labels a placeholder node with its level name.
func defaultPlaceholderName(lc hierarchy.LevelConfig) string {
	return fmt.Sprintf("%s (%s)", PlaceholderName, lc.Name)
}

// newBuilderConfig resolves defaults and applies opts in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:          slog.New(slog.DiscardHandler),
		inferCategories: true,
		placeholderName: defaultPlaceholderName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l.With(slog.String("component", "builder"))
	}
}

// WithCategoryInference enables or disables inferring a leaf node's category
// from its name when the record carries no explicit tag. Enabled by default.
func WithCategoryInference(enabled bool) Option {
	return func(c *builderConfig) {
		c.inferCategories = enabled
	}
}

// WithPlaceholderName overrides the display name of placeholder nodes.
// Placeholder IDs are unaffected. Panics on nil.
func WithPlaceholderName(fn func(lc hierarchy.LevelConfig) string) Option {
	if fn == nil {
		panic("builder: WithPlaceholderName(nil)")
	}
	return func(c *builderConfig) {
		c.placeholderName = fn
	}
}
