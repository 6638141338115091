// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/energyflow/builder"
	"github.com/katalvlaran/energyflow/filter"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/view"
)

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger routes rebuild diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithIDGenerator replaces the rebuild ID source. Panics on nil.
func WithIDGenerator(fn func() string) Option {
	if fn == nil {
		panic("engine: WithIDGenerator(nil)")
	}
	return func(e *Engine) { e.newID = fn }
}

// WithBuilderOptions forwards options to builder.Build and
// builder.SynthesizeNoData.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(e *Engine) { e.builderOpts = append(e.builderOpts, opts...) }
}

// Engine runs rebuilds. It holds configuration only and is safe for
// concurrent use.
type Engine struct {
	logger      *slog.Logger
	newID       func() string
	builderOpts []builder.Option
}

// New returns an Engine logging to slog.Default.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rebuild is New(opts...).Rebuild(in).
func Rebuild(in Input, opts ...Option) Output {
	return New(opts...).Rebuild(in)
}

// Rebuild runs every stage on in and returns the publishable output.
// It never panics.
func (e *Engine) Rebuild(in Input) (out Output) {
	id := e.newID()
	log := e.logger.With(slog.String("rebuild_id", id))

	defer func() {
		if r := recover(); r != nil {
			log.Error("rebuild failed", slog.Any("panic", r))
			out = Output{Status: StatusFailed, Err: fmt.Errorf("%w: %v", ErrPanic, r), RebuildID: id}
		}
	}()

	out = e.rebuild(in, log)
	out.RebuildID = id
	log.Info("rebuild done",
		slog.String("status", out.Status.String()),
		slog.String("category", in.Category.String()),
		slog.String("selected", out.Selected),
		slog.Bool("has_data", out.HasDataForPeriod),
		slog.Int("nodes", nodeCount(out.Graph)))

	return out
}

func (e *Engine) rebuild(in Input, log *slog.Logger) Output {
	if pending := hierarchy.PendingLevels(in.Levels); len(pending) > 0 {
		log.Debug("levels still loading", slog.Any("levels", pending))
		return Output{Status: StatusLoading}
	}

	levels, err := hierarchy.Sort(in.Levels)
	if err != nil {
		log.Warn("level configuration rejected", slog.String("error", err.Error()))
		return Output{Graph: flowgraph.New(nil), Status: StatusMalformed, Err: err}
	}

	bopts := append([]builder.Option{builder.WithLogger(log)}, e.builderOpts...)
	res, err := builder.Build(levels, bopts...)
	if err != nil {
		return Output{Graph: flowgraph.New(levels.Infos()), Status: StatusMalformed, Err: err}
	}

	if !res.HasData && in.Period.Valid() {
		// the placeholder chain is published whole, one node per level
		g, err := builder.SynthesizeNoData(levels, in.Category, bopts...)
		if err != nil {
			return Output{Graph: flowgraph.New(levels.Infos()), Status: StatusMalformed, Err: err}
		}
		return Output{Graph: g, NonEmpty: !g.Empty(), Status: StatusNoRecords}
	}
	status := StatusOK
	if res.HasData && !res.HasNonZero {
		status = StatusAllZero
	}

	filtered, err := filter.Apply(res.Graph, in.Category, filter.WithLogger(log))
	if err != nil {
		return Output{Status: StatusFailed, Err: err}
	}
	scoped, err := view.Scope(filtered, in.Category, in.Selected, view.WithLogger(log))
	if err != nil {
		return Output{Status: StatusFailed, Err: err}
	}

	return Output{
		Graph:            scoped.Graph,
		Selected:         scoped.Selected,
		HasDataForPeriod: status == StatusOK,
		NonEmpty:         !scoped.Graph.Empty(),
		Status:           status,
	}
}

func nodeCount(g *flowgraph.Graph) int {
	if g == nil {
		return 0
	}

	return len(g.Nodes)
}
