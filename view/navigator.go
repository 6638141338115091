// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
)

// OverviewLabel is the first breadcrumb entry.
const OverviewLabel = "Overview"

// selectableLevel is the only level whose nodes open a detail view.
const selectableLevel = 1

// Navigator holds the detail selection across rebuilds and reports clicks
// to the level bindings. It is not safe for concurrent use.
type Navigator struct {
	levels   hierarchy.Levels
	selected flowgraph.Node
	cfg      viewConfig
}

// NewNavigator returns a navigator showing the overview.
func NewNavigator(levels hierarchy.Levels, opts ...Option) *Navigator {
	return &Navigator{levels: levels, cfg: newViewConfig(opts...)}
}

// Selected returns the selected node ID, or "" for the overview.
func (nv *Navigator) Selected() string { return nv.selected.ID }

// Reset returns to the overview.
func (nv *Navigator) Reset() { nv.selected = flowgraph.Node{} }

// Click applies the selection transition for n, then reports n's name and
// category to the binding of n's level and executes its action when
// allowed. The transition is applied even when reporting fails.
func (nv *Navigator) Click(n flowgraph.Node) error {
	switch {
	case n.ID == nv.selected.ID:
		nv.Reset()
	case n.Level == selectableLevel:
		nv.selected = n
	}
	nv.cfg.logger.Debug("node clicked",
		slog.String("node", n.ID),
		slog.String("selected", nv.selected.ID))

	lc, ok := nv.levels.ByID(n.LevelID)
	if !ok || lc.Binding == nil {
		return nil
	}

	return notify(lc.Binding, n)
}

// notify pushes the click to b.
func notify(b *hierarchy.Binding, n flowgraph.Node) error {
	if b.Clicked != nil {
		if err := b.Clicked.SetValue(n.Name); err != nil {
			return fmt.Errorf("view: report clicked name: %w", err)
		}
	}
	if b.ClickedCategory != nil {
		if err := b.ClickedCategory.SetValue(n.Category); err != nil {
			return fmt.Errorf("view: report clicked category: %w", err)
		}
	}
	if b.OnClick != nil && b.OnClick.CanExecute() {
		if err := b.OnClick.Execute(); err != nil {
			return fmt.Errorf("view: run click action: %w", err)
		}
	}

	return nil
}

// Breadcrumb returns the navigation path: the overview label, followed by
// the selected node's name when a node is selected.
func (nv *Navigator) Breadcrumb() []string {
	if nv.selected.ID == "" {
		return []string{OverviewLabel}
	}

	return []string{OverviewLabel, nv.selected.Name}
}
