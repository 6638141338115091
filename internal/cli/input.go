// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/energyflow/builder"
	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/snapshot"
)

var errNoFile = errors.New("a snapshot file is required (-f)")

// inputFlags are shared by every command reading a snapshot.
type inputFlags struct {
	file     string
	category string
	selected string
}

func (f *inputFlags) register(cmd *cobra.Command, withSelect bool) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Snapshot file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Energy category: all, elec, gaz, eau, air")
	if withSelect {
		cmd.Flags().StringVar(&f.selected, "select", "", "Node ID to show in detail")
	}
}

// load decodes the snapshot and applies, in increasing priority, the config
// default category, the snapshot and the flags.
func (f *inputFlags) load(a *app, cmd *cobra.Command) (*snapshot.Snapshot, error) {
	if f.file == "" {
		return nil, errNoFile
	}
	s, err := snapshot.Load(f.file)
	if err != nil {
		return nil, err
	}

	if s.Input.Category.IsAll() {
		if cat, err := a.cfg.Category(); err == nil {
			s.Input.Category = cat
		}
	}
	if cmd.Flags().Changed("category") {
		cat, err := category.Parse(f.category)
		if err != nil {
			return nil, err
		}
		s.Input.Category = cat
	}
	if cmd.Flags().Changed("select") {
		s.Input.Selected = f.selected
	}

	return s, nil
}

// newEngine returns the rebuild engine configured for a.
func (a *app) newEngine() *engine.Engine {
	return engine.New(
		engine.WithLogger(a.logger),
		engine.WithBuilderOptions(builder.WithCategoryInference(a.cfg.Engine.InferCategories)),
	)
}
