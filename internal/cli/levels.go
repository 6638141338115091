// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/energyflow/builder"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/internal/ui"
)

func levelsCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the hierarchy levels of a snapshot in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := in.load(a, cmd)
			if err != nil {
				return err
			}
			levels, err := hierarchy.Sort(s.Input.Levels)
			if err != nil {
				return err
			}

			ui.Banner(a.out, "levels")
			var rows [][]string
			for _, lc := range levels {
				rows = append(rows, []string{
					fmt.Sprint(lc.Order), lc.ID, lc.Name, lc.Status.String(), fmt.Sprint(len(lc.Records)),
				})
			}
			ui.Table(a.out, []string{"Order", "ID", "Name", "Status", "Records"}, rows)
			return nil
		},
	}
	in.register(cmd, false)

	return cmd
}

func validateCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a snapshot's level configuration and graph",
		Long: `Check that level orders are distinct and dense from 0, that every level
has delivered its records, and report the records the builder skips.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := in.load(a, cmd)
			if err != nil {
				return err
			}

			ui.Banner(a.out, "validate")
			levels, err := hierarchy.Sort(s.Input.Levels)
			if err != nil {
				fmt.Fprintf(a.out, "  %s levels: %v\n", ui.StatusIcon(false), err)
				return err
			}
			fmt.Fprintf(a.out, "  %s levels: %d, sorted and dense\n", ui.StatusIcon(true), len(levels))

			if pending := hierarchy.PendingLevels(levels); len(pending) > 0 {
				fmt.Fprintf(a.out, "  %s still loading: %s\n", ui.WarnIcon(), strings.Join(pending, ", "))
			}

			res, err := builder.Build(levels,
				builder.WithLogger(a.logger),
				builder.WithCategoryInference(a.cfg.Engine.InferCategories))
			if err != nil {
				return err
			}
			if err := res.Graph.Validate(); err != nil {
				fmt.Fprintf(a.out, "  %s graph: %v\n", ui.StatusIcon(false), err)
				return err
			}
			fmt.Fprintf(a.out, "  %s graph: %d nodes, %d links\n",
				ui.StatusIcon(true), len(res.Graph.Nodes), len(res.Graph.Links))
			if res.Skipped > 0 {
				fmt.Fprintf(a.out, "  %s skipped records: %d\n", ui.WarnIcon(), res.Skipped)
			}
			if res.HasData && !res.HasNonZero {
				fmt.Fprintf(a.out, "  %s every value is zero\n", ui.WarnIcon())
			}
			return nil
		},
	}
	in.register(cmd, false)

	return cmd
}
