// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/internal/ui"
	"github.com/katalvlaran/energyflow/pricing"
)

// costReport is the structured form of the cost command output.
type costReport struct {
	Category string             `json:"category" yaml:"category"`
	Currency string             `json:"currency" yaml:"currency"`
	Unit     float64            `json:"unitPrice" yaml:"unitPrice"`
	Nodes    []pricing.NodeCost `json:"nodes" yaml:"nodes"`
}

func costCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price the scoped graph with the snapshot's price table",
		Long: `Price every node of the scoped graph with the first price row whose
validity window covers the whole reporting period.

  energyflow cost -f snapshot.yaml --category gaz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output)
			if err != nil {
				return err
			}
			s, err := in.load(a, cmd)
			if err != nil {
				return err
			}
			start, end, _ := s.Input.Period.Bounds()
			price, err := s.Prices.Lookup(s.Input.Category, start, end)
			if err != nil {
				return err
			}

			out := a.newEngine().Rebuild(s.Input)
			if out.Status == engine.StatusFailed {
				return out.Err
			}
			report := costReport{
				Category: price.Category.String(),
				Currency: price.Currency,
				Unit:     price.Unit,
				Nodes:    pricing.Costs(out.Graph, price),
			}
			if format != "table" {
				return encode(a.out, format, report)
			}

			ui.Banner(a.out, "cost")
			fmt.Fprintf(a.out, "  %s at %s %s per %s\n\n",
				report.Category, ui.Number(report.Unit), report.Currency, price.Category.Unit())
			var rows [][]string
			for _, n := range report.Nodes {
				rows = append(rows, []string{n.ID, ui.Number(n.Value), fmt.Sprintf("%.2f %s", n.Cost, report.Currency)})
			}
			ui.Table(a.out, []string{"ID", "Value", "Cost"}, rows)
			return nil
		},
	}
	in.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, json, yaml")

	return cmd
}
