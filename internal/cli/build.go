// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/internal/ui"
)

func buildCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the scoped flow graph of a snapshot",
		Long: `Build the energy flow graph of a hierarchy snapshot, filter it to one
category and project it to the overview or to one node's detail view.

  energyflow build -f snapshot.yaml
  energyflow build -f snapshot.yaml --category elec --select workshop_W1
  energyflow build -f snapshot.toml --output json`,
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
			out := a.newEngine().Rebuild(s.Input)
			if out.Status == engine.StatusFailed {
				return out.Err
			}

			return writeOutput(a.out, format, out)
		},
	}
	in.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, json, yaml")

	return cmd
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeOutput(w io.Writer, format string, out engine.Output) error {
	if format != "table" {
		return encode(w, format, out)
	}

	ui.Banner(w, "flow graph")
	fmt.Fprintf(w, "  Status:   %s\n", out.Status)
	fmt.Fprintf(w, "  Has data: %s\n", ui.StatusIcon(out.HasDataForPeriod))
	fmt.Fprintf(w, "  Nodes:    %s\n", ui.StatusIcon(out.NonEmpty))
	if out.Selected != "" {
		fmt.Fprintf(w, "  Detail:   %s\n", ui.Info.Sprint(out.Selected))
	}
	if out.Err != nil {
		fmt.Fprintf(w, "  %s %v\n", ui.WarnIcon(), out.Err)
	}
	if out.Graph == nil {
		fmt.Fprintln(w, "\n  Levels are still loading.")
		return nil
	}
	fmt.Fprintln(w)

	var rows [][]string
	for _, n := range out.Graph.Nodes {
		rows = append(rows, []string{n.ID, n.Name, fmt.Sprint(n.Level), n.Category, ui.Number(n.Value)})
	}
	ui.Table(w, []string{"ID", "Name", "Level", "Category", "Value"}, rows)

	if len(out.Graph.Links) > 0 {
		fmt.Fprintln(w)
		rows = rows[:0]
		for _, l := range out.Graph.Links {
			rows = append(rows, []string{l.Source, l.Target, ui.Number(l.Value)})
		}
		ui.Table(w, []string{"Source", "Target", "Value"}, rows)
	}

	return nil
}
