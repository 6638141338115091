// SPDX-License-Identifier: MIT

// Package cli implements the energyflow command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/energyflow/config"
	"github.com/katalvlaran/energyflow/internal/ui"
)

var version = "0.3.0"

// app carries what every command needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer

	configPath string
	noColor    bool
	logLevel   string
	logFormat  string
}

// NewRootCmd returns the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "energyflow",
		Short: "energyflow: energy flow Sankey aggregation",
		Long: ui.Brand.Sprint(ui.Bolt+" energyflow") + ": aggregate plant/workshop/machine consumption into flow graphs\n" +
			ui.Subtle.Sprint("Build, filter and browse energy flows from hierarchy snapshots"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate("energyflow {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/energyflow/config.toml)")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")

	root.AddCommand(
		buildCmd(a),
		levelsCmd(a),
		validateCmd(a),
		costCmd(a),
		browseCmd(a),
	)

	return root
}

// Execute runs the command tree on os.Args.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "energyflow: %v\n", err)
		return err
	}
	return nil
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if a.noColor {
		a.cfg.UI.Color = false
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	ui.SetColor(a.cfg.UI.Color)

	lvl, _ := a.cfg.LogLevel()
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(a.errOut, opts)
	if strings.EqualFold(a.cfg.Log.Format, "json") {
		h = slog.NewJSONHandler(a.errOut, opts)
	}
	a.logger = slog.New(h)

	return nil
}

// outputFormat resolves the --output flag against the config.
func (a *app) outputFormat(flag string) (string, error) {
	f := strings.ToLower(flag)
	if f == "" {
		f = strings.ToLower(a.cfg.Output.Format)
	}
	switch f {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: output format %q", config.ErrInvalid, flag)
	}
}
