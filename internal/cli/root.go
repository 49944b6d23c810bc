// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the actorc command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/actorlang/actorc/internal/config"
	"github.com/actorlang/actorc/report"
)

// errReported is returned by a command whose failure has already been
// rendered as diagnostics.
var errReported = errors.New("diagnostics reported")

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In       io.Reader
	Out, Err io.Writer
}

// app holds the state shared by all subcommands.
type app struct {
	Streams

	configPath string
	verbose    bool
	color      string
	compact    bool
	showDebug  bool

	config *config.Config
	log    *slog.Logger
}

// Run executes the actorc command line with the given arguments and returns
// the process exit code: 0 on success, 1 if any diagnostics were errors,
// and 2 for usage or I/O problems.
func Run(ctx context.Context, args []string, streams Streams) int {
	a := &app{Streams: streams}
	cmd := a.newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(streams.Err, "actorc: %v\n", err)
		return 2
	}
}

func (a *app) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actorc",
		Short: "Front end for the actor scripting language",
		Long: `actorc lexes and parses actor programs.

It prints token streams and syntax trees, and checks files for lexical and
syntax errors. Settings are read from .actorc.yaml, .actorc.yml, or
.actorc.toml in the working directory or any parent, or from the file named
by ACTORC_CONFIG; flags take precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: search for .actorc.{yaml,yml,toml})")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	flags.StringVar(&a.color, "color", "", "colorize diagnostics: auto, always, or never")
	flags.BoolVar(&a.compact, "compact", false, "render one diagnostic per line")
	flags.BoolVar(&a.showDebug, "show-debug", false, "show debug information on diagnostics")

	cmd.AddCommand(
		a.newTokensCommand(),
		a.newParseCommand(),
		a.newCheckCommand(),
		a.newVersionCommand(),
	)
	return cmd
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.Err, &slog.HandlerOptions{Level: level}))

	var err error
	if a.configPath != "" {
		a.config, err = config.Load(a.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			a.config, err = config.Discover(wd)
		}
	}
	if err != nil {
		return err
	}
	if a.config.Path != "" {
		a.log.Debug("loaded config", slog.String("path", a.config.Path))
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		a.config.Color = config.Color(a.color)
	}
	if flags.Changed("compact") {
		a.config.Compact = a.compact
	}
	if flags.Changed("show-debug") {
		a.config.ShowDebug = a.showDebug
	}
	return a.config.Validate()
}

// renderer returns the diagnostic renderer the configuration asks for.
func (a *app) renderer() report.Renderer {
	var colorize bool
	switch a.config.Color {
	case config.ColorAlways:
		colorize = true
	case config.ColorAuto:
		if f, ok := a.Err.(*os.File); ok {
			colorize = isatty.IsTerminal(f.Fd())
		}
	}
	return report.Renderer{
		Compact:   a.config.Compact,
		Colorize:  colorize,
		ShowDebug: a.config.ShowDebug,
	}
}

// render writes r to stderr and returns errReported if it contains errors.
func (a *app) render(r *report.Report) error {
	if _, err := a.renderer().Render(r, a.Err); err != nil {
		return err
	}
	if r.HasErrors() {
		return errReported
	}
	return nil
}
