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

// Command jsfmt formats parsed JavaScript and template syntax trees.
//
// Its arguments are file paths or doublestar globs naming AST dumps, as
// produced by a parser and serialized to JSON (.json) or msgpack (.msgpack).
// By default the formatted code is written to stdout. With --write it is
// written next to the dump, with the dump's extension removed, and with
// --check the command fails if that file would change.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		reportError(cmd.ErrOrStderr(), "", err)
		os.Exit(1)
	}
}

type flags struct {
	config    string
	check     bool
	write     bool
	width     int
	template  bool
	jobs      int
	sourceMap bool
}

func newRootCommand() *cobra.Command {
	f := new(flags)
	cmd := &cobra.Command{
		Use:   "jsfmt [flags] <path|glob>...",
		Short: "Format JavaScript, Flow, JSX and template syntax trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			if f.check && f.write {
				return errors.New("--check cannot be used with --write")
			}
			if f.jobs < 1 {
				return fmt.Errorf("--jobs must be positive, got %d", f.jobs)
			}
			opts, err := loadOptions(f, cmd.Flags().Changed("width"))
			if err != nil {
				return err
			}
			return run(cmd.Context(), &runner{
				flags:  f,
				opts:   opts,
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
			}, args)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "load options from a .yaml, .yml or .toml file")
	cmd.Flags().BoolVar(&f.check, "check", false, "fail if any output file is not already formatted")
	cmd.Flags().BoolVar(&f.write, "write", false, "write formatted code next to each input")
	cmd.Flags().IntVar(&f.width, "width", 0, "override the configured print width")
	cmd.Flags().BoolVar(&f.template, "template", false, "inputs are template syntax trees")
	cmd.Flags().IntVar(&f.jobs, "jobs", runtime.GOMAXPROCS(0), "number of files formatted concurrently")
	cmd.Flags().BoolVar(&f.sourceMap, "source-map", false, "with --write, also write a .map file per output")
	return cmd
}

// reportError prints err to w, colorized if w is a terminal.
func reportError(w io.Writer, path string, err error) {
	label := color.New(color.FgHiRed, color.Bold)
	if isTerminal(w) {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	if path != "" {
		_, _ = fmt.Fprintf(w, "%s %s: %v\n", label.Sprint("error:"), path, err)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", label.Sprint("error:"), err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
