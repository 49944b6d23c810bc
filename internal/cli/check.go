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

package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/tidwall/btree"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/actorlang/actorc/parser"
	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
)

func (a *app) newCheckCommand() *cobra.Command {
	var (
		jobs     int
		jsonDiag bool
	)
	cmd := &cobra.Command{
		Use:   "check PATTERN...",
		Short: "Report lexical and syntax errors in many files",
		Long: `Parses every file matching the given patterns and reports any errors.

Patterns use doublestar syntax, so ** matches any number of directories:

  actorc check 'examples/**/*.actor'

Files are parsed in parallel. Diagnostics are printed in path order, and
the exit status is 1 if any file has an error. With --json, diagnostics are
written to standard output as a JSON object instead of being rendered.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.config.Jobs = jobs
				a.config.ApplyDefaults()
				if err := a.config.Validate(); err != nil {
					return err
				}
			}

			paths, err := expandPatterns(args)
			if err != nil {
				return err
			}
			a.log.Debug("checking", "files", len(paths), "jobs", a.config.Jobs)

			results, err := a.checkAll(cmd.Context(), paths)
			if err != nil {
				return err
			}

			var failed int
			combined := new(report.Report)
			results.Scan(func(path string, r *report.Report) bool {
				if r.HasErrors() {
					failed++
					a.log.Debug("failed", "path", path)
				}
				combined.Append(r)
				return true
			})
			a.log.Debug("checked", "files", results.Len(), "failed", failed)
			if !jsonDiag {
				return a.render(combined)
			}

			s, err := combined.ToStruct()
			if err != nil {
				return err
			}
			json, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(a.Out, "%s\n", json); err != nil {
				return err
			}
			if combined.HasErrors() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonDiag, "json", false, "print diagnostics as JSON instead of rendering them")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files to parse at once (default: GOMAXPROCS)")
	return cmd
}

// expandPatterns expands each glob pattern into the files it matches,
// returning them sorted and without duplicates. A pattern matching nothing
// is an error.
func expandPatterns(patterns []string) ([]string, error) {
	var set btree.Set[string]
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			set.Insert(m)
		}
	}

	paths := make([]string, 0, set.Len())
	set.Scan(func(path string) bool {
		paths = append(paths, path)
		return true
	})
	return paths, nil
}

type checked struct {
	path   string
	report *report.Report
}

// checkAll parses paths concurrently, using up to the configured number of
// workers, and returns each file's diagnostics keyed by path.
//
// A file that cannot be read produces a diagnostic rather than an error.
func (a *app) checkAll(ctx context.Context, paths []string) (*btree.Map[string, *report.Report], error) {
	workers := min(a.config.Jobs, len(paths))
	workCh := make(chan string, workers)
	resultsCh := make(chan checked, workers)
	grp, ctx := errgroup.WithContext(ctx)

	// producer
	grp.Go(func() error {
		defer close(workCh)
		for _, path := range paths {
			select {
			case workCh <- path:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var running atomic.Int32
	running.Store(int32(workers))
	for range workers {
		grp.Go(func() error {
			defer func() {
				if running.Add(-1) == 0 {
					// last one to leave closes the channel
					close(resultsCh)
				}
			}()
			for {
				var path string
				select {
				case p, ok := <-workCh:
					if !ok {
						return nil
					}
					path = p
				case <-ctx.Done():
					return ctx.Err()
				}

				select {
				case resultsCh <- checked{path, checkFile(path)}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}

	results := new(btree.Map[string, *report.Report])
	grp.Go(func() error {
		for res := range resultsCh {
			results.Set(res.path, res.report)
		}
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkFile parses a single file and returns its diagnostics.
func checkFile(path string) *report.Report {
	r := new(report.Report)
	text, err := os.ReadFile(path)
	if err != nil {
		r.Error(&report.ErrInFile{Err: err, Path: path})
		return r
	}
	parser.ParseInto(source.NewFile(path, string(text)), r)
	return r
}
