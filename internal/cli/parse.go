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
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/actorlang/actorc/ast"
	"github.com/actorlang/actorc/parser"
	"github.com/actorlang/actorc/report"
)

func (a *app) newParseCommand() *cobra.Command {
	var (
		format     string
		elideSpans bool
	)
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Long: `Parses FILE and prints its syntax tree.

The text format is an indented outline with the line:column of each node.
The json and yaml formats are nested objects in which every node has a
"kind" field. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.config.Format = format
				if err := a.config.Validate(); err != nil {
					return err
				}
			}

			file, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			r := new(report.Report)
			stmts, ok := parser.ParseInto(file, r)
			if !ok {
				return a.render(r)
			}
			a.log.Debug("parsed", "path", file.Path(), "stmts", len(stmts))

			options := &ast.ToValueOptions{ElideSpans: elideSpans}
			switch a.config.Format {
			case "json":
				s, err := ast.ToStruct(stmts, options)
				if err != nil {
					return err
				}
				json, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(a.Out, "%s\n", json)
				return err
			case "yaml":
				enc := yaml.NewEncoder(a.Out)
				enc.SetIndent(2)
				if err := enc.Encode(ast.ToValue(stmts, options)); err != nil {
					return err
				}
				return enc.Close()
			default:
				return ast.Dump(a.Out, stmts)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	cmd.Flags().BoolVar(&elideSpans, "elide-spans", false, "omit source spans from json and yaml output")
	return cmd
}
