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
	"github.com/spf13/cobra"

	"github.com/actorlang/actorc/lexer"
	"github.com/actorlang/actorc/report"
)

func (a *app) newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Prints every token in FILE, trivia included, as tab-separated values:
index, kind, byte offsets, line:column, and the quoted token text.

Use - to read from standard input. If the file contains unlexable input,
the tokens before it are printed and the error is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			file, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			tokens, lexErr := lexer.Lex(file)
			if err := lexer.Dump(a.Out, tokens); err != nil {
				return err
			}
			a.log.Debug("lexed", "path", file.Path(), "tokens", len(tokens))

			if lexErr == nil {
				return nil
			}
			r := new(report.Report)
			if d, ok := lexErr.(report.Diagnose); ok {
				r.Error(d)
			} else {
				r.Error(&report.ErrInFile{Err: lexErr, Path: file.Path()})
			}
			return a.render(r)
		},
	}
}
