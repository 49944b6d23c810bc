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

package lexer

import (
	"fmt"
	"io"

	"github.com/actorlang/actorc/token"
)

// Dump writes tokens as tab-separated values, one token per line, after a
// header line. The columns are: index, kind, byte offsets, 1-indexed
// line:column of the start (in runes), and the Go-quoted text.
func Dump(w io.Writer, tokens []token.Token) error {
	if _, err := fmt.Fprint(w, "#\tkind\toffsets\tlinecol\ttext\n"); err != nil {
		return err
	}
	for i, tok := range tokens {
		span := tok.Span()
		loc := span.StartLoc()
		_, err := fmt.Fprintf(w, "%d\t%v\t%03d:%03d\t%03d:%03d\t%q\n",
			i, tok.Kind(),
			span.Start, span.End,
			loc.Line, loc.Column,
			tok.Text(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
