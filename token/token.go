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

package token

import (
	"fmt"

	"github.com/actorlang/actorc/source"
)

// Zero is the zero [Token]. The parser uses it to stand for the end of the
// token stream.
var Zero Token

// Token is a lexical element of an actor source file.
//
// Tokens are immutable values. The text of a token is always exactly the
// bytes its span covers in the original file.
type Token struct {
	kind Kind
	span source.Span
}

// New constructs a new token of the given kind covering span.
func New(kind Kind, span source.Span) Token {
	return Token{kind: kind, span: span}
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.kind == Invalid
}

// Kind returns what kind of token this is.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the exact source text of this token.
func (t Token) Text() string {
	if t.span.IsZero() {
		return ""
	}
	return t.span.Text()
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.span
}

// Describe returns a noun phrase for this token, for use in diagnostics.
func (t Token) Describe() string {
	switch {
	case t.IsZero():
		return "end of input"
	case t.kind.IsKeyword():
		return fmt.Sprintf("keyword `%s`", t.Text())
	case t.kind.IsPunct():
		return fmt.Sprintf("`%s`", t.Text())
	case t.kind == Ident:
		return fmt.Sprintf("identifier `%s`", t.Text())
	case t.kind == Int, t.kind == Float:
		return fmt.Sprintf("%s `%s`", t.kind.Describe(), t.Text())
	default:
		return t.kind.Describe()
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "Token(<zero>)"
	}
	return fmt.Sprintf("%v(%q)@%d:%d", t.kind, t.Text(), t.span.Start, t.span.End)
}
