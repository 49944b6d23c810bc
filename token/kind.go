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

import "fmt"

const (
	Invalid Kind = iota // The zero kind. Never produced by the lexer.

	Whitespace // A run of whitespace.
	Comment    // A `//` comment, not including the trailing newline.

	Actor // Keyword `actor`.
	Let   // Keyword `let`.
	On    // Keyword `on`.
	Print // Keyword `print`.
	Die   // Keyword `die`.
	True  // Keyword `true`.
	False // Keyword `false`.

	Ident  // An identifier that is not a keyword.
	String // A double-quoted string, quotes and escapes included verbatim.
	Int    // A run of decimal digits.
	Float  // Digits, a dot, digits.

	LParen // `(`
	RParen // `)`
	LBrace // `{`
	RBrace // `}`
	Equals // `=`

	kindCount
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

var kindNames = [...]string{
	Invalid:    "Invalid",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Actor:      "Actor",
	Let:        "Let",
	On:         "On",
	Print:      "Print",
	Die:        "Die",
	True:       "True",
	False:      "False",
	Ident:      "Ident",
	String:     "String",
	Int:        "Int",
	Float:      "Float",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Equals:     "Equals",
}

// Kinds returns every kind the lexer can produce, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Whitespace; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsTrivia returns whether this kind carries no grammatical meaning and is
// skipped by the parser.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsKeyword returns whether this kind is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Actor && k <= False
}

// IsPunct returns whether this kind is single-character punctuation.
func (k Kind) IsPunct() bool {
	return k >= LParen && k <= Equals
}

// Text returns the fixed spelling of keyword and punctuation kinds, and ""
// for every other kind.
func (k Kind) Text() string {
	switch k {
	case Actor:
		return "actor"
	case Let:
		return "let"
	case On:
		return "on"
	case Print:
		return "print"
	case Die:
		return "die"
	case True:
		return "true"
	case False:
		return "false"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Equals:
		return "="
	default:
		return ""
	}
}

// Describe returns a noun phrase for this kind, suitable for use in
// diagnostics such as "expected <kind>".
func (k Kind) Describe() string {
	switch {
	case k.IsKeyword():
		return fmt.Sprintf("`%s`", k.Text())
	case k.IsPunct():
		return fmt.Sprintf("`%s`", k.Text())
	}

	switch k {
	case Whitespace:
		return "whitespace"
	case Comment:
		return "comment"
	case Ident:
		return "identifier"
	case String:
		return "string literal"
	case Int:
		return "integer literal"
	case Float:
		return "floating-point literal"
	default:
		return "end of input"
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}
