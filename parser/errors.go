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

package parser

import (
	"fmt"

	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// Diagnostic tags for the errors in this package.
const (
	TagUnexpectedToken      report.Tag = "unexpected-token"
	TagExpectedToken        report.Tag = "expected-token"
	TagExpectedExpression   report.Tag = "expected-expression"
	TagInvalidStringLiteral report.Tag = "invalid-string-literal"
	TagInvalidEscape        report.Tag = "invalid-escape"
)

var (
	_ report.Diagnose = (*ErrUnexpected)(nil)
	_ report.Diagnose = (*ErrExpected)(nil)
	_ report.Diagnose = (*ErrExpectedExpression)(nil)
	_ report.Diagnose = (*ErrInvalidStringLiteral)(nil)
	_ report.Diagnose = (*ErrInvalidEscape)(nil)
)

// ErrUnexpected is returned when no grammar rule applies to a token.
type ErrUnexpected struct {
	// The offending token. Zero at end of input.
	Token token.Token
	// Where the token was found; for end of input, the end of the file.
	At source.Span
	// What the parser was looking at, e.g. "statement". May be empty.
	Where string
	// Describes what would have been accepted. May be empty.
	Want []token.Kind
	// The grammar rule being parsed, e.g. "MessageHandler".
	Rule string
}

// Error implements [error].
func (e *ErrUnexpected) Error() string {
	msg := "unexpected " + e.Token.Describe()
	if e.Where != "" {
		msg += " in " + e.Where
	}
	return msg
}

// Diagnose implements [report.Diagnose].
func (e *ErrUnexpected) Diagnose(d *report.Diagnostic) {
	d.Apply(TagUnexpectedToken)
	if len(e.Want) == 0 {
		d.Apply(report.Snippet(e.At))
	} else {
		d.Apply(report.Snippetf(e.At, "expected %s", describeKinds(e.Want)))
	}
	d.Apply(debugToken(e.Token, e.At), debugRule(e.Rule))
}

// ErrExpected is returned when the grammar requires one particular kind of
// token and finds something else.
type ErrExpected struct {
	Want token.Kind
	// The token found instead. Zero at end of input.
	Got token.Token
	At  source.Span

	// The token that opened the construct being parsed, if any.
	Prev token.Token
	// The grammar rule being parsed, e.g. "ActorDef".
	Rule string
}

// Error implements [error].
func (e *ErrExpected) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Want.Describe(), e.Got.Describe())
}

// Diagnose implements [report.Diagnose].
func (e *ErrExpected) Diagnose(d *report.Diagnostic) {
	d.Apply(
		TagExpectedToken,
		report.Snippetf(e.At, "expected %s", e.Want.Describe()),
		debugToken(e.Got, e.At),
		report.Debugf("want %v", e.Want),
		debugRule(e.Rule),
	)
	if !e.Prev.IsZero() {
		d.Apply(report.Snippetf(e.Prev, "`%s` started here", e.Prev.Text()))
	}
	if e.Got.Kind().IsKeyword() && e.Want == token.Ident {
		d.Apply(report.Helpf("`%s` is a keyword and cannot be used as a name", e.Got.Text()))
	}
}

// ErrExpectedExpression is returned when input ends where an expression is
// required.
type ErrExpectedExpression struct {
	At source.Span
	// The grammar rule being parsed, e.g. "Expr".
	Rule string
}

// Error implements [error].
func (e *ErrExpectedExpression) Error() string {
	return "expected expression"
}

// Diagnose implements [report.Diagnose].
func (e *ErrExpectedExpression) Diagnose(d *report.Diagnostic) {
	d.Apply(
		TagExpectedExpression,
		report.Snippetf(e.At, "expected a string literal"),
		report.Helpf("`print` must be followed by the value to print"),
		debugToken(token.Zero, e.At),
		debugRule(e.Rule),
	)
}

// ErrInvalidStringLiteral is returned for a string token that is not a
// single well-formed quoted string.
type ErrInvalidStringLiteral struct {
	Span source.Span
}

// Error implements [error].
func (e *ErrInvalidStringLiteral) Error() string {
	return "invalid string literal"
}

// Diagnose implements [report.Diagnose].
func (e *ErrInvalidStringLiteral) Diagnose(d *report.Diagnostic) {
	d.Apply(
		TagInvalidStringLiteral,
		report.Snippet(e.Span),
		report.Debugf("%v, %q", e.Span, e.Span.Text()),
	)
}

// ErrInvalidEscape is returned for a backslash escape that is not one of
// \" \n \r \t or \\.
type ErrInvalidEscape struct {
	// The escape sequence, including the backslash.
	Span source.Span
}

// Error implements [error].
func (e *ErrInvalidEscape) Error() string {
	return "invalid escape sequence"
}

// Diagnose implements [report.Diagnose].
func (e *ErrInvalidEscape) Diagnose(d *report.Diagnostic) {
	d.Apply(TagInvalidEscape)
	if e.Span.Len() < 2 {
		d.Apply(report.Snippetf(e.Span, "escape sequence is missing a character"))
	} else {
		d.Apply(report.Snippetf(e.Span, "unknown escape `%s`", e.Span.Text()))
	}
	d.Apply(
		report.Helpf("the supported escapes are \\\", \\n, \\r, \\t, and \\\\"),
		report.Debugf("%v, %q", e.Span, e.Span.Text()),
	)
}

// debugToken describes the token an error was found at, for the debug
// footer.
func debugToken(tok token.Token, at source.Span) report.DiagnosticOption {
	if tok.IsZero() {
		return report.Debugf("end of input, %v", at)
	}
	return report.Debugf("%v, %v, %q", tok.Kind(), tok.Span(), tok.Text())
}

func debugRule(rule string) report.DiagnosticOption {
	if rule == "" {
		return nil
	}
	return report.Debugf("in %s", rule)
}

func describeKinds(kinds []token.Kind) string {
	switch len(kinds) {
	case 0:
		return ""
	case 1:
		return kinds[0].Describe()
	case 2:
		return kinds[0].Describe() + " or " + kinds[1].Describe()
	}
	var out string
	for i, k := range kinds {
		switch {
		case i == len(kinds)-1:
			out += ", or "
		case i > 0:
			out += ", "
		}
		out += k.Describe()
	}
	return out
}
