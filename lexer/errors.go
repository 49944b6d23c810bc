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
	"unicode/utf8"

	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
)

// Diagnostic tags for [ErrUnlexable].
const (
	TagUnlexable          report.Tag = "unlexable"
	TagUnterminatedString report.Tag = "unterminated-string"
)

// ErrUnlexable diagnoses input that no token rule matches.
//
// Lexing cannot continue past such input, so this error is always the last
// thing a [Lexer] produces.
type ErrUnlexable struct {
	// The offending input. For an unterminated string this runs from the
	// opening quote to the end of the file; otherwise it covers one rune
	// (or one byte, if the input is not valid UTF-8).
	Span source.Span

	// Set if the offending input is a string literal with no closing quote.
	Unterminated bool
}

var _ report.Diagnose = (*ErrUnlexable)(nil)

// Error implements [error].
func (e *ErrUnlexable) Error() string {
	if e.Unterminated {
		return "unterminated string literal"
	}
	return "unrecognized input"
}

// Diagnose implements [report.Diagnose].
func (e *ErrUnlexable) Diagnose(d *report.Diagnostic) {
	if e.Unterminated {
		d.Apply(
			TagUnterminatedString,
			report.Snippetf(e.Span.File.Span(e.Span.Start, e.Span.Start+1), "expected to be terminated by `\"`"),
			report.Notef("string literals may not contain `\"`, even when escaped"),
			report.Debugf("%v, %d bytes to end of input", e.Span, e.Span.Len()),
		)
		return
	}
	d.Apply(TagUnlexable, report.Debugf("%v, %q", e.Span, e.Span.Text()))

	text := e.Span.Text()
	r, size := utf8.DecodeRuneInString(text)
	switch {
	case r == utf8.RuneError && size <= 1:
		d.Apply(
			report.Snippetf(e.Span, "not valid UTF-8"),
			report.Notef("found byte 0x%02x at offset %d", text[0], e.Span.Start),
		)
	case report.NonPrint(r):
		d.Apply(report.Snippetf(e.Span, "unprintable character %U", r))
	default:
		d.Apply(report.Snippetf(e.Span, "`%s` does not start any token", text))
	}
}
