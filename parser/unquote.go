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
	"strings"
	"unicode/utf8"

	"github.com/actorlang/actorc/source"
)

// UnquoteString decodes the text of a string literal token, including its
// surrounding quotes.
//
// The supported escapes are \" \n \r \t and \\. Returns an
// [*ErrInvalidStringLiteral] if text does not start with a quote or has
// characters after the closing quote, and an [*ErrInvalidEscape] for any
// other escape.
func UnquoteString(text string) (string, error) {
	file := source.NewFile("", text)
	return unquote(file.Span(0, len(text)))
}

// unquote is like [UnquoteString], but errors carry spans within lit.
func unquote(lit source.Span) (string, error) {
	text := lit.Text()
	if !strings.HasPrefix(text, `"`) {
		return "", &ErrInvalidStringLiteral{Span: lit}
	}

	var buf strings.Builder
	i := 1
	for i < len(text) {
		r, n := utf8.DecodeRuneInString(text[i:])
		start := i
		i += n

		if r == '"' {
			if i < len(text) {
				return "", &ErrInvalidStringLiteral{Span: lit.File.Span(lit.Start+i, lit.End)}
			}
			break
		}
		if r != '\\' {
			// Copy the bytes, not r, so invalid UTF-8 passes through unchanged.
			buf.WriteString(text[start:i])
			continue
		}

		if i == len(text) {
			return "", &ErrInvalidEscape{Span: lit.File.Span(lit.Start+start, lit.Start+i)}
		}
		r, n = utf8.DecodeRuneInString(text[i:])
		i += n
		switch r {
		case '"':
			buf.WriteByte('"')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case '\\':
			buf.WriteByte('\\')
		default:
			return "", &ErrInvalidEscape{Span: lit.File.Span(lit.Start+start, lit.Start+i)}
		}
	}

	return buf.String(), nil
}

