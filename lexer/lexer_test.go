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

package lexer_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorlang/actorc/internal/corpora"
	"github.com/actorlang/actorc/lexer"
	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "ACTORC_REFRESH",
		Extension: "actor",
		Outputs: []corpora.Output{
			{Extension: "tokens.tsv"},
			{Extension: "stderr.txt"},
		},
		Test: func(t *testing.T, path, text string) []string {
			tokens, err := lexer.Lex(source.NewFile(path, text))

			var tsv strings.Builder
			require.NoError(t, lexer.Dump(&tsv, tokens))

			var stderr string
			if err != nil {
				var unlexable *lexer.ErrUnlexable
				require.ErrorAs(t, err, &unlexable)

				r := new(report.Report)
				r.Error(unlexable)
				stderr, _ = report.Renderer{}.RenderString(r)
			}
			return []string{tsv.String(), stderr}
		},
	}.Run(t)
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.Kind().IsTrivia() {
			out = append(out, tok.Kind())
		}
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []token.Kind
	}{
		{"empty", "", []token.Kind{}},
		{"keyword", "actor", []token.Kind{token.Actor}},
		{"keyword prefix", "actors", []token.Kind{token.Ident}},
		{"keyword with underscore", "on_start", []token.Kind{token.Ident}},
		{"booleans", "true false truefalse", []token.Kind{token.True, token.False, token.Ident}},
		{"int", "42", []token.Kind{token.Int}},
		{"float", "3.14", []token.Kind{token.Float}},
		{"digits then word", "12ab", []token.Kind{token.Int, token.Ident}},
		{"two floats", "1.2.3", []token.Kind{token.Float, token.Invalid}},
		{"string", `"hi"`, []token.Kind{token.String}},
		{"empty string", `""`, []token.Kind{token.String}},
		{"punctuation", "(){}=", []token.Kind{
			token.LParen, token.RParen, token.LBrace, token.RBrace, token.Equals,
		}},
		{"comment eats line", "// actor { }\nlet", []token.Kind{token.Let}},
		{"slash alone", "/", []token.Kind{token.Invalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := lexer.Lex(source.NewFile("test", tt.text))
			got := kinds(tokens)
			if err != nil {
				got = append(got, token.Invalid)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrivia(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tokens, err := lexer.Lex(source.NewFile("test", "  // one\n\t// two\f\r\n"))
	require.NoError(t, err)
	assert.Empty(kinds(tokens))

	var got []token.Kind
	for _, tok := range tokens {
		got = append(got, tok.Kind())
	}
	assert.Equal([]token.Kind{
		token.Whitespace, token.Comment, token.Whitespace, token.Comment, token.Whitespace,
	}, got)
	// A comment runs to the newline, so a CR before it belongs to the comment.
	assert.Equal("// two\f\r", tokens[3].Text())
	assert.Equal("\n", tokens[4].Text())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"actor a{on b{print\"c\"die}}",
		"// trailing comment without newline",
		"let x = 1.5\nlet y = \"multi\nline\"\n",
		"  \t\n\n",
		"actor héllo",
	}
	for _, text := range inputs {
		file := source.NewFile("test", text)
		tokens, err := lexer.Lex(file)

		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Text())
		}
		if err != nil {
			var unlexable *lexer.ErrUnlexable
			require.ErrorAs(t, err, &unlexable)
			assert.Equal(t, unlexable.Span.Start, b.Len())
			b.WriteString(text[unlexable.Span.Start:])
		}
		assert.Equal(t, text, b.String())

		// Relexing yields the same tokens.
		again, err2 := lexer.Lex(source.NewFile("test", text))
		assert.Equal(t, err == nil, err2 == nil)
		require.Len(t, again, len(tokens))
		for i := range tokens {
			assert.Equal(t, tokens[i].Kind(), again[i].Kind())
			assert.Equal(t, tokens[i].Span().Start, again[i].Span().Start)
			assert.Equal(t, tokens[i].Span().End, again[i].Span().End)
		}
	}
}

func TestSpans(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "actor x {\n  on y { die }\n}")
	tokens, err := lexer.Lex(file)
	require.NoError(t, err)

	prev := 0
	for _, tok := range tokens {
		span := tok.Span()
		assert.Same(t, file, span.File)
		assert.Equal(t, prev, span.Start)
		assert.Less(t, span.Start, span.End)
		prev = span.End
	}
	assert.Equal(t, len(file.Text()), prev)
}

func TestUnlexable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text         string
		start, end         int
		unterminated       bool
		message, underline string
	}{
		{
			name: "trailing dot", text: "let z = 7.",
			start: 9, end: 10,
			message: "unrecognized input", underline: "`.` does not start any token",
		},
		{
			name: "unterminated", text: `print "abc`,
			start: 6, end: 10, unterminated: true,
			message: "unterminated string literal", underline: "expected to be terminated by `\"`",
		},
		{
			name: "invalid utf8", text: "die \xff",
			start: 4, end: 5,
			message: "unrecognized input", underline: "not valid UTF-8",
		},
		{
			name: "control character", text: "die\x01",
			start: 3, end: 4,
			message: "unrecognized input", underline: "unprintable character U+0001",
		},
		{
			name: "non-ascii", text: "héllo",
			start: 1, end: 3,
			message: "unrecognized input", underline: "`é` does not start any token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			_, err := lexer.Lex(source.NewFile("test", tt.text))
			var unlexable *lexer.ErrUnlexable
			require.ErrorAs(t, err, &unlexable)
			assert.Equal(tt.start, unlexable.Span.Start)
			assert.Equal(tt.end, unlexable.Span.End)
			assert.Equal(tt.unterminated, unlexable.Unterminated)
			assert.Equal(tt.message, unlexable.Error())

			r := new(report.Report)
			r.Error(unlexable)
			rendered, errs := report.Renderer{}.RenderString(r)
			assert.Equal(1, errs)
			assert.Contains(rendered, tt.underline)
		})
	}
}

func TestStickyError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	l := lexer.New(source.NewFile("test", "die ?"))
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(token.Die, tok.Kind())
	_, err = l.Next()
	require.NoError(t, err)

	_, first := l.Next()
	var unlexable *lexer.ErrUnlexable
	require.ErrorAs(t, first, &unlexable)
	assert.Equal(4, l.Offset())

	tok, second := l.Next()
	assert.True(tok.IsZero())
	assert.Same(first, second)
}

func TestEOF(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	l := lexer.New(source.NewFile("test", "die"))
	_, err := l.Next()
	require.NoError(t, err)

	for range 2 {
		tok, err := l.Next()
		assert.True(tok.IsZero())
		assert.ErrorIs(err, io.EOF)
	}
}

func TestAllStopsEarly(t *testing.T) {
	t.Parallel()

	l := lexer.New(source.NewFile("test", "actor a { }"))
	var seen int
	for tok, err := range l.All() {
		require.NoError(t, err)
		seen++
		if tok.Kind() == token.Ident {
			break
		}
	}
	assert.Equal(t, 3, seen)

	// The stream resumes where the loop left off.
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Whitespace, tok.Kind())
	assert.False(t, errors.Is(err, io.EOF))
}
