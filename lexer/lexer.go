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
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// Lexer is a forward-only token stream over a single [source.File].
//
// A Lexer cannot be rewound; construct a new one to lex the same file again.
type Lexer struct {
	file   *source.File
	cursor int

	// Sticky terminal state: io.EOF or an *ErrUnlexable.
	err error
}

// New returns a new lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{file: file}
}

// Lex runs lexical analysis on all of file.
//
// If the input contains unlexable text, returns the tokens that precede it
// along with an [*ErrUnlexable].
func Lex(file *source.File) ([]token.Token, error) {
	var tokens []token.Token
	for tok, err := range New(file).All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// File returns the file this lexer reads from.
func (l *Lexer) File() *source.File {
	return l.file
}

// Offset returns the byte offset of the next unlexed byte.
func (l *Lexer) Offset() int {
	return l.cursor
}

// Next returns the next token in the stream.
//
// Returns [io.EOF] once the input is exhausted, and an [*ErrUnlexable] if
// no rule matches the remaining input. Both are terminal: every later call
// returns the same error.
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return token.Zero, l.err
	}
	if l.done() {
		l.err = io.EOF
		return token.Zero, l.err
	}

	start := l.cursor
	kind := l.classify()
	if kind == token.Invalid {
		l.cursor = start
		l.err = l.unlexable(start)
		return token.Zero, l.err
	}

	if l.cursor <= start {
		panic("actorc/lexer: failed to make progress")
	}
	return token.New(kind, l.spanFrom(start)), nil
}

// All returns an iterator over the remaining tokens.
//
// The iterator ends at end of input. If the input is unlexable, the final
// pair yielded carries the zero token and the error.
func (l *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// classify consumes the longest token at the cursor and returns its kind.
// Returns [token.Invalid] if nothing matches, in which case the cursor
// position is unspecified.
func (l *Lexer) classify() token.Kind {
	r := l.peek()
	switch {
	case unicode.IsSpace(r):
		l.takeWhile(unicode.IsSpace)
		return token.Whitespace

	case strings.HasPrefix(l.rest(), "//"):
		if nl := strings.IndexByte(l.rest(), '\n'); nl != -1 {
			l.cursor += nl
		} else {
			l.seekEOF()
		}
		return token.Comment

	case r == '"':
		// Escapes are not interpreted here: the first `"` after the opening
		// one ends the token, even if a backslash precedes it.
		end := strings.IndexByte(l.rest()[1:], '"')
		if end == -1 {
			return token.Invalid
		}
		l.cursor += end + 2
		return token.String

	case isDigit(r):
		l.takeWhile(isDigit)
		rest := l.rest()
		if len(rest) >= 2 && rest[0] == '.' && isDigit(rune(rest[1])) {
			l.cursor++
			l.takeWhile(isDigit)
			return token.Float
		}
		return token.Int

	case isWordStart(r):
		return token.LookupWord(l.takeWhile(isWordContinue))

	case r < utf8.RuneSelf:
		kind := token.LookupPunct(byte(r))
		if kind != token.Invalid {
			l.cursor++
		}
		return kind

	default:
		return token.Invalid
	}
}

// unlexable builds the error for unlexable input at start.
func (l *Lexer) unlexable(start int) *ErrUnlexable {
	rest := l.file.Text()[start:]
	if rest[0] == '"' {
		return &ErrUnlexable{
			Span:         l.file.Span(start, len(l.file.Text())),
			Unterminated: true,
		}
	}

	_, size := utf8.DecodeRuneInString(rest)
	return &ErrUnlexable{Span: l.file.Span(start, start+size)}
}

// rest returns the remaining unlexed text.
func (l *Lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *Lexer) done() bool {
	return l.rest() == ""
}

// peek peeks the next character.
//
// Returns -1 if l.done(), and utf8.RuneError for a byte that is not valid
// UTF-8.
func (l *Lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// takeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *Lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		r, size := utf8.DecodeRuneInString(l.rest())
		if r == utf8.RuneError && size <= 1 || !f(r) {
			break
		}
		l.cursor += size
	}
	return l.file.Text()[start:l.cursor]
}

// seekEOF seeks the cursor to the end of the file and returns the remaining
// text.
func (l *Lexer) seekEOF() string {
	rest := l.rest()
	l.cursor += len(rest)
	return rest
}

func (l *Lexer) spanFrom(start int) source.Span {
	return l.file.Span(start, l.cursor)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWordContinue(r rune) bool {
	return isWordStart(r) || isDigit(r)
}
