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
	"errors"
	"io"

	"github.com/actorlang/actorc/lexer"
	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// cursor is a one-token lookahead over a lexer that hides trivia.
//
// At end of input, Peek and Next return the zero token and a nil error. Lex
// errors are returned as-is and are sticky.
type cursor struct {
	lex *lexer.Lexer

	peeked bool
	tok    token.Token
	err    error
}

func newCursor(file *source.File) *cursor {
	return &cursor{lex: lexer.New(file)}
}

// Peek returns the next non-trivia token without consuming it.
func (c *cursor) Peek() (token.Token, error) {
	if c.peeked {
		return c.tok, c.err
	}
	c.peeked = true

	for {
		tok, err := c.lex.Next()
		switch {
		case errors.Is(err, io.EOF):
			c.tok, c.err = token.Zero, nil
			return c.tok, nil
		case err != nil:
			c.tok, c.err = token.Zero, err
			return c.tok, err
		case tok.Kind().IsTrivia():
			continue
		}
		c.tok, c.err = tok, nil
		return tok, nil
	}
}

// Next consumes and returns the next non-trivia token.
func (c *cursor) Next() (token.Token, error) {
	tok, err := c.Peek()
	if err == nil {
		c.peeked = false
	}
	return tok, err
}

// At returns whether the next non-trivia token has the given kind. A lex
// error is never at any kind; it surfaces on the following Next or Expect.
func (c *cursor) At(kind token.Kind) bool {
	tok, err := c.Peek()
	return err == nil && tok.Kind() == kind
}

// Expect consumes the next non-trivia token if it has the given kind, and
// returns an [*ErrExpected] otherwise.
//
// rule names the grammar rule being parsed. prev is the token that opened
// it; it may be zero.
func (c *cursor) Expect(rule string, kind token.Kind, prev token.Token) (token.Token, error) {
	tok, err := c.Peek()
	if err != nil {
		return token.Zero, err
	}
	if tok.Kind() != kind {
		return token.Zero, &ErrExpected{
			Want: kind,
			Got:  tok,
			At:   c.spanOf(tok),
			Prev: prev,
			Rule: rule,
		}
	}
	return c.Next()
}

// spanOf returns the span of tok, or the end of the file for the zero token.
func (c *cursor) spanOf(tok token.Token) source.Span {
	if tok.IsZero() {
		return c.lex.File().EOF()
	}
	return tok.Span()
}
