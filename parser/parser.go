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
	"github.com/actorlang/actorc/ast"
	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// Parse parses file into a sequence of top-level statements.
//
// The first lexical or syntax error ends the parse; in that case the
// returned statements are nil.
func Parse(file *source.File) ([]ast.Stmt, error) {
	p := &parser{cursor: newCursor(file)}
	stmts, err := p.program()
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

// ParseString is like [Parse], but takes the path and text of the file
// directly.
func ParseString(path, text string) ([]ast.Stmt, error) {
	return Parse(source.NewFile(path, text))
}

// ParseInto is like [Parse], but records any error as a diagnostic in r
// instead of returning it. Returns whether parsing succeeded.
func ParseInto(file *source.File, r *report.Report) ([]ast.Stmt, bool) {
	stmts, err := Parse(file)
	if err == nil {
		return stmts, true
	}

	if d, ok := err.(report.Diagnose); ok {
		r.Error(d)
	} else {
		r.Error(&report.ErrInFile{Err: err, Path: file.Path()})
	}
	return nil, false
}

type parser struct {
	*cursor
}

func (p *parser) program() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}
	for {
		tok, err := p.Peek()
		switch {
		case err != nil:
			return nil, err
		case tok.IsZero():
			return stmts, nil
		case tok.Kind() != token.Actor:
			return nil, &ErrUnexpected{
				Token: tok,
				At:    p.spanOf(tok),
				Want:  []token.Kind{token.Actor},
				Rule:  "Program",
			}
		}

		def, err := p.actorDef()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, def)
	}
}

func (p *parser) actorDef() (*ast.ActorDef, error) {
	kw, err := p.Expect("ActorDef", token.Actor, token.Zero)
	if err != nil {
		return nil, err
	}
	name, err := p.Expect("ActorDef", token.Ident, kw)
	if err != nil {
		return nil, err
	}
	open, err := p.Expect("ActorDef", token.LBrace, kw)
	if err != nil {
		return nil, err
	}

	def := &ast.ActorDef{Keyword: kw, Name: name, Handlers: []*ast.MessageHandler{}}
	for p.At(token.On) {
		h, err := p.messageHandler()
		if err != nil {
			return nil, err
		}
		def.Handlers = append(def.Handlers, h)
	}

	if _, err := p.Expect("ActorDef", token.RBrace, open); err != nil {
		return nil, err
	}
	return def, nil
}

func (p *parser) messageHandler() (*ast.MessageHandler, error) {
	kw, err := p.Expect("MessageHandler", token.On, token.Zero)
	if err != nil {
		return nil, err
	}
	event, err := p.Expect("MessageHandler", token.Ident, kw)
	if err != nil {
		return nil, err
	}
	open, err := p.Expect("MessageHandler", token.LBrace, kw)
	if err != nil {
		return nil, err
	}

	h := &ast.MessageHandler{On: event, Keyword: kw, Body: []ast.Stmt{}}
	for {
		tok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind() == token.RBrace {
			break
		}

		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		h.Body = append(h.Body, stmt)
	}

	if _, err := p.Expect("MessageHandler", token.RBrace, open); err != nil {
		return nil, err
	}
	return h, nil
}

func (p *parser) stmt() (ast.Stmt, error) {
	tok, err := p.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case token.Print:
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Print{Keyword: tok, Value: value}, nil
	case token.Die:
		return &ast.Die{Token: tok}, nil
	default:
		err := &ErrUnexpected{
			Token: tok,
			At:    p.spanOf(tok),
			Where: "handler body",
			Want:  []token.Kind{token.Print, token.Die, token.RBrace},
			Rule:  "Stmt",
		}
		if tok.IsZero() {
			err.Want = []token.Kind{token.RBrace}
		}
		return nil, err
	}
}

func (p *parser) expr() (ast.Expr, error) {
	tok, err := p.Next()
	switch {
	case err != nil:
		return nil, err
	case tok.IsZero():
		return nil, &ErrExpectedExpression{At: p.spanOf(tok), Rule: "Expr"}
	case tok.Kind() != token.String:
		return nil, &ErrUnexpected{
			Token: tok,
			At:    tok.Span(),
			Where: "expression",
			Want:  []token.Kind{token.String},
			Rule:  "Expr",
		}
	}

	value, err := unquote(tok.Span())
	if err != nil {
		return nil, err
	}
	return &ast.LiteralExpr{Token: tok, Value: ast.String(value)}, nil
}
