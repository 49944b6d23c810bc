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

package ast

import (
	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// Node is any node in the syntax tree.
type Node interface {
	source.Spanner

	node()
}

// Stmt is a statement. The concrete type is one of [*ActorDef], [*Die],
// [*Print], [*Block], [*ExprStmt], or [*Assign].
//
// The parser only produces [*ActorDef] at the top level, and [*Print] and
// [*Die] inside handlers. The remaining variants are reserved for grammar
// that does not exist yet.
type Stmt interface {
	Node

	stmt()
}

// ActorDef is an actor definition.
//
//	ActorDef := 'actor' Ident '{' MessageHandler* '}'
type ActorDef struct {
	// The `actor` keyword.
	Keyword  token.Token
	Name     token.Token
	Handlers []*MessageHandler
}

// MessageHandler is an `on` block within an actor.
//
//	MessageHandler := 'on' Ident '{' Stmt* '}'
type MessageHandler struct {
	// The identifier naming the event this handler responds to.
	On token.Token
	// The `on` keyword itself.
	Keyword token.Token
	Body    []Stmt
}

// Die is a `die` statement.
type Die struct {
	Token token.Token
}

// Print is a `print` statement.
//
//	Print := 'print' Expr
type Print struct {
	Keyword token.Token
	Value   Expr
}

// Block is a sequence of statements. Reserved.
type Block struct {
	Stmts []Stmt
}

// ExprStmt is an expression in statement position. Reserved.
type ExprStmt struct {
	Expr Expr
}

// Assign binds a value to a name. Reserved.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Event returns the name of the event this handler responds to.
func (h *MessageHandler) Event() string {
	return h.On.Text()
}

// Span implements [source.Spanner].
func (a *ActorDef) Span() source.Span { return source.Join(a.Keyword, a.Name) }

// Span implements [source.Spanner].
func (h *MessageHandler) Span() source.Span { return source.Join(h.Keyword, h.On) }

// Span implements [source.Spanner].
func (d *Die) Span() source.Span { return d.Token.Span() }

// Span implements [source.Spanner].
func (p *Print) Span() source.Span { return source.Join(p.Keyword, p.Value) }

// Span implements [source.Spanner].
func (b *Block) Span() source.Span {
	spans := make([]source.Spanner, len(b.Stmts))
	for i, s := range b.Stmts {
		spans[i] = s
	}
	return source.Join(spans...)
}

// Span implements [source.Spanner].
func (e *ExprStmt) Span() source.Span { return source.GetSpan(e.Expr) }

// Span implements [source.Spanner].
func (a *Assign) Span() source.Span { return source.Join(a.Name, a.Value) }

func (*ActorDef) node()       {}
func (*MessageHandler) node() {}
func (*Die) node()            {}
func (*Print) node()          {}
func (*Block) node()          {}
func (*ExprStmt) node()       {}
func (*Assign) node()         {}

func (*ActorDef) stmt() {}
func (*Die) stmt()      {}
func (*Print) stmt()    {}
func (*Block) stmt()    {}
func (*ExprStmt) stmt() {}
func (*Assign) stmt()   {}
