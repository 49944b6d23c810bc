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
	"strconv"

	"github.com/actorlang/actorc/source"
	"github.com/actorlang/actorc/token"
)

// Expr is an expression. The only concrete type is [*LiteralExpr].
type Expr interface {
	Node

	expr()
}

// LiteralExpr is a literal value along with the token it was decoded from.
type LiteralExpr struct {
	Token token.Token
	Value Literal
}

// Span implements [source.Spanner].
func (e *LiteralExpr) Span() source.Span { return e.Token.Span() }

func (*LiteralExpr) node() {}
func (*LiteralExpr) expr() {}

// Literal is a decoded literal value: one of [String], [Int], [Float], or
// [Bool]. Only [String] is currently produced by the parser.
type Literal interface {
	// Kind returns a short lowercase name for the literal's type.
	Kind() string
	// String formats the value the way it would appear in source.
	String() string

	literal()
}

type (
	// String is a decoded string literal.
	String string
	// Int is an integer literal.
	Int int64
	// Float is a floating-point literal.
	Float float64
	// Bool is a boolean literal.
	Bool bool
)

func (String) Kind() string { return "string" }
func (Int) Kind() string    { return "int" }
func (Float) Kind() string  { return "float" }
func (Bool) Kind() string   { return "bool" }

func (s String) String() string { return strconv.Quote(string(s)) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string  { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }

func (String) literal() {}
func (Int) literal()    {}
func (Float) literal()  {}
func (Bool) literal()   {}

// value returns the literal as a plain Go value.
func value(l Literal) any {
	switch l := l.(type) {
	case String:
		return string(l)
	case Int:
		return int64(l)
	case Float:
		return float64(l)
	case Bool:
		return bool(l)
	default:
		return nil
	}
}
