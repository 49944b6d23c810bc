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
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/actorlang/actorc/source"
)

// ToValueOptions contains configuration for [ToValue] and [ToStruct].
type ToValueOptions struct {
	// If set, no spans will be serialized.
	ElideSpans bool
}

// ToValue converts stmts into nested maps and slices of plain Go values,
// suitable for encoding as JSON or YAML.
//
// The result has the shape {"stmts": [...]}, where every node is a map with
// a "kind" key naming its type.
func ToValue(stmts []Stmt, options *ToValueOptions) map[string]any {
	if options == nil {
		options = new(ToValueOptions)
	}
	c := &codec{options}
	return map[string]any{"stmts": c.stmts(stmts)}
}

// ToStruct converts stmts into a [structpb.Struct], which can then be
// marshaled with protojson.
func ToStruct(stmts []Stmt, options *ToValueOptions) (*structpb.Struct, error) {
	return structpb.NewStruct(ToValue(stmts, options))
}

// codec is the state needed for converting a syntax tree into plain values.
type codec struct {
	*ToValueOptions
}

func (c *codec) stmts(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, c.node(s))
	}
	return out
}

func (c *codec) node(n Node) map[string]any {
	if n == nil {
		return nil
	}

	m := make(map[string]any)
	switch n := n.(type) {
	case *ActorDef:
		m["kind"] = "actor"
		m["name"] = n.Name.Text()
		handlers := make([]any, 0, len(n.Handlers))
		for _, h := range n.Handlers {
			handlers = append(handlers, c.node(h))
		}
		m["handlers"] = handlers
	case *MessageHandler:
		m["kind"] = "handler"
		m["event"] = n.Event()
		m["body"] = c.stmts(n.Body)
	case *Print:
		m["kind"] = "print"
		m["value"] = c.expr(n.Value)
	case *Die:
		m["kind"] = "die"
	case *Block:
		m["kind"] = "block"
		m["stmts"] = c.stmts(n.Stmts)
	case *ExprStmt:
		m["kind"] = "expr"
		m["expr"] = c.expr(n.Expr)
	case *Assign:
		m["kind"] = "assign"
		m["name"] = n.Name.Text()
		m["value"] = c.expr(n.Value)
	case *LiteralExpr:
		m["kind"] = "literal"
		if n.Value != nil {
			m["type"] = n.Value.Kind()
			m["value"] = value(n.Value)
		}
	default:
		panic(fmt.Sprintf("actorc/ast: unexpected node type %T", n))
	}

	if span := n.Span(); !c.ElideSpans && !span.IsZero() {
		m["span"] = c.span(span)
	}
	return m
}

func (c *codec) expr(e Expr) any {
	if e == nil {
		return nil
	}
	return c.node(e)
}

func (c *codec) span(span source.Span) map[string]any {
	start := span.StartLoc()
	return map[string]any{
		"start":  span.Start,
		"end":    span.End,
		"line":   start.Line,
		"column": start.Column,
	}
}
