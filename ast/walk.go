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

// Walk visits each node in stmts in depth-first order, calling enter before
// a node's children and exit after them. exit may be nil.
//
// If either function returns an error, the walk stops and that error is
// returned.
func Walk(stmts []Stmt, enter, exit func(Node) error) error {
	for _, s := range stmts {
		if err := walk(s, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

func walk(n Node, enter, exit func(Node) error) error {
	if err := enter(n); err != nil {
		return err
	}
	for _, child := range Children(n) {
		if err := walk(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		return exit(n)
	}
	return nil
}

// Children returns the direct children of n, in source order. Nil
// expressions are skipped.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *ActorDef:
		for _, h := range n.Handlers {
			out = append(out, h)
		}
	case *MessageHandler:
		for _, s := range n.Body {
			out = append(out, s)
		}
	case *Block:
		for _, s := range n.Stmts {
			out = append(out, s)
		}
	case *Print:
		if n.Value != nil {
			out = append(out, n.Value)
		}
	case *ExprStmt:
		if n.Expr != nil {
			out = append(out, n.Expr)
		}
	case *Assign:
		if n.Value != nil {
			out = append(out, n.Value)
		}
	}
	return out
}
