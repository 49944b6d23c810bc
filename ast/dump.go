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
	"io"
	"strings"
)

// Dump writes an indented outline of stmts to w, one node per line, with
// each node's starting line:column.
func Dump(w io.Writer, stmts []Stmt) error {
	var depth int
	return Walk(stmts,
		func(n Node) error {
			var loc string
			if span := n.Span(); !span.IsZero() {
				start := span.StartLoc()
				loc = fmt.Sprintf(" @%d:%d", start.Line, start.Column)
			}
			_, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), Label(n), loc)
			depth++
			return err
		},
		func(Node) error {
			depth--
			return nil
		},
	)
}

// Label returns a short one-line description of n, without its children.
func Label(n Node) string {
	switch n := n.(type) {
	case *ActorDef:
		return "actor " + n.Name.Text()
	case *MessageHandler:
		return "on " + n.Event()
	case *Print:
		return "print"
	case *Die:
		return "die"
	case *Block:
		return "block"
	case *ExprStmt:
		return "expr"
	case *Assign:
		return "let " + n.Name.Text()
	case *LiteralExpr:
		if n.Value == nil {
			return "literal"
		}
		return n.Value.Kind() + " " + n.Value.String()
	default:
		return fmt.Sprintf("%T", n)
	}
}
