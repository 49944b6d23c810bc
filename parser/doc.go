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

// Package parser builds a syntax tree from source text.
//
// The grammar is:
//
//	Program        := ActorDef*
//	ActorDef       := 'actor' Ident '{' MessageHandler* '}'
//	MessageHandler := 'on' Ident '{' Stmt* '}'
//	Stmt           := 'print' Expr | 'die'
//	Expr           := String
//
// Whitespace and comments may appear between any two tokens. There are no
// statement terminators.
//
// Parsing stops at the first error; no partial tree is returned. Every error
// this package returns implements [report.Diagnose].
package parser
