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

// Package lexer converts actor source text into a lazy stream of
// [token.Token]s.
//
// The lexer is lossless: every byte of the input belongs to exactly one
// token, trivia included, so concatenating the text of every token
// reconstructs the input. Input that no token rule matches halts the stream
// with an [*ErrUnlexable].
//
// At each position the rules are tried in this order, and the first that
// matches wins:
//
//  1. whitespace: a maximal run of [unicode.IsSpace] runes;
//  2. comment: `//` through to, but not including, the next newline;
//  3. string: `"`, any bytes other than `"`, then `"`;
//  4. number: digits, optionally followed by `.` and at least one more digit
//     (a float); otherwise an integer;
//  5. word: a maximal run matching `[A-Za-z_][A-Za-z0-9_]*`, which is then
//     looked up with [token.LookupWord]; keywords are recognized only when
//     they are the whole word;
//  6. punctuation: one of `( ) { } =`.
package lexer
