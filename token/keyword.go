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

package token

// keywords maps the spelling of every reserved word to its kind.
var keywords = map[string]Kind{
	"actor": Actor,
	"let":   Let,
	"on":    On,
	"print": Print,
	"die":   Die,
	"true":  True,
	"false": False,
}

// LookupWord classifies a complete word, that is, a maximal run matching
// `[A-Za-z_][A-Za-z0-9_]*`.
//
// Words whose exact spelling is a keyword are that keyword; all other words
// are identifiers. Because the lookup is on the whole word, `actors` and
// `on_start` are identifiers.
func LookupWord(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return Ident
}

// LookupPunct classifies a single punctuation byte. Returns [Invalid] if c is
// not punctuation.
func LookupPunct(c byte) Kind {
	switch c {
	case '(':
		return LParen
	case ')':
		return RParen
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '=':
		return Equals
	default:
		return Invalid
	}
}
