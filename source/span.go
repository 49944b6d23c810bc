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

package source

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a half-open byte range within a [File].
type Span struct {
	*File

	// The start and end byte offsets for this span.
	Start, End int
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. A zero Line can be
	// used as a sentinel.
	Line, Column int
}

// IsZero returns whether or not this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the text corresponding to this span.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// StartLoc returns the start location for this span, with columns measured
// in runes.
func (s Span) StartLoc() Location {
	return s.Location(s.Start, Runes)
}

// EndLoc returns the end location for this span, with columns measured in
// runes.
func (s Span) EndLoc() Location {
	return s.Location(s.End, Runes)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<no span>"
	}
	start := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d[%d:%d]", s.Path(), start.Line, start.Column, s.Start, s.End)
}

// Join returns the smallest span that contains all of the given spans.
//
// Zero spans are ignored. If every span is zero, returns the zero span.
//
// Panics if the non-zero spans come from at least two distinct files.
func Join(spans ...Spanner) Span {
	joined := Span{Start: math.MaxInt}
	for _, spanner := range spans {
		span := GetSpan(spanner)
		if span.IsZero() {
			continue
		}

		if joined.File == nil {
			joined.File = span.File
		} else if joined.File != span.File {
			panic(fmt.Sprintf(
				"actorc/source: passed spans with distinct files to Join(): %q != %q",
				joined.Path(),
				span.Path(),
			))
		}

		joined.Start = min(joined.Start, span.Start)
		joined.End = max(joined.End, span.End)
	}

	if joined.File == nil {
		return Span{}
	}
	return joined
}

// GetSpan extracts a span from a Spanner, returning the zero span for a nil
// Spanner.
func GetSpan(s Spanner) Span {
	if s == nil {
		return Span{}
	}
	return s.Span()
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
