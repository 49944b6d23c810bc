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
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/rivo/uniseg"
)

// Unit is a unit of measurement for columns in a [Location].
type Unit int

const (
	// Bytes measures columns in UTF-8 bytes.
	Bytes Unit = iota
	// Runes measures columns in Unicode code points.
	Runes
	// TermWidth measures columns in terminal cells, as computed by uniseg.
	TermWidth
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case Runes:
		return "Runes"
	case TermWidth:
		return "TermWidth"
	default:
		return "Unit(?)"
	}
}

// File is a source file handed to the lexer.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// The offset of the first byte of each line. lineIndex[0] is always zero.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
//
// It doesn't need to be a real path; "<stdin>" is used by the CLI.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// EOF returns an empty span placed right after the last non-space rune.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	eof := strings.LastIndexFunc(f.Text(), func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if eof == -1 {
		return f.Span(0, 0) // The whole file is whitespace.
	}

	// LastIndexFunc returns the index of the rune's first byte; step past it.
	_, size := decodeRune(f.Text()[eof:])
	return f.Span(eof+size, eof+size)
}

// Lines returns the number of lines in this file.
func (f *File) Lines() int {
	return len(f.lines())
}

// Line returns the given 1-indexed line, including its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.Text()[start:end]
}

// LineOffsets returns the offsets for the given 1-indexed line, including
// its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

// Location converts a byte offset into a user-displayable [Location].
//
// This operation is O(log n) in the number of lines.
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset <= 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}
	offset = min(offset, len(f.Text()))

	lines := f.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.Text()[lines[line]:offset]
	var column int
	switch units {
	case Bytes:
		column = len(chunk)
	case Runes:
		for range chunk {
			column++
		}
	case TermWidth:
		column = uniseg.StringWidth(chunk)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		var next int
		text := f.text
		f.lineIndex = append(f.lineIndex, 0)
		for {
			// We want the index immediately *after* the newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			next += newline
			f.lineIndex = append(f.lineIndex, next)
		}
	})
	return f.lineIndex
}
