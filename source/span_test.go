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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/actorlang/actorc/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile(
		"test",
		"foo\nbar\nact: 日本\ntail",
	)

	tests := []struct {
		loc  source.Location
		unit source.Unit
	}{
		{loc: source.Location{0, 1, 1}, unit: source.Bytes},
		{loc: source.Location{0, 1, 1}, unit: source.Runes},
		{loc: source.Location{0, 1, 1}, unit: source.TermWidth},

		{loc: source.Location{2, 1, 3}, unit: source.Bytes},
		{loc: source.Location{2, 1, 3}, unit: source.Runes},
		{loc: source.Location{2, 1, 3}, unit: source.TermWidth},

		{loc: source.Location{4, 2, 1}, unit: source.Runes},
		{loc: source.Location{13, 3, 6}, unit: source.Bytes},
		{loc: source.Location{13, 3, 6}, unit: source.Runes},

		{loc: source.Location{19, 3, 12}, unit: source.Bytes},
		{loc: source.Location{19, 3, 8}, unit: source.Runes},
		{loc: source.Location{19, 3, 10}, unit: source.TermWidth},

		{loc: source.Location{20, 4, 1}, unit: source.Runes},
		{loc: source.Location{24, 4, 5}, unit: source.Runes},
	}

	for _, test := range tests {
		t.Run(test.unit.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.loc, file.Location(test.loc.Offset, test.unit), "offset/%s -> line/col", test.unit)
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "a\nbc\n")
	assert.Equal(3, file.Lines())
	assert.Equal("a\n", file.Line(1))
	assert.Equal("bc\n", file.Line(2))
	assert.Equal("", file.Line(3))
}

func TestEOF(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "actor x {}\n\n  ")
	eof := file.EOF()
	assert.Equal(10, eof.Start)
	assert.Equal(10, eof.End)

	blank := source.NewFile("blank", " \n\t")
	assert.Equal(0, blank.EOF().Start)

	var nilFile *source.File
	assert.True(nilFile.EOF().IsZero())
}

func TestJoin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "actor hello {}")
	a := file.Span(0, 5)
	b := file.Span(6, 11)

	joined := source.Join(b, source.Span{}, a)
	assert.Equal(0, joined.Start)
	assert.Equal(11, joined.End)
	assert.Equal("actor hello", joined.Text())

	assert.True(source.Join().IsZero())
	assert.Panics(func() {
		source.Join(a, source.NewFile("other", "x").Span(0, 1))
	})
}
