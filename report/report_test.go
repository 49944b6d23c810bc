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

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/actorlang/actorc/report"
	"github.com/actorlang/actorc/source"
)

type errMissingName struct {
	at source.Span
}

func (e *errMissingName) Error() string { return "expected identifier, found `{`" }

func (e *errMissingName) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Snippetf(e.at, "expected identifier"),
		report.Notef("actors must be named"),
		report.Debugf("span: %v", e.at),
	)
}

func TestCompact(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test.actor", "actor { }\n")
	r := new(report.Report)
	r.Error(&errMissingName{at: file.Span(6, 7)})
	r.Errorf("file is empty").Apply(report.InFile("empty.actor"))
	r.Errorf("no actors")

	text, errs := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(3, errs)
	assert.Equal(
		"error: test.actor:1:7: expected identifier, found `{`\n"+
			"error: empty.actor: file is empty\n"+
			"error: no actors\n",
		text,
	)

	// Compact output never carries footers.
	text, _ = report.Renderer{Compact: true, ShowDebug: true}.RenderString(r)
	assert.NotContains(text, "debug")
}

func TestFancy(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.actor", "actor hello {\n\tactor { }\n}\n")
	r := new(report.Report)
	r.Error(&errMissingName{at: file.Span(21, 22)})

	text, errs := report.Renderer{}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, strings.Join([]string{
		"error: expected identifier, found `{`",
		"  --> test.actor:2:8",
		"   |",
		" 2 |     actor { }",
		"   |           ^ expected identifier",
		"   = note: actors must be named",
		"",
		"encountered 1 error",
		"",
	}, "\n"), text)

	text, _ = report.Renderer{ShowDebug: true}.RenderString(r)
	assert.Contains(t, text, "   = note: actors must be named\n   = debug: span: test.actor:2:8[21:22]\n")
}

func TestFancyMultipleSnippets(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.actor", "actor a {\n  on x {\n}\n")
	r := new(report.Report)
	r.Errorf("unterminated handler").Apply(
		report.Snippetf(file.Span(15, 16), "opened here"),
		report.Snippet(file.Span(0, 5)),
	)

	text := report.Renderer{}.Diagnostic(&r.Diagnostics[0])
	assert.Equal(t, strings.Join([]string{
		"error: unterminated handler",
		"  --> a.actor:2:6",
		"   |",
		" 1 | actor a {",
		"   | -----",
		" 2 |   on x {",
		"   |      ^ opened here",
	}, "\n"), text)
}

func TestColorize(t *testing.T) {
	t.Parallel()

	r := new(report.Report)
	r.Errorf("boom")
	text, _ := report.Renderer{Compact: true, Colorize: true}.RenderString(r)
	assert.Equal(t, "\033[0;31merror: boom\033[0m\n", text)

	text, _ = report.Renderer{Colorize: true}.RenderString(r)
	assert.Equal(t, "\033[1;31merror: boom\033[0m\033[0m\n\n\033[1;31mencountered 1 error\033[0m\n", text)
}

func TestAsError(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.actor", "actor { }")
	r := new(report.Report)
	r.Error(&errMissingName{at: file.Span(6, 7)})
	require.True(t, r.HasErrors())

	err := error(&report.AsError{Report: *r})
	assert.Equal(t, "error: test.actor:1:7: expected identifier, found `{`", err.Error())

	var missing *errMissingName
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 6, missing.at.Start)

	missing = nil
	assert.True(t, r.As(&missing))
	assert.NotNil(t, missing)
}

func TestErrInFile(t *testing.T) {
	t.Parallel()

	inner := errors.New("permission denied")
	r := new(report.Report)
	d := r.Error(&report.ErrInFile{Err: inner, Path: "x.actor"})
	assert.Equal(t, "permission denied", d.Message())
	assert.ErrorIs(t, d.Err(), inner)
	assert.True(t, d.Primary().IsZero())

	text, _ := report.Renderer{}.RenderString(r)
	assert.Contains(t, text, "error: permission denied\n  --> x.actor\n")
}

func TestToStruct(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.actor", "actor { }")
	r := new(report.Report)
	r.Error(&errMissingName{at: file.Span(6, 7)}).Apply(report.Tag("missing-name"))

	pb, err := r.ToStruct()
	require.NoError(t, err)

	diags := pb.GetFields()["diagnostics"].GetListValue().GetValues()
	require.Len(t, diags, 1)
	fields := diags[0].GetStructValue().GetFields()
	assert.Equal(t, "expected identifier, found `{`", fields["message"].GetStringValue())
	assert.Equal(t, "missing-name", fields["tag"].GetStringValue())
	assert.Equal(t, "test.actor", fields["file"].GetStringValue())
	assert.InDelta(t, 6, fields["start"].GetNumberValue(), 0)
	assert.InDelta(t, 7, fields["column"].GetNumberValue(), 0)
	assert.Equal(t, "actors must be named", fields["notes"].GetListValue().GetValues()[0].GetStringValue())
	assert.Equal(t, "span: test.actor:1:7[6:7]", fields["debug"].GetListValue().GetValues()[0].GetStringValue())

	_, err = protojson.Marshal(pb)
	assert.NoError(t, err)
}
