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

package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/actorlang/actorc/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to writing the rendering result, returns the number of
// diagnostics that were rendered. The error return is an error from writing
// to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount int, err error) {
	for i := range report.Diagnostics {
		if _, err = fmt.Fprintln(out, r.Diagnostic(&report.Diagnostics[i])); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}
		errorCount++
	}
	if r.Compact || errorCount == 0 {
		return
	}

	c := newStyleSheet(r.Colorize)
	_, err = fmt.Fprintf(out, "%sencountered %d error%v%s\n",
		c.errBold, errorCount, plural(errorCount), c.reset)
	return
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount int) {
	var buf strings.Builder
	n, _ := r.Render(report, &buf)
	return buf.String(), n
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := newStyleSheet(r.Colorize)

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		primary := d.Primary()
		switch {
		case !primary.IsZero():
			loc := primary.StartLoc()
			return fmt.Sprintf(
				"%serror: %s:%d:%d: %s%s",
				c.err,
				primary.Path(), loc.Line, loc.Column,
				d.message, c.reset,
			)
		case d.inFile != "":
			return fmt.Sprintf(
				"%serror: %s: %s%s",
				c.err,
				d.inFile, d.message, c.reset,
			)
		default:
			return fmt.Sprintf(
				"%serror: %s%s",
				c.err,
				d.message, c.reset,
			)
		}
	}

	// For the fancy style, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.errBold, "error: ", d.message, c.reset)

	// Figure out how wide the line bar needs to be. This is given by the
	// width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))
	margin := strings.Repeat(" ", lineBarWidth)

	for i, group := range partitionByFile(d.annotations) {
		at, arrow := group[0].Span, ":::"
		if i == 0 {
			at, arrow = d.Primary(), "-->"
		}
		loc := at.StartLoc()

		fmt.Fprintf(&out, "\n%s%s%s %s:%d:%d%s", c.accent, margin, arrow, at.Path(), loc.Line, loc.Column, c.reset)
		fmt.Fprintf(&out, "\n%s%s |%s", c.accent, margin, c.reset)
		r.window(group, lineBarWidth, &c, &out)
	}

	// Render a remedial file name for spanless errors.
	if len(d.annotations) == 0 && d.inFile != "" {
		fmt.Fprintf(&out, "\n%s%s--> %s%s", c.accent, margin, d.inFile, c.reset)
	}

	type footer struct{ color, kind, text string }
	footers := make([]footer, 0, len(d.notes)+len(d.help)+len(d.debug))
	for _, note := range d.notes {
		footers = append(footers, footer{c.footer, "note", note})
	}
	for _, help := range d.help {
		footers = append(footers, footer{c.footer, "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			footers = append(footers, footer{c.errBold, "debug", debug})
		}
	}
	for _, f := range footers {
		fmt.Fprintf(&out, "\n%s%s = %s%s: %s", c.accent, margin, f.color, f.kind, c.reset)
		for i, line := range strings.Split(f.text, "\n") {
			if i > 0 {
				out.WriteByte('\n')
				out.WriteString(strings.Repeat(" ", lineBarWidth+3+len(f.kind)+2))
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return trimTrailingSpace(out.String())
}

// window renders the source lines and underlines for a group of annotations
// that all refer to the same file.
func (r Renderer) window(group []annotation, lineBarWidth int, c *styleSheet, out *strings.Builder) {
	margin := strings.Repeat(" ", lineBarWidth)

	var prevLine int
	for _, a := range group {
		line := a.StartLoc().Line
		lineStart, lineEnd := a.File.LineOffsets(line)
		text := strings.TrimRight(a.File.Text()[lineStart:lineEnd], "\r\n")

		if line != prevLine {
			fmt.Fprintf(out, "\n%s%*d | %s", c.accent, lineBarWidth, line, c.reset)
			stringWidth(0, text, out)
			prevLine = line
		}

		// Multi-line spans are underlined through the end of their first line.
		end := min(a.End, lineStart+len(text))
		end = max(end, a.Start)
		startCol := stringWidth(0, a.File.Text()[lineStart:a.Start], nil)
		endCol := stringWidth(0, a.File.Text()[lineStart:end], nil)

		marker, color := "-", c.accentBold
		if a.primary {
			marker, color = "^", c.errBold
		}

		fmt.Fprintf(out, "\n%s%s | %s%s%s",
			c.accent, margin, strings.Repeat(" ", startCol),
			color, strings.Repeat(marker, max(1, endCol-startCol)))
		if a.message != "" {
			out.WriteString(" ")
			out.WriteString(a.message)
		}
		out.WriteString(c.reset)
	}
}

// partitionByFile splits annotations into runs that share a file, with each
// run sorted by start offset. Runs appear in order of first appearance.
func partitionByFile(annotations []annotation) [][]annotation {
	var groups [][]annotation
	index := make(map[*source.File]int)
	for _, a := range annotations {
		i, ok := index[a.File]
		if !ok {
			i = len(groups)
			index[a.File] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], a)
	}
	for _, group := range groups {
		slices.SortStableFunc(group, func(a, b annotation) int {
			return cmp.Compare(a.Start, b.Start)
		})
	}
	return groups
}

// plural is a helper for printing out plurals of numbers.
type plural int

// String implements [fmt.Stringer].
func (p plural) String() string {
	if p == 1 {
		return ""
	}
	return "s"
}
