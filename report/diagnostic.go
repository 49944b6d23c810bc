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
	"fmt"

	"github.com/actorlang/actorc/source"
)

// Tag is a diagnostic tag: a machine-readable identification for a
// diagnostic. Tags are lowercase identifiers separated by dashes.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("actorc/report: set diagnostic tag more than once")
	}
	d.tag = t
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// To construct a diagnostic, create one using a function like [Report.Error],
// then call [Diagnostic.Apply] to attach snippets and footers to it.
type Diagnostic struct {
	err     error
	tag     Tag
	message string

	// The file this diagnostic occurs in, if it has no associated
	// annotations.
	inFile string

	annotations        []annotation
	notes, help, debug []string
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.Apply] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Err returns the error that produced this diagnostic.
func (d *Diagnostic) Err() error {
	return d.err
}

// Message returns the diagnostic's main message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Tag returns this diagnostic's tag, if it has one.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, annotation := range d.annotations {
		if annotation.primary {
			return annotation.Span
		}
	}
	return source.Span{}
}

// Apply applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) Apply(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	d.inFile = string(f)
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// The first annotation added is the "primary" annotation, and will be
// rendered differently from the others.
//
// Returns nil if at is nil or produces the zero span.
func Snippet(at source.Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf is like [Snippet], but attaches a message to the snippet.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	span := source.GetSpan(at)
	if span.IsZero() {
		return nil
	}

	a := annotation{Span: span}
	if format != "" {
		a.message = fmt.Sprintf(format, args...)
	}
	return a
}

// Notef returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Notef(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Helpf returns a DiagnosticOption that provides the user with a helpful
// prose suggestion for resolving the diagnostic.
func Helpf(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// Debugf returns a DiagnosticOption that appends debugging information to a
// diagnostic. It is only rendered when [Renderer.ShowDebug] is set.
func Debugf(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

// annotation is an annotated source code snippet within a [Diagnostic].
type annotation struct {
	source.Span

	// A message to show under this snippet. May be empty.
	message string

	// Whether this is a "primary" snippet, which is used for deciding whether
	// or not to mark the snippet with the same color as the overall
	// diagnostic.
	primary bool
}

func (a annotation) Apply(d *Diagnostic) {
	a.primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, a)
}

type (
	note  string
	help  string
	debug string
)

func (n note) Apply(d *Diagnostic)  { d.notes = append(d.notes, string(n)) }
func (n help) Apply(d *Diagnostic)  { d.help = append(d.help, string(n)) }
func (n debug) Apply(d *Diagnostic) { d.debug = append(d.debug, string(n)) }
