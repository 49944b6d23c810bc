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
	"errors"
	"fmt"
)

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the message; the diagnostics framework
	// takes it from Error.
	Diagnose(*Diagnostic)
}

// Report is a collection of diagnostics. Every diagnostic is an error; the
// lexer and parser have nothing to warn about.
//
// A Report is not thread-safe; concurrent producers should each use their
// own Report and merge them with [Report.Append].
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(err)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...))
}

// Append copies every diagnostic of other onto the end of r.
func (r *Report) Append(other *Report) {
	if other == nil {
		return
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// HasErrors returns whether this report contains any diagnostics.
func (r *Report) HasErrors() bool {
	return r != nil && len(r.Diagnostics) > 0
}

// As finds the first diagnostic whose underlying error matches
// target, in the manner of [errors.As]. Returns false if there is none.
func (r *Report) As(target any) bool {
	if r == nil {
		return false
	}
	for i := range r.Diagnostics {
		if err := r.Diagnostics[i].err; err != nil && errors.As(err, target) {
			return true
		}
	}
	return false
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(err error) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		err:     err,
		message: err.Error(),
	})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
