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

/*
Package report provides the diagnostics framework used by the lexer and the
parser. It offers diagnostic construction and rendering.

Diagnostics are collected into a [Report], which is a helpful builder over a
slice of [Diagnostic]s. Each [Diagnostic] consists of a Go error plus metadata
for rendering, such as source code spans, notes, and help text. This package
takes after Rust's diagnostic philosophy: diagnostics should be pleasant to
read and point at exactly the code that caused them.

Reports are rendered using a [Renderer], which can produce either compact
one-line output in the style of the Go compiler, or annotated source windows
in the style of rustc.

# Defining Diagnostics

To define a diagnostic, define a new Go error type and make it implement
[Diagnose]. Callers who use this module as a library can then type assert
[Diagnostic.Err] (or use [errors.As]) to programmatically determine the nature
of a diagnostic. When that is not worth it, use [Report.Errorf].

Messages should be lowercase, should not end in a period, and should refer to
source code with `backticks`.
*/
package report
