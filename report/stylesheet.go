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

// styleSheet holds the ANSI escapes used when rendering. Every field is empty
// when color is off, so callers can interpolate them unconditionally.
type styleSheet struct {
	reset string

	// Red, for the error headline and the primary underline.
	err, errBold string

	// Blue, for line numbers, gutters, and secondary underlines.
	accent, accentBold string

	// Bold cyan, for the note and help labels.
	footer string
}

func newStyleSheet(colorize bool) styleSheet {
	if !colorize {
		return styleSheet{}
	}
	return styleSheet{
		reset:      "\033[0m",
		err:        "\033[0;31m",
		errBold:    "\033[1;31m",
		accent:     "\033[0;34m",
		accentBold: "\033[1;34m",
		footer:     "\033[1;36m",
	}
}
