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
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts this report into a [structpb.Struct], suitable for
// serializing with protojson as a machine-readable alternative to rendered
// output.
//
// The result has a single "diagnostics" field, a list of objects with the
// field "message" and, when known, "tag", "file", "start", "end", "line",
// "column", "notes", "help", and "debug".
func (r *Report) ToStruct() (*structpb.Struct, error) {
	diagnostics := make([]any, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		d := &r.Diagnostics[i]
		m := map[string]any{"message": d.message}
		if d.tag != "" {
			m["tag"] = string(d.tag)
		}

		if primary := d.Primary(); !primary.IsZero() {
			loc := primary.StartLoc()
			m["file"] = primary.Path()
			m["start"] = primary.Start
			m["end"] = primary.End
			m["line"] = loc.Line
			m["column"] = loc.Column
		} else if d.inFile != "" {
			m["file"] = d.inFile
		}

		if len(d.notes) > 0 {
			m["notes"] = stringsToAny(d.notes)
		}
		if len(d.help) > 0 {
			m["help"] = stringsToAny(d.help)
		}
		if len(d.debug) > 0 {
			m["debug"] = stringsToAny(d.debug)
		}
		diagnostics = append(diagnostics, m)
	}

	return structpb.NewStruct(map[string]any{"diagnostics": diagnostics})
}

func stringsToAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
