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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/actorlang/actorc/source"
)

// stdinPath is the argument that names standard input.
const stdinPath = "-"

// readSource loads the file at path, or standard input if path is "-".
func (a *app) readSource(path string) (*source.File, error) {
	var (
		text []byte
		err  error
	)
	if path == stdinPath {
		text, err = io.ReadAll(a.In)
		path = "<stdin>"
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	a.log.Debug("read source", "path", path, "bytes", len(text))
	return source.NewFile(path, string(text)), nil
}
