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

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/actorlang/actorc/internal/cli"
)

const hello = `actor hello {
  on startup {
    print "Hello, World!"
    die
  }
}
`

type result struct {
	code        int
	stdout, err string
}

// run invokes the command line with a private config file, so that no
// config in the surrounding directories leaks into the test.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "actorc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("color: never\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), append([]string{"--config", cfg}, args...), cli.Streams{
		In:  strings.NewReader(stdin),
		Out: &stdout,
		Err: &stderr,
	})
	return result{code, stdout.String(), stderr.String()}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	return dir
}

func TestTokens(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir := writeFiles(t, map[string]string{"a.actor": "actor a {}"})
	res := run(t, "", "tokens", filepath.Join(dir, "a.actor"))
	assert.Equal(0, res.code)
	assert.Empty(res.err)
	assert.Equal("#\tkind\toffsets\tlinecol\ttext\n"+
		"0\tActor\t000:005\t001:001\t\"actor\"\n"+
		"1\tWhitespace\t005:006\t001:006\t\" \"\n"+
		"2\tIdent\t006:007\t001:007\t\"a\"\n"+
		"3\tWhitespace\t007:008\t001:008\t\" \"\n"+
		"4\tLBrace\t008:009\t001:009\t\"{\"\n"+
		"5\tRBrace\t009:010\t001:010\t\"}\"\n",
		res.stdout)
}

func TestTokensError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	res := run(t, "die ?", "--compact", "tokens", "-")
	assert.Equal(1, res.code)
	assert.Equal(3, strings.Count(res.stdout, "\n"))
	assert.Equal("error: <stdin>:1:5: unrecognized input\n", res.err)
}

func TestParseText(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	res := run(t, hello, "parse", "-")
	assert.Equal(0, res.code)
	assert.Empty(res.err)
	assert.Equal(`actor hello @1:1
  on startup @2:3
    print @3:5
      string "Hello, World!" @3:11
    die @4:5
`, res.stdout)
}

func wantTree() map[string]any {
	return map[string]any{
		"stmts": []any{map[string]any{
			"kind": "actor",
			"name": "hello",
			"handlers": []any{map[string]any{
				"kind":  "handler",
				"event": "startup",
				"body": []any{
					map[string]any{
						"kind": "print",
						"value": map[string]any{
							"kind":  "literal",
							"type":  "string",
							"value": "Hello, World!",
						},
					},
					map[string]any{"kind": "die"},
				},
			}},
		}},
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	res := run(t, hello, "parse", "--format", "json", "--elide-spans", "-")
	require.Equal(t, 0, res.code, res.err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, wantTree(), got)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	res := run(t, hello, "parse", "-f", "yaml", "--elide-spans", "-")
	require.Equal(t, 0, res.code, res.err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, wantTree(), got)
}

func TestParseError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	res := run(t, "actor { }", "--compact", "parse", "-")
	assert.Equal(1, res.code)
	assert.Empty(res.stdout)
	assert.Equal("error: <stdin>:1:7: expected identifier, found `{`\n", res.err)

	res = run(t, "actor { }", "parse", "-")
	assert.Equal(1, res.code)
	assert.Contains(res.err, " --> <stdin>:1:7")
	assert.Contains(res.err, "encountered 1 error\n")
}

func TestCheck(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir := writeFiles(t, map[string]string{
		"good.actor":       hello,
		"sub/bad.actor":    "actor a { on b { let } }",
		"sub/deep/z.actor": "actor z {",
		"notes.txt":        "not an actor file",
	})

	res := run(t, "", "--compact", "check", "--jobs", "2", filepath.Join(dir, "**", "*.actor"))
	assert.Equal(1, res.code)
	assert.Empty(res.stdout)
	assert.Equal(
		"error: "+filepath.Join(dir, "sub", "bad.actor")+":1:18: unexpected keyword `let` in handler body\n"+
			"error: "+filepath.Join(dir, "sub", "deep", "z.actor")+":1:10: expected `}`, found end of input\n",
		res.err,
	)

	res = run(t, "", "check", filepath.Join(dir, "good.actor"), filepath.Join(dir, "*.actor"))
	assert.Equal(0, res.code)
	assert.Empty(res.err)

	// Zero jobs means the default.
	res = run(t, "", "check", "-j", "0", filepath.Join(dir, "good.actor"))
	assert.Equal(0, res.code)
	assert.Empty(res.err)
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"good.actor": hello,
		"bad.actor":  "actor a { on b { let } }",
	})

	res := run(t, "", "check", "--json", filepath.Join(dir, "*.actor"))
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.err)

	var got struct {
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	require.Len(t, got.Diagnostics, 1)

	bad := filepath.Join(dir, "bad.actor")
	d := got.Diagnostics[0]
	assert.Equal(t, "unexpected-token", d["tag"])
	assert.Equal(t, "unexpected keyword `let` in handler body", d["message"])
	assert.Equal(t, bad, d["file"])
	assert.Equal(t, []any{`Let, ` + bad + `:1:18[17:20], "let"`, "in Stmt"}, d["debug"])
	assert.InDelta(t, 17, d["start"], 0)
	assert.InDelta(t, 20, d["end"], 0)
	assert.InDelta(t, 1, d["line"], 0)
	assert.InDelta(t, 18, d["column"], 0)

	res = run(t, "", "check", "--json", filepath.Join(dir, "good.actor"))
	assert.Equal(t, 0, res.code)
	assert.JSONEq(t, `{"diagnostics": []}`, res.stdout)
}

func TestShowDebug(t *testing.T) {
	t.Parallel()

	res := run(t, "actor { }", "parse", "-")
	assert.Equal(t, 1, res.code)
	assert.NotContains(t, res.err, "= debug:")

	res = run(t, "actor { }", "--show-debug", "parse", "-")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.err, strings.Join([]string{
		"   = debug: LBrace, <stdin>:1:7[6:7], \"{\"",
		"   = debug: want Ident",
		"   = debug: in ActorDef",
	}, "\n"))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no match", []string{"check", filepath.Join(t.TempDir(), "*.actor")}, "no files match"},
		{"missing file", []string{"parse", filepath.Join(t.TempDir(), "nope.actor")}, "reading"},
		{"bad color", []string{"--color", "sometimes", "version"}, `invalid color "sometimes"`},
		{"bad format", []string{"parse", "--format", "xml", "-"}, `invalid format "xml"`},
		{"bad jobs", []string{"check", "--jobs", "-2", "*.actor"}, "invalid jobs -2"},
		{"bad args", []string{"tokens"}, "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(t, "", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.err, tt.want)
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := run(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "actorc "), res.stdout)
}
