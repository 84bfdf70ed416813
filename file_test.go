// Copyright (c) 2026 The Abliqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestSplitLines(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{"\n"}},
		{"a\nb\n", []string{"a\n", "b\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
	} {
		got := splitLines(test.in)
		require.Equal(t, test.want, got)
		require.Equal(t, test.in, strings.Join(got, ""))
	}
}

// TestProcessFileFixtures runs the normalizer over every in.go/out.go pair
// in the fixture archive and asserts the exact bytes written back.
func TestProcessFileFixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/normalize.txtar")
	require.NoError(t, err)

	files := map[string][]byte{}
	for _, f := range archive.Files {
		files[f.Name] = f.Data
	}

	n := testNormalizer(t)

	for name, data := range files {
		caseName, ok := strings.CutSuffix(name, "/in.go")
		if !ok {
			continue
		}

		t.Run(caseName, func(t *testing.T) {
			want, ok := files[caseName+"/out.go"]
			require.True(t, ok, "fixture %s has no expected output", caseName)

			path := filepath.Join(t.TempDir(), "in.go")
			require.NoError(t, os.WriteFile(path, data, 0o644))

			changed, err := n.processFile(&fsWriter{write: true}, path)
			require.NoError(t, err)
			require.Equal(t, !bytes.Equal(data, want), changed)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, string(want), string(got))
		})
	}
}

func TestProcessFileKeepsMissingTerminator(t *testing.T) {
	n := testNormalizer(t)

	path := filepath.Join(t.TempDir(), "noeol.go")
	require.NoError(t, os.WriteFile(path, []byte("package foo"), 0o644))

	changed, err := n.processFile(&fsWriter{write: true}, path)
	require.NoError(t, err)
	require.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(got), "\npackage foo"))
}

func TestProcessFileNoOpLeavesFileAlone(t *testing.T) {
	n := testNormalizer(t)

	orig := []byte("// Copyright (c) 9999 Some Other Corp\npackage foo\n")
	path := filepath.Join(t.TempDir(), "current.go")
	require.NoError(t, os.WriteFile(path, orig, 0o644))

	changed, err := n.processFile(&fsWriter{write: true}, path)
	require.NoError(t, err)
	require.False(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, orig, got)
}

func TestProcessFileMissing(t *testing.T) {
	n := testNormalizer(t)

	_, err := n.processFile(&fsWriter{write: true}, filepath.Join(t.TempDir(), "nope.go"))
	require.Error(t, err)
}

func TestProcessFileCheckMode(t *testing.T) {
	n := testNormalizer(t)

	orig := []byte("package foo\n")
	path := filepath.Join(t.TempDir(), "check.go")
	require.NoError(t, os.WriteFile(path, orig, 0o644))

	w := &fsWriter{differ: diffChecker()}

	changed, err := n.processFile(w, path)
	require.NoError(t, err)
	require.True(t, changed)

	// nothing written
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, orig, got)

	diffErr := w.differ.error()
	require.Error(t, diffErr)
	require.Contains(t, diffErr.Error(), path)
}

func TestProcessFileCheckModeClean(t *testing.T) {
	n := testNormalizer(t)

	path := filepath.Join(t.TempDir(), "clean.go")
	require.NoError(t, os.WriteFile(path, []byte("// Copyright (c) 2019 The Abliqo Authors\npackage foo\n"), 0o644))

	w := &fsWriter{differ: diffChecker()}

	changed, err := n.processFile(w, path)
	require.NoError(t, err)
	require.False(t, changed)
	require.NoError(t, w.differ.error())
}

func TestFsWriterSuffix(t *testing.T) {
	n := testNormalizer(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "suffixed.go")
	require.NoError(t, os.WriteFile(path, []byte("package foo\n"), 0o644))

	changed, err := n.processFile(&fsWriter{write: true, suffix: ".golden"}, path)
	require.NoError(t, err)
	require.True(t, changed)

	// original untouched, rewrite landed next to it
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "package foo\n", string(got))

	golden, err := os.ReadFile(path + ".golden")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(golden), "// Copyright (c) 9999 The Abliqo Authors\n"))
}
