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
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

const goFileExt = ".go"

// processFile reads path, normalizes its header, and writes the result back
// through w when anything changed. It reports whether the file changed. A
// no-op decision leaves the file untouched on disk.
func (n *normalizer) processFile(w *fsWriter, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "read %s", path)
	}

	lines, changed := n.normalize(splitLines(string(data)))
	if !changed {
		return false, nil
	}

	if err := w.Write(path, []byte(strings.Join(lines, "")), info.Mode()); err != nil {
		return false, errors.Wrapf(err, "write %s", path)
	}

	return true, nil
}

// splitLines splits data into lines, each keeping its trailing terminator.
// A final line without a terminator is kept as-is, so joining the result
// reproduces the input byte-for-byte.
func splitLines(data string) []string {
	var lines []string
	for len(data) > 0 {
		i := strings.IndexByte(data, '\n')
		if i < 0 {
			return append(lines, data)
		}

		lines = append(lines, data[:i+1])
		data = data[i+1:]
	}

	return lines
}
