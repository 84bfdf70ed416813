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
	"io/fs"
	"os"
)

// fsWriter routes rewritten file contents either to disk or, in check mode,
// to a diff accumulator. The suffix is used by tests to write next to the
// original instead of over it.
type fsWriter struct {
	suffix string
	write  bool
	differ *checkDiffs
}

func (f *fsWriter) Write(name string, data []byte, perm fs.FileMode) error {
	name += f.suffix

	if f.write {
		return os.WriteFile(name, data, perm)
	}

	if f.differ != nil {
		if err := f.differ.diff(name, data); err != nil {
			return err
		}
	}

	return nil
}
