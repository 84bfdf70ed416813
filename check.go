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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type diff struct {
	path  string
	diffs []diffmatchpatch.Diff
}

func (d *diff) string(differ *diffmatchpatch.DiffMatchPatch) string {
	return fmt.Sprintf("%s:\n%s", d.path, differ.DiffPrettyText(d.diffs))
}

// checkDiffs accumulates would-be rewrites in check mode. Files are
// processed one at a time, so no locking is needed.
type checkDiffs struct {
	differ *diffmatchpatch.DiffMatchPatch
	diffs  []diff
}

func diffChecker() *checkDiffs {
	return &checkDiffs{
		differ: diffmatchpatch.New(),
	}
}

func (c *checkDiffs) diff(path string, newData []byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if !bytes.Equal(data, newData) {
		c.diffs = append(c.diffs, diff{path, c.differ.DiffMain(string(data), string(newData), false)})
	}

	return nil
}

func (c *checkDiffs) error() error {
	if len(c.diffs) == 0 {
		return nil
	}

	diffs := make([]diff, len(c.diffs))
	copy(diffs, c.diffs)

	sort.SliceStable(diffs, func(i, j int) bool {
		a, b := diffs[i], diffs[j]
		return a.path < b.path
	})

	errs := []string{}
	for _, diff := range diffs {
		errs = append(errs, diff.string(c.differ))
	}

	return errors.New(strings.Join(errs, "\n"))
}
