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
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// headerScanLines bounds how far into a file an existing copyright notice is
// looked for. Headers live at the top; a notice further down is not one.
const headerScanLines = 5

// generatedMarker identifies mechanically produced files. The marker line
// must stay first even after a header is inserted.
const generatedMarker = "Code generated by"

// copyrightPattern matches "Copyright (c) <year>". The word is matched
// case-insensitively, the (c) token literally.
var copyrightPattern = regexp.MustCompile(`(?i:copyright) \(c\) (\d+)`)

// normalizer holds the rendered header for one invocation. Year, holder
// token, and organization are fixed at construction so every file in a batch
// sees the same header.
type normalizer struct {
	year        int
	holderToken string
	headerLines []string
}

func newNormalizer(year int, organization, holderToken string) (*normalizer, error) {
	lines, err := renderHeaderLines(&templateData{
		Organization: organization,
		Year:         year,
	}, builtinDelimiters["go"])
	if err != nil {
		return nil, err
	}

	return &normalizer{
		year:        year,
		holderToken: holderToken,
		headerLines: lines,
	}, nil
}

// normalize computes the header edit for one file's lines and returns the
// resulting lines plus whether they differ from the input. The input slice
// is never modified.
func (n *normalizer) normalize(lines []string) ([]string, bool) {
	scan := lines
	if len(scan) > headerScanLines {
		scan = scan[:headerScanLines]
	}

	for _, line := range scan {
		m := copyrightPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if year, err := strconv.Atoi(m[1]); err == nil && year == n.year {
			// An up-to-date notice wins outright, whoever holds it.
			return lines, false
		}

		if strings.Contains(line, n.holderToken) {
			// One of ours, but stale. The year is deliberately left
			// alone rather than rewritten in place.
			return lines, false
		}

		// A third-party notice: prepend the short form of our own.
		return n.splice(lines, n.headerLines[:1]), true
	}

	block := slices.Clone(n.headerLines)
	block = append(block, "\n")

	return n.splice(lines, block), true
}

// splice inserts header before the existing content, except that a
// generated-file marker line stays first, separated from the header by one
// blank line.
func (n *normalizer) splice(lines, header []string) []string {
	if len(lines) > 0 && strings.Contains(lines[0], generatedMarker) {
		out := make([]string, 0, len(lines)+len(header)+1)
		out = append(out, lines[0], "\n")
		out = append(out, header...)

		return append(out, lines[1:]...)
	}

	out := make([]string, 0, len(lines)+len(header))
	out = append(out, header...)

	return append(out, lines...)
}
