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
	"bufio"
	"bytes"
	"embed"
	"strings"
	"text/template"
	"unicode"
)

type templateData struct {
	Organization string
	Year         int
}

//go:embed templates/*.tmpl
var licenses embed.FS

const headerTemplateName = "APACHE.header.tmpl"

var headerTemplate = template.Must(template.New("").ParseFS(licenses, "templates/*.tmpl"))

// renderHeaderLines executes the embedded header template and turns the
// result into comment lines, one per template line, each ending in a single
// newline. Lines are right-trimmed after the delimiter is applied, so blank
// template lines render as a bare delimiter.
func renderHeaderLines(data *templateData, delim delimiter) ([]string, error) {
	var buf bytes.Buffer
	if err := headerTemplate.ExecuteTemplate(&buf, headerTemplateName, data); err != nil {
		return nil, err
	}

	var lines []string
	s := bufio.NewScanner(&buf)
	for s.Scan() {
		mid := delim.Middle
		if mid != "" {
			mid += " "
		}

		lines = append(lines, strings.TrimRightFunc(mid+s.Text(), unicode.IsSpace)+"\n")
	}

	return lines, s.Err()
}
