// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package compiler

import (
	"path"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/brackenforge/slidec/internal/source"
)

// TestGoldenFixtures drives every case bundled in testdata/golden.txtar
// through Compile, checking each against its "want" line ("ok",
// "exception", or "diag: <substring>"). Adding a case means editing the
// archive, not this file.
func TestGoldenFixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/golden.txtar")
	if err != nil {
		t.Fatalf("parse golden.txtar: %v", err)
	}

	cases := make(map[string]struct{ input, want string })
	for _, f := range archive.Files {
		dir, base := path.Split(f.Name)
		dir = strings.TrimSuffix(dir, "/")
		c := cases[dir]
		switch base {
		case "input.slides":
			c.input = string(f.Data)
		case "want":
			c.want = strings.TrimSpace(string(f.Data))
		}
		cases[dir] = c
	}
	if len(cases) == 0 {
		t.Fatal("golden.txtar contributed no cases")
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			files := source.NewFiles()
			id := files.Add(name+".slides", c.input)
			res, err := Compile(files, id, DebugLang{})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}

			switch {
			case c.want == "ok":
				if len(res.Diagnostics) != 0 {
					t.Fatalf("want no diagnostics, got %v", res.Diagnostics)
				}
				if res.Exception != nil {
					t.Fatalf("want no exception, got %v", res.Exception)
				}
			case c.want == "exception":
				if res.Exception == nil {
					t.Fatal("want a runtime exception")
				}
			case strings.HasPrefix(c.want, "diag:"):
				substr := strings.TrimSpace(strings.TrimPrefix(c.want, "diag:"))
				if len(res.Diagnostics) == 0 {
					t.Fatal("want at least one diagnostic")
				}
				found := false
				for _, d := range res.Diagnostics {
					if strings.Contains(d.Message, substr) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("want a diagnostic containing %q, got %v", substr, res.Diagnostics)
				}
			default:
				t.Fatalf("testdata/golden.txtar: unrecognised want %q for case %q", c.want, name)
			}
		})
	}
}
