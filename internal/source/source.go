// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package source owns the files loaded into a compilation and the location
// arithmetic every later stage of the pipeline builds on: a FileId names a
// loaded file, a Location is a byte range inside one, and Files maps offsets
// back to 1-based line numbers.
package source

import (
	"fmt"
	"sort"
)

// FileId is an opaque handle into a Files registry.
type FileId int

// Location is a byte range (start, start+Length) inside one file.
type Location struct {
	File   FileId
	Start  int
	Length int
}

// End returns the exclusive end offset of the location.
func (l Location) End() int {
	return l.Start + l.Length
}

// SetEnd adjusts Length so that the location ends at end.
func (l *Location) SetEnd(end int) {
	l.Length = end - l.Start
}

// Combine returns the smallest location spanning both a and b, which must
// belong to the same file. The result starts at a.Start and ends at b.End().
func Combine(a, b Location) Location {
	return Location{File: a.File, Start: a.Start, Length: b.End() - a.Start}
}

// File is one loaded source file.
type File struct {
	Name    string
	Content string

	// lineBreaks holds the byte offset of every '\n' in Content, in order.
	lineBreaks []int
}

func newFile(name, content string) *File {
	f := &File{Name: name, Content: content}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			f.lineBreaks = append(f.lineBreaks, i)
		}
	}
	return f
}

// LineNumber returns the 1-based line number containing byte offset.
func (f *File) LineNumber(offset int) int {
	// 1 + number of line breaks strictly before offset.
	n := sort.Search(len(f.lineBreaks), func(i int) bool {
		return f.lineBreaks[i] >= offset
	})
	return 1 + n
}

// Slice returns the substring of f selected by loc, which must refer to f.
func (f *File) Slice(loc Location) string {
	return f.Content[loc.Start:loc.End()]
}

// Files is the append-only registry of files loaded for one compilation.
// Interners and Files are never invalidated during a compilation; entries
// are only ever appended.
type Files struct {
	files []*File
}

// NewFiles returns an empty file registry.
func NewFiles() *Files {
	return &Files{}
}

// Add registers a new file and returns its id.
func (fs *Files) Add(name, content string) FileId {
	fs.files = append(fs.files, newFile(name, content))
	return FileId(len(fs.files) - 1)
}

// Get returns the file for id. It panics if id is out of range, which would
// indicate a bug in the caller: ids are only ever produced by Add.
func (fs *Files) Get(id FileId) *File {
	return fs.files[id]
}

// Slice returns the substring of the file selected by loc.
func (fs *Files) Slice(loc Location) string {
	return fs.Get(loc.File).Slice(loc)
}

// LineNumber returns the 1-based line number of offset within the file
// addressed by file.
func (fs *Files) LineNumber(file FileId, offset int) int {
	return fs.Get(file).LineNumber(offset)
}

// Position formats loc as "name:line", suitable for diagnostics.
func (fs *Files) Position(loc Location) string {
	f := fs.Get(loc.File)
	return fmt.Sprintf("%s:%d", f.Name, f.LineNumber(loc.Start))
}
