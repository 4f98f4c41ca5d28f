// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"sync"

	"github.com/brackenforge/slidec/internal/presentation"
)

// PendingDownload is one (url, path) pair a module requested during a
// call, queued rather than fetched synchronously: spec.md §5 keeps
// compilation single-threaded, so the actual network fetch is deferred
// and batched with errgroup once evaluation finishes (SPEC_FULL.md's
// golang.org/x/sync wiring), not performed inline inside call_function.
type PendingDownload struct {
	URL  string
	Path string
}

// Slides is the host-side capability a module's call_function may invoke
// (spec.md §4.6): download_file, add_file_reference,
// place_text_in_output. The presentation is guarded by a reader-writer
// lock (spec.md §5: "the host must not hold a write lock across a module
// call on the same path") since a module call can mutate it through this
// capability while the evaluator elsewhere only ever reads it back after
// the call returns.
type Slides struct {
	mu           sync.RWMutex
	presentation *presentation.Presentation
	pending      []PendingDownload
	seen         map[string]bool
}

// NewSlides returns a capability bound to p.
func NewSlides(p *presentation.Presentation) *Slides {
	return &Slides{presentation: p, seen: make(map[string]bool)}
}

// DownloadFile records a request to fetch url to path, deduplicated by
// path. It does not perform the fetch: see PendingDownload's doc comment.
func (s *Slides) DownloadFile(url, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[path] {
		return
	}
	s.seen[path] = true
	s.pending = append(s.pending, PendingDownload{URL: url, Path: path})
}

// PendingDownloads returns the queued requests accumulated so far, for
// the CLI to fetch concurrently after compilation completes.
func (s *Slides) PendingDownloads() []PendingDownload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PendingDownload, len(s.pending))
	copy(out, s.pending)
	return out
}

// AddFileReference records path for the emitter to copy alongside the
// output, the same bookkeeping an import statement's AddCopiedFile does.
func (s *Slides) AddFileReference(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentation.AddCopiedFile(path)
}

// PlaceTextInOutput appends text at placement, attributed to sourceTag
// for diagnostics, under a write lock.
func (s *Slides) PlaceTextInOutput(text, sourceTag string, placement presentation.Placement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentation.AddExternText(placement, sourceTag, text)
}
