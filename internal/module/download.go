// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// FetchPending fetches every queued PendingDownload concurrently, bounded
// by limit concurrent requests at a time, and skips a path that already
// exists on disk (spec.md §4.6's download_file: "atomically fetches URL
// to path unless it already exists"). This runs after evaluation
// finishes, not during it, keeping the single-threaded compilation loop
// (spec.md §5) free of network I/O.
func FetchPending(ctx context.Context, client *http.Client, downloads []PendingDownload, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, d := range downloads {
		d := d
		g.Go(func() error {
			return fetchOne(ctx, client, d)
		})
	}
	return g.Wait()
}

func fetchOne(ctx context.Context, client *http.Client, d PendingDownload) error {
	if _, err := os.Stat(d.Path); err == nil {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", d.URL, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(d.Path), 0o755); err != nil {
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	tmp := d.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("download %s: %w", d.URL, err)
	}
	// Rename is the atomic step: a concurrent reader never observes a
	// partially-written file at d.Path.
	return os.Rename(tmp, d.Path)
}
