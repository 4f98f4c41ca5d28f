// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/brackenforge/slidec/internal/compiler"
	"github.com/brackenforge/slidec/internal/config"
	"github.com/brackenforge/slidec/internal/module"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
)

// downloadConcurrency bounds how many module-requested downloads run at
// once after a compile finishes (spec.md §4.6/SPEC_FULL.md's errgroup
// wiring).
const downloadConcurrency = 4

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	output := fs.String("output", "", "output directory (default: slidec.yaml's output, or \"out\")")
	dbg := fs.String("dbg", "", "comma-separated debug stages: tokens,parser,binder,presentation")
	watch := fs.Bool("watch", false, "recompile whenever the source file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run: expected exactly one source file")
	}
	file := fs.Arg(0)

	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("load %s: %w", config.FileName, err)
	}
	cfg = cfg.Merge(*output, *dbg)

	debugFlags := compiler.ParseDebugFlags(splitNonEmpty(cfg.Debug, ","))

	if err := compileOnce(file, cfg, debugFlags); err != nil {
		if !*watch {
			return err
		}
		fmt.Fprintf(os.Stderr, "slidec: %s\n", err)
	}
	if !*watch {
		return nil
	}
	return watchAndRecompile(file, cfg, debugFlags)
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// compileOnce runs a single compile-and-emit pass, reporting diagnostics or
// a runtime exception as an error rather than writing output.
func compileOnce(file string, cfg config.Config, dbg compiler.DebugLang) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	files := source.NewFiles()
	id := files.Add(file, string(content))

	res, err := compiler.Compile(files, id, dbg)
	if err != nil {
		return err
	}

	if dbg.Tokens {
		fmt.Fprintf(os.Stdout, "-- tokens (%d) --\n", len(res.Debug.Tokens))
		for _, tok := range res.Debug.Tokens {
			fmt.Fprintf(os.Stdout, "%s %q\n", files.Position(tok.Location), files.Slice(tok.Location))
		}
	}
	if dbg.Binder {
		fmt.Fprintf(os.Stdout, "-- bound tree --\n%s", res.Debug.Bound)
	}

	if len(res.Diagnostics) != 0 {
		for _, d := range res.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s: %s\n", files.Position(d.Location), d.Message)
		}
		return fmt.Errorf("%d diagnostic(s)", len(res.Diagnostics))
	}
	if res.Exception != nil {
		return fmt.Errorf("runtime exception: %s", res.Exception.Error())
	}

	if dbg.Presentation {
		dumpPresentation(res.Presentation)
	}

	return emit(res.Presentation, cfg)
}

// emit writes out a presentation summary and fetches whatever downloads a
// module call queued during compilation. Rendering the presentation tree
// into HTML/CSS/navigation assets is out of core scope (spec.md §1), so
// this writes a JSON summary an emitter would consume, plus copies and
// downloads the files the source and any module referenced.
func emit(pres *presentation.Presentation, cfg config.Config) error {
	outDir := cfg.Output
	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	summary, err := json.MarshalIndent(pres, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal presentation: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "presentation.json"), summary, 0o644); err != nil {
		return fmt.Errorf("write presentation.json: %w", err)
	}

	// Wired ahead of the evaluator dispatching calls to module-provided
	// functions: once that lands, calls to the slides capability queue
	// PendingDownloads here, fetched concurrently before this command
	// returns. Until then this list is always empty.
	slides := module.NewSlides(pres)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := module.FetchPending(ctx, http.DefaultClient, slides.PendingDownloads(), downloadConcurrency); err != nil {
		return fmt.Errorf("fetch downloads: %w", err)
	}

	for _, path := range pres.CopiedFiles {
		if err := copyFile(path, filepath.Join(outDir, filepath.Base(path))); err != nil {
			return fmt.Errorf("copy %s: %w", path, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func dumpPresentation(pres *presentation.Presentation) {
	fmt.Fprintf(os.Stdout, "-- presentation: %d slide(s), %d styling(s) --\n", len(pres.Slides), len(pres.Stylings))
}

// watchAndRecompile recompiles file whenever it (or its containing
// directory, to catch editors that write-and-rename) changes, until the
// process is interrupted.
func watchAndRecompile(file string, cfg config.Config, dbg compiler.DebugLang) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Fprintf(os.Stdout, "slidec: watching %s for changes (ctrl-c to stop)\n", file)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := compileOnce(file, cfg, dbg); err != nil {
				fmt.Fprintf(os.Stderr, "slidec: %s\n", err)
				continue
			}
			fmt.Fprintln(os.Stdout, "slidec: recompiled")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "slidec: watch error: %s\n", err)
		}
	}
}
