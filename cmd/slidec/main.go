// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Command slidec compiles a slide-deck source file into a presentation,
// or formats one in place.
package main

import (
	"fmt"
	"os"
)

const usage = `usage: slidec <command> [arguments]

commands:
  run <file> [--output <dir>] [--dbg <flags>] [--watch]
  format <file> [--dry] [--dbg <flags>]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCommand(os.Args[2:])
	case "format":
		err = formatCommand(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "slidec: unknown command %q\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "slidec: %s\n", err)
		os.Exit(1)
	}
}
