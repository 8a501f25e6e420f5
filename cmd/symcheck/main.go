// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Command symcheck checks SoftDevice linkage adapter builds: that the
// adapter's symbols are externally visible in an object file or binary, and
// that a set of build tags selects exactly one SoftDevice variant.
package main

import (
	"fmt"
	"os"
)

func main() {
	gs := newGlobalState()
	if err := newRootCommand(gs).cmd.Execute(); err != nil {
		fmt.Fprintf(gs.stderr, "symcheck: %v\n", err)
		gs.logger.Sync()
		os.Exit(1)
	}
	gs.logger.Sync()
}
