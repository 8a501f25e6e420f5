// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
)

type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:   "symcheck",
		Short: "Check SoftDevice linkage adapter builds",
		Long: `symcheck verifies that the SoftDevice linkage adapter produces externally
visible symbols and that a set of build tags selects exactly one variant.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}

	flags := c.cmd.PersistentFlags()
	flags.BoolVarP(&gs.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&gs.manifestPath, "manifest", "", "variant manifest to use instead of the built-in one")

	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.AddCommand(
		getCmdExports(gs),
		getCmdTags(gs),
		getCmdDump(gs),
	)
	return c
}

func (c *rootCommand) persistentPreRunE(*cobra.Command, []string) error {
	c.gs.setupLogger()
	return nil
}
