// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dblohm7/comshim/internal/symvis"
)

type dumpCmd struct {
	gs           *globalState
	exportedOnly bool
}

func getCmdDump(gs *globalState) *cobra.Command {
	c := &dumpCmd{gs: gs}
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "List the symbols of a file and their visibility",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	cmd.Flags().BoolVar(&c.exportedOnly, "exported", false, "only list exported symbols")
	return cmd
}

func (c *dumpCmd) run(_ *cobra.Command, args []string) error {
	tbl, err := symvis.Load(c.gs.fs, args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	fmt.Fprintf(c.gs.stdout, "%s: %s, %d symbols\n\n", args[0], tbl.Format, tbl.Len())
	tw := tabwriter.NewWriter(c.gs.stdout, 0, 8, 1, ' ', 0)
	for _, s := range tbl.Symbols() {
		if c.exportedOnly && !s.Exported() {
			continue
		}
		weak := ""
		if s.Weak {
			weak = "weak"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Visibility, weak, s.Name)
	}
	return tw.Flush()
}
