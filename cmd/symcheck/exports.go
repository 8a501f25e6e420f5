// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dblohm7/comshim/internal/symvis"
)

var errNothingToCheck = errors.New("no symbols to check; pass --variant or --symbol")

type exportsCmd struct {
	gs      *globalState
	variant string
	symbols []string
}

func getCmdExports(gs *globalState) *cobra.Command {
	c := &exportsCmd{gs: gs}
	cmd := &cobra.Command{
		Use:   "exports FILE",
		Short: "Check that symbols are externally visible",
		Long: `Check that every symbol expected from a variant's adapter unit, plus any
named with --symbol, is externally visible in FILE (an object file, shared
library or executable).`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().StringVar(&c.variant, "variant", "", "check the exports the manifest lists for this variant")
	cmd.Flags().StringArrayVar(&c.symbols, "symbol", nil, "additional symbol to check (repeatable)")
	return cmd
}

func (c *exportsCmd) wanted() ([]string, error) {
	var names []string
	if c.variant != "" {
		m, err := c.gs.manifest()
		if err != nil {
			return nil, err
		}
		v, ok := m.Lookup(c.variant)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", c.variant)
		}
		names = append(names, v.Exports...)
	}
	names = append(names, c.symbols...)
	if len(names) == 0 {
		return nil, errNothingToCheck
	}
	return names, nil
}

func (c *exportsCmd) run(_ *cobra.Command, args []string) error {
	names, err := c.wanted()
	if err != nil {
		return err
	}

	path := args[0]
	tbl, err := symvis.Load(c.gs.fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	c.gs.logger.Debug("symbols loaded",
		zap.String("path", path),
		zap.Stringer("format", tbl.Format),
		zap.Int("count", tbl.Len()))

	for _, n := range names {
		s := tbl.Lookup(n)
		status := "ok"
		if !s.Exported() {
			status = "FAIL"
		}
		fmt.Fprintf(c.gs.stdout, "%-4s %s\n", status, s)
	}

	if err := tbl.CheckExported(names...); err != nil {
		c.gs.logger.Warn("visibility check failed", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
