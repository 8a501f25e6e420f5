// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func getCmdTags(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "tags TAG[,TAG...]...",
		Short: "Check which SoftDevice variant a set of build tags selects",
		Long: `Apply the linkage adapter's build selection rule to a set of build tags, as
given to go build -tags. Fails when the softdevice tag is set together with
no variant tag or with more than one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tags := splitTags(args)
			m, err := gs.manifest()
			if err != nil {
				return err
			}

			v, ok, err := m.Select(tags)
			if err != nil {
				gs.logger.Warn("invalid tag selection", zap.Strings("tags", tags), zap.Error(err))
				return err
			}
			if !ok {
				fmt.Fprintln(gs.stdout, "softdevice adapter disabled")
				return nil
			}
			fmt.Fprintf(gs.stdout, "variant %s (%s, SoftDevice %s)\n", v.Name, v.Chip, v.Version)
			return nil
		},
	}
}

// splitTags accepts tags separated by commas, spaces or both.
func splitTags(args []string) []string {
	var tags []string
	for _, a := range args {
		tags = append(tags, strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' '
		})...)
	}
	return tags
}
