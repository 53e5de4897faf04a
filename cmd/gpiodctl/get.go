package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"periph.io/x/gpiod"
)

func newGetCommand() *cobra.Command {
	var activeLow bool
	var asIs bool
	var bias string

	cmd := &cobra.Command{
		Use:   "get <chip> <offset>...",
		Short: "Read the values of a set of lines",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openChip(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			offsets, err := parseOffsets(args[1:])
			if err != nil {
				return err
			}

			lcfg := gpiod.NewLineConfig()
			if !asIs {
				lcfg.SetDirectionDefault(gpiod.DirectionInput)
			}
			lcfg.SetActiveLowDefault(activeLow)
			if bias != "" {
				b, err := parseBias(bias)
				if err != nil {
					return err
				}
				lcfg.SetBiasDefault(b)
			}
			rcfg := gpiod.NewRequestConfig()
			rcfg.SetOffsets(offsets)
			rcfg.SetConsumer("gpiodctl-get")

			req, err := c.RequestLines(rcfg, lcfg)
			if err != nil {
				return err
			}
			defer req.Close()

			values := make([]int, req.NumLines())
			if err := req.Values(values); err != nil {
				return err
			}
			vv := make([]string, len(values))
			for i, v := range values {
				vv[i] = fmt.Sprintf("%d", v)
			}
			fmt.Println(strings.Join(vv, " "))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&activeLow, "active-low", "l", false, "treat the lines as active-low")
	cmd.Flags().BoolVar(&asIs, "as-is", false, "request the lines without changing direction")
	cmd.Flags().StringVarP(&bias, "bias", "b", "", "line bias (as-is|disabled|pull-up|pull-down)")
	return cmd
}
