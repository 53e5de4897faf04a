package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"time"

	"github.com/spf13/cobra"

	"periph.io/x/gpiod"
)

func newMonCommand() *cobra.Command {
	var edges string
	var bias string
	var activeLow bool
	var debounce time.Duration
	var numEvents int

	cmd := &cobra.Command{
		Use:   "mon <chip> <offset>...",
		Short: "Monitor edge events on a set of lines",
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

			edge, err := parseEdge(edges)
			if err != nil {
				return err
			}
			lcfg := gpiod.NewLineConfig()
			lcfg.SetDirectionDefault(gpiod.DirectionInput)
			lcfg.SetEdgeDetectionDefault(edge)
			lcfg.SetActiveLowDefault(activeLow)
			if bias != "" {
				b, err := parseBias(bias)
				if err != nil {
					return err
				}
				lcfg.SetBiasDefault(b)
			}
			if debounce > 0 {
				lcfg.SetDebouncePeriodDefault(debounce)
			}
			rcfg := gpiod.NewRequestConfig()
			rcfg.SetOffsets(offsets)
			rcfg.SetConsumer("gpiodctl-mon")

			req, err := c.RequestLines(rcfg, lcfg)
			if err != nil {
				return err
			}
			defer req.Close()

			buf := gpiod.NewEdgeEventBuffer(0)
			seen := 0
			for {
				n, err := req.ReadEdgeEvents(buf, 0)
				if err != nil {
					return err
				}
				for i := 0; i < n; i++ {
					ev, err := buf.Event(i)
					if err != nil {
						return err
					}
					logger.Info().
						Uint32("offset", ev.Offset).
						Str("edge", ev.Type.String()).
						Dur("timestamp", ev.Timestamp).
						Uint32("seqno", ev.Seqno).
						Uint32("line-seqno", ev.LineSeqno).
						Msg("edge")
					seen++
					if numEvents > 0 && seen >= numEvents {
						return nil
					}
				}
			}
		},
	}
	cmd.Flags().StringVarP(&edges, "edges", "e", "both", "edges to report (rising|falling|both)")
	cmd.Flags().StringVarP(&bias, "bias", "b", "", "line bias (as-is|disabled|pull-up|pull-down)")
	cmd.Flags().BoolVarP(&activeLow, "active-low", "l", false, "treat the lines as active-low")
	cmd.Flags().DurationVarP(&debounce, "debounce", "p", 0, "debounce period for the lines")
	cmd.Flags().IntVarP(&numEvents, "num-events", "n", 0, "exit after this many events")
	return cmd
}
