package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <chip> <offset>...",
		Short: "Watch lines for requests, releases and config changes",
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
			for _, offset := range offsets {
				li, err := c.WatchLineInfo(offset)
				if err != nil {
					return err
				}
				defer li.Unwatch()
			}

			for {
				ev, err := c.ReadInfoEvent()
				if err != nil {
					return err
				}
				etype, err := ev.Type()
				if err != nil {
					return err
				}
				info := ev.Info()
				consumer, cerr := info.Consumer()
				if cerr != nil {
					consumer = ""
				}
				logger.Info().
					Uint32("offset", info.Offset()).
					Str("event", etype.String()).
					Dur("timestamp", ev.Timestamp()).
					Str("consumer", consumer).
					Str("direction", info.Direction().String()).
					Msg("line changed")
			}
		},
	}
}
