package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"fmt"

	"github.com/spf13/cobra"

	"periph.io/x/gpiod"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "List the GPIO chips on the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := chipPaths()
			if err != nil {
				return err
			}
			for _, p := range paths {
				c, err := gpiod.Open(p)
				if err != nil {
					logger.Warn().Str("path", p).Err(err).Msg("skipping chip")
					continue
				}
				fmt.Printf("%s [%s] (%d lines)\n", c.Name(), c.Label(), c.Lines())
				c.Close()
			}
			return nil
		},
	}
}
