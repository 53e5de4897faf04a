package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find the chip and offset of a named line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			paths, err := chipPaths()
			if err != nil {
				return err
			}
			for _, p := range paths {
				c, err := openChip(p)
				if err != nil {
					logger.Warn().Str("path", p).Err(err).Msg("skipping chip")
					continue
				}
				offset, err := c.FindLine(name)
				c.Close()
				if err != nil {
					continue
				}
				fmt.Printf("%s %d\n", c.Name(), offset)
				return nil
			}
			return errors.Errorf("line %q not found", name)
		},
	}
}
