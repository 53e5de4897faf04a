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

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [chip]...",
		Short: "Print detailed line information for one or all chips",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				paths, err := chipPaths()
				if err != nil {
					return err
				}
				ids = paths
			}
			for _, id := range ids {
				c, err := openChip(id)
				if err != nil {
					return err
				}
				err = printChipInfo(c)
				c.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printChipInfo(c *gpiod.Chip) error {
	fmt.Printf("%s - %d lines:\n", c.Name(), c.Lines())
	for offset := uint32(0); offset < c.Lines(); offset++ {
		li, err := c.LineInfo(offset)
		if err != nil {
			return err
		}
		name, err := li.Name()
		if err != nil {
			name = "unnamed"
		}
		consumer, err := li.Consumer()
		if err != nil {
			consumer = "unused"
		}
		var attrs []string
		attrs = append(attrs, li.Direction().String())
		if li.IsActiveLow() {
			attrs = append(attrs, "active-low")
		}
		if b := li.Bias(); b != gpiod.BiasUnknown {
			attrs = append(attrs, "bias="+b.String())
		}
		if e := li.EdgeDetection(); e != gpiod.EdgeNone {
			attrs = append(attrs, "edges="+e.String())
		}
		if li.IsDebounced() {
			attrs = append(attrs, fmt.Sprintf("debounce=%s", li.DebouncePeriod()))
		}
		fmt.Printf("\tline %3d: %20q %20q [%s]\n",
			offset, name, consumer, strings.Join(attrs, " "))
	}
	return nil
}
