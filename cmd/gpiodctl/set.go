package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"periph.io/x/gpiod"
)

func newSetCommand() *cobra.Command {
	var activeLow bool
	var drive string

	cmd := &cobra.Command{
		Use:   "set <chip> <offset>=<value>...",
		Short: "Drive a set of lines, holding them until interrupted",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openChip(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			offsets, values, err := parseLineValues(args[1:])
			if err != nil {
				return err
			}

			lcfg := gpiod.NewLineConfig()
			lcfg.SetDirectionDefault(gpiod.DirectionOutput)
			lcfg.SetActiveLowDefault(activeLow)
			switch drive {
			case "":
			case "push-pull":
				lcfg.SetDriveDefault(gpiod.DrivePushPull)
			case "open-drain":
				lcfg.SetDriveDefault(gpiod.DriveOpenDrain)
			case "open-source":
				lcfg.SetDriveDefault(gpiod.DriveOpenSource)
			default:
				return errors.Errorf("unknown drive %q", drive)
			}
			if err := lcfg.SetOutputValues(offsets, values); err != nil {
				return err
			}
			rcfg := gpiod.NewRequestConfig()
			rcfg.SetOffsets(offsets)
			rcfg.SetConsumer("gpiodctl-set")

			req, err := c.RequestLines(rcfg, lcfg)
			if err != nil {
				return err
			}
			defer req.Close()

			// hold the request, the lines revert once it is released
			logger.Info().Msg("holding lines, interrupt to release")
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}
	cmd.Flags().BoolVarP(&activeLow, "active-low", "l", false, "treat the lines as active-low")
	cmd.Flags().StringVarP(&drive, "drive", "d", "", "line drive (push-pull|open-drain|open-source)")
	return cmd
}
