package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"periph.io/x/gpiod"
)

var logger zerolog.Logger

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gpiodctl",
		Short: "Control GPIO lines through the Linux character device",
		Long: `gpiodctl inspects and manipulates GPIO lines through the Linux GPIO
character device, /dev/gpiochipN.`,
		Version:      gpiod.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	cmd.AddCommand(
		newDetectCommand(),
		newFindCommand(),
		newInfoCommand(),
		newGetCommand(),
		newSetCommand(),
		newMonCommand(),
		newWatchCommand(),
	)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
