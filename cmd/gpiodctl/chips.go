package main

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"periph.io/x/gpiod"
)

// chipPaths returns the paths of all GPIO character devices on the
// system, sorted by name.
func chipPaths() ([]string, error) {
	candidates, err := filepath.Glob("/dev/gpiochip*")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, p := range candidates {
		if gpiod.IsChipDevice(p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// openChip opens the chip identified by id, which may be a full device
// path, a device name like "gpiochip0" or a bare chip number.
func openChip(id string) (*gpiod.Chip, error) {
	path := id
	if !strings.HasPrefix(path, "/") {
		if _, err := strconv.Atoi(id); err == nil {
			path = "/dev/gpiochip" + id
		} else {
			path = "/dev/" + id
		}
	}
	return gpiod.Open(path)
}

func parseOffsets(args []string) ([]uint32, error) {
	var offsets []uint32
	for _, arg := range args {
		o, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing offset %q", arg)
		}
		offsets = append(offsets, uint32(o))
	}
	return offsets, nil
}

// parseLineValues parses offset=value arguments for the set command.
func parseLineValues(args []string) ([]uint32, []int, error) {
	var offsets []uint32
	var values []int
	for _, arg := range args {
		ov := strings.SplitN(arg, "=", 2)
		if len(ov) != 2 {
			return nil, nil, errors.Errorf("expected offset=value, got %q", arg)
		}
		o, err := strconv.ParseUint(ov[0], 10, 32)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "parsing offset %q", ov[0])
		}
		v, err := strconv.Atoi(ov[1])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "parsing value %q", ov[1])
		}
		offsets = append(offsets, uint32(o))
		values = append(values, v)
	}
	return offsets, values, nil
}

func parseEdge(s string) (gpiod.Edge, error) {
	switch s {
	case "rising":
		return gpiod.EdgeRising, nil
	case "falling":
		return gpiod.EdgeFalling, nil
	case "both":
		return gpiod.EdgeBoth, nil
	}
	return gpiod.EdgeNone, errors.Errorf("unknown edge %q", s)
}

func parseBias(s string) (gpiod.Bias, error) {
	switch s {
	case "as-is":
		return gpiod.BiasAsIs, nil
	case "disabled":
		return gpiod.BiasDisabled, nil
	case "pull-up":
		return gpiod.BiasPullUp, nil
	case "pull-down":
		return gpiod.BiasPullDown, nil
	}
	return gpiod.BiasAsIs, errors.Errorf("unknown bias %q", s)
}
