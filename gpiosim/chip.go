package gpiosim

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"fmt"
	"os"
	"path"

	"github.com/pkg/errors"
)

// Line levels.
const (
	LevelInactive = iota
	LevelActive
)

// Chip is one live simulated gpiochip of a Sim.
//
// The chip exposes the kernel side of its lines through sysfs: the pull
// of a line sets the level seen by userspace inputs, and Level reads back
// what userspace is driving an output to.
type Chip struct {
	cfg Bank

	configfsPath string
	devPath      string
	chipName     string
	sysfsPath    string
}

func (c *Chip) setup() error {
	if err := os.Mkdir(c.configfsPath, 0755); err != nil {
		return errors.Wrap(err, "creating bank")
	}
	if err := writeIntAttr(c.configfsPath, "num_lines", c.cfg.NumLines); err != nil {
		return err
	}
	if c.cfg.Label != "" {
		if err := writeAttr(c.configfsPath, "label", c.cfg.Label); err != nil {
			return err
		}
	}
	for offset, name := range c.cfg.Names {
		dir := c.linePath(offset)
		if err := os.Mkdir(dir, 0755); err != nil {
			return errors.Wrap(err, "creating line")
		}
		if err := writeAttr(dir, "name", name); err != nil {
			return err
		}
	}
	for offset, hog := range c.cfg.Hogs {
		dir := c.linePath(offset)
		if _, err := os.Stat(dir); err != nil {
			if err = os.Mkdir(dir, 0755); err != nil {
				return errors.Wrap(err, "creating line")
			}
		}
		hogDir := path.Join(dir, "hog")
		if err := os.Mkdir(hogDir, 0755); err != nil {
			return errors.Wrap(err, "creating hog")
		}
		if err := writeAttr(hogDir, "name", hog.Consumer); err != nil {
			return err
		}
		if err := writeAttr(hogDir, "direction", hog.Direction.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chip) teardown() error {
	var firstErr error
	for offset := range c.cfg.Hogs {
		if err := os.Remove(path.Join(c.linePath(offset), "hog")); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	lines := map[int]bool{}
	for offset := range c.cfg.Names {
		lines[offset] = true
	}
	for offset := range c.cfg.Hogs {
		lines[offset] = true
	}
	for offset := range lines {
		if err := os.Remove(c.linePath(offset)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := os.Remove(c.configfsPath); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (c *Chip) linePath(offset int) string {
	return path.Join(c.configfsPath, fmt.Sprintf("line%d", offset))
}

// Config returns the Bank the chip was configured with.
func (c *Chip) Config() Bank {
	return c.cfg
}

// ChipName returns the kernel name of the chip, e.g. "gpiochip0".
func (c *Chip) ChipName() string {
	return c.chipName
}

// DevPath returns the character device path of the chip, e.g.
// "/dev/gpiochip0". Open this to drive the chip through the uAPI.
func (c *Chip) DevPath() string {
	return c.devPath
}

// Pull returns the pull of the line, LevelActive for pull-up.
func (c *Chip) Pull(offset int) (int, error) {
	v, err := c.attr(offset, "pull")
	if err != nil {
		return LevelInactive, err
	}
	switch v {
	case "pull-down":
		return LevelInactive, nil
	case "pull-up":
		return LevelActive, nil
	}
	return LevelInactive, errors.Errorf("unexpected pull value: %s", v)
}

// SetPull pulls the line to the given level. For lines requested as
// inputs this sets the level userspace reads.
func (c *Chip) SetPull(offset, level int) error {
	pull := "pull-down"
	if level == LevelActive {
		pull = "pull-up"
	}
	return c.setAttr(offset, "pull", pull)
}

// Pullup pulls the line up.
func (c *Chip) Pullup(offset int) error {
	return c.SetPull(offset, LevelActive)
}

// Pulldown pulls the line down.
func (c *Chip) Pulldown(offset int) error {
	return c.SetPull(offset, LevelInactive)
}

// Toggle inverts the pull of the line.
func (c *Chip) Toggle(offset int) error {
	pull, err := c.Pull(offset)
	if err != nil {
		return err
	}
	if pull == LevelActive {
		return c.Pulldown(offset)
	}
	return c.Pullup(offset)
}

// Level returns the level of the line. For lines requested as outputs
// this is the level userspace is driving them to.
func (c *Chip) Level(offset int) (int, error) {
	v, err := c.attr(offset, "value")
	if err != nil {
		return LevelInactive, err
	}
	switch v {
	case "0":
		return LevelInactive, nil
	case "1":
		return LevelActive, nil
	}
	return LevelInactive, errors.Errorf("unexpected level value: %s", v)
}

func (c *Chip) attr(offset int, name string) (string, error) {
	return readAttr(path.Join(c.sysfsPath, fmt.Sprintf("sim_gpio%d", offset)), name)
}

func (c *Chip) setAttr(offset int, name, value string) error {
	return writeAttr(path.Join(c.sysfsPath, fmt.Sprintf("sim_gpio%d", offset)), name, value)
}
