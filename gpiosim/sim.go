package gpiosim

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

const configfsRoot = "/sys/kernel/config/gpio-sim"

var simSeq uint32

// Sim is a live simulated GPIO device built on the kernel gpio-sim module.
//
// A Sim hosts one simulated chip per configured Bank. Construction writes
// the configuration into configfs and takes the device live; Close takes
// it down again and removes the configuration.
//
// gpio-sim requires a kernel built with CONFIG_GPIO_SIM, and root to
// write configfs and sysfs, so simulators are only usable in suitably
// privileged test environments.
type Sim struct {
	// Name of the simulated device in configfs.
	Name string

	// Chips are the live simulated chips, one per configured bank.
	Chips []Chip

	configfsPath string
}

// SimOption configures a Sim during construction.
type SimOption interface {
	applySimOption(*Sim) error
}

type nameOption string

func (o nameOption) applySimOption(s *Sim) error {
	s.Name = string(o)
	return nil
}

// WithName sets the name of the simulated device in configfs. Defaults to
// a name derived from the pid, unique within the process.
func WithName(name string) SimOption {
	return nameOption(name)
}

type bankOption Bank

func (o bankOption) applySimOption(s *Sim) error {
	b := Bank(o)
	s.Chips = append(s.Chips, Chip{cfg: b})
	return nil
}

// WithBank adds a chip with the given bank configuration to the Sim.
func WithBank(b *Bank) SimOption {
	return bankOption(*b)
}

// NewSim constructs a simulated device from the options and takes it
// live. At least one bank must be provided with WithBank.
func NewSim(options ...SimOption) (*Sim, error) {
	s := &Sim{
		Name: fmt.Sprintf("gpiosim-p%d-%d", os.Getpid(), atomic.AddUint32(&simSeq, 1)),
	}
	for _, o := range options {
		if err := o.applySimOption(s); err != nil {
			return nil, err
		}
	}
	if len(s.Chips) == 0 {
		return nil, errors.New("at least one bank is required")
	}
	s.configfsPath = path.Join(configfsRoot, s.Name)
	if err := s.setup(); err != nil {
		s.teardown()
		return nil, err
	}
	return s, nil
}

func (s *Sim) setup() error {
	if err := os.Mkdir(s.configfsPath, 0755); err != nil {
		return errors.Wrap(err, "creating gpio-sim device")
	}
	for i := range s.Chips {
		c := &s.Chips[i]
		c.configfsPath = path.Join(s.configfsPath, fmt.Sprintf("bank%d", i))
		if err := c.setup(); err != nil {
			return err
		}
	}
	if err := writeAttr(s.configfsPath, "live", "1"); err != nil {
		return errors.Wrap(err, "taking gpio-sim device live")
	}
	devName, err := readAttr(s.configfsPath, "dev_name")
	if err != nil {
		return err
	}
	for i := range s.Chips {
		c := &s.Chips[i]
		c.chipName, err = readAttr(c.configfsPath, "chip_name")
		if err != nil {
			return err
		}
		c.devPath = path.Join("/dev", c.chipName)
		c.sysfsPath = path.Join("/sys/devices/platform", devName, c.chipName)
	}
	return nil
}

// Close takes the simulated device down and removes its configuration
// from configfs. The chips disappear from /dev.
func (s *Sim) Close() error {
	return s.teardown()
}

func (s *Sim) teardown() error {
	writeAttr(s.configfsPath, "live", "0")
	var firstErr error
	// configfs dirs only remove empty, so children go first.
	for i := range s.Chips {
		if err := s.Chips[i].teardown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := os.Remove(s.configfsPath); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func readAttr(dir, name string) (string, error) {
	v, err := os.ReadFile(path.Join(dir, name))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return strings.TrimSpace(string(v)), nil
}

func writeAttr(dir, name, value string) error {
	err := os.WriteFile(path.Join(dir, name), []byte(value), 0644)
	return errors.Wrapf(err, "writing %s", name)
}

func writeIntAttr(dir, name string, value int) error {
	return writeAttr(dir, name, strconv.Itoa(value))
}
