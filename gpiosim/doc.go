// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpiosim creates and controls simulated GPIO chips for testing
// users of the Linux GPIO character device.
//
// The simulators are provided by the kernel gpio-sim module, which needs
// a kernel built with CONFIG_GPIO_SIM and root permissions for the
// configfs and sysfs writes. Tests should skip when construction fails.
//
// A Sim is configured from one or more Banks, each becoming a live
// gpiochip in /dev. The kernel side of a line is manipulated through the
// Chip: SetPull drives the level seen by userspace inputs, and Level
// reads back what userspace drives an output to. For tests needing only
// one plain chip, Simpleton is a shortcut.
//
// https://www.kernel.org/doc/html/latest/admin-guide/gpio/gpio-sim.html
package gpiosim
