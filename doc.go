// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// Package gpiod provides access to GPIO lines through the Linux GPIO
// character device (/dev/gpiochipN) using the v2 uAPI.
//
// https://docs.kernel.org/userspace-api/gpio/chardev.html
//
// A Chip is opened by path and hands out LineInfo snapshots, info-event
// watches and LineRequests. A LineRequest is the kernel's grant of a fixed
// set of lines; it reads and drives values and delivers edge events into a
// reusable EdgeEventBuffer. Line configuration is expressed as a LineConfig:
// a set of defaults plus sparse per-line overrides, flattened into a single
// kernel request at request or reconfigure time.
package gpiod
