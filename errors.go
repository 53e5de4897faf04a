package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed indicates the chip or request has already been closed.
	ErrClosed = errors.New("already closed")

	// ErrTimeout indicates a wait expired before an event arrived.
	ErrTimeout = errors.New("operation timed out")

	// ErrNotFound indicates the requested name or consumer is not assigned.
	ErrNotFound = errors.New("not found")

	// ErrNotSet indicates a value was read from a config object before
	// ever being configured.
	ErrNotSet = errors.New("not set")

	// ErrInvalidOffset indicates a line offset is outside the chip.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrLengthMismatch indicates caller supplied slices whose lengths do
	// not agree with each other or with the request's line count.
	ErrLengthMismatch = errors.New("slice lengths do not match")

	// ErrInvalidString indicates non-text bytes where text was expected.
	ErrInvalidString = errors.New("invalid string")

	// ErrOutOfRange indicates an index outside the stored events of a
	// buffer.
	ErrOutOfRange = errors.New("index out of range")
)

// OpError is a kernel call failure. It carries the name of the operation
// for diagnostics and wraps the OS error, so errors.Is(err, unix.EBUSY)
// and friends see through it.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "gpiod: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	return &OpError{Op: op, Err: err}
}

// DeviceOpenError indicates a path could not be opened as a GPIO character
// device: it does not exist, is not a character device, or is not a GPIO
// chip. The underlying OS error is preserved verbatim.
type DeviceOpenError struct {
	Path string
	Err  error
}

func (e *DeviceOpenError) Error() string {
	return "gpiod: open " + e.Path + ": " + e.Err.Error()
}

func (e *DeviceOpenError) Unwrap() error {
	return e.Err
}

// ValueError indicates a value read back from the kernel did not fit the
// expected enumeration. It signals a protocol mismatch, not a user error.
type ValueError struct {
	What  string
	Value uint64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("gpiod: invalid %s value: %d", e.What, e.Value)
}
