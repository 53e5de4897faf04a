package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import "periph.io/x/gpiod/uapi"

// RequestConfig holds the request-scoped parameters of a line request:
// which lines to request, the consumer label to attach to them and the
// size of the kernel edge event buffer.
//
// Like LineConfig the mutators never fail; out-of-spec inputs are silently
// clipped to what the kernel accepts.
//
// A RequestConfig is not safe for concurrent use.
type RequestConfig struct {
	offsets         []uint32
	consumer        string
	consumerSet     bool
	eventBufferSize int
}

// NewRequestConfig returns an empty RequestConfig. At minimum SetOffsets
// must be called before the config is usable in a request.
func NewRequestConfig() *RequestConfig {
	return &RequestConfig{}
}

// SetOffsets sets the offsets of the lines to request. The stored set is a
// copy of the argument. A kernel request carries at most uapi.LinesMax
// lines, so any offsets beyond that are silently dropped.
func (rc *RequestConfig) SetOffsets(offsets []uint32) {
	if len(offsets) > uapi.LinesMax {
		offsets = offsets[:uapi.LinesMax]
	}
	rc.offsets = append(rc.offsets[:0:0], offsets...)
}

// Offsets returns a copy of the offsets the request will cover.
func (rc *RequestConfig) Offsets() []uint32 {
	return append(rc.offsets[:0:0], rc.offsets...)
}

// NumOffsets returns the number of lines the request will cover.
func (rc *RequestConfig) NumOffsets() int {
	return len(rc.offsets)
}

// SetConsumer sets the consumer label attached to the requested lines.
// The kernel stores consumers as fixed 32 byte nul-terminated strings, so
// longer labels are silently truncated to uapi.NameSize - 1 bytes.
func (rc *RequestConfig) SetConsumer(consumer string) {
	if len(consumer) > uapi.NameSize-1 {
		consumer = consumer[:uapi.NameSize-1]
	}
	rc.consumer = consumer
	rc.consumerSet = true
}

// Consumer returns the configured consumer label, or ErrNotSet if
// SetConsumer has not been called.
func (rc *RequestConfig) Consumer() (string, error) {
	if !rc.consumerSet {
		return "", ErrNotSet
	}
	return rc.consumer, nil
}

// SetEventBufferSize suggests the size of the kernel edge event buffer for
// the request. Zero, the default, leaves the choice to the kernel, which
// sizes the buffer proportionally to the number of requested lines. The
// kernel may adjust any suggested value. Negative sizes are coerced to
// zero.
func (rc *RequestConfig) SetEventBufferSize(size int) {
	if size < 0 {
		size = 0
	}
	rc.eventBufferSize = size
}

// EventBufferSize returns the suggested kernel event buffer size.
func (rc *RequestConfig) EventBufferSize() int {
	return rc.eventBufferSize
}
