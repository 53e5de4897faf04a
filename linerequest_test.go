package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"periph.io/x/gpiod/uapi"
)

func TestLineFlags(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, uint64(0), lineFlags(s))

	s.direction = DirectionInput
	assert.Equal(t, uapi.LineFlagInput, lineFlags(s))

	s.direction = DirectionOutput
	s.activeLow = true
	s.drive = DriveOpenDrain
	assert.Equal(t, uapi.LineFlagOutput|uapi.LineFlagActiveLow|uapi.LineFlagOpenDrain, lineFlags(s))

	// edge detection forces the line to be an input
	s = defaultSettings()
	s.direction = DirectionOutput
	s.edge = EdgeBoth
	flags := lineFlags(s)
	assert.Zero(t, flags&uapi.LineFlagOutput)
	assert.Equal(t, uapi.LineFlagInput|uapi.LineFlagEdgeRising|uapi.LineFlagEdgeFalling, flags)

	s = defaultSettings()
	s.bias = BiasPullUp
	s.eventClock = EventClockRealtime
	assert.Equal(t, uapi.LineFlagBiasPullUp|uapi.LineFlagEventClockRealtime, lineFlags(s))
}

func TestLineConfigToUapiUniform(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)
	lc.SetBiasDefault(BiasPullDown)

	config, err := lineConfigToUapi(lc, []uint32{2, 4, 6})

	require.NoError(t, err)
	assert.Equal(t, uapi.LineFlagInput|uapi.LineFlagBiasPullDown, config.Flags)
	assert.Equal(t, uint32(0), config.NumAttrs)
}

func TestLineConfigToUapiMinorityFlags(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)
	lc.SetDirectionOverride(DirectionOutput, 5)

	config, err := lineConfigToUapi(lc, []uint32{1, 5, 7})

	require.NoError(t, err)
	// two inputs outnumber the single output, so input is the base
	assert.Equal(t, uapi.LineFlagInput, config.Flags)
	require.Equal(t, uint32(2), config.NumAttrs)

	attr := config.Attrs[0]
	assert.Equal(t, uapi.LineAttrIDFlags, attr.Attr.ID)
	assert.Equal(t, uapi.LineFlagOutput, attr.Attr.Value)
	// offset 5 is the second requested line, bit 1
	assert.Equal(t, uint64(0b010), attr.Mask)

	// output lines always get an output values attribute
	attr = config.Attrs[1]
	assert.Equal(t, uapi.LineAttrIDOutputValues, attr.Attr.ID)
	assert.Equal(t, uint64(0b010), attr.Mask)
	assert.Equal(t, uint64(0), attr.Attr.Value)
}

func TestLineConfigToUapiOutputValues(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionOutput)
	require.NoError(t, lc.SetOutputValues([]uint32{1, 5, 7}, []int{1, 0, 1}))

	config, err := lineConfigToUapi(lc, []uint32{1, 5, 7})

	require.NoError(t, err)
	assert.Equal(t, uapi.LineFlagOutput, config.Flags)
	require.Equal(t, uint32(1), config.NumAttrs)
	attr := config.Attrs[0]
	assert.Equal(t, uapi.LineAttrIDOutputValues, attr.Attr.ID)
	assert.Equal(t, uint64(0b111), attr.Mask)
	assert.Equal(t, uint64(0b101), attr.Attr.Value)
}

func TestLineConfigToUapiDebounce(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)
	lc.SetDebouncePeriodOverride(time.Millisecond, 0)
	lc.SetDebouncePeriodOverride(time.Millisecond, 2)
	lc.SetDebouncePeriodOverride(5*time.Millisecond, 3)

	config, err := lineConfigToUapi(lc, []uint32{0, 1, 2, 3})

	require.NoError(t, err)
	require.Equal(t, uint32(2), config.NumAttrs)

	attr := config.Attrs[0]
	assert.Equal(t, uapi.LineAttrIDDebounce, attr.Attr.ID)
	assert.Equal(t, uint64(1000), attr.Attr.Value)
	assert.Equal(t, uint64(0b0101), attr.Mask)

	attr = config.Attrs[1]
	assert.Equal(t, uapi.LineAttrIDDebounce, attr.Attr.ID)
	assert.Equal(t, uint64(5000), attr.Attr.Value)
	assert.Equal(t, uint64(0b1000), attr.Mask)
}

func TestLineConfigToUapiIgnoresForeignOverrides(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)
	// override for a line outside the request
	lc.SetDirectionOverride(DirectionOutput, 40)

	config, err := lineConfigToUapi(lc, []uint32{1, 2})

	require.NoError(t, err)
	assert.Equal(t, uapi.LineFlagInput, config.Flags)
	assert.Equal(t, uint32(0), config.NumAttrs)
}

func TestLineConfigToUapiTooManyAttrs(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)
	offsets := make([]uint32, 11)
	for i := range offsets {
		offsets[i] = uint32(i)
		// a distinct debounce period per line fills an attr slot each
		lc.SetDebouncePeriodOverride(time.Duration(i+1)*time.Millisecond, uint32(i))
	}

	_, err := lineConfigToUapi(lc, offsets)

	assert.ErrorIs(t, err, unix.E2BIG)
}

func TestLineRequestValuesLengthMismatch(t *testing.T) {
	r := LineRequest{offsets: []uint32{1, 2, 3}}

	assert.ErrorIs(t, r.Values(make([]int, 2)), ErrLengthMismatch)
	assert.ErrorIs(t, r.Values(make([]int, 4)), ErrLengthMismatch)
	assert.ErrorIs(t, r.SetValues(make([]int, 2)), ErrLengthMismatch)
	assert.ErrorIs(t, r.ValuesSubset([]uint32{1, 2}, make([]int, 1)), ErrLengthMismatch)
	assert.ErrorIs(t, r.SetValuesSubset([]uint32{1}, nil), ErrLengthMismatch)
}
