package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periph.io/x/gpiod/uapi"
)

func TestRequestConfigOffsets(t *testing.T) {
	rc := NewRequestConfig()
	assert.Equal(t, 0, rc.NumOffsets())

	rc.SetOffsets([]uint32{3, 1, 2})
	assert.Equal(t, 3, rc.NumOffsets())
	assert.Equal(t, []uint32{3, 1, 2}, rc.Offsets())

	// the stored set is a copy
	offsets := []uint32{5, 6}
	rc.SetOffsets(offsets)
	offsets[0] = 99
	assert.Equal(t, []uint32{5, 6}, rc.Offsets())
}

func TestRequestConfigOffsetsClipped(t *testing.T) {
	offsets := make([]uint32, uapi.LinesMax+7)
	for i := range offsets {
		offsets[i] = uint32(i)
	}
	rc := NewRequestConfig()

	rc.SetOffsets(offsets)

	require.Equal(t, uapi.LinesMax, rc.NumOffsets())
	assert.Equal(t, offsets[:uapi.LinesMax], rc.Offsets())
}

func TestRequestConfigConsumer(t *testing.T) {
	rc := NewRequestConfig()

	_, err := rc.Consumer()
	assert.ErrorIs(t, err, ErrNotSet)

	rc.SetConsumer("banana")
	consumer, err := rc.Consumer()
	require.NoError(t, err)
	assert.Equal(t, "banana", consumer)

	// the empty consumer counts as set
	rc.SetConsumer("")
	consumer, err = rc.Consumer()
	require.NoError(t, err)
	assert.Equal(t, "", consumer)
}

func TestRequestConfigConsumerTruncated(t *testing.T) {
	long := strings.Repeat("x", uapi.NameSize+10)
	rc := NewRequestConfig()

	rc.SetConsumer(long)

	consumer, err := rc.Consumer()
	require.NoError(t, err)
	assert.Equal(t, long[:uapi.NameSize-1], consumer)
}

func TestRequestConfigEventBufferSize(t *testing.T) {
	rc := NewRequestConfig()
	assert.Equal(t, 0, rc.EventBufferSize())

	rc.SetEventBufferSize(128)
	assert.Equal(t, 128, rc.EventBufferSize())

	rc.SetEventBufferSize(-1)
	assert.Equal(t, 0, rc.EventBufferSize())
}
