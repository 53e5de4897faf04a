package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeEventBuffer(t *testing.T) {
	assert.Equal(t, 64, NewEdgeEventBuffer(0).Capacity())
	assert.Equal(t, 64, NewEdgeEventBuffer(-5).Capacity())
	assert.Equal(t, 123, NewEdgeEventBuffer(123).Capacity())
	assert.Equal(t, 1024, NewEdgeEventBuffer(2048).Capacity())
}

func TestEdgeEventBufferEvent(t *testing.T) {
	b := NewEdgeEventBuffer(4)
	assert.Equal(t, 0, b.Len())

	_, err := b.Event(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	b.events[0] = EdgeEvent{Type: EdgeEventRising, Offset: 3, Seqno: 1, LineSeqno: 1}
	b.events[1] = EdgeEvent{Type: EdgeEventFalling, Offset: 3, Seqno: 2, LineSeqno: 2}
	b.n = 2

	ev, err := b.Event(1)
	require.NoError(t, err)
	assert.Equal(t, EdgeEventFalling, ev.Type)
	assert.Equal(t, uint32(2), ev.Seqno)

	// copies do not alias the buffer
	cp, err := b.EventCopy(0)
	require.NoError(t, err)
	b.events[0].Offset = 9
	assert.Equal(t, uint32(3), cp.Offset)

	_, err = b.Event(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.EventCopy(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
