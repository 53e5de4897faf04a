package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"time"
)

// EdgeEventType identifies the direction of the transition an edge event
// reports.
type EdgeEventType int

const (
	// EdgeEventRising is a transition from inactive to active.
	EdgeEventRising EdgeEventType = iota + 1

	// EdgeEventFalling is a transition from active to inactive.
	EdgeEventFalling
)

func (t EdgeEventType) String() string {
	switch t {
	case EdgeEventRising:
		return "rising"
	case EdgeEventFalling:
		return "falling"
	}
	return "unknown"
}

// EdgeEvent is a single edge detected on a requested line.
type EdgeEvent struct {
	// Type is the direction of the transition.
	Type EdgeEventType

	// Timestamp is the time of the transition, as an elapsed duration
	// since the epoch of the event clock configured for the line.
	Timestamp time.Duration

	// Offset is the chip offset of the line the event occurred on.
	Offset uint32

	// Seqno is the sequence number of the event within the request,
	// counting across all requested lines, starting at 1.
	Seqno uint32

	// LineSeqno is the sequence number of the event on its line,
	// starting at 1.
	LineSeqno uint32
}

const (
	defaultEventBufferCapacity = 64
	maxEventBufferCapacity     = 1024
)

// EdgeEventBuffer holds edge events drained from a request by
// LineRequest.ReadEdgeEvents. Reusing one buffer across reads avoids
// allocating per event.
//
// An EdgeEventBuffer is not safe for concurrent use.
type EdgeEventBuffer struct {
	events []EdgeEvent
	n      int
}

// NewEdgeEventBuffer returns a buffer able to hold capacity events per
// read. A zero or negative capacity gets the default of 64; capacities
// above 1024 are clipped to 1024.
func NewEdgeEventBuffer(capacity int) *EdgeEventBuffer {
	if capacity <= 0 {
		capacity = defaultEventBufferCapacity
	}
	if capacity > maxEventBufferCapacity {
		capacity = maxEventBufferCapacity
	}
	return &EdgeEventBuffer{events: make([]EdgeEvent, capacity)}
}

// Capacity returns the number of events the buffer can hold.
func (b *EdgeEventBuffer) Capacity() int {
	return len(b.events)
}

// Len returns the number of events stored by the last read.
func (b *EdgeEventBuffer) Len() int {
	return b.n
}

// Event returns the i-th stored event. The pointer aliases the buffer's
// storage and is overwritten by the next read; use EventCopy to retain an
// event across reads.
func (b *EdgeEventBuffer) Event(i int) (*EdgeEvent, error) {
	if i < 0 || i >= b.n {
		return nil, ErrOutOfRange
	}
	return &b.events[i], nil
}

// EventCopy returns a copy of the i-th stored event, independent of the
// buffer.
func (b *EdgeEventBuffer) EventCopy(i int) (EdgeEvent, error) {
	ev, err := b.Event(i)
	if err != nil {
		return EdgeEvent{}, err
	}
	return *ev, nil
}
