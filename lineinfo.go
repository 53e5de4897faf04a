package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"time"
	"unicode/utf8"

	"periph.io/x/gpiod/uapi"
)

// LineInfo is an immutable snapshot of the state of a single line, taken
// at the moment it was read from the kernel. It does not update when the
// line changes; take a fresh snapshot, or watch the line, to observe
// changes.
type LineInfo struct {
	offset         uint32
	name           string
	consumer       string
	named          bool
	consumed       bool
	used           bool
	direction      Direction
	activeLow      bool
	bias           Bias
	drive          Drive
	edge           Edge
	eventClock     EventClock
	debounced      bool
	debouncePeriod time.Duration

	// non-nil only for snapshots returned by Chip.WatchLineInfo.
	watch *chipHandle
}

func lineInfoFromUapi(li *uapi.LineInfo) LineInfo {
	info := LineInfo{
		offset:     li.Offset,
		name:       uapi.BytesToString(li.Name[:]),
		consumer:   uapi.BytesToString(li.Consumer[:]),
		used:       li.Flags&uapi.LineFlagUsed != 0,
		activeLow:  li.Flags&uapi.LineFlagActiveLow != 0,
		direction:  DirectionInput,
		bias:       BiasUnknown,
		drive:      DrivePushPull,
		edge:       EdgeNone,
		eventClock: EventClockMonotonic,
	}
	info.named = len(info.name) != 0
	info.consumed = len(info.consumer) != 0
	if li.Flags&uapi.LineFlagOutput != 0 {
		info.direction = DirectionOutput
	}
	switch {
	case li.Flags&uapi.LineFlagBiasDisabled != 0:
		info.bias = BiasDisabled
	case li.Flags&uapi.LineFlagBiasPullUp != 0:
		info.bias = BiasPullUp
	case li.Flags&uapi.LineFlagBiasPullDown != 0:
		info.bias = BiasPullDown
	}
	switch {
	case li.Flags&uapi.LineFlagOpenDrain != 0:
		info.drive = DriveOpenDrain
	case li.Flags&uapi.LineFlagOpenSource != 0:
		info.drive = DriveOpenSource
	}
	switch li.Flags & (uapi.LineFlagEdgeRising | uapi.LineFlagEdgeFalling) {
	case uapi.LineFlagEdgeRising:
		info.edge = EdgeRising
	case uapi.LineFlagEdgeFalling:
		info.edge = EdgeFalling
	case uapi.LineFlagEdgeRising | uapi.LineFlagEdgeFalling:
		info.edge = EdgeBoth
	}
	switch {
	case li.Flags&uapi.LineFlagEventClockRealtime != 0:
		info.eventClock = EventClockRealtime
	case li.Flags&uapi.LineFlagEventClockHTE != 0:
		info.eventClock = EventClockHTE
	}
	for i := 0; i < int(li.NumAttrs) && i < uapi.LineNumAttrsMax; i++ {
		if li.Attrs[i].ID == uapi.LineAttrIDDebounce {
			info.debounced = true
			info.debouncePeriod = time.Duration(uint32(li.Attrs[i].Value)) * time.Microsecond
		}
	}
	return info
}

// Offset returns the offset of the line on its chip.
func (li *LineInfo) Offset() uint32 {
	return li.offset
}

// Name returns the name of the line, or ErrNotFound if the line is
// unnamed. Names that are not valid UTF-8 fail with ErrInvalidString.
func (li *LineInfo) Name() (string, error) {
	if !li.named {
		return "", ErrNotFound
	}
	if !utf8.ValidString(li.name) {
		return "", ErrInvalidString
	}
	return li.name, nil
}

// Consumer returns the consumer label of the line, or ErrNotFound if the
// line has no consumer. Labels that are not valid UTF-8 fail with
// ErrInvalidString.
func (li *LineInfo) Consumer() (string, error) {
	if !li.consumed {
		return "", ErrNotFound
	}
	if !utf8.ValidString(li.consumer) {
		return "", ErrInvalidString
	}
	return li.consumer, nil
}

// IsUsed reports whether the line was in use when the snapshot was taken,
// by a userspace request or by the kernel itself.
func (li *LineInfo) IsUsed() bool {
	return li.used
}

// Direction returns the direction of the line.
func (li *LineInfo) Direction() Direction {
	return li.direction
}

// IsActiveLow reports whether the logical value of the line is inverted
// relative to its physical level.
func (li *LineInfo) IsActiveLow() bool {
	return li.activeLow
}

// Bias returns the bias of the line. BiasUnknown means the kernel reported
// no bias information for the line.
func (li *LineInfo) Bias() Bias {
	return li.bias
}

// Drive returns the drive of the line.
func (li *LineInfo) Drive() Drive {
	return li.drive
}

// EdgeDetection returns the edge detection of the line.
func (li *LineInfo) EdgeDetection() Edge {
	return li.edge
}

// EventClock returns the clock used to timestamp edge events on the line.
func (li *LineInfo) EventClock() EventClock {
	return li.eventClock
}

// IsDebounced reports whether the line is debounced.
func (li *LineInfo) IsDebounced() bool {
	return li.debounced
}

// DebouncePeriod returns the debounce period of the line, or zero if the
// line is not debounced.
func (li *LineInfo) DebouncePeriod() time.Duration {
	return li.debouncePeriod
}

// Unwatch stops the change notifications the snapshot was obtained with.
// It is a no-op on snapshots not returned by Chip.WatchLineInfo, including
// those embedded in info events, and on repeated calls.
func (li *LineInfo) Unwatch() {
	if li.watch == nil {
		return
	}
	h := li.watch
	li.watch = nil
	h.unwatch(li.offset)
}

// InfoChangeType identifies the kind of change an info event reports.
type InfoChangeType int

const (
	// LineRequested indicates the line has been requested.
	LineRequested InfoChangeType = iota + 1

	// LineReleased indicates the line has been released.
	LineReleased

	// LineConfigChanged indicates the configuration of the line has
	// changed.
	LineConfigChanged
)

// String returns a readable name for the change type.
func (t InfoChangeType) String() string {
	switch t {
	case LineRequested:
		return "requested"
	case LineReleased:
		return "released"
	case LineConfigChanged:
		return "config-changed"
	}
	return "unknown"
}

// InfoEvent is a single line state change notification read from a chip
// with watched lines.
type InfoEvent struct {
	etype     uint32
	timestamp time.Duration
	info      LineInfo
}

func infoEventFromUapi(lic *uapi.LineInfoChanged) InfoEvent {
	return InfoEvent{
		etype:     lic.EventType,
		timestamp: time.Duration(lic.Timestamp),
		info:      lineInfoFromUapi(&lic.Info),
	}
}

// Type returns the kind of change the event reports, or a ValueError if
// the kernel reported a type this library does not know.
func (e *InfoEvent) Type() (InfoChangeType, error) {
	switch e.etype {
	case uapi.LineChangedRequested:
		return LineRequested, nil
	case uapi.LineChangedReleased:
		return LineReleased, nil
	case uapi.LineChangedConfig:
		return LineConfigChanged, nil
	}
	return 0, &ValueError{What: "info event type", Value: uint64(e.etype)}
}

// Timestamp returns the CLOCK_MONOTONIC timestamp of the event as an
// elapsed duration since the clock epoch.
func (e *InfoEvent) Timestamp() time.Duration {
	return e.timestamp
}

// Info returns the state of the line after the change. Calling Unwatch on
// the returned snapshot has no effect.
func (e *InfoEvent) Info() *LineInfo {
	return &e.info
}
