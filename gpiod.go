package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Version is the library version string.
const Version = "2.0.1"

// Direction is the direction setting of a line.
type Direction int

const (
	// DirectionAsIs requests the line without changing its direction.
	DirectionAsIs Direction = iota + 1

	// DirectionInput makes the line an input.
	DirectionInput

	// DirectionOutput makes the line an output.
	DirectionOutput
)

func (d Direction) valid() bool {
	return d >= DirectionAsIs && d <= DirectionOutput
}

func (d Direction) String() string {
	switch d {
	case DirectionAsIs:
		return "as-is"
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	}
	return "unknown"
}

// Edge is the edge detection setting of a line.
type Edge int

const (
	// EdgeNone disables edge detection.
	EdgeNone Edge = iota + 1

	// EdgeRising reports transitions from inactive to active.
	EdgeRising

	// EdgeFalling reports transitions from active to inactive.
	EdgeFalling

	// EdgeBoth reports transitions in both directions.
	EdgeBoth
)

func (e Edge) valid() bool {
	return e >= EdgeNone && e <= EdgeBoth
}

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	}
	return "unknown"
}

// Bias is the internal bias setting of a line.
type Bias int

const (
	// BiasAsIs requests the line without changing its bias.
	BiasAsIs Bias = iota + 1

	// BiasUnknown indicates the bias cannot be determined. It is only
	// reported in line info, never requested.
	BiasUnknown

	// BiasDisabled disables the internal bias.
	BiasDisabled

	// BiasPullUp enables the internal pull-up.
	BiasPullUp

	// BiasPullDown enables the internal pull-down.
	BiasPullDown
)

func (b Bias) valid() bool {
	return b >= BiasAsIs && b <= BiasPullDown
}

func (b Bias) String() string {
	switch b {
	case BiasAsIs:
		return "as-is"
	case BiasUnknown:
		return "unknown"
	case BiasDisabled:
		return "disabled"
	case BiasPullUp:
		return "pull-up"
	case BiasPullDown:
		return "pull-down"
	}
	return "unknown"
}

// Drive is the drive setting of an output line.
type Drive int

const (
	// DrivePushPull drives the line both high and low.
	DrivePushPull Drive = iota + 1

	// DriveOpenDrain drives the line low and floats it high.
	DriveOpenDrain

	// DriveOpenSource drives the line high and floats it low.
	DriveOpenSource
)

func (d Drive) valid() bool {
	return d >= DrivePushPull && d <= DriveOpenSource
}

func (d Drive) String() string {
	switch d {
	case DrivePushPull:
		return "push-pull"
	case DriveOpenDrain:
		return "open-drain"
	case DriveOpenSource:
		return "open-source"
	}
	return "unknown"
}

// EventClock is the clock used to timestamp edge events on a line.
type EventClock int

const (
	// EventClockMonotonic timestamps events with CLOCK_MONOTONIC.
	EventClockMonotonic EventClock = iota + 1

	// EventClockRealtime timestamps events with CLOCK_REALTIME.
	EventClockRealtime

	// EventClockHTE timestamps events with the hardware timestamp engine.
	EventClockHTE
)

func (c EventClock) valid() bool {
	return c >= EventClockMonotonic && c <= EventClockHTE
}

func (c EventClock) String() string {
	switch c {
	case EventClockMonotonic:
		return "monotonic"
	case EventClockRealtime:
		return "realtime"
	case EventClockHTE:
		return "hte"
	}
	return "unknown"
}

// ConfigProperty identifies one of the per-line configuration properties
// held by a LineConfig.
type ConfigProperty int

const (
	PropertyDirection ConfigProperty = iota + 1
	PropertyEdgeDetection
	PropertyBias
	PropertyDrive
	PropertyActiveLow
	PropertyDebouncePeriod
	PropertyEventClock
	PropertyOutputValue
)

func (p ConfigProperty) String() string {
	switch p {
	case PropertyDirection:
		return "direction"
	case PropertyEdgeDetection:
		return "edge-detection"
	case PropertyBias:
		return "bias"
	case PropertyDrive:
		return "drive"
	case PropertyActiveLow:
		return "active-low"
	case PropertyDebouncePeriod:
		return "debounce-period"
	case PropertyEventClock:
		return "event-clock"
	case PropertyOutputValue:
		return "output-value"
	}
	return "unknown"
}
