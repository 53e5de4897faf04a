package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import "time"

// lineSettings is the full set of per-line configuration properties.
type lineSettings struct {
	direction      Direction
	edge           Edge
	bias           Bias
	drive          Drive
	activeLow      bool
	debouncePeriod time.Duration
	eventClock     EventClock
	outputValue    int
}

func defaultSettings() lineSettings {
	return lineSettings{
		direction:  DirectionAsIs,
		edge:       EdgeNone,
		bias:       BiasAsIs,
		drive:      DrivePushPull,
		eventClock: EventClockMonotonic,
	}
}

type propMask uint16

func propBit(p ConfigProperty) propMask {
	return 1 << uint(p-1)
}

// lineOverride is the sparse per-line record: only the properties flagged
// in set take precedence over the defaults.
type lineOverride struct {
	set propMask
	lineSettings
}

// LineConfig holds the configuration for lines used when making a line
// request or when reconfiguring an already requested set of lines.
//
// A new LineConfig starts with a set of sane defaults which apply to every
// requested line. Defaults can be overridden per line; an override, once
// set, takes precedence over the default for that line until explicitly
// cleared. Mutators never fail: invalid values are silently coerced to the
// documented default rather than rejected.
//
// Operating on a LineConfig has no effect on hardware. It only mutates the
// object in memory; the state is snapshotted by Chip.RequestLines or
// LineRequest.Reconfigure. Overrides for lines that do not end up being
// requested are silently ignored.
//
// A LineConfig is not safe for concurrent use.
type LineConfig struct {
	defaults  lineSettings
	overrides map[uint32]*lineOverride
	order     []uint32
}

// ConfigOverride identifies a single overridden (line, property) pair.
type ConfigOverride struct {
	Offset   uint32
	Property ConfigProperty
}

// NewLineConfig returns a LineConfig holding only defaults: direction
// as-is, no edge detection, bias as-is, push-pull drive, active-high, no
// debounce, monotonic event clock and an inactive output value.
func NewLineConfig() *LineConfig {
	return &LineConfig{
		defaults:  defaultSettings(),
		overrides: map[uint32]*lineOverride{},
	}
}

// Reset clears the entire configuration, returning the object to the state
// NewLineConfig creates. Useful to reuse the object without reallocating.
func (lc *LineConfig) Reset() {
	lc.defaults = defaultSettings()
	lc.overrides = map[uint32]*lineOverride{}
	lc.order = nil
}

func (lc *LineConfig) override(offset uint32) *lineOverride {
	if o, ok := lc.overrides[offset]; ok {
		return o
	}
	o := &lineOverride{lineSettings: lc.defaults}
	lc.overrides[offset] = o
	lc.order = append(lc.order, offset)
	return o
}

func (lc *LineConfig) clear(offset uint32, p ConfigProperty) {
	o, ok := lc.overrides[offset]
	if !ok {
		return
	}
	o.set &^= propBit(p)
	if o.set != 0 {
		return
	}
	delete(lc.overrides, offset)
	for i, off := range lc.order {
		if off == offset {
			lc.order = append(lc.order[:i], lc.order[i+1:]...)
			break
		}
	}
}

func (lc *LineConfig) isOverridden(offset uint32, p ConfigProperty) bool {
	o, ok := lc.overrides[offset]
	return ok && o.set&propBit(p) != 0
}

// effective returns the settings for offset as they would be applied by a
// request: the override where present, the default otherwise.
func (lc *LineConfig) effective(offset uint32) lineSettings {
	s := lc.defaults
	o, ok := lc.overrides[offset]
	if !ok {
		return s
	}
	if o.set&propBit(PropertyDirection) != 0 {
		s.direction = o.direction
	}
	if o.set&propBit(PropertyEdgeDetection) != 0 {
		s.edge = o.edge
	}
	if o.set&propBit(PropertyBias) != 0 {
		s.bias = o.bias
	}
	if o.set&propBit(PropertyDrive) != 0 {
		s.drive = o.drive
	}
	if o.set&propBit(PropertyActiveLow) != 0 {
		s.activeLow = o.activeLow
	}
	if o.set&propBit(PropertyDebouncePeriod) != 0 {
		s.debouncePeriod = o.debouncePeriod
	}
	if o.set&propBit(PropertyEventClock) != 0 {
		s.eventClock = o.eventClock
	}
	if o.set&propBit(PropertyOutputValue) != 0 {
		s.outputValue = o.outputValue
	}
	return s
}

// Overrides enumerates every currently overridden (offset, property) pair.
// Each pair appears exactly once, in override insertion order.
func (lc *LineConfig) Overrides() []ConfigOverride {
	var oo []ConfigOverride
	props := []ConfigProperty{
		PropertyDirection, PropertyEdgeDetection, PropertyBias,
		PropertyDrive, PropertyActiveLow, PropertyDebouncePeriod,
		PropertyEventClock, PropertyOutputValue,
	}
	for _, offset := range lc.order {
		o := lc.overrides[offset]
		for _, p := range props {
			if o.set&propBit(p) != 0 {
				oo = append(oo, ConfigOverride{Offset: offset, Property: p})
			}
		}
	}
	return oo
}

// SetDirectionDefault sets the direction applied to lines without a
// direction override. Invalid values are coerced to DirectionAsIs.
func (lc *LineConfig) SetDirectionDefault(d Direction) {
	if !d.valid() {
		d = DirectionAsIs
	}
	lc.defaults.direction = d
}

// SetDirectionOverride sets the direction for a single line.
func (lc *LineConfig) SetDirectionOverride(d Direction, offset uint32) {
	if !d.valid() {
		d = DirectionAsIs
	}
	o := lc.override(offset)
	o.direction = d
	o.set |= propBit(PropertyDirection)
}

// ClearDirectionOverride removes the direction override for a line, if any.
func (lc *LineConfig) ClearDirectionOverride(offset uint32) {
	lc.clear(offset, PropertyDirection)
}

// DirectionIsOverridden reports whether the line has a direction override.
func (lc *LineConfig) DirectionIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyDirection)
}

// DirectionDefault returns the default direction setting.
func (lc *LineConfig) DirectionDefault() Direction {
	return lc.defaults.direction
}

// DirectionOffset returns the direction that would be applied to the line
// if this config were used in a request.
func (lc *LineConfig) DirectionOffset(offset uint32) Direction {
	return lc.effective(offset).direction
}

// SetEdgeDetectionDefault sets the edge detection applied to lines without
// an edge override. Invalid values are coerced to EdgeNone.
func (lc *LineConfig) SetEdgeDetectionDefault(e Edge) {
	if !e.valid() {
		e = EdgeNone
	}
	lc.defaults.edge = e
}

// SetEdgeDetectionOverride sets the edge detection for a single line.
func (lc *LineConfig) SetEdgeDetectionOverride(e Edge, offset uint32) {
	if !e.valid() {
		e = EdgeNone
	}
	o := lc.override(offset)
	o.edge = e
	o.set |= propBit(PropertyEdgeDetection)
}

// ClearEdgeDetectionOverride removes the edge override for a line, if any.
func (lc *LineConfig) ClearEdgeDetectionOverride(offset uint32) {
	lc.clear(offset, PropertyEdgeDetection)
}

// EdgeDetectionIsOverridden reports whether the line has an edge override.
func (lc *LineConfig) EdgeDetectionIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyEdgeDetection)
}

// EdgeDetectionDefault returns the default edge detection setting.
func (lc *LineConfig) EdgeDetectionDefault() Edge {
	return lc.defaults.edge
}

// EdgeDetectionOffset returns the edge detection that would be applied to
// the line if this config were used in a request.
func (lc *LineConfig) EdgeDetectionOffset(offset uint32) Edge {
	return lc.effective(offset).edge
}

// SetBiasDefault sets the bias applied to lines without a bias override.
// Invalid values, including BiasUnknown, are coerced to BiasAsIs.
func (lc *LineConfig) SetBiasDefault(b Bias) {
	if !b.valid() || b == BiasUnknown {
		b = BiasAsIs
	}
	lc.defaults.bias = b
}

// SetBiasOverride sets the bias for a single line.
func (lc *LineConfig) SetBiasOverride(b Bias, offset uint32) {
	if !b.valid() || b == BiasUnknown {
		b = BiasAsIs
	}
	o := lc.override(offset)
	o.bias = b
	o.set |= propBit(PropertyBias)
}

// ClearBiasOverride removes the bias override for a line, if any.
func (lc *LineConfig) ClearBiasOverride(offset uint32) {
	lc.clear(offset, PropertyBias)
}

// BiasIsOverridden reports whether the line has a bias override.
func (lc *LineConfig) BiasIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyBias)
}

// BiasDefault returns the default bias setting.
func (lc *LineConfig) BiasDefault() Bias {
	return lc.defaults.bias
}

// BiasOffset returns the bias that would be applied to the line if this
// config were used in a request.
func (lc *LineConfig) BiasOffset(offset uint32) Bias {
	return lc.effective(offset).bias
}

// SetDriveDefault sets the drive applied to lines without a drive
// override. Invalid values are coerced to DrivePushPull.
func (lc *LineConfig) SetDriveDefault(d Drive) {
	if !d.valid() {
		d = DrivePushPull
	}
	lc.defaults.drive = d
}

// SetDriveOverride sets the drive for a single line.
func (lc *LineConfig) SetDriveOverride(d Drive, offset uint32) {
	if !d.valid() {
		d = DrivePushPull
	}
	o := lc.override(offset)
	o.drive = d
	o.set |= propBit(PropertyDrive)
}

// ClearDriveOverride removes the drive override for a line, if any.
func (lc *LineConfig) ClearDriveOverride(offset uint32) {
	lc.clear(offset, PropertyDrive)
}

// DriveIsOverridden reports whether the line has a drive override.
func (lc *LineConfig) DriveIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyDrive)
}

// DriveDefault returns the default drive setting.
func (lc *LineConfig) DriveDefault() Drive {
	return lc.defaults.drive
}

// DriveOffset returns the drive that would be applied to the line if this
// config were used in a request.
func (lc *LineConfig) DriveOffset(offset uint32) Drive {
	return lc.effective(offset).drive
}

// SetActiveLowDefault sets the active-low flag applied to lines without an
// active-low override.
func (lc *LineConfig) SetActiveLowDefault(activeLow bool) {
	lc.defaults.activeLow = activeLow
}

// SetActiveLowOverride sets the active-low flag for a single line.
func (lc *LineConfig) SetActiveLowOverride(activeLow bool, offset uint32) {
	o := lc.override(offset)
	o.activeLow = activeLow
	o.set |= propBit(PropertyActiveLow)
}

// ClearActiveLowOverride removes the active-low override for a line, if any.
func (lc *LineConfig) ClearActiveLowOverride(offset uint32) {
	lc.clear(offset, PropertyActiveLow)
}

// ActiveLowIsOverridden reports whether the line has an active-low override.
func (lc *LineConfig) ActiveLowIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyActiveLow)
}

// ActiveLowDefault returns the default active-low setting.
func (lc *LineConfig) ActiveLowDefault() bool {
	return lc.defaults.activeLow
}

// ActiveLowOffset returns the active-low flag that would be applied to the
// line if this config were used in a request.
func (lc *LineConfig) ActiveLowOffset(offset uint32) bool {
	return lc.effective(offset).activeLow
}

// SetDebouncePeriodDefault sets the debounce period applied to lines
// without a debounce override. Negative periods are coerced to zero, which
// disables debouncing.
func (lc *LineConfig) SetDebouncePeriodDefault(period time.Duration) {
	if period < 0 {
		period = 0
	}
	lc.defaults.debouncePeriod = period
}

// SetDebouncePeriodOverride sets the debounce period for a single line.
func (lc *LineConfig) SetDebouncePeriodOverride(period time.Duration, offset uint32) {
	if period < 0 {
		period = 0
	}
	o := lc.override(offset)
	o.debouncePeriod = period
	o.set |= propBit(PropertyDebouncePeriod)
}

// ClearDebouncePeriodOverride removes the debounce override for a line, if
// any.
func (lc *LineConfig) ClearDebouncePeriodOverride(offset uint32) {
	lc.clear(offset, PropertyDebouncePeriod)
}

// DebouncePeriodIsOverridden reports whether the line has a debounce
// override.
func (lc *LineConfig) DebouncePeriodIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyDebouncePeriod)
}

// DebouncePeriodDefault returns the default debounce period.
func (lc *LineConfig) DebouncePeriodDefault() time.Duration {
	return lc.defaults.debouncePeriod
}

// DebouncePeriodOffset returns the debounce period that would be applied
// to the line if this config were used in a request. Zero means
// debouncing is disabled.
func (lc *LineConfig) DebouncePeriodOffset(offset uint32) time.Duration {
	return lc.effective(offset).debouncePeriod
}

// SetEventClockDefault sets the event clock applied to lines without an
// event clock override. Invalid values are coerced to EventClockMonotonic.
func (lc *LineConfig) SetEventClockDefault(c EventClock) {
	if !c.valid() {
		c = EventClockMonotonic
	}
	lc.defaults.eventClock = c
}

// SetEventClockOverride sets the event clock for a single line.
func (lc *LineConfig) SetEventClockOverride(c EventClock, offset uint32) {
	if !c.valid() {
		c = EventClockMonotonic
	}
	o := lc.override(offset)
	o.eventClock = c
	o.set |= propBit(PropertyEventClock)
}

// ClearEventClockOverride removes the event clock override for a line, if
// any.
func (lc *LineConfig) ClearEventClockOverride(offset uint32) {
	lc.clear(offset, PropertyEventClock)
}

// EventClockIsOverridden reports whether the line has an event clock
// override.
func (lc *LineConfig) EventClockIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyEventClock)
}

// EventClockDefault returns the default event clock setting.
func (lc *LineConfig) EventClockDefault() EventClock {
	return lc.defaults.eventClock
}

// EventClockOffset returns the event clock that would be applied to the
// line if this config were used in a request.
func (lc *LineConfig) EventClockOffset(offset uint32) EventClock {
	return lc.effective(offset).eventClock
}

// SetOutputValueDefault sets the output value applied to output lines
// without an output value override. Any non-zero value is coerced to 1.
func (lc *LineConfig) SetOutputValueDefault(value int) {
	lc.defaults.outputValue = clampValue(value)
}

// SetOutputValueOverride sets the output value for a single line.
func (lc *LineConfig) SetOutputValueOverride(value int, offset uint32) {
	o := lc.override(offset)
	o.outputValue = clampValue(value)
	o.set |= propBit(PropertyOutputValue)
}

// SetOutputValues sets output value overrides for multiple lines in one
// call, pairing offsets[i] with values[i]. It fails with ErrLengthMismatch
// if the two slices differ in length.
func (lc *LineConfig) SetOutputValues(offsets []uint32, values []int) error {
	if len(offsets) != len(values) {
		return ErrLengthMismatch
	}
	for i, offset := range offsets {
		lc.SetOutputValueOverride(values[i], offset)
	}
	return nil
}

// ClearOutputValueOverride removes the output value override for a line,
// if any.
func (lc *LineConfig) ClearOutputValueOverride(offset uint32) {
	lc.clear(offset, PropertyOutputValue)
}

// OutputValueIsOverridden reports whether the line has an output value
// override.
func (lc *LineConfig) OutputValueIsOverridden(offset uint32) bool {
	return lc.isOverridden(offset, PropertyOutputValue)
}

// OutputValueDefault returns the default output value, 0 or 1.
func (lc *LineConfig) OutputValueDefault() int {
	return lc.defaults.outputValue
}

// OutputValueOffset returns the output value that would be applied to the
// line if this config were used in a request, 0 or 1.
func (lc *LineConfig) OutputValueOffset(offset uint32) int {
	return lc.effective(offset).outputValue
}

func clampValue(value int) int {
	if value != 0 {
		return 1
	}
	return 0
}
