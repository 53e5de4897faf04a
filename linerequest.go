package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"periph.io/x/gpiod/uapi"
)

// LineRequest is a granted request for a set of lines, created by
// Chip.RequestLines. It owns the lines exclusively until closed and is
// the handle for reading and driving their values, reconfiguring them and
// consuming their edge events.
//
// The set of requested offsets is fixed for the life of the request;
// Reconfigure changes line settings, never membership.
//
// A LineRequest is safe for concurrent use.
type LineRequest struct {
	mu      sync.Mutex
	fd      int
	closed  bool
	offsets []uint32
}

// Close releases the requested lines. Closing twice fails with ErrClosed.
func (r *LineRequest) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return unix.Close(r.fd)
}

func (r *LineRequest) reqFd() (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	return uintptr(r.fd), nil
}

// Fd returns the file descriptor of the request, suitable for poll(2) and
// friends to multiplex edge events with other work. The fd belongs to the
// request; do not close it.
func (r *LineRequest) Fd() uintptr {
	return uintptr(r.fd)
}

// NumLines returns the number of requested lines.
func (r *LineRequest) NumLines() int {
	return len(r.offsets)
}

// Offsets returns a copy of the requested offsets, in request order.
func (r *LineRequest) Offsets() []uint32 {
	return append(r.offsets[:0:0], r.offsets...)
}

// bit maps an offset to its bit position within the request, or -1 when
// the offset is not part of the request.
func (r *LineRequest) bit(offset uint32) int {
	for i, o := range r.offsets {
		if o == offset {
			return i
		}
	}
	return -1
}

// Value returns the logical value, 0 or 1, of the line at offset.
// Offsets not in the request fail with unix.EINVAL.
func (r *LineRequest) Value(offset uint32) (int, error) {
	vv := []int{0}
	if err := r.ValuesSubset([]uint32{offset}, vv); err != nil {
		return 0, err
	}
	return vv[0], nil
}

// Values reads the logical values of all requested lines into values,
// which must hold exactly NumLines elements, in request order. A slice of
// any other length fails with ErrLengthMismatch.
func (r *LineRequest) Values(values []int) error {
	if len(values) != len(r.offsets) {
		return ErrLengthMismatch
	}
	return r.ValuesSubset(r.offsets, values)
}

// ValuesSubset reads the logical values of the lines at offsets into
// values, pairing offsets[i] with values[i]. The slices must be the same
// length or the call fails with ErrLengthMismatch; offsets not in the
// request fail with unix.EINVAL.
func (r *LineRequest) ValuesSubset(offsets []uint32, values []int) error {
	if len(offsets) != len(values) {
		return ErrLengthMismatch
	}
	fd, err := r.reqFd()
	if err != nil {
		return err
	}
	var lv uapi.LineValues
	bits := make([]int, len(offsets))
	for i, offset := range offsets {
		n := r.bit(offset)
		if n == -1 {
			return opErr("get-values", unix.EINVAL)
		}
		bits[i] = n
		lv.Mask |= 1 << uint(n)
	}
	if err := uapi.GetLineValues(fd, &lv); err != nil {
		return opErr("get-values", err)
	}
	for i, n := range bits {
		values[i] = lv.Get(n)
	}
	return nil
}

// SetValue drives the line at offset to the logical value, any non-zero
// value meaning active. Offsets not in the request fail with unix.EINVAL.
func (r *LineRequest) SetValue(offset uint32, value int) error {
	return r.SetValuesSubset([]uint32{offset}, []int{value})
}

// SetValues drives all requested lines to the logical values in values,
// which must hold exactly NumLines elements, in request order. A slice of
// any other length fails with ErrLengthMismatch.
func (r *LineRequest) SetValues(values []int) error {
	if len(values) != len(r.offsets) {
		return ErrLengthMismatch
	}
	return r.SetValuesSubset(r.offsets, values)
}

// SetValuesSubset drives the lines at offsets to the logical values in
// values, pairing offsets[i] with values[i]. The slices must be the same
// length or the call fails with ErrLengthMismatch; offsets not in the
// request fail with unix.EINVAL.
func (r *LineRequest) SetValuesSubset(offsets []uint32, values []int) error {
	if len(offsets) != len(values) {
		return ErrLengthMismatch
	}
	fd, err := r.reqFd()
	if err != nil {
		return err
	}
	var lv uapi.LineValues
	for i, offset := range offsets {
		n := r.bit(offset)
		if n == -1 {
			return opErr("set-values", unix.EINVAL)
		}
		lv.Set(n, values[i])
	}
	if err := uapi.SetLineValues(fd, &lv); err != nil {
		return opErr("set-values", err)
	}
	return nil
}

// Reconfigure atomically replaces the configuration of all requested
// lines with the state of lcfg, which may be nil for all defaults. The
// set of lines is unchanged; overrides in lcfg for offsets outside the
// request are ignored.
func (r *LineRequest) Reconfigure(lcfg *LineConfig) error {
	fd, err := r.reqFd()
	if err != nil {
		return err
	}
	if lcfg == nil {
		lcfg = NewLineConfig()
	}
	config, err := lineConfigToUapi(lcfg, r.offsets)
	if err != nil {
		return err
	}
	if err := uapi.SetLineConfig(fd, &config); err != nil {
		return opErr("reconfigure", err)
	}
	return nil
}

// WaitEdgeEvent blocks until an edge event is queued on the request, or
// the timeout expires, whichever comes first. A negative timeout blocks
// indefinitely. Returns ErrTimeout on expiry.
func (r *LineRequest) WaitEdgeEvent(timeout time.Duration) error {
	fd, err := r.reqFd()
	if err != nil {
		return err
	}
	ready, err := uapi.WaitReadable(fd, timeout)
	if err != nil {
		return opErr("edge-event-wait", err)
	}
	if !ready {
		return ErrTimeout
	}
	return nil
}

// ReadEdgeEvents drains up to max queued edge events into buf in one read,
// blocking until at least one event is queued. At most buf.Capacity()
// events are read regardless of max; max <= 0 means the buffer capacity.
// Returns the number of events stored.
func (r *LineRequest) ReadEdgeEvents(buf *EdgeEventBuffer, max int) (int, error) {
	fd, err := r.reqFd()
	if err != nil {
		return 0, err
	}
	if max <= 0 || max > buf.Capacity() {
		max = buf.Capacity()
	}
	events, err := uapi.ReadLineEvents(fd, max)
	if err != nil {
		return 0, opErr("edge-event-read", err)
	}
	buf.n = 0
	for i := range events {
		ev := &events[i]
		var etype EdgeEventType
		switch ev.ID {
		case uapi.LineEventRisingEdge:
			etype = EdgeEventRising
		case uapi.LineEventFallingEdge:
			etype = EdgeEventFalling
		default:
			return 0, &ValueError{What: "edge event type", Value: uint64(ev.ID)}
		}
		buf.events[i] = EdgeEvent{
			Type:      etype,
			Timestamp: time.Duration(ev.Timestamp),
			Offset:    ev.Offset,
			Seqno:     ev.Seqno,
			LineSeqno: ev.LineSeqno,
		}
		buf.n++
	}
	return buf.n, nil
}

// lineFlags maps one line's settings to kernel request flags. Edge
// detection requires the line to be an input, so enabling it forces the
// input flag, as the character device demands.
func lineFlags(s lineSettings) uint64 {
	var flags uint64
	if s.activeLow {
		flags |= uapi.LineFlagActiveLow
	}
	switch s.direction {
	case DirectionInput:
		flags |= uapi.LineFlagInput
	case DirectionOutput:
		flags |= uapi.LineFlagOutput
	}
	switch s.edge {
	case EdgeRising:
		flags |= uapi.LineFlagEdgeRising
	case EdgeFalling:
		flags |= uapi.LineFlagEdgeFalling
	case EdgeBoth:
		flags |= uapi.LineFlagEdgeRising | uapi.LineFlagEdgeFalling
	}
	if s.edge != EdgeNone {
		flags |= uapi.LineFlagInput
		flags &^= uapi.LineFlagOutput
	}
	switch s.bias {
	case BiasDisabled:
		flags |= uapi.LineFlagBiasDisabled
	case BiasPullUp:
		flags |= uapi.LineFlagBiasPullUp
	case BiasPullDown:
		flags |= uapi.LineFlagBiasPullDown
	}
	switch s.drive {
	case DriveOpenDrain:
		flags |= uapi.LineFlagOpenDrain
	case DriveOpenSource:
		flags |= uapi.LineFlagOpenSource
	}
	switch s.eventClock {
	case EventClockRealtime:
		flags |= uapi.LineFlagEventClockRealtime
	case EventClockHTE:
		flags |= uapi.LineFlagEventClockHTE
	}
	return flags
}

// lineConfigToUapi flattens lcfg for the given request offsets into the
// kernel config struct. The flag pattern shared by the most lines becomes
// the base; each minority pattern, the output values and each distinct
// debounce period take one of the ten attribute slots. Configurations
// needing more than ten slots fail with unix.E2BIG, as the kernel itself
// would reject them.
func lineConfigToUapi(lcfg *LineConfig, offsets []uint32) (uapi.LineConfig, error) {
	var config uapi.LineConfig

	flags := make([]uint64, len(offsets))
	settings := make([]lineSettings, len(offsets))
	for i, offset := range offsets {
		settings[i] = lcfg.effective(offset)
		flags[i] = lineFlags(settings[i])
	}

	// base flags are the most common pattern, first seen breaking ties.
	var patterns []uint64
	counts := map[uint64]int{}
	for _, f := range flags {
		if counts[f] == 0 {
			patterns = append(patterns, f)
		}
		counts[f]++
	}
	var base uint64
	best := 0
	for _, p := range patterns {
		if counts[p] > best {
			base = p
			best = counts[p]
		}
	}
	config.Flags = base

	addAttr := func(attr uapi.LineAttribute, mask uint64) error {
		if int(config.NumAttrs) >= uapi.LineNumAttrsMax {
			return opErr("line-config", unix.E2BIG)
		}
		config.Attrs[config.NumAttrs] = uapi.LineConfigAttribute{Attr: attr, Mask: mask}
		config.NumAttrs++
		return nil
	}

	for _, p := range patterns {
		if p == base {
			continue
		}
		var mask uint64
		for i, f := range flags {
			if f == p {
				mask |= 1 << uint(i)
			}
		}
		attr := uapi.LineAttribute{ID: uapi.LineAttrIDFlags, Value: p}
		if err := addAttr(attr, mask); err != nil {
			return config, err
		}
	}

	var outMask, outBits uint64
	for i := range settings {
		if flags[i]&uapi.LineFlagOutput == 0 {
			continue
		}
		outMask |= 1 << uint(i)
		if settings[i].outputValue != 0 {
			outBits |= 1 << uint(i)
		}
	}
	if outMask != 0 {
		attr := uapi.LineAttribute{ID: uapi.LineAttrIDOutputValues, Value: outBits}
		if err := addAttr(attr, outMask); err != nil {
			return config, err
		}
	}

	var periods []time.Duration
	debounce := map[time.Duration]uint64{}
	for i := range settings {
		p := settings[i].debouncePeriod
		if p == 0 {
			continue
		}
		if debounce[p] == 0 {
			periods = append(periods, p)
		}
		debounce[p] |= 1 << uint(i)
	}
	for _, p := range periods {
		attr := uapi.LineAttribute{
			ID:    uapi.LineAttrIDDebounce,
			Value: uint64(uint32(p / time.Microsecond)),
		}
		if err := addAttr(attr, debounce[p]); err != nil {
			return config, err
		}
	}

	return config, nil
}
