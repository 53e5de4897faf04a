package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"periph.io/x/gpiod/uapi"
)

// chipHandle is the shared state behind one or more Chip objects created
// by Open and Clone. The device fd stays open until the last reference is
// closed.
type chipHandle struct {
	mu      sync.Mutex
	file    *os.File
	refs    int
	watched map[uint32]bool
}

func (h *chipHandle) incref() {
	h.mu.Lock()
	h.refs++
	h.mu.Unlock()
}

func (h *chipHandle) decref() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refs--
	if h.refs > 0 {
		return nil
	}
	return h.file.Close()
}

func (h *chipHandle) fd() uintptr {
	return h.file.Fd()
}

func (h *chipHandle) watch(offset uint32) (uapi.LineInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	li := uapi.LineInfo{Offset: offset}
	if err := uapi.WatchLineInfo(h.fd(), &li); err != nil {
		return li, err
	}
	h.watched[offset] = true
	return li, nil
}

func (h *chipHandle) unwatch(offset uint32) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.watched[offset] {
		return nil
	}
	delete(h.watched, offset)
	return uapi.UnwatchLineInfo(h.fd(), offset)
}

// ChipInfo is a snapshot of the identifying properties of a chip.
type ChipInfo struct {
	// Name is the device name of the chip, e.g. "gpiochip0".
	Name string

	// Label is the hardware label of the chip.
	Label string

	// Lines is the number of lines exposed by the chip.
	Lines uint32
}

// Chip is an open GPIO character device.
//
// The Chip is the entry point for everything line related: inspecting
// lines, watching them for state changes and requesting them for value
// and edge access. Requests stay valid after the Chip that made them is
// closed.
//
// A Chip is safe for concurrent use, though concurrent readers of the
// info event stream will race for events.
type Chip struct {
	h *chipHandle

	mu     sync.Mutex
	closed bool

	path  string
	name  string
	label string
	lines uint32
}

// Open opens the GPIO character device at path.
//
// Open fails with a DeviceOpenError if the path does not exist, is not a
// character device (unix.ENOTTY) or does not respond as a GPIO chip.
func Open(path string) (*Chip, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &DeviceOpenError{Path: path, Err: err}
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return nil, &DeviceOpenError{Path: path, Err: unix.ENOTTY}
	}
	f, err := os.OpenFile(path, unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &DeviceOpenError{Path: path, Err: err}
	}
	ci, err := uapi.GetChipInfo(f.Fd())
	if err != nil {
		f.Close()
		return nil, &DeviceOpenError{Path: path, Err: err}
	}
	c := &Chip{
		h: &chipHandle{
			file:    f,
			refs:    1,
			watched: map[uint32]bool{},
		},
		path:  path,
		name:  uapi.BytesToString(ci.Name[:]),
		label: uapi.BytesToString(ci.Label[:]),
		lines: ci.Lines,
	}
	return c, nil
}

// IsChipDevice reports whether the path points at a GPIO character device.
func IsChipDevice(path string) bool {
	c, err := Open(path)
	if err != nil {
		return false
	}
	c.Close()
	return true
}

// Clone returns a second handle to the same device. The clone is closed
// independently; the device fd stays open until every handle is closed.
func (c *Chip) Clone() (*Chip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	c.h.incref()
	return &Chip{
		h:     c.h,
		path:  c.path,
		name:  c.name,
		label: c.label,
		lines: c.lines,
	}, nil
}

// Close releases this handle to the chip. Requests made through the chip
// are unaffected. Closing twice fails with ErrClosed.
func (c *Chip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	return c.h.decref()
}

func (c *Chip) handle() (*chipHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	return c.h, nil
}

// Path returns the path the chip was opened with.
func (c *Chip) Path() string {
	return c.path
}

// Name returns the device name of the chip, e.g. "gpiochip0".
func (c *Chip) Name() string {
	return c.name
}

// Label returns the hardware label of the chip.
func (c *Chip) Label() string {
	return c.label
}

// Lines returns the number of lines exposed by the chip.
func (c *Chip) Lines() uint32 {
	return c.lines
}

// Info returns the chip identity as one snapshot.
func (c *Chip) Info() ChipInfo {
	return ChipInfo{Name: c.name, Label: c.label, Lines: c.lines}
}

// LineInfo returns a snapshot of the state of the line at offset.
// Offsets outside the chip fail with ErrInvalidOffset.
func (c *Chip) LineInfo(offset uint32) (*LineInfo, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	if offset >= c.lines {
		return nil, ErrInvalidOffset
	}
	li, err := uapi.GetLineInfo(h.fd(), offset)
	if err != nil {
		return nil, opErr("line-info", err)
	}
	info := lineInfoFromUapi(&li)
	return &info, nil
}

// WatchLineInfo returns a snapshot of the line at offset and arms change
// notifications for it. Subsequent requests, releases and reconfigurations
// of the line surface as info events on the chip, readable with
// WaitInfoEvent and ReadInfoEvent. Call Unwatch on the returned snapshot,
// or Unwatch on the chip, to disarm.
func (c *Chip) WatchLineInfo(offset uint32) (*LineInfo, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	if offset >= c.lines {
		return nil, ErrInvalidOffset
	}
	li, err := h.watch(offset)
	if err != nil {
		return nil, opErr("line-info-watch", err)
	}
	info := lineInfoFromUapi(&li)
	info.watch = h
	return &info, nil
}

// Unwatch disarms change notifications for the line at offset. Unwatching
// a line that is not watched is a no-op.
func (c *Chip) Unwatch(offset uint32) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	if err := h.unwatch(offset); err != nil {
		return opErr("line-info-unwatch", err)
	}
	return nil
}

// FindLine returns the offset of the first line on the chip with the given
// name, scanning offsets in ascending order. Line names are not guaranteed
// unique; duplicates after the first are not reported. Fails with
// ErrNotFound if no line has the name.
func (c *Chip) FindLine(name string) (uint32, error) {
	h, err := c.handle()
	if err != nil {
		return 0, err
	}
	for offset := uint32(0); offset < c.lines; offset++ {
		li, err := uapi.GetLineInfo(h.fd(), offset)
		if err != nil {
			return 0, opErr("line-info", err)
		}
		if uapi.BytesToString(li.Name[:]) == name {
			return offset, nil
		}
	}
	return 0, ErrNotFound
}

// WaitInfoEvent blocks until an info event is queued on the chip, or the
// timeout expires, whichever comes first. A negative timeout blocks
// indefinitely. Returns ErrTimeout on expiry.
func (c *Chip) WaitInfoEvent(timeout time.Duration) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	ready, err := uapi.WaitReadable(h.fd(), timeout)
	if err != nil {
		return opErr("info-event-wait", err)
	}
	if !ready {
		return ErrTimeout
	}
	return nil
}

// ReadInfoEvent reads a single info event from the chip, blocking until
// one is queued. Use WaitInfoEvent, or poll Fd directly, to avoid
// blocking.
func (c *Chip) ReadInfoEvent() (*InfoEvent, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	lic, err := uapi.ReadLineInfoChanged(h.fd())
	if err != nil {
		return nil, opErr("info-event-read", err)
	}
	ev := infoEventFromUapi(&lic)
	return &ev, nil
}

// Fd returns the file descriptor of the chip, suitable for poll(2) and
// friends to multiplex info events with other work. The fd belongs to
// the Chip; do not close it.
func (c *Chip) Fd() uintptr {
	return c.h.fd()
}

// RequestLines requests the lines described by rcfg with the line
// configuration lcfg. Either config may be nil for all defaults, though a
// nil rcfg selects no lines, which the kernel rejects. On success the
// returned request owns the lines until it is closed; the chip itself may
// be closed without affecting it.
//
// Kernel rejections pass through with their OS error code intact, e.g.
// unix.EBUSY for a line already in use and unix.EINVAL for an offset
// beyond the chip or an empty offset set.
func (c *Chip) RequestLines(rcfg *RequestConfig, lcfg *LineConfig) (*LineRequest, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	if rcfg == nil {
		rcfg = NewRequestConfig()
	}
	if lcfg == nil {
		lcfg = NewLineConfig()
	}
	offsets := rcfg.Offsets()
	var lr uapi.LineRequest
	lr.Lines = uint32(len(offsets))
	copy(lr.Offsets[:], offsets)
	copy(lr.Consumer[:uapi.NameSize-1], rcfg.consumer)
	lr.EventBufferSize = uint32(rcfg.eventBufferSize)
	lr.Config, err = lineConfigToUapi(lcfg, offsets)
	if err != nil {
		return nil, err
	}
	if err := uapi.GetLine(h.fd(), &lr); err != nil {
		return nil, opErr("line-request", err)
	}
	return &LineRequest{
		fd:      int(lr.Fd),
		offsets: offsets,
	}, nil
}
