// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uapi contains the wire-level definitions of the Linux GPIO
// character device uAPI (v2) and thin wrappers around the ioctl() and
// read() calls that drive it.
//
// https://docs.kernel.org/userspace-api/gpio/chardev.html
//
// All functions return the raw unix.Errno on failure so callers can
// preserve the OS error code when wrapping.
package uapi

import (
	"bytes"
	"encoding/binary"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Limits imposed by the kernel ABI.
const (
	// NameSize is the size of the name and consumer fields, including the
	// terminating NUL.
	NameSize = 32

	// LinesMax is the maximum number of lines in a single request.
	LinesMax = 64

	// LineNumAttrsMax is the maximum number of config attributes in a
	// single request.
	LineNumAttrsMax = 10
)

// Line flags, from struct gpio_v2_line_flag.
const (
	LineFlagUsed               uint64 = 1 << 0
	LineFlagActiveLow          uint64 = 1 << 1
	LineFlagInput              uint64 = 1 << 2
	LineFlagOutput             uint64 = 1 << 3
	LineFlagEdgeRising         uint64 = 1 << 4
	LineFlagEdgeFalling        uint64 = 1 << 5
	LineFlagOpenDrain          uint64 = 1 << 6
	LineFlagOpenSource         uint64 = 1 << 7
	LineFlagBiasPullUp         uint64 = 1 << 8
	LineFlagBiasPullDown       uint64 = 1 << 9
	LineFlagBiasDisabled       uint64 = 1 << 10
	LineFlagEventClockRealtime uint64 = 1 << 11
	LineFlagEventClockHTE      uint64 = 1 << 12
)

// Line attribute IDs, from enum gpio_v2_line_attr_id.
const (
	LineAttrIDFlags        uint32 = 1
	LineAttrIDOutputValues uint32 = 2
	LineAttrIDDebounce     uint32 = 3
)

// Edge event IDs, from enum gpio_v2_line_event_id.
const (
	LineEventRisingEdge  uint32 = 1
	LineEventFallingEdge uint32 = 2
)

// Info event IDs, from enum gpio_v2_line_changed_type.
const (
	LineChangedRequested uint32 = 1
	LineChangedReleased  uint32 = 2
	LineChangedConfig    uint32 = 3
)

// ChipInfo is struct gpiochip_info.
type ChipInfo struct {
	Name  [NameSize]byte
	Label [NameSize]byte
	Lines uint32
}

// LineAttribute is struct gpio_v2_line_attribute.
//
// Value is a union in the kernel struct. For LineAttrIDFlags and
// LineAttrIDOutputValues the full 64 bits are used; for LineAttrIDDebounce
// only the low 32 bits carry the period in microseconds.
type LineAttribute struct {
	ID      uint32
	Padding uint32
	Value   uint64
}

// LineConfigAttribute is struct gpio_v2_line_config_attribute.
type LineConfigAttribute struct {
	Attr LineAttribute
	Mask uint64
}

// LineConfig is struct gpio_v2_line_config.
type LineConfig struct {
	Flags    uint64
	NumAttrs uint32
	Padding  [5]uint32
	Attrs    [LineNumAttrsMax]LineConfigAttribute
}

// LineRequest is struct gpio_v2_line_request.
type LineRequest struct {
	Offsets         [LinesMax]uint32
	Consumer        [NameSize]byte
	Config          LineConfig
	Lines           uint32
	EventBufferSize uint32
	Padding         [5]uint32
	Fd              int32
}

// LineValues is struct gpio_v2_line_values.
type LineValues struct {
	Bits uint64
	Mask uint64
}

// Get returns the value of bit n.
func (lv *LineValues) Get(n int) int {
	if lv.Bits&(1<<uint(n)) != 0 {
		return 1
	}
	return 0
}

// Set assigns bit n to v and marks it in the mask.
func (lv *LineValues) Set(n, v int) {
	lv.Mask |= 1 << uint(n)
	if v != 0 {
		lv.Bits |= 1 << uint(n)
	} else {
		lv.Bits &^= 1 << uint(n)
	}
}

// LineInfo is struct gpio_v2_line_info.
type LineInfo struct {
	Name     [NameSize]byte
	Consumer [NameSize]byte
	Offset   uint32
	NumAttrs uint32
	Flags    uint64
	Attrs    [LineNumAttrsMax]LineAttribute
	Padding  [4]uint32
}

// LineInfoChanged is struct gpio_v2_line_info_changed, delivered on the
// chip fd for watched lines.
type LineInfoChanged struct {
	Info      LineInfo
	Timestamp uint64
	EventType uint32
	Padding   [5]uint32
}

// LineEvent is struct gpio_v2_line_event, delivered on the request fd for
// lines with edge detection enabled.
type LineEvent struct {
	Timestamp uint64
	ID        uint32
	Offset    uint32
	Seqno     uint32
	LineSeqno uint32
	Padding   [6]uint32
}

// LineEventSize is the wire size of a single edge event record.
var LineEventSize = int(unsafe.Sizeof(LineEvent{}))

// ioctl request codes, computed in init() since they encode struct sizes.
var (
	getChipInfoIoctl     uintptr
	getLineInfoIoctl     uintptr
	watchLineInfoIoctl   uintptr
	unwatchLineInfoIoctl uintptr
	getLineIoctl         uintptr
	setLineConfigIoctl   uintptr
	getLineValuesIoctl   uintptr
	setLineValuesIoctl   uintptr
)

const (
	iocWrite = 1
	iocRead  = 2

	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNrShift | size<<iocSizeShift
}

func ior(typ, nr, size uintptr) uintptr {
	return ioc(iocRead, typ, nr, size)
}

func iorw(typ, nr, size uintptr) uintptr {
	return ioc(iocRead|iocWrite, typ, nr, size)
}

func init() {
	var ci ChipInfo
	getChipInfoIoctl = ior(0xB4, 0x01, unsafe.Sizeof(ci))
	var li LineInfo
	getLineInfoIoctl = iorw(0xB4, 0x05, unsafe.Sizeof(li))
	watchLineInfoIoctl = iorw(0xB4, 0x06, unsafe.Sizeof(li))
	unwatchLineInfoIoctl = iorw(0xB4, 0x0C, unsafe.Sizeof(li.Offset))
	var lr LineRequest
	getLineIoctl = iorw(0xB4, 0x07, unsafe.Sizeof(lr))
	var lc LineConfig
	setLineConfigIoctl = iorw(0xB4, 0x0D, unsafe.Sizeof(lc))
	var lv LineValues
	getLineValuesIoctl = iorw(0xB4, 0x0E, unsafe.Sizeof(lv))
	setLineValuesIoctl = iorw(0xB4, 0x0F, unsafe.Sizeof(lv))
}

func ioctl(fd uintptr, req uintptr, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(ptr))
	if errno != 0 {
		return errno
	}
	return nil
}

// GetChipInfo returns the ChipInfo for an open GPIO character device.
func GetChipInfo(fd uintptr) (ChipInfo, error) {
	var ci ChipInfo
	err := ioctl(fd, getChipInfoIoctl, unsafe.Pointer(&ci))
	return ci, err
}

// GetLineInfo returns the LineInfo for one line of the chip.
func GetLineInfo(fd uintptr, offset uint32) (LineInfo, error) {
	li := LineInfo{Offset: offset}
	if err := ioctl(fd, getLineInfoIoctl, unsafe.Pointer(&li)); err != nil {
		return LineInfo{}, err
	}
	return li, nil
}

// WatchLineInfo registers a watch for info changes on the line indicated
// by info.Offset and fills in the current snapshot.
func WatchLineInfo(fd uintptr, info *LineInfo) error {
	return ioctl(fd, watchLineInfoIoctl, unsafe.Pointer(info))
}

// UnwatchLineInfo removes the info watch on the given line.
func UnwatchLineInfo(fd uintptr, offset uint32) error {
	return ioctl(fd, unwatchLineInfoIoctl, unsafe.Pointer(&offset))
}

// GetLine requests a set of lines from the chip. On success the fd of the
// granted request is returned in req.Fd.
func GetLine(fd uintptr, req *LineRequest) error {
	return ioctl(fd, getLineIoctl, unsafe.Pointer(req))
}

// SetLineConfig replaces the configuration of an existing line request.
// The fd is the request fd, not the chip fd.
func SetLineConfig(fd uintptr, config *LineConfig) error {
	return ioctl(fd, setLineConfigIoctl, unsafe.Pointer(config))
}

// GetLineValues reads the values of the lines selected by values.Mask.
func GetLineValues(fd uintptr, values *LineValues) error {
	return ioctl(fd, getLineValuesIoctl, unsafe.Pointer(values))
}

// SetLineValues drives the lines selected by values.Mask.
func SetLineValues(fd uintptr, values *LineValues) error {
	return ioctl(fd, setLineValuesIoctl, unsafe.Pointer(values))
}

// WaitReadable polls the fd for readability.
//
// A negative timeout blocks indefinitely. Returns true once the fd is
// readable, false if the timeout expired first.
func WaitReadable(fd uintptr, timeout time.Duration) (bool, error) {
	var ts *unix.Timespec
	if timeout >= 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}
	for {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Ppoll(fds, ts, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// ReadLineEvents drains up to max queued edge events from a request fd in
// a single read. The read blocks if no event is queued.
func ReadLineEvents(fd uintptr, max int) ([]LineEvent, error) {
	buf := make([]byte, max*LineEventSize)
	n, err := unix.Read(int(fd), buf)
	if err != nil {
		return nil, err
	}
	events := make([]LineEvent, n/LineEventSize)
	r := bytes.NewReader(buf[:n])
	if err := binary.Read(r, nativeEndian, events); err != nil {
		return nil, err
	}
	return events, nil
}

// ReadLineInfoChanged reads a single info-changed event from a chip fd.
// The read blocks if no event is queued.
func ReadLineInfoChanged(fd uintptr) (LineInfoChanged, error) {
	var lic LineInfoChanged
	buf := make([]byte, unsafe.Sizeof(lic))
	n, err := unix.Read(int(fd), buf)
	if err != nil {
		return lic, err
	}
	err = binary.Read(bytes.NewReader(buf[:n]), nativeEndian, &lic)
	return lic, err
}

// BytesToString converts a NUL terminated byte array, as used for name and
// consumer fields, into a string.
func BytesToString(a []byte) string {
	n := bytes.IndexByte(a, 0)
	if n == -1 {
		return string(a)
	}
	return string(a[:n])
}
