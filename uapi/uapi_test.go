// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uapi

import (
	"os"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The request codes encode the struct sizes, so comparing against the
// values from the kernel headers pins the struct layouts as well.
func TestIoctlCodes(t *testing.T) {
	assert.Equal(t, uintptr(0x8044b401), getChipInfoIoctl)
	assert.Equal(t, uintptr(0xc100b405), getLineInfoIoctl)
	assert.Equal(t, uintptr(0xc100b406), watchLineInfoIoctl)
	assert.Equal(t, uintptr(0xc004b40c), unwatchLineInfoIoctl)
	assert.Equal(t, uintptr(0xc250b407), getLineIoctl)
	assert.Equal(t, uintptr(0xc110b40d), setLineConfigIoctl)
	assert.Equal(t, uintptr(0xc010b40e), getLineValuesIoctl)
	assert.Equal(t, uintptr(0xc010b40f), setLineValuesIoctl)
}

func TestStructSizes(t *testing.T) {
	assert.Equal(t, uintptr(68), unsafe.Sizeof(ChipInfo{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(LineAttribute{}))
	assert.Equal(t, uintptr(24), unsafe.Sizeof(LineConfigAttribute{}))
	assert.Equal(t, uintptr(272), unsafe.Sizeof(LineConfig{}))
	assert.Equal(t, uintptr(592), unsafe.Sizeof(LineRequest{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(LineValues{}))
	assert.Equal(t, uintptr(256), unsafe.Sizeof(LineInfo{}))
	assert.Equal(t, uintptr(288), unsafe.Sizeof(LineInfoChanged{}))
	assert.Equal(t, 48, LineEventSize)
}

func TestLineValues(t *testing.T) {
	var lv LineValues
	lv.Set(0, 1)
	lv.Set(3, 0)
	lv.Set(5, 1)
	assert.Equal(t, uint64(0b101001), lv.Mask)
	assert.Equal(t, uint64(0b100001), lv.Bits)
	assert.Equal(t, 1, lv.Get(0))
	assert.Equal(t, 0, lv.Get(3))
	assert.Equal(t, 1, lv.Get(5))
	assert.Equal(t, 0, lv.Get(7))

	lv.Set(5, 0)
	assert.Equal(t, 0, lv.Get(5))
}

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "banana", BytesToString([]byte("banana\x00\x00")))
	assert.Equal(t, "", BytesToString([]byte{0, 'x'}))
	assert.Equal(t, "full", BytesToString([]byte("full")))
}

func TestWaitReadable(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	// sub-millisecond timeouts still wait the full window
	start := time.Now()
	ready, err := WaitReadable(r.Fd(), 500*time.Microsecond)
	require.NoError(t, err)
	assert.False(t, ready)
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Microsecond)

	_, err = w.Write([]byte{0})
	require.NoError(t, err)
	ready, err = WaitReadable(r.Fd(), 500*time.Microsecond)
	require.NoError(t, err)
	assert.True(t, ready)

	// still readable, so a negative timeout returns immediately
	ready, err = WaitReadable(r.Fd(), -1)
	require.NoError(t, err)
	assert.True(t, ready)
}
