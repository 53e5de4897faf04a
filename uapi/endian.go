// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uapi

import (
	"encoding/binary"
	"unsafe"
)

// nativeEndian is the byte order of the running machine. Event records are
// read from the kernel in host order.
var nativeEndian binary.ByteOrder

func init() {
	var x uint16 = 0x0102
	if *(*byte)(unsafe.Pointer(&x)) == 0x02 {
		nativeEndian = binary.LittleEndian
	} else {
		nativeEndian = binary.BigEndian
	}
}
