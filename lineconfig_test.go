package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConfigDefaults(t *testing.T) {
	lc := NewLineConfig()

	assert.Equal(t, DirectionAsIs, lc.DirectionDefault())
	assert.Equal(t, EdgeNone, lc.EdgeDetectionDefault())
	assert.Equal(t, BiasAsIs, lc.BiasDefault())
	assert.Equal(t, DrivePushPull, lc.DriveDefault())
	assert.False(t, lc.ActiveLowDefault())
	assert.Equal(t, time.Duration(0), lc.DebouncePeriodDefault())
	assert.Equal(t, EventClockMonotonic, lc.EventClockDefault())
	assert.Equal(t, 0, lc.OutputValueDefault())
	assert.Empty(t, lc.Overrides())
}

func TestLineConfigSetDefaults(t *testing.T) {
	lc := NewLineConfig()

	lc.SetDirectionDefault(DirectionInput)
	lc.SetEdgeDetectionDefault(EdgeBoth)
	lc.SetBiasDefault(BiasPullDown)
	lc.SetDriveDefault(DriveOpenDrain)
	lc.SetActiveLowDefault(true)
	lc.SetDebouncePeriodDefault(3 * time.Millisecond)
	lc.SetEventClockDefault(EventClockRealtime)
	lc.SetOutputValueDefault(1)

	assert.Equal(t, DirectionInput, lc.DirectionDefault())
	assert.Equal(t, EdgeBoth, lc.EdgeDetectionDefault())
	assert.Equal(t, BiasPullDown, lc.BiasDefault())
	assert.Equal(t, DriveOpenDrain, lc.DriveDefault())
	assert.True(t, lc.ActiveLowDefault())
	assert.Equal(t, 3*time.Millisecond, lc.DebouncePeriodDefault())
	assert.Equal(t, EventClockRealtime, lc.EventClockDefault())
	assert.Equal(t, 1, lc.OutputValueDefault())

	// defaults apply to any line without an override
	assert.Equal(t, DirectionInput, lc.DirectionOffset(4))
	assert.Equal(t, EdgeBoth, lc.EdgeDetectionOffset(4))
	assert.Empty(t, lc.Overrides())
}

func TestLineConfigOverride(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionInput)

	lc.SetDirectionOverride(DirectionOutput, 3)

	assert.True(t, lc.DirectionIsOverridden(3))
	assert.False(t, lc.DirectionIsOverridden(2))
	assert.Equal(t, DirectionOutput, lc.DirectionOffset(3))
	assert.Equal(t, DirectionInput, lc.DirectionOffset(2))
	assert.Equal(t, DirectionInput, lc.DirectionDefault())
}

func TestLineConfigClearOverride(t *testing.T) {
	lc := NewLineConfig()
	lc.SetEdgeDetectionOverride(EdgeRising, 2)
	require.True(t, lc.EdgeDetectionIsOverridden(2))

	lc.ClearEdgeDetectionOverride(2)

	assert.False(t, lc.EdgeDetectionIsOverridden(2))
	assert.Equal(t, EdgeNone, lc.EdgeDetectionOffset(2))

	// a cleared line follows the current default again
	lc.SetEdgeDetectionDefault(EdgeFalling)
	assert.Equal(t, EdgeFalling, lc.EdgeDetectionOffset(2))

	// clearing an absent override is fine
	lc.ClearEdgeDetectionOverride(9)
}

func TestLineConfigOverrideIndependentOfDefault(t *testing.T) {
	lc := NewLineConfig()
	lc.SetBiasOverride(BiasPullUp, 1)

	lc.SetBiasDefault(BiasPullDown)

	assert.Equal(t, BiasPullUp, lc.BiasOffset(1))
	assert.Equal(t, BiasPullDown, lc.BiasOffset(0))
}

func TestLineConfigCoercion(t *testing.T) {
	lc := NewLineConfig()

	lc.SetDirectionDefault(Direction(42))
	assert.Equal(t, DirectionAsIs, lc.DirectionDefault())

	lc.SetEdgeDetectionDefault(Edge(-1))
	assert.Equal(t, EdgeNone, lc.EdgeDetectionDefault())

	lc.SetBiasDefault(Bias(99))
	assert.Equal(t, BiasAsIs, lc.BiasDefault())

	// unknown is reported by line info but cannot be requested
	lc.SetBiasDefault(BiasUnknown)
	assert.Equal(t, BiasAsIs, lc.BiasDefault())

	lc.SetDriveOverride(Drive(0), 2)
	assert.Equal(t, DrivePushPull, lc.DriveOffset(2))

	lc.SetEventClockOverride(EventClock(7), 2)
	assert.Equal(t, EventClockMonotonic, lc.EventClockOffset(2))

	lc.SetDebouncePeriodDefault(-time.Second)
	assert.Equal(t, time.Duration(0), lc.DebouncePeriodDefault())

	lc.SetOutputValueDefault(-3)
	assert.Equal(t, 1, lc.OutputValueDefault())
	lc.SetOutputValueDefault(0)
	assert.Equal(t, 0, lc.OutputValueDefault())
}

func TestLineConfigOverrides(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionOverride(DirectionOutput, 7)
	lc.SetOutputValueOverride(1, 7)
	lc.SetEdgeDetectionOverride(EdgeBoth, 2)

	oo := lc.Overrides()

	require.Len(t, oo, 3)
	assert.Equal(t, ConfigOverride{Offset: 7, Property: PropertyDirection}, oo[0])
	assert.Equal(t, ConfigOverride{Offset: 7, Property: PropertyOutputValue}, oo[1])
	assert.Equal(t, ConfigOverride{Offset: 2, Property: PropertyEdgeDetection}, oo[2])

	// setting the same override twice does not duplicate the entry
	lc.SetEdgeDetectionOverride(EdgeRising, 2)
	assert.Len(t, lc.Overrides(), 3)

	lc.ClearDirectionOverride(7)
	lc.ClearOutputValueOverride(7)
	lc.ClearEdgeDetectionOverride(2)
	assert.Empty(t, lc.Overrides())
}

func TestLineConfigSetOutputValues(t *testing.T) {
	lc := NewLineConfig()

	err := lc.SetOutputValues([]uint32{1, 2, 5}, []int{1, 0, 7})

	require.NoError(t, err)
	assert.Equal(t, 1, lc.OutputValueOffset(1))
	assert.Equal(t, 0, lc.OutputValueOffset(2))
	assert.Equal(t, 1, lc.OutputValueOffset(5))
	assert.True(t, lc.OutputValueIsOverridden(5))

	err = lc.SetOutputValues([]uint32{1, 2}, []int{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLineConfigReset(t *testing.T) {
	lc := NewLineConfig()
	lc.SetDirectionDefault(DirectionOutput)
	lc.SetActiveLowOverride(true, 3)

	lc.Reset()

	assert.Equal(t, DirectionAsIs, lc.DirectionDefault())
	assert.False(t, lc.ActiveLowIsOverridden(3))
	assert.Empty(t, lc.Overrides())
}
