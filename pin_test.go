package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/gpiod/gpiosim"
)

func TestGroupRead(t *testing.T) {
	s := newSim(t, gpiosim.WithBank(gpiosim.NewBank("pins", 8,
		gpiosim.WithNamedLine(1, "BUTTON1"),
	)))
	c, err := Open(s.Chips[0].DevPath())
	require.NoError(t, err)
	defer c.Close()

	req := requestInput(t, c, 1, 4)
	g, err := NewGroup(c, req)
	require.NoError(t, err)
	defer g.Close()

	require.Len(t, g.Pins(), 2)
	assert.Equal(t, "BUTTON1", g.ByOffset(0).Name())
	assert.Nil(t, g.ByOffset(2))
	assert.Equal(t, 4, g.ByNumber(4).Number())
	assert.Nil(t, g.ByNumber(7))
	assert.NotNil(t, g.ByName("BUTTON1"))
	assert.Nil(t, g.ByName("BUTTON2"))

	require.NoError(t, s.Chips[0].Pullup(4))
	bits, err := g.Read(0)
	require.NoError(t, err)
	assert.Equal(t, GroupValue(0b10), bits)

	p, ok := g.ByName("BUTTON1").(*Pin)
	require.True(t, ok)
	assert.False(t, bool(p.Read()))
	require.NoError(t, s.Chips[0].Pullup(1))
	assert.True(t, bool(p.Read()))
}

func TestGroupOut(t *testing.T) {
	s := newSimpleton(t, 8)
	c, err := Open(s.DevPath())
	require.NoError(t, err)
	defer c.Close()

	lcfg := NewLineConfig()
	lcfg.SetDirectionDefault(DirectionOutput)
	rcfg := NewRequestConfig()
	rcfg.SetOffsets([]uint32{0, 2})
	req, err := c.RequestLines(rcfg, lcfg)
	require.NoError(t, err)
	defer req.Close()

	g, err := NewGroup(c, req)
	require.NoError(t, err)
	defer g.Close()

	require.NoError(t, g.Out(0b11, 0))
	level, err := s.Level(2)
	require.NoError(t, err)
	assert.Equal(t, gpiosim.LevelActive, level)

	// masked writes leave the other lines alone
	require.NoError(t, g.Out(0, 0b01))
	level, err = s.Level(0)
	require.NoError(t, err)
	assert.Equal(t, gpiosim.LevelInactive, level)
	level, err = s.Level(2)
	require.NoError(t, err)
	assert.Equal(t, gpiosim.LevelActive, level)

	p, ok := g.ByNumber(0).(*Pin)
	require.True(t, ok)
	require.NoError(t, p.Out(gpio.High))
	level, err = s.Level(0)
	require.NoError(t, err)
	assert.Equal(t, gpiosim.LevelActive, level)
}

func TestGroupWaitForEdge(t *testing.T) {
	s := newSimpleton(t, 8)
	c, err := Open(s.DevPath())
	require.NoError(t, err)
	defer c.Close()

	lcfg := NewLineConfig()
	lcfg.SetDirectionDefault(DirectionInput)
	lcfg.SetEdgeDetectionDefault(EdgeBoth)
	lcfg.SetBiasDefault(BiasPullDown)
	rcfg := NewRequestConfig()
	rcfg.SetOffsets([]uint32{3})
	req, err := c.RequestLines(rcfg, lcfg)
	require.NoError(t, err)
	defer req.Close()

	g, err := NewGroup(c, req)
	require.NoError(t, err)
	defer g.Close()

	_, edge, err := g.WaitForEdge(10 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, gpio.NoEdge, edge)

	require.NoError(t, s.Pullup(3))
	number, edge, err := g.WaitForEdge(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, number)
	assert.Equal(t, gpio.RisingEdge, edge)

	// halt interrupts a pending wait
	go func() {
		time.Sleep(10 * time.Millisecond)
		g.Halt()
	}()
	_, edge, err = g.WaitForEdge(time.Second)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, gpio.NoEdge, edge)
}

func TestPin(t *testing.T) {
	s := newSimpleton(t, 8)
	c, err := Open(s.DevPath())
	require.NoError(t, err)
	defer c.Close()

	req := requestInput(t, c, 5)
	g, err := NewGroup(c, req)
	require.NoError(t, err)
	defer g.Close()

	p, ok := g.ByNumber(5).(*Pin)
	require.True(t, ok)

	assert.Equal(t, 5, p.Number())
	assert.Error(t, p.In(gpio.PullNoChange, gpio.NoEdge))
	assert.Error(t, p.Halt())
	assert.False(t, p.WaitForEdge(time.Millisecond))
	assert.Equal(t, gpio.PullNoChange, p.Pull())
	assert.Equal(t, gpio.PullNoChange, p.DefaultPull())
	assert.Error(t, p.PWM(gpio.DutyHalf, 0))
	assert.NotEmpty(t, p.String())
}
