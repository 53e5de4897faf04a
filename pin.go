package gpiod

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// GroupValue is a bitfield of line levels within a Group, one bit per
// line in request order.
type GroupValue uint64

// Group adapts a LineRequest for bitfield reads and writes, with each
// line exposed as a periph.io gpio.PinIO. The bit positions of the group
// are the request order of the lines.
//
// The Group borrows the request; closing the Group does not close the
// request.
type Group struct {
	req   *LineRequest
	pins  []*Pin
	haltR *os.File
	haltW *os.File
}

// NewGroup wraps req as a Group. The chip is only used to look up line
// names; it may be closed afterwards.
func NewGroup(c *Chip, req *LineRequest) (*Group, error) {
	g := &Group{req: req}
	for i, offset := range req.Offsets() {
		name := ""
		if li, err := c.LineInfo(offset); err == nil {
			name, _ = li.Name()
		}
		g.pins = append(g.pins, &Pin{
			group:  g,
			bit:    i,
			offset: offset,
			name:   name,
		})
	}
	var err error
	g.haltR, g.haltW, err = os.Pipe()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Close releases the halt plumbing. The underlying request stays open.
func (g *Group) Close() error {
	g.haltR.Close()
	return g.haltW.Close()
}

// Pins returns the pins of the group in request order.
func (g *Group) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(g.pins))
	for i, p := range g.pins {
		pins[i] = p
	}
	return pins
}

// ByOffset returns the pin at the given bit position within the group, or
// nil if the position is outside the group.
func (g *Group) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(g.pins) {
		return nil
	}
	return g.pins[offset]
}

// ByName returns the pin with the given line name, or nil if the group
// has no line with that name.
func (g *Group) ByName(name string) pin.Pin {
	for _, p := range g.pins {
		if p.name == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin with the given chip line number, or nil if the
// group does not cover that line.
func (g *Group) ByNumber(number int) pin.Pin {
	for _, p := range g.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// Out drives the lines selected by mask to the corresponding bits. A zero
// mask selects every line in the group.
func (g *Group) Out(bits, mask GroupValue) error {
	if mask == 0 {
		mask = 1<<len(g.pins) - 1
	}
	var offsets []uint32
	var values []int
	for i, p := range g.pins {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		offsets = append(offsets, p.offset)
		v := 0
		if bits&(1<<uint(i)) != 0 {
			v = 1
		}
		values = append(values, v)
	}
	return g.req.SetValuesSubset(offsets, values)
}

// Read returns the values of the lines selected by mask as one atomic
// read. A zero mask selects every line in the group.
func (g *Group) Read(mask GroupValue) (GroupValue, error) {
	if mask == 0 {
		mask = 1<<len(g.pins) - 1
	}
	var bitpos []int
	var offsets []uint32
	for i, p := range g.pins {
		if mask&(1<<uint(i)) != 0 {
			bitpos = append(bitpos, i)
			offsets = append(offsets, p.offset)
		}
	}
	values := make([]int, len(offsets))
	if err := g.req.ValuesSubset(offsets, values); err != nil {
		return 0, err
	}
	var bits GroupValue
	for i, v := range values {
		if v != 0 {
			bits |= 1 << uint(bitpos[i])
		}
	}
	return bits, nil
}

// WaitForEdge blocks until an edge event arrives on any line of the
// group, the timeout expires or Halt is called. A zero timeout blocks
// indefinitely. On success it returns the chip line number the edge
// occurred on; on timeout or halt it returns gpio.NoEdge and ErrTimeout.
func (g *Group) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	var ts *unix.Timespec
	if timeout > 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}
	for {
		fds := []unix.PollFd{
			{Fd: int32(g.req.Fd()), Events: unix.POLLIN},
			{Fd: int32(g.haltR.Fd()), Events: unix.POLLIN},
		}
		n, err := unix.Ppoll(fds, ts, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, gpio.NoEdge, err
		}
		if n == 0 || fds[1].Revents&unix.POLLIN != 0 {
			if n != 0 {
				b := make([]byte, 1)
				g.haltR.Read(b)
			}
			return 0, gpio.NoEdge, ErrTimeout
		}
		break
	}
	buf := NewEdgeEventBuffer(1)
	if _, err := g.req.ReadEdgeEvents(buf, 1); err != nil {
		return 0, gpio.NoEdge, err
	}
	ev, err := buf.Event(0)
	if err != nil {
		return 0, gpio.NoEdge, err
	}
	edge := gpio.RisingEdge
	if ev.Type == EdgeEventFalling {
		edge = gpio.FallingEdge
	}
	return int(ev.Offset), edge, nil
}

// Halt interrupts a pending WaitForEdge.
func (g *Group) Halt() error {
	_, err := g.haltW.Write([]byte{0})
	return err
}

func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pins []*Pin `json:"Pins"`
	}{Pins: g.pins})
}

// String returns the group information in JSON, along with the details
// for all of its pins.
func (g *Group) String() string {
	json, _ := json.MarshalIndent(g, "", "    ")
	return string(json)
}

// Pin is a single line of a Group, usable through the periph.io gpio.PinIO
// interface.
type Pin struct {
	group  *Group
	bit    int
	offset uint32
	name   string
}

// Name returns the line name, which may be empty.
func (p *Pin) Name() string {
	return p.name
}

// Number returns the chip line number of the pin.
func (p *Pin) Number() int {
	return int(p.offset)
}

func (p *Pin) Function() string {
	return "not implemented"
}

// In configures the pin for input. Lines in a group cannot be
// individually re-configured so this always returns an error; reconfigure
// the request instead.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	return errors.New("a group line cannot be re-configured individually")
}

// Read returns the logical level of the pin.
func (p *Pin) Read() gpio.Level {
	v, err := p.group.req.Value(p.offset)
	if err != nil {
		log.Printf("gpiod: reading line %d: %s\n", p.offset, err)
		return false
	}
	return v != 0
}

// Out drives the pin to the logical level.
func (p *Pin) Out(l gpio.Level) error {
	v := 0
	if l {
		v = 1
	}
	return p.group.req.SetValue(p.offset, v)
}

// WaitForEdge always returns false for a group pin; use
// Group.WaitForEdge.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Halt interrupts a pending WaitForEdge. Single lines of a group cannot
// be halted; halt the Group.
func (p *Pin) Halt() error {
	return errors.New("a group line cannot be halted, halt the group")
}

// Pull returns gpio.PullNoChange; the pull of a requested line cannot be
// read back through the request fd.
func (p *Pin) Pull() gpio.Pull {
	return gpio.PullNoChange
}

// DefaultPull returns gpio.PullNoChange.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

// PWM is not supported by the character device.
func (p *Pin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("not implemented")
}

func (p *Pin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string `json:"Name"`
		Number int    `json:"Number"`
	}{Name: p.name, Number: p.Number()})
}

// String returns information about the pin in JSON format.
func (p *Pin) String() string {
	json, _ := json.MarshalIndent(p, "", "    ")
	return string(json)
}

var _ gpio.PinIO = &Pin{}
var _ gpio.PinIn = &Pin{}
var _ gpio.PinOut = &Pin{}
