package gpiosim

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Simpleton is a single-chip Sim with plain unnamed lines, for tests that
// need nothing more than a chip to request.
type Simpleton struct {
	Sim
}

// NewSimpleton constructs a live single-chip simulator with numLines
// lines.
func NewSimpleton(numLines int) (*Simpleton, error) {
	s, err := NewSim(WithBank(NewBank("simpleton", numLines)))
	if err != nil {
		return nil, err
	}
	return &Simpleton{Sim: *s}, nil
}

func (s *Simpleton) chip() *Chip {
	return &s.Chips[0]
}

// ChipName returns the kernel name of the chip, e.g. "gpiochip0".
func (s *Simpleton) ChipName() string {
	return s.chip().ChipName()
}

// DevPath returns the character device path of the chip.
func (s *Simpleton) DevPath() string {
	return s.chip().DevPath()
}

// Pull returns the pull of the line.
func (s *Simpleton) Pull(offset int) (int, error) {
	return s.chip().Pull(offset)
}

// SetPull pulls the line to the given level.
func (s *Simpleton) SetPull(offset, level int) error {
	return s.chip().SetPull(offset, level)
}

// Pullup pulls the line up.
func (s *Simpleton) Pullup(offset int) error {
	return s.chip().Pullup(offset)
}

// Pulldown pulls the line down.
func (s *Simpleton) Pulldown(offset int) error {
	return s.chip().Pulldown(offset)
}

// Toggle inverts the pull of the line.
func (s *Simpleton) Toggle(offset int) error {
	return s.chip().Toggle(offset)
}

// Level returns the level of the line.
func (s *Simpleton) Level(offset int) (int, error) {
	return s.chip().Level(offset)
}
