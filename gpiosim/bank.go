package gpiosim

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Bank describes one simulated chip: how many lines it has, its label,
// and any lines with names or hogs.
type Bank struct {
	// NumLines is the number of lines the chip simulates.
	NumLines int

	// Label identifies the chip. It is reported in the chip info and
	// helps tests tell their chips apart.
	Label string

	// Names maps line offsets to line names. Names need not be unique.
	Names map[int]string

	// Hogs marks lines as held by some other user.
	Hogs map[int]Hog
}

// Hog describes a line held by a party other than the test, useful to
// provoke busy errors.
type Hog struct {
	// Consumer is the label the holder attaches to the line.
	Consumer string

	// Direction the line is held in.
	Direction HogDirection
}

// HogDirection is the direction a hogged line is held in.
type HogDirection int

const (
	// HogDirectionInput holds the line as an input.
	HogDirectionInput HogDirection = iota

	// HogDirectionOutputLow holds the line as an output driven low.
	HogDirectionOutputLow

	// HogDirectionOutputHigh holds the line as an output driven high.
	HogDirectionOutputHigh
)

func (d HogDirection) String() string {
	switch d {
	case HogDirectionOutputLow:
		return "output-low"
	case HogDirectionOutputHigh:
		return "output-high"
	}
	return "input"
}

// BankOption configures a Bank during construction.
type BankOption interface {
	applyBankOption(*Bank)
}

type namedLineOption struct {
	offset int
	name   string
}

func (o namedLineOption) applyBankOption(b *Bank) {
	if b.Names == nil {
		b.Names = map[int]string{}
	}
	b.Names[o.offset] = o.name
}

// WithNamedLine assigns a name to the line at offset.
func WithNamedLine(offset int, name string) BankOption {
	return namedLineOption{offset: offset, name: name}
}

type hoggedLineOption struct {
	offset int
	hog    Hog
}

func (o hoggedLineOption) applyBankOption(b *Bank) {
	if b.Hogs == nil {
		b.Hogs = map[int]Hog{}
	}
	b.Hogs[o.offset] = o.hog
}

// WithHoggedLine marks the line at offset as held by consumer in the
// given direction.
func WithHoggedLine(offset int, consumer string, direction HogDirection) BankOption {
	return hoggedLineOption{offset: offset, hog: Hog{Consumer: consumer, Direction: direction}}
}

// NewBank constructs a Bank with numLines lines and the given label.
func NewBank(label string, numLines int, options ...BankOption) *Bank {
	b := &Bank{Label: label, NumLines: numLines}
	for _, o := range options {
		o.applyBankOption(b)
	}
	return b
}
