package gpiosim

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimpleton(t *testing.T) {
	s, err := NewSimpleton(12)
	if err != nil {
		t.Skipf("gpio-sim unavailable: %s", err)
	}
	defer s.Close()

	assert.NotEmpty(t, s.ChipName())
	assert.NotEmpty(t, s.DevPath())
	_, err = os.Stat(s.DevPath())
	assert.NoError(t, err)

	require.NoError(t, s.Pullup(3))
	pull, err := s.Pull(3)
	require.NoError(t, err)
	assert.Equal(t, LevelActive, pull)

	require.NoError(t, s.Toggle(3))
	pull, err = s.Pull(3)
	require.NoError(t, err)
	assert.Equal(t, LevelInactive, pull)
}

func TestNewSim(t *testing.T) {
	s, err := NewSim(
		WithName("gpiosim_test"),
		WithBank(NewBank("left", 8,
			WithNamedLine(3, "LED0"),
			WithHoggedLine(2, "piggy", HogDirectionOutputLow),
		)),
		WithBank(NewBank("right", 42,
			WithNamedLine(4, "BUTTON2"),
		)),
	)
	if err != nil {
		t.Skipf("gpio-sim unavailable: %s", err)
	}
	defer s.Close()

	require.Len(t, s.Chips, 2)
	assert.Equal(t, "left", s.Chips[0].Config().Label)
	assert.Equal(t, 42, s.Chips[1].Config().NumLines)
	assert.NotEqual(t, s.Chips[0].ChipName(), s.Chips[1].ChipName())
}

func TestNewSimNoBanks(t *testing.T) {
	_, err := NewSim()
	assert.Error(t, err)
}
