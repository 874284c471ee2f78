package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/chip8x/chip8"
)

func TestRunDefaultsToOriginalChip8AndCached(t *testing.T) {
	var got Options
	err := Run([]string{"game.ch8"}, func(o Options) error {
		got = o
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "game.ch8", got.ROMPath)
	assert.Equal(t, chip8.OriginalChip8, got.Platform)
	assert.Equal(t, chip8.Cached, got.Interpreter)
}

func TestRunParsesPlatformAndInterpreterFlags(t *testing.T) {
	var got Options
	err := Run([]string{"-p", "xochip", "-i", "pure", "game.ch8"}, func(o Options) error {
		got = o
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, chip8.XOChip, got.Platform)
	assert.Equal(t, chip8.Pure, got.Interpreter)
}

func TestRunRejectsUnknownPlatform(t *testing.T) {
	err := Run([]string{"-p", "not-a-platform"}, func(o Options) error {
		return nil
	})
	assert.Error(t, err)
}

func TestRunRejectsUnknownInterpreter(t *testing.T) {
	err := Run([]string{"-i", "not-a-kind"}, func(o Options) error {
		return nil
	})
	assert.Error(t, err)
}

func TestRunWithNoROMLeavesPathEmpty(t *testing.T) {
	var got Options
	err := Run([]string{}, func(o Options) error {
		got = o
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "", got.ROMPath)
}
