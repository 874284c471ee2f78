package chip8

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternFrequencyFormula(t *testing.T) {
	// pitch 64 is the reference: 4000 * 2^0 = 4000 Hz.
	assert.InDelta(t, 4000.0, patternFrequency(64), 0.001)

	// pitch 112 (64+48) doubles the frequency.
	assert.InDelta(t, 8000.0, patternFrequency(112), 0.001)

	// pitch 16 (64-48) halves it.
	assert.InDelta(t, 2000.0, patternFrequency(16), 0.001)
}

func TestBitAtMSBFirstAndWraps(t *testing.T) {
	var pattern [16]byte
	pattern[0] = 0x80 // bit 0 set

	assert.Equal(t, byte(1), bitAt(pattern, 0))
	assert.Equal(t, byte(0), bitAt(pattern, 1))
	// index 128 wraps back to bit 0.
	assert.Equal(t, byte(1), bitAt(pattern, PatternBits))
}

func TestGenerateAudioFrameIsPure(t *testing.T) {
	var pattern [16]byte
	for i := range pattern {
		pattern[i] = byte(i * 17)
	}

	s1, p1 := GenerateAudioFrame(pattern, 80, 44100, 256, 0, 1.0)
	s2, p2 := GenerateAudioFrame(pattern, 80, 44100, 256, 0, 1.0)

	assert.Equal(t, s1, s2)
	assert.Equal(t, p1, p2)
}

func TestGenerateAudioFramePhaseContinuity(t *testing.T) {
	var pattern [16]byte
	for i := range pattern {
		pattern[i] = 0xAA
	}

	wholeSamples, _ := GenerateAudioFrame(pattern, 64, 8000, 200, 0, 0.5)
	firstHalf, midPhase := GenerateAudioFrame(pattern, 64, 8000, 100, 0, 0.5)
	secondHalf, _ := GenerateAudioFrame(pattern, 64, 8000, 100, midPhase, 0.5)

	assert.Equal(t, wholeSamples, append(firstHalf, secondHalf...))
}

func TestGenerateAudioFrameSampleRange(t *testing.T) {
	var pattern [16]byte
	pattern[0] = 0xFF

	samples, endPhase := GenerateAudioFrame(pattern, 100, 22050, 50, 0, 1.0)
	for _, s := range samples {
		assert.GreaterOrEqual(t, int(s), 0)
		assert.LessOrEqual(t, int(s), 255)
	}
	assert.False(t, math.IsNaN(endPhase))
}

func TestAudioNextFrameCarriesPhase(t *testing.T) {
	a := &Audio{Pitch: 64}
	a.SetPattern(make([]byte, 16))

	a.NextFrame(8000, 37, 1.0)
	phaseAfterFirst := a.Phase

	a.NextFrame(8000, 37, 1.0)
	assert.NotEqual(t, phaseAfterFirst, a.Phase)
}
