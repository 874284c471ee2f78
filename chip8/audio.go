package chip8

import "math"

// PatternBits is the number of bits packed into the 16-byte audio
// pattern buffer.
const PatternBits = 128

// Audio holds the XO-CHIP sound pattern, pitch byte, and the phase
// carried across frames so playback stays continuous from one
// generated frame to the next.
type Audio struct {
	Pattern [16]byte
	Pitch   byte
	Phase   float64
}

// SetPattern copies 16 bytes read from memory into the pattern buffer,
// as F002 does.
func (a *Audio) SetPattern(data []byte) {
	copy(a.Pattern[:], data)
}

// Frequency converts the pitch byte to a playback frequency in Hz.
func (a *Audio) Frequency() float64 {
	return patternFrequency(a.Pitch)
}

func patternFrequency(pitch byte) float64 {
	return 4000 * math.Pow(2, (float64(pitch)-64)/48)
}

// bitAt reads bit index i (MSB-first per byte) from a 128-bit pattern.
func bitAt(pattern [16]byte, i int) byte {
	i = ((i % PatternBits) + PatternBits) % PatternBits
	b := pattern[i/8]
	shift := 7 - uint(i%8)
	return (b >> shift) & 1
}

// GenerateAudioFrame synthesizes numSamples bytes of PCM from pattern
// at pitch, sampled at sampleRate, continuing from startPhase. It
// returns the samples and the ending fractional phase so a subsequent
// call can continue seamlessly. amplitude is in [0,1].
//
// This is a pure function: given identical inputs it always produces
// identical output, which is what makes phase-continuity testable
// across frame boundaries.
func GenerateAudioFrame(pattern [16]byte, pitch byte, sampleRate, numSamples int, startPhase float64, amplitude float64) ([]byte, float64) {
	freq := patternFrequency(pitch)
	step := freq / float64(sampleRate)

	samples := make([]byte, numSamples)
	phase := startPhase

	for i := 0; i < numSamples; i++ {
		bitIndex := int(math.Floor(phase))
		bit := bitAt(pattern, bitIndex)

		var sample float64
		if bit == 1 {
			sample = 128 + amplitude*127
		} else {
			sample = 128 - amplitude*127
		}
		if sample < 0 {
			sample = 0
		} else if sample > 255 {
			sample = 255
		}
		samples[i] = byte(sample)

		phase += step
	}

	// keep the returned phase bounded so it doesn't grow without limit
	// across arbitrarily many frames
	endPhase := math.Mod(phase, PatternBits)
	if endPhase < 0 {
		endPhase += PatternBits
	}

	return samples, endPhase
}

// NextFrame synthesizes numSamples using the Audio's own pattern,
// pitch, and carried phase, advancing Phase for the next call.
func (a *Audio) NextFrame(sampleRate, numSamples int, amplitude float64) []byte {
	samples, endPhase := GenerateAudioFrame(a.Pattern, a.Pitch, sampleRate, numSamples, a.Phase, amplitude)
	a.Phase = endPhase
	return samples
}

// Clone returns an independent copy for snapshotting.
func (a *Audio) Clone() *Audio {
	c := *a
	return &c
}
