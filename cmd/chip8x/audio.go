package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	audioSampleRate   = 44100
	audioSamplesPerCB = 1024
)

// audioOut owns the SDL audio device the host queues synthesized PCM
// frames into. Unlike the teacher's cgo Tone export, which SDL pulled
// from on its own callback thread, this pushes frames from the main
// loop via sdl.QueueAudio once per video frame — same device API,
// no cgo export boilerplate to carry.
type audioOut struct {
	device sdl.AudioDeviceID
}

func newAudioOut() (*audioOut, error) {
	spec := &sdl.AudioSpec{
		Freq:     audioSampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  audioSamplesPerCB,
	}

	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}
	sdl.PauseAudioDevice(device, false)
	return &audioOut{device: device}, nil
}

// queue pushes frame's PCM bytes to the device, dropping the frame if
// the device's queue is already backed up more than a few frames'
// worth (avoids unbounded latency growth if the host falls behind).
func (a *audioOut) queue(frame []byte) {
	const maxQueuedBytes = audioSampleRate / 10
	if sdl.GetQueuedAudioSize(a.device) > uint32(maxQueuedBytes) {
		return
	}
	sdl.QueueAudio(a.device, frame)
}

func (a *audioOut) close() {
	sdl.CloseAudioDevice(a.device)
}
