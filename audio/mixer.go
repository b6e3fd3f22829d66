package audio

import (
	"fmt"
	"sync"

	"github.com/ushitora-anqou/maygo/util"
)

// Mixer sums any number of queued voices into one output stream. Add is
// called from the application side and Fill from the audio thread.
type Mixer struct {
	mu        sync.Mutex
	channels  int
	maxVoices int
	voices    [][]float32
}

func NewMixer(channels, maxVoices int) *Mixer {
	if channels < 1 {
		channels = 1
	}
	if maxVoices < 1 {
		maxVoices = 1
	}
	return &Mixer{channels: channels, maxVoices: maxVoices}
}

func (m *Mixer) Channels() int {
	return m.channels
}

// Add queues a voice. When the mixer is full the oldest voice is dropped.
func (m *Mixer) Add(samples []float32) error {
	if len(samples)%m.channels != 0 {
		return fmt.Errorf(
			"Invalid length of audio buffer: %d is not a multiple of %d channels",
			len(samples),
			m.channels,
		)
	}
	if len(samples) == 0 {
		return nil
	}
	voice := make([]float32, len(samples))
	copy(voice, samples)

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.voices) >= m.maxVoices {
		m.voices = m.voices[1:] // Discard the old one
	}
	m.voices = append(m.voices, voice)
	return nil
}

// Fill overwrites out with the next len(out) mixed samples, silence where no
// voice plays.
func (m *Mixer) Fill(out []float32) {
	for i := range out {
		out[i] = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.voices[:0]
	for _, voice := range m.voices {
		n := len(out)
		if len(voice) < n {
			n = len(voice)
		}
		for i := 0; i < n; i++ {
			out[i] += voice[i]
		}
		if rest := voice[n:]; len(rest) > 0 {
			live = append(live, rest)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live

	for i := range out {
		out[i] = util.ClampF32(out[i], -1, 1)
	}
}

// Active returns the number of voices still playing.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

func (m *Mixer) Reset() {
	m.mu.Lock()
	m.voices = nil
	m.mu.Unlock()
}
