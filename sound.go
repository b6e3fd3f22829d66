package maygo

import (
	"fmt"
)

// PlaySound starts playing the sound file at path. It returns once the
// sound is queued; playback mixes with anything already playing.
func (s *Session) PlaySound(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.platform.Audio().PlayFile(path); err != nil {
		return fmt.Errorf("failed to play %s: %w", path, err)
	}
	return nil
}

// QueueSamples mixes interleaved stereo float32 samples into the output.
func (s *Session) QueueSamples(samples []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.Audio().Queue(samples)
}
