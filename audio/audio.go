// Package audio holds the process-wide audio output sink contract and the
// software mixer that platform sinks feed from their playback callback.
package audio

// Sink is the shared audio output. Samples are interleaved float32 in
// [-1, 1] at the sink's rate and channel count.
type Sink interface {
	PlayFile(path string) error
	Queue(samples []float32) error
	Close() error
}
