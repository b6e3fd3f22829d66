// Package platform is the boundary to the multimedia toolkit. A Context is
// the single shared platform handle of a session: it creates windows, owns
// the event queue, keyboard/mouse/clipboard state, the clock, the audio
// output and the font loader.
//
// The SDL2 implementation is compiled in with the sdl2 build tag. Without
// it, and whenever Options.Headless is set, Open returns a Headless context.
// With SDL, the program must run inside Main.
package platform

import (
	"github.com/ushitora-anqou/maygo/audio"
	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/render"
	"github.com/ushitora-anqou/maygo/window"
)

type Context interface {
	window.Creator
	event.Source

	Clock() clock.Clock

	// KeyDown reports whether the key with the given scancode is held.
	KeyDown(scancode int) bool
	MouseState() (x, y int32, buttons uint32)
	ShowCursor(show bool) error
	CursorShown() (bool, error)

	ClipboardText() (string, error)
	SetClipboardText(text string) error

	// OpenURL hands rawURL to the desktop's default handler.
	OpenURL(rawURL string) error

	Audio() audio.Sink
	Fonts() render.FontLoader

	// Close releases the context. Windows must be destroyed first.
	Close() error
}

type Options struct {
	Headless     bool
	AudioFreq    int
	AudioSamples int
	AudioVoices  int
}

func DefaultOptions() Options {
	return Options{
		AudioFreq:    constant.AUDIO_FREQ,
		AudioSamples: constant.AUDIO_SAMPLES,
		AudioVoices:  constant.AUDIO_VOICES,
	}
}

// Open initializes the platform. Failures are reported as
// *window.PlatformError.
func Open(opts Options) (Context, error) {
	if opts.Headless {
		return NewHeadless(clock.NewSystemClock(), opts.AudioVoices), nil
	}
	ctx, err := openNative(opts)
	if err != nil {
		return nil, &window.PlatformError{Op: "init", Err: err}
	}
	return ctx, nil
}
