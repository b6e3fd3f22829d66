//go:build !sdl2

package platform

import (
	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/util"
)

func openNative(opts Options) (Context, error) {
	util.Logger().Warn("built without sdl2, falling back to the headless platform")
	return NewHeadless(clock.NewSystemClock(), opts.AudioVoices), nil
}

// Main just calls run; without SDL no thread needs reserving.
func Main(run func()) {
	run()
}
