package window

import (
	"github.com/ushitora-anqou/maygo/render"
)

type Flags struct {
	Ready       bool
	ShouldClose bool
	Fullscreen  bool
	Hidden      bool
	Minimized   bool
	Maximized   bool
	Focused     bool
	Resized     bool
	Bordered    bool
}

// Window is one open surface. It is not safe for concurrent use; the
// session serializes every access.
type Window struct {
	id     uint32
	native Native
	flags  Flags

	startTime, previousTime, currentTime float64
}

func New(native Native, now float64) *Window {
	return &Window{
		id:     native.ID(),
		native: native,
		flags: Flags{
			Ready:    true,
			Bordered: true,
		},
		startTime:    now,
		previousTime: now,
		currentTime:  now,
	}
}

func (w *Window) ID() uint32 {
	return w.id
}

func (w *Window) Native() Native {
	return w.native
}

func (w *Window) Target() render.Target {
	return w.native.Target()
}

func (w *Window) Factory() render.Factory {
	return w.native.Factory()
}

func (w *Window) Flags() Flags {
	return w.flags
}

func (w *Window) StartTime() float64 {
	return w.startTime
}

func (w *Window) PreviousTime() float64 {
	return w.previousTime
}

func (w *Window) CurrentTime() float64 {
	return w.currentTime
}

// Tick shifts the current timestamp into previous and records now. A now
// earlier than the current timestamp is ignored so the timestamps never go
// backwards.
func (w *Window) Tick(now float64) {
	w.previousTime = w.currentTime
	if now > w.currentTime {
		w.currentTime = now
	}
}

// StartFrame is Tick plus clearing the per-frame Resized flag.
func (w *Window) StartFrame(now float64) {
	w.flags.Resized = false
	w.Tick(now)
}

func (w *Window) MarkShouldClose() {
	w.flags.ShouldClose = true
}

func (w *Window) SetFocused(focused bool) {
	w.flags.Focused = focused
}

func (w *Window) ToggleFullscreen() error {
	if err := w.native.SetFullscreen(!w.flags.Fullscreen); err != nil {
		return err
	}
	w.flags.Fullscreen = !w.flags.Fullscreen
	return nil
}

func (w *Window) ToggleBorderless() {
	w.flags.Bordered = !w.flags.Bordered
	w.native.SetBordered(w.flags.Bordered)
}

func (w *Window) Maximize() {
	w.native.Maximize()
	w.flags.Maximized = true
	w.flags.Minimized = false
}

func (w *Window) Minimize() {
	w.native.Minimize()
	w.flags.Minimized = true
	w.flags.Maximized = false
}

func (w *Window) Restore() {
	w.native.Restore()
	w.flags.Minimized = false
	w.flags.Maximized = false
}

func (w *Window) Show() {
	w.native.Show()
	w.flags.Hidden = false
}

func (w *Window) Hide() {
	w.native.Hide()
	w.flags.Hidden = true
}

func (w *Window) SetSize(width, height int32) error {
	if err := w.native.SetSize(width, height); err != nil {
		return err
	}
	w.flags.Resized = true
	return nil
}
