package platform

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/ushitora-anqou/maygo/audio"
	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/render"
	"github.com/ushitora-anqou/maygo/window"
)

var errClosed = errors.New("platform closed")

// Headless is an in-memory platform. Windows record what is drawn on them,
// events are injected with Push, and input state is set directly. It backs
// CI runs and tests, and stands in for SDL when built without the sdl2 tag.
type Headless struct {
	mu          sync.Mutex
	clock       clock.Clock
	nextID      uint32
	queue       []event.Event
	windows     map[uint32]*HeadlessWindow
	keys        map[int]bool
	mouseX      int32
	mouseY      int32
	buttons     uint32
	cursorShown bool
	clipboard   string
	urls        []string
	createErr   error
	closed      bool
	audio       *HeadlessAudio
}

func NewHeadless(clk clock.Clock, voices int) *Headless {
	if voices <= 0 {
		voices = constant.AUDIO_VOICES
	}
	return &Headless{
		clock:       clk,
		windows:     map[uint32]*HeadlessWindow{},
		keys:        map[int]bool{},
		cursorShown: true,
		audio: &HeadlessAudio{
			mixer: audio.NewMixer(constant.CHANNELS, voices),
		},
	}
}

func (h *Headless) CreateWindow(title string, width, height int32) (window.Native, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errClosed
	}
	if err := h.createErr; err != nil {
		h.createErr = nil
		return nil, err
	}
	h.nextID++
	w := &HeadlessWindow{
		id:       h.nextID,
		title:    title,
		w:        width,
		h:        height,
		bordered: true,
		target:   &RecordingTarget{},
	}
	h.windows[w.id] = w
	return w, nil
}

// FailNextWindow makes the next CreateWindow return err.
func (h *Headless) FailNextWindow(err error) {
	h.mu.Lock()
	h.createErr = err
	h.mu.Unlock()
}

// Window returns a window created by this platform, destroyed or not.
func (h *Headless) Window(id uint32) (*HeadlessWindow, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[id]
	return w, ok
}

// Push appends events to the queue in order.
func (h *Headless) Push(events ...event.Event) {
	h.mu.Lock()
	h.queue = append(h.queue, events...)
	h.mu.Unlock()
}

func (h *Headless) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

func (h *Headless) PollEvent() (event.Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		return event.Event{}, false
	}
	ev := h.queue[0]
	h.queue = h.queue[1:]
	return ev, true
}

func (h *Headless) Clock() clock.Clock {
	return h.clock
}

func (h *Headless) SetKey(scancode int, down bool) {
	h.mu.Lock()
	h.keys[scancode] = down
	h.mu.Unlock()
}

func (h *Headless) KeyDown(scancode int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[scancode]
}

func (h *Headless) SetMouse(x, y int32, buttons uint32) {
	h.mu.Lock()
	h.mouseX, h.mouseY, h.buttons = x, y, buttons
	h.mu.Unlock()
}

func (h *Headless) MouseState() (int32, int32, uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mouseX, h.mouseY, h.buttons
}

func (h *Headless) ShowCursor(show bool) error {
	h.mu.Lock()
	h.cursorShown = show
	h.mu.Unlock()
	return nil
}

func (h *Headless) CursorShown() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorShown, nil
}

func (h *Headless) ClipboardText() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clipboard, nil
}

func (h *Headless) SetClipboardText(text string) error {
	h.mu.Lock()
	h.clipboard = text
	h.mu.Unlock()
	return nil
}

// OpenURL records rawURL instead of launching anything.
func (h *Headless) OpenURL(rawURL string) error {
	h.mu.Lock()
	h.urls = append(h.urls, rawURL)
	h.mu.Unlock()
	return nil
}

func (h *Headless) OpenedURLs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.urls...)
}

func (h *Headless) Audio() audio.Sink {
	return h.audio
}

// HeadlessAudio exposes the recorded audio for inspection.
func (h *Headless) HeadlessAudio() *HeadlessAudio {
	return h.audio
}

func (h *Headless) Fonts() render.FontLoader {
	return headlessFonts{}
}

func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.audio.Close()
}

// HeadlessWindow is the in-memory window of a Headless platform.
type HeadlessWindow struct {
	id         uint32
	title      string
	x, y       int32
	w, h       int32
	fullscreen bool
	bordered   bool
	maximized  bool
	minimized  bool
	hidden     bool
	icon       *image.RGBA
	destroyed  bool
	target     *RecordingTarget
}

func (w *HeadlessWindow) ID() uint32 {
	return w.id
}

func (w *HeadlessWindow) Target() render.Target {
	return w.target
}

func (w *HeadlessWindow) Factory() render.Factory {
	return headlessFactory{}
}

// Recording returns the render target with everything drawn so far.
func (w *HeadlessWindow) Recording() *RecordingTarget {
	return w.target
}

func (w *HeadlessWindow) SetFullscreen(on bool) error {
	w.fullscreen = on
	return nil
}

func (w *HeadlessWindow) SetBordered(on bool) { w.bordered = on }
func (w *HeadlessWindow) Maximize()           { w.maximized, w.minimized = true, false }
func (w *HeadlessWindow) Minimize()           { w.minimized, w.maximized = true, false }
func (w *HeadlessWindow) Restore()            { w.minimized, w.maximized = false, false }
func (w *HeadlessWindow) Show()               { w.hidden = false }
func (w *HeadlessWindow) Hide()               { w.hidden = true }
func (w *HeadlessWindow) SetTitle(t string)   { w.title = t }

func (w *HeadlessWindow) SetPosition(x, y int32) {
	w.x, w.y = x, y
}

func (w *HeadlessWindow) Position() (int32, int32) {
	return w.x, w.y
}

func (w *HeadlessWindow) SetSize(width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	w.w, w.h = width, height
	return nil
}

func (w *HeadlessWindow) Size() (int32, int32) {
	return w.w, w.h
}

func (w *HeadlessWindow) DisplayMode() (int32, int32, error) {
	return 1920, 1080, nil
}

func (w *HeadlessWindow) SetIcon(img *image.RGBA) error {
	w.icon = img
	return nil
}

func (w *HeadlessWindow) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("window %d already destroyed", w.id)
	}
	w.destroyed = true
	return nil
}

func (w *HeadlessWindow) Title() string      { return w.title }
func (w *HeadlessWindow) Fullscreen() bool   { return w.fullscreen }
func (w *HeadlessWindow) Bordered() bool     { return w.bordered }
func (w *HeadlessWindow) Maximized() bool    { return w.maximized }
func (w *HeadlessWindow) Minimized() bool    { return w.minimized }
func (w *HeadlessWindow) Hidden() bool       { return w.hidden }
func (w *HeadlessWindow) Icon() *image.RGBA  { return w.icon }
func (w *HeadlessWindow) Destroyed() bool    { return w.destroyed }

// RecordingTarget keeps a textual log of every draw call.
type RecordingTarget struct {
	Ops      []string
	Color    color.RGBA
	Presents int
}

func (t *RecordingTarget) record(format string, v ...interface{}) {
	t.Ops = append(t.Ops, fmt.Sprintf(format, v...))
}

func (t *RecordingTarget) SetDrawColor(c color.RGBA) error {
	t.Color = c
	return nil
}

func (t *RecordingTarget) Clear() error {
	t.record("clear %v", t.Color)
	return nil
}

func (t *RecordingTarget) DrawPoint(x, y int32) error {
	t.record("point %d %d %v", x, y, t.Color)
	return nil
}

func (t *RecordingTarget) DrawLine(x1, y1, x2, y2 int32) error {
	t.record("line %d %d %d %d %v", x1, y1, x2, y2, t.Color)
	return nil
}

func (t *RecordingTarget) DrawRect(x, y, w, h int32) error {
	t.record("rect %d %d %d %d %v", x, y, w, h, t.Color)
	return nil
}

func (t *RecordingTarget) FillRect(x, y, w, h int32) error {
	t.record("fillrect %d %d %d %d %v", x, y, w, h, t.Color)
	return nil
}

func (t *RecordingTarget) Circle(x, y, radius int32, c color.RGBA, filled bool) error {
	t.record("circle %d %d %d %v filled=%t", x, y, radius, c, filled)
	return nil
}

func (t *RecordingTarget) Ellipse(x, y, rx, ry int32, c color.RGBA, filled bool) error {
	t.record("ellipse %d %d %d %d %v filled=%t", x, y, rx, ry, c, filled)
	return nil
}

func (t *RecordingTarget) Copy(tex render.Texture, x, y, w, h int32) error {
	tw, th := tex.Size()
	if w == 0 || h == 0 {
		w, h = tw, th
	}
	t.record("copy %dx%d at %d %d size %dx%d", tw, th, x, y, w, h)
	return nil
}

func (t *RecordingTarget) Present() {
	t.Presents++
}

type headlessTexture struct {
	w, h int32
}

func (t headlessTexture) Size() (int32, int32) { return t.w, t.h }
func (t headlessTexture) Destroy() error       { return nil }

type headlessFactory struct{}

func (headlessFactory) TextureFromImage(img *image.RGBA) (render.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}
	return headlessTexture{int32(b.Dx()), int32(b.Dy())}, nil
}

func (headlessFactory) TextureFromText(font render.Font, text string, fg color.RGBA) (render.Texture, error) {
	w, h, err := font.Measure(text)
	if err != nil {
		return nil, err
	}
	return headlessTexture{w, h}, nil
}

// headlessFont measures every rune as half the point size wide.
type headlessFont struct {
	size int
}

func (f headlessFont) Measure(text string) (int32, int32, error) {
	if text == "" {
		return 0, 0, fmt.Errorf("Text has zero width")
	}
	return int32(utf8.RuneCountInString(text) * f.size / 2), int32(f.size), nil
}

func (f headlessFont) Close() {}

type headlessFonts struct{}

func (headlessFonts) LoadFont(path string, size int) (render.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return headlessFont{size}, nil
}

func (headlessFonts) LoadFontBytes(data []byte, size int) (render.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty font data")
	}
	return headlessFont{size}, nil
}

// HeadlessAudio mixes queued samples in memory and remembers the files it
// was asked to play.
type HeadlessAudio struct {
	mu     sync.Mutex
	mixer  *audio.Mixer
	played []string
	closed bool
}

func (a *HeadlessAudio) PlayFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return errClosed
	}
	a.played = append(a.played, path)
	return nil
}

func (a *HeadlessAudio) Queue(samples []float32) error {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return errClosed
	}
	return a.mixer.Add(samples)
}

func (a *HeadlessAudio) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.mixer.Reset()
	return nil
}

func (a *HeadlessAudio) Played() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.played...)
}

// Mixer is what a playback callback would drain.
func (a *HeadlessAudio) Mixer() *audio.Mixer {
	return a.mixer
}
