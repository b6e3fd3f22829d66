//go:build sdl2

package platform

import (
	"fmt"
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/ushitora-anqou/maygo/audio"
	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/render"
	"github.com/ushitora-anqou/maygo/window"
)

// Every video, event, renderer and ttf call below goes through sdl.Do so it
// runs on the thread sdl.Main locked. Nothing called inside an sdl.Do may
// call sdl.Do again.

// Main runs run with the calling goroutine's OS thread reserved for SDL.
// Open and every Session method must be called from inside run or from
// goroutines it starts.
func Main(run func()) {
	sdl.Main(run)
}

type sdlContext struct {
	clock *clock.SystemClock
	audio *sdlAudio
}

func openNative(opts Options) (ctx Context, err error) {
	sdl.Do(func() {
		if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER | sdl.INIT_AUDIO); err != nil {
			return
		}
		if err = ttf.Init(); err != nil {
			sdl.Quit()
			return
		}
		var a *sdlAudio
		if a, err = openSDLAudio(opts); err != nil {
			ttf.Quit()
			sdl.Quit()
			return
		}
		ctx = &sdlContext{clock: clock.NewSystemClock(), audio: a}
	})
	return
}

func (c *sdlContext) CreateWindow(title string, width, height int32) (native window.Native, err error) {
	sdl.Do(func() {
		var win *sdl.Window
		win, err = sdl.CreateWindow(
			title,
			sdl.WINDOWPOS_CENTERED,
			sdl.WINDOWPOS_CENTERED,
			width,
			height,
			sdl.WINDOW_SHOWN,
		)
		if err != nil {
			return
		}

		var id uint32
		if id, err = win.GetID(); err != nil {
			win.Destroy()
			return
		}

		var renderer *sdl.Renderer
		if renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED); err != nil {
			win.Destroy()
			return
		}

		native = &sdlWindow{
			id:       id,
			window:   win,
			renderer: renderer,
			target:   &sdlTarget{renderer},
			factory:  &sdlFactory{renderer},
		}
	})
	return
}

func (c *sdlContext) PollEvent() (ev event.Event, ok bool) {
	sdl.Do(func() {
		if raw := sdl.PollEvent(); raw != nil {
			ev, ok = translateSDLEvent(raw), true
		}
	})
	return
}

func translateSDLEvent(ev sdl.Event) event.Event {
	switch e := ev.(type) {
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return event.WindowClose(e.WindowID)
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return event.FocusGained(e.WindowID)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return event.FocusLost(e.WindowID)
		}
		return event.Event{Kind: event.KindOther, WindowID: e.WindowID}
	}
	if ev.GetType() == sdl.APP_TERMINATING {
		return event.AppTerminating()
	}
	return event.Event{Kind: event.KindOther}
}

// Clock is the Go monotonic clock; SDL's 32-bit tick counter wraps after
// about 49 days.
func (c *sdlContext) Clock() clock.Clock {
	return c.clock
}

func (c *sdlContext) KeyDown(scancode int) (down bool) {
	sdl.Do(func() {
		state := sdl.GetKeyboardState()
		down = scancode >= 0 && scancode < len(state) && state[scancode] != 0
	})
	return
}

func (c *sdlContext) MouseState() (x, y int32, buttons uint32) {
	sdl.Do(func() {
		mx, my, state := sdl.GetMouseState()
		x, y, buttons = mx, my, uint32(state)
	})
	return
}

func (c *sdlContext) ShowCursor(show bool) (err error) {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	sdl.Do(func() {
		_, err = sdl.ShowCursor(toggle)
	})
	return
}

func (c *sdlContext) CursorShown() (shown bool, err error) {
	sdl.Do(func() {
		var v int
		v, err = sdl.ShowCursor(sdl.QUERY)
		shown = err == nil && v == sdl.ENABLE
	})
	return
}

func (c *sdlContext) ClipboardText() (text string, err error) {
	sdl.Do(func() {
		text, err = sdl.GetClipboardText()
	})
	return
}

func (c *sdlContext) SetClipboardText(text string) (err error) {
	sdl.Do(func() {
		err = sdl.SetClipboardText(text)
	})
	return
}

func (c *sdlContext) OpenURL(rawURL string) error {
	return launchBrowser(rawURL)
}

func (c *sdlContext) Audio() audio.Sink {
	return c.audio
}

func (c *sdlContext) Fonts() render.FontLoader {
	return sdlFonts{}
}

func (c *sdlContext) Close() (err error) {
	sdl.Do(func() {
		err = c.audio.Close()
		ttf.Quit()
		sdl.Quit()
	})
	return
}

type sdlWindow struct {
	id       uint32
	window   *sdl.Window
	renderer *sdl.Renderer
	target   *sdlTarget
	factory  *sdlFactory
}

func (w *sdlWindow) ID() uint32 {
	return w.id
}

func (w *sdlWindow) Target() render.Target {
	return w.target
}

func (w *sdlWindow) Factory() render.Factory {
	return w.factory
}

func (w *sdlWindow) SetFullscreen(on bool) (err error) {
	var flags uint32
	if on {
		flags = sdl.WINDOW_FULLSCREEN
	}
	sdl.Do(func() {
		err = w.window.SetFullscreen(flags)
	})
	return
}

func (w *sdlWindow) SetBordered(on bool)   { sdl.Do(func() { w.window.SetBordered(on) }) }
func (w *sdlWindow) Maximize()             { sdl.Do(w.window.Maximize) }
func (w *sdlWindow) Minimize()             { sdl.Do(w.window.Minimize) }
func (w *sdlWindow) Restore()              { sdl.Do(w.window.Restore) }
func (w *sdlWindow) Show()                 { sdl.Do(w.window.Show) }
func (w *sdlWindow) Hide()                 { sdl.Do(w.window.Hide) }
func (w *sdlWindow) SetTitle(title string) { sdl.Do(func() { w.window.SetTitle(title) }) }

func (w *sdlWindow) SetPosition(x, y int32) {
	sdl.Do(func() {
		w.window.SetPosition(x, y)
	})
}

func (w *sdlWindow) Position() (x, y int32) {
	sdl.Do(func() {
		x, y = w.window.GetPosition()
	})
	return
}

func (w *sdlWindow) SetSize(width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	sdl.Do(func() {
		w.window.SetSize(width, height)
	})
	return nil
}

func (w *sdlWindow) Size() (width, height int32) {
	sdl.Do(func() {
		width, height = w.window.GetSize()
	})
	return
}

func (w *sdlWindow) DisplayMode() (width, height int32, err error) {
	sdl.Do(func() {
		var mode sdl.DisplayMode
		if mode, err = w.window.GetDisplayMode(); err == nil {
			width, height = mode.W, mode.H
		}
	})
	return
}

func (w *sdlWindow) SetIcon(img *image.RGBA) (err error) {
	sdl.Do(func() {
		var surface *sdl.Surface
		if surface, err = surfaceFromRGBA(img); err != nil {
			return
		}
		defer surface.Free()
		w.window.SetIcon(surface)
	})
	return
}

func (w *sdlWindow) Destroy() (err error) {
	sdl.Do(func() {
		rerr := w.renderer.Destroy()
		if err = w.window.Destroy(); err == nil {
			err = rerr
		}
	})
	return
}

// surfaceFromRGBA copies img into a new surface. ABGR8888 is R, G, B, A in
// memory on little-endian machines, matching image.RGBA.
func surfaceFromRGBA(img *image.RGBA) (*sdl.Surface, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		copy(pixels[y*pitch:y*pitch+rowLen], src)
	}
	return surface, nil
}

type sdlTarget struct {
	renderer *sdl.Renderer
}

func sdlColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// do runs f on the SDL thread and returns its error.
func do(f func() error) (err error) {
	sdl.Do(func() {
		err = f()
	})
	return
}

func (t *sdlTarget) SetDrawColor(c color.RGBA) error {
	return do(func() error { return t.renderer.SetDrawColor(c.R, c.G, c.B, c.A) })
}

func (t *sdlTarget) Clear() error {
	return do(t.renderer.Clear)
}

func (t *sdlTarget) DrawPoint(x, y int32) error {
	return do(func() error { return t.renderer.DrawPoint(x, y) })
}

func (t *sdlTarget) DrawLine(x1, y1, x2, y2 int32) error {
	return do(func() error { return t.renderer.DrawLine(x1, y1, x2, y2) })
}

func (t *sdlTarget) DrawRect(x, y, w, h int32) error {
	return do(func() error { return t.renderer.DrawRect(&sdl.Rect{X: x, Y: y, W: w, H: h}) })
}

func (t *sdlTarget) FillRect(x, y, w, h int32) error {
	return do(func() error { return t.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h}) })
}

func (t *sdlTarget) Circle(x, y, radius int32, c color.RGBA, filled bool) error {
	return do(func() error {
		var ok bool
		if filled {
			ok = gfx.FilledCircleColor(t.renderer, x, y, radius, sdlColor(c))
		} else {
			ok = gfx.CircleColor(t.renderer, x, y, radius, sdlColor(c))
		}
		if !ok {
			return fmt.Errorf("Failed to draw circle: %v", sdl.GetError())
		}
		return nil
	})
}

func (t *sdlTarget) Ellipse(x, y, rx, ry int32, c color.RGBA, filled bool) error {
	return do(func() error {
		var ok bool
		if filled {
			ok = gfx.FilledEllipseColor(t.renderer, x, y, rx, ry, sdlColor(c))
		} else {
			ok = gfx.EllipseColor(t.renderer, x, y, rx, ry, sdlColor(c))
		}
		if !ok {
			return fmt.Errorf("Failed to draw ellipse: %v", sdl.GetError())
		}
		return nil
	})
}

func (t *sdlTarget) Copy(tex render.Texture, x, y, w, h int32) error {
	st, ok := tex.(*sdlTexture)
	if !ok {
		return fmt.Errorf("texture %T was not created by SDL", tex)
	}
	if w == 0 || h == 0 {
		w, h = st.w, st.h
	}
	return do(func() error {
		return t.renderer.Copy(st.texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	})
}

func (t *sdlTarget) Present() {
	sdl.Do(t.renderer.Present)
}

type sdlTexture struct {
	texture *sdl.Texture
	w, h    int32
}

func (t *sdlTexture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *sdlTexture) Destroy() error {
	return do(t.texture.Destroy)
}

type sdlFactory struct {
	renderer *sdl.Renderer
}

// fromSurface must run on the SDL thread.
func (f *sdlFactory) fromSurface(surface *sdl.Surface) (render.Texture, error) {
	texture, err := f.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	return &sdlTexture{texture: texture, w: surface.W, h: surface.H}, nil
}

func (f *sdlFactory) TextureFromImage(img *image.RGBA) (tex render.Texture, err error) {
	sdl.Do(func() {
		var surface *sdl.Surface
		if surface, err = surfaceFromRGBA(img); err != nil {
			return
		}
		defer surface.Free()
		tex, err = f.fromSurface(surface)
	})
	return
}

func (f *sdlFactory) TextureFromText(font render.Font, text string, fg color.RGBA) (tex render.Texture, err error) {
	sf, ok := font.(*sdlFont)
	if !ok {
		return nil, fmt.Errorf("font %T was not loaded by SDL", font)
	}
	sdl.Do(func() {
		var surface *sdl.Surface
		if surface, err = sf.font.RenderUTF8Blended(text, sdlColor(fg)); err != nil {
			return
		}
		defer surface.Free()
		tex, err = f.fromSurface(surface)
	})
	return
}

type sdlFont struct {
	font *ttf.Font
	data []byte // backs fonts opened from memory
}

func (f *sdlFont) Measure(text string) (w, h int32, err error) {
	sdl.Do(func() {
		var iw, ih int
		if iw, ih, err = f.font.SizeUTF8(text); err == nil {
			w, h = int32(iw), int32(ih)
		}
	})
	return
}

func (f *sdlFont) Close() {
	sdl.Do(f.font.Close)
}

type sdlFonts struct{}

func (sdlFonts) LoadFont(path string, size int) (font render.Font, err error) {
	sdl.Do(func() {
		var f *ttf.Font
		if f, err = ttf.OpenFont(path, size); err == nil {
			font = &sdlFont{font: f}
		}
	})
	return
}

func (sdlFonts) LoadFontBytes(data []byte, size int) (font render.Font, err error) {
	buf := append([]byte(nil), data...)
	sdl.Do(func() {
		var rw *sdl.RWops
		if rw, err = sdl.RWFromMem(buf); err != nil {
			return
		}
		var f *ttf.Font
		if f, err = ttf.OpenFontRW(rw, 1, size); err == nil {
			font = &sdlFont{font: f, data: buf}
		}
	})
	return
}
