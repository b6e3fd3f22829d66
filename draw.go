package maygo

import (
	"image/color"

	"github.com/ushitora-anqou/maygo/audio"
	"github.com/ushitora-anqou/maygo/render"
	"github.com/ushitora-anqou/maygo/window"
)

// CurrentTarget returns the render target of the current window. It stays
// valid until that window is closed.
func (s *Session) CurrentTarget() (render.Target, error) {
	var t render.Target
	err := s.withCurrent(func(w *window.Window) error {
		t = w.Target()
		return nil
	})
	return t, err
}

func (s *Session) CurrentFactory() (render.Factory, error) {
	var f render.Factory
	err := s.withCurrent(func(w *window.Window) error {
		f = w.Factory()
		return nil
	})
	return f, err
}

func (s *Session) CurrentNative() (window.Native, error) {
	var n window.Native
	err := s.withCurrent(func(w *window.Window) error {
		n = w.Native()
		return nil
	})
	return n, err
}

func (s *Session) Audio() audio.Sink {
	return s.platform.Audio()
}

func (s *Session) Fonts() render.FontLoader {
	return s.platform.Fonts()
}

func (s *Session) draw(c color.RGBA, fn func(t render.Target) error) error {
	return s.withCurrent(func(w *window.Window) error {
		t := w.Target()
		if err := t.SetDrawColor(c); err != nil {
			return err
		}
		return fn(t)
	})
}

func (s *Session) ClearBackground(c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.Clear()
	})
}

func (s *Session) DrawPixel(x, y int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.DrawPoint(x, y)
	})
}

func (s *Session) DrawLine(startX, startY, endX, endY int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.DrawLine(startX, startY, endX, endY)
	})
}

func (s *Session) DrawCircle(centerX, centerY, radius int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.Circle(centerX, centerY, radius, c, true)
	})
}

func (s *Session) DrawCircleLines(centerX, centerY, radius int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.Circle(centerX, centerY, radius, c, false)
	})
}

// DrawEllipse fills the ellipse centered at (x, y) with radii rx and ry.
func (s *Session) DrawEllipse(x, y, rx, ry int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.Ellipse(x, y, rx, ry, c, true)
	})
}

func (s *Session) DrawEllipseLines(x, y, rx, ry int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.Ellipse(x, y, rx, ry, c, false)
	})
}

func (s *Session) DrawRectangle(x, y, w, h int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.FillRect(x, y, w, h)
	})
}

func (s *Session) DrawRectangleLines(x, y, w, h int32, c color.RGBA) error {
	return s.draw(c, func(t render.Target) error {
		return t.DrawRect(x, y, w, h)
	})
}
