package maygo

import (
	"fmt"
	"image/color"

	"github.com/ushitora-anqou/maygo/render"
	"github.com/ushitora-anqou/maygo/window"
)

// LoadFont opens a TrueType font at the given point size. Close it when
// done.
func (s *Session) LoadFont(path string, size int) (render.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	font, err := s.platform.Fonts().LoadFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return font, nil
}

func (s *Session) LoadFontBytes(data []byte, size int) (render.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	font, err := s.platform.Fonts().LoadFontBytes(data, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return font, nil
}

// DrawText renders text with its top-left corner at (x, y) on the current
// window.
func (s *Session) DrawText(font render.Font, text string, x, y int32, fg color.RGBA) error {
	return s.withCurrent(func(w *window.Window) error {
		tex, err := w.Factory().TextureFromText(font, text, fg)
		if err != nil {
			return fmt.Errorf("failed to render text: %w", err)
		}
		defer tex.Destroy()
		return w.Target().Copy(tex, x, y, 0, 0)
	})
}

// MeasureText returns the size DrawText would cover.
func (s *Session) MeasureText(font render.Font, text string) (width, height int32, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return font.Measure(text)
}
