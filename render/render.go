// Package render declares the per-window drawing capabilities a platform
// hands out: the render target that draw calls go to and the resource
// factory that turns images and text into textures for that target.
package render

import (
	"image"
	"image/color"
)

// Target is a window's render target.
type Target interface {
	SetDrawColor(c color.RGBA) error
	Clear() error
	DrawPoint(x, y int32) error
	DrawLine(x1, y1, x2, y2 int32) error
	DrawRect(x, y, w, h int32) error
	FillRect(x, y, w, h int32) error
	Circle(x, y, radius int32, c color.RGBA, filled bool) error
	Ellipse(x, y, rx, ry int32, c color.RGBA, filled bool) error
	// Copy blits tex with its top-left corner at (x, y). A zero w or h
	// keeps the texture's own size.
	Copy(tex Texture, x, y, w, h int32) error
	Present()
}

// Factory creates textures bound to one window's render target.
type Factory interface {
	TextureFromImage(img *image.RGBA) (Texture, error)
	TextureFromText(font Font, text string, fg color.RGBA) (Texture, error)
}

type Texture interface {
	Size() (w, h int32)
	Destroy() error
}

type Font interface {
	// Measure returns the size the rendered text would occupy.
	Measure(text string) (w, h int32, err error)
	Close()
}

type FontLoader interface {
	LoadFont(path string, size int) (Font, error)
	LoadFontBytes(data []byte, size int) (Font, error)
}
