package maygo

import (
	"image"

	"github.com/ushitora-anqou/maygo/picture"
	"github.com/ushitora-anqou/maygo/window"
)

// DrawImage draws the image file at path with its top-left corner at
// (x, y), at its natural size.
func (s *Session) DrawImage(path string, x, y int32) error {
	img, err := picture.Load(path)
	if err != nil {
		return err
	}
	return s.DrawPicture(img, x, y)
}

// DrawImageScaled draws the image file at path resampled to w x h.
func (s *Session) DrawImageScaled(path string, x, y, w, h int32) error {
	img, err := picture.Load(path)
	if err != nil {
		return err
	}
	scaled, err := picture.Scale(img, int(w), int(h))
	if err != nil {
		return err
	}
	return s.DrawPicture(scaled, x, y)
}

// DrawPicture draws an in-memory image on the current window.
func (s *Session) DrawPicture(img image.Image, x, y int32) error {
	rgba := picture.ToRGBA(img)
	return s.withCurrent(func(w *window.Window) error {
		tex, err := w.Factory().TextureFromImage(rgba)
		if err != nil {
			return &window.PlatformError{Op: "create texture", Err: err}
		}
		defer tex.Destroy()
		return w.Target().Copy(tex, x, y, 0, 0)
	})
}

// SetWindowIcon loads the image file at path and uses it as the current
// window's icon.
func (s *Session) SetWindowIcon(path string) error {
	img, err := picture.Load(path)
	if err != nil {
		return err
	}
	return s.withCurrent(func(w *window.Window) error {
		if err := w.Native().SetIcon(img); err != nil {
			return &window.PlatformError{Op: "set icon", Err: err}
		}
		return nil
	})
}
