package window

import (
	"image"

	"github.com/ushitora-anqou/maygo/render"
)

// Native is the platform side of a window: the OS window together with the
// render target and resource factory created for it.
type Native interface {
	ID() uint32
	Target() render.Target
	Factory() render.Factory

	SetFullscreen(on bool) error
	SetBordered(on bool)
	Maximize()
	Minimize()
	Restore()
	Show()
	Hide()
	SetTitle(title string)
	SetPosition(x, y int32)
	Position() (x, y int32)
	SetSize(w, h int32) error
	Size() (w, h int32)
	DisplayMode() (w, h int32, err error)
	SetIcon(img *image.RGBA) error

	// Destroy releases the render target and the OS window. The Native
	// must not be used afterwards.
	Destroy() error
}

// Creator allocates native windows.
type Creator interface {
	CreateWindow(title string, width, height int32) (Native, error)
}
