package maygo

import "github.com/ushitora-anqou/maygo/window"

var (
	ErrInvalidWindowReference = window.ErrInvalidWindowReference
	ErrInvalidFrameRate       = window.ErrInvalidFrameRate
)

// PlatformError is returned when the toolkit fails to create or change a
// window, a renderer or a texture.
type PlatformError = window.PlatformError
