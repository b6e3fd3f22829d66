package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindowReference is returned when the selected window id does
	// not name an open window.
	ErrInvalidWindowReference = errors.New("invalid window reference")
	ErrInvalidFrameRate       = errors.New("frame rate must be a finite positive number")
)

// PlatformError reports that the platform could not create a context, a
// window or a render target.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
