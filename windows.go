package maygo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/window"
)

// CreateWindow opens a window and returns its id. The new window is not
// selected; call SelectWindow before using the current-window methods.
func (s *Session) CreateWindow(title string, width, height int32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = constant.DEFAULT_WINDOW_TITLE
	}
	id, err := s.windows.Create(s.platform, title, width, height, s.clock.Now())
	if err != nil {
		s.log.Error("Failed to create window", zap.String("title", title), zap.Error(err))
		return 0, err
	}
	s.metrics.WindowCreated(s.windows.Len())
	s.log.Info("Window created",
		zap.Uint32("window", id),
		zap.String("title", title),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return id, nil
}

// CloseWindow destroys the window with the given id. Its native resources
// are released before CloseWindow returns.
func (s *Session) CloseWindow(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeWindow(id)
}

// CloseCurrentWindow destroys the selected window. The selection is kept,
// so later current-window calls fail until another window is selected.
func (s *Session) CloseCurrentWindow() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeWindow(s.windows.CurrentID())
}

func (s *Session) closeWindow(id uint32) error {
	if err := s.windows.Remove(id); err != nil {
		return err
	}
	s.metrics.WindowClosed(s.windows.Len())
	s.log.Info("Window closed", zap.Uint32("window", id))
	return nil
}

// SelectWindow makes id the target of the current-window methods. It is
// checked lazily: those methods return ErrInvalidWindowReference if id is
// not open by then.
func (s *Session) SelectWindow(id uint32) {
	s.mu.Lock()
	s.windows.Select(id)
	s.mu.Unlock()
}

func (s *Session) CurrentWindow() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows.CurrentID()
}

// AllWindowsClosed reports whether no window is open.
func (s *Session) AllWindowsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows.AllClosed()
}

func (s *Session) flag(get func(f window.Flags) bool) (bool, error) {
	var v bool
	err := s.withCurrent(func(w *window.Window) error {
		v = get(w.Flags())
		return nil
	})
	return v, err
}

// WindowShouldClose reports whether the user asked to close the current
// window. It is always true once the application is terminating.
func (s *Session) WindowShouldClose() (bool, error) {
	s.mu.Lock()
	terminated := s.terminated
	s.mu.Unlock()
	if terminated {
		return true, nil
	}
	return s.flag(func(f window.Flags) bool { return f.ShouldClose })
}

func (s *Session) IsWindowReady() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Ready })
}

func (s *Session) IsWindowFullscreen() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Fullscreen })
}

func (s *Session) IsWindowHidden() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Hidden })
}

func (s *Session) IsWindowMinimized() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Minimized })
}

func (s *Session) IsWindowMaximized() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Maximized })
}

func (s *Session) IsWindowFocused() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Focused })
}

// IsWindowResized reports whether SetWindowSize was called on the current
// window since the last BeginFrame.
func (s *Session) IsWindowResized() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Resized })
}

func (s *Session) IsWindowBordered() (bool, error) {
	return s.flag(func(f window.Flags) bool { return f.Bordered })
}

func (s *Session) ToggleFullscreen() error {
	return s.withCurrent(func(w *window.Window) error {
		if err := w.ToggleFullscreen(); err != nil {
			return &window.PlatformError{Op: "set fullscreen", Err: err}
		}
		return nil
	})
}

func (s *Session) ToggleBorderless() error {
	return s.withCurrent(func(w *window.Window) error {
		w.ToggleBorderless()
		return nil
	})
}

func (s *Session) MaximizeWindow() error {
	return s.withCurrent(func(w *window.Window) error {
		w.Maximize()
		return nil
	})
}

func (s *Session) MinimizeWindow() error {
	return s.withCurrent(func(w *window.Window) error {
		w.Minimize()
		return nil
	})
}

func (s *Session) RestoreWindow() error {
	return s.withCurrent(func(w *window.Window) error {
		w.Restore()
		return nil
	})
}

func (s *Session) ShowWindow() error {
	return s.withCurrent(func(w *window.Window) error {
		w.Show()
		return nil
	})
}

func (s *Session) HideWindow() error {
	return s.withCurrent(func(w *window.Window) error {
		w.Hide()
		return nil
	})
}

func (s *Session) SetWindowTitle(title string) error {
	return s.withCurrent(func(w *window.Window) error {
		w.Native().SetTitle(title)
		return nil
	})
}

func (s *Session) SetWindowPosition(x, y int32) error {
	return s.withCurrent(func(w *window.Window) error {
		w.Native().SetPosition(x, y)
		return nil
	})
}

func (s *Session) WindowPosition() (x, y int32, err error) {
	err = s.withCurrent(func(w *window.Window) error {
		x, y = w.Native().Position()
		return nil
	})
	return
}

func (s *Session) SetWindowSize(width, height int32) error {
	return s.withCurrent(func(w *window.Window) error {
		if err := w.SetSize(width, height); err != nil {
			return fmt.Errorf("failed to resize window %d: %w", w.ID(), err)
		}
		return nil
	})
}

func (s *Session) WindowSize() (width, height int32, err error) {
	err = s.withCurrent(func(w *window.Window) error {
		width, height = w.Native().Size()
		return nil
	})
	return
}

// ScreenSize returns the resolution of the display the current window is on.
func (s *Session) ScreenSize() (width, height int32, err error) {
	err = s.withCurrent(func(w *window.Window) error {
		var derr error
		width, height, derr = w.Native().DisplayMode()
		if derr != nil {
			return &window.PlatformError{Op: "display mode", Err: derr}
		}
		return nil
	})
	return
}
