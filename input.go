package maygo

import (
	"github.com/ushitora-anqou/maygo/input"
)

// KeyPressed reports whether key is currently held down.
func (s *Session) KeyPressed(key input.Key) (bool, error) {
	scancode, err := key.Scancode()
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.KeyDown(scancode), nil
}

func (s *Session) MouseButtonPressed(button input.MouseButton) (bool, error) {
	if _, err := button.Mask(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _, state := s.platform.MouseState()
	return button.Pressed(state), nil
}

// MousePosition returns the pointer position relative to the focused window.
func (s *Session) MousePosition() (x, y int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, y, _ = s.platform.MouseState()
	return
}

func (s *Session) MouseX() int32 {
	x, _ := s.MousePosition()
	return x
}

func (s *Session) MouseY() int32 {
	_, y := s.MousePosition()
	return y
}

func (s *Session) ClipboardText() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.ClipboardText()
}

func (s *Session) SetClipboardText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.SetClipboardText(text)
}

func (s *Session) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.ShowCursor(true)
}

func (s *Session) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.ShowCursor(false)
}

func (s *Session) CursorHidden() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shown, err := s.platform.CursorShown()
	if err != nil {
		return false, err
	}
	return !shown, nil
}
