package input

import "fmt"

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// SDL_BUTTON_LEFT, SDL_BUTTON_RIGHT, SDL_BUTTON_MIDDLE
var buttonIndex = [...]uint32{
	MouseLeft:   1,
	MouseRight:  3,
	MouseMiddle: 2,
}

// Mask returns the bit for b in the toolkit's mouse button state word.
func (b MouseButton) Mask() (uint32, error) {
	if b < 0 || int(b) >= len(buttonIndex) {
		return 0, fmt.Errorf("invalid mouse button: %d", int(b))
	}
	return 1 << (buttonIndex[b] - 1), nil
}

// Pressed reports whether b is down in the given button state word.
func (b MouseButton) Pressed(state uint32) bool {
	mask, err := b.Mask()
	if err != nil {
		return false
	}
	return state&mask != 0
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}
