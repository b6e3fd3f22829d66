package event

import "fmt"

type Kind int

const (
	KindOther Kind = iota
	KindWindowClose
	KindFocusGained
	KindFocusLost
	KindAppTerminating

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindWindowClose:
		return "window_close"
	case KindFocusGained:
		return "focus_gained"
	case KindFocusLost:
		return "focus_lost"
	case KindAppTerminating:
		return "app_terminating"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a platform event reduced to what the session reacts to.
// WindowID is meaningful for window events only.
type Event struct {
	Kind     Kind
	WindowID uint32
}

func WindowClose(id uint32) Event {
	return Event{Kind: KindWindowClose, WindowID: id}
}

func FocusGained(id uint32) Event {
	return Event{Kind: KindFocusGained, WindowID: id}
}

func FocusLost(id uint32) Event {
	return Event{Kind: KindFocusLost, WindowID: id}
}

func AppTerminating() Event {
	return Event{Kind: KindAppTerminating}
}

// Source is a non-blocking event queue. PollEvent returns false once the
// queue is empty.
type Source interface {
	PollEvent() (Event, bool)
}
