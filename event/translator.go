package event

import (
	"github.com/ushitora-anqou/maygo/util"
	"github.com/ushitora-anqou/maygo/window"
)

// Tally counts the events consumed by one Drain.
type Tally struct {
	counts [numKinds]int
	// Unrouted counts window events whose window is no longer registered.
	Unrouted int
	// Terminating is set when an application-terminating event was seen.
	Terminating bool
}

func (t Tally) Count(k Kind) int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return t.counts[k]
}

func (t Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Each calls fn for every kind with a non-zero count.
func (t Tally) Each(fn func(k Kind, n int)) {
	for k, n := range t.counts {
		if n > 0 {
			fn(Kind(k), n)
		}
	}
}

// Translator turns queued platform events into window flag changes.
type Translator struct{}

func NewTranslator() *Translator {
	return &Translator{}
}

// Drain consumes every pending event from src in delivery order and applies
// it to reg. It stops early, leaving the rest queued, at an
// application-terminating event.
func (t *Translator) Drain(src Source, reg *window.Registry) Tally {
	var tally Tally
	for ev, ok := src.PollEvent(); ok; ev, ok = src.PollEvent() {
		kind := ev.Kind
		if kind < 0 || kind >= numKinds {
			kind = KindOther
		}
		tally.counts[kind]++
		util.Trace("event %v window=%d", kind, ev.WindowID)

		switch kind {
		case KindAppTerminating:
			tally.Terminating = true
			return tally

		case KindWindowClose, KindFocusGained, KindFocusLost:
			w, ok := reg.Get(ev.WindowID)
			if !ok {
				tally.Unrouted++
				continue
			}
			switch kind {
			case KindWindowClose:
				w.MarkShouldClose()
			case KindFocusGained:
				w.SetFocused(true)
			case KindFocusLost:
				w.SetFocused(false)
			}
		}
	}
	return tally
}
