package window

import (
	"fmt"
	"sort"

	"github.com/ushitora-anqou/maygo/constant"
)

// Registry owns every open window and remembers which one is current.
// A window counts as open exactly while it is present in the registry.
type Registry struct {
	windows map[uint32]*Window
	current uint32
}

func NewRegistry() *Registry {
	return &Registry{
		windows: map[uint32]*Window{},
		current: constant.NO_WINDOW,
	}
}

// Create asks creator for a new native window and registers it.
func (r *Registry) Create(creator Creator, title string, width, height int32, now float64) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, &PlatformError{
			Op:  "create window",
			Err: fmt.Errorf("invalid size %dx%d", width, height),
		}
	}
	native, err := creator.CreateWindow(title, width, height)
	if err != nil {
		return 0, &PlatformError{Op: "create window", Err: err}
	}
	w := New(native, now)
	if _, dup := r.windows[w.id]; dup {
		native.Destroy()
		return 0, &PlatformError{
			Op:  "create window",
			Err: fmt.Errorf("platform reused open window id %d", w.id),
		}
	}
	r.windows[w.id] = w
	return w.id, nil
}

// Remove unregisters the window and destroys its native resources before
// returning.
func (r *Registry) Remove(id uint32) error {
	w, ok := r.windows[id]
	if !ok {
		return fmt.Errorf("window %d: %w", id, ErrInvalidWindowReference)
	}
	delete(r.windows, id)
	if err := w.native.Destroy(); err != nil {
		return fmt.Errorf("destroy window %d: %w", id, err)
	}
	return nil
}

// RemoveAll destroys every window and returns the first error seen.
func (r *Registry) RemoveAll() error {
	var first error
	for _, id := range r.IDs() {
		if err := r.Remove(id); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Select makes id the current window. It is not validated here; the next
// accessor reports ErrInvalidWindowReference if id is not open.
func (r *Registry) Select(id uint32) {
	r.current = id
}

func (r *Registry) CurrentID() uint32 {
	return r.current
}

func (r *Registry) Current() (*Window, error) {
	w, ok := r.windows[r.current]
	if !ok {
		if r.current == constant.NO_WINDOW {
			return nil, fmt.Errorf("no window selected: %w", ErrInvalidWindowReference)
		}
		return nil, fmt.Errorf("window %d: %w", r.current, ErrInvalidWindowReference)
	}
	return w, nil
}

func (r *Registry) Get(id uint32) (*Window, bool) {
	w, ok := r.windows[id]
	return w, ok
}

func (r *Registry) Len() int {
	return len(r.windows)
}

// IDs returns the open window ids in ascending order.
func (r *Registry) IDs() []uint32 {
	ids := make([]uint32, 0, len(r.windows))
	for id := range r.windows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) Each(fn func(w *Window)) {
	for _, id := range r.IDs() {
		fn(r.windows[id])
	}
}

// AllClosed is true iff the registry is empty or holds only windows that are
// not ready.
func (r *Registry) AllClosed() bool {
	for _, w := range r.windows {
		if w.flags.Ready {
			return false
		}
	}
	return true
}
