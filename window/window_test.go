package window

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ushitora-anqou/maygo/render"
)

type stubNative struct {
	id                   uint32
	fullscreen, bordered bool
	failFullscreen       error
	maximized, minimized bool
	hidden               bool
	w, h                 int32
	destroyed            int
}

func (n *stubNative) ID() uint32               { return n.id }
func (n *stubNative) Target() render.Target    { return nil }
func (n *stubNative) Factory() render.Factory  { return nil }
func (n *stubNative) SetBordered(on bool)      { n.bordered = on }
func (n *stubNative) Maximize()                { n.maximized = true }
func (n *stubNative) Minimize()                { n.minimized = true }
func (n *stubNative) Restore()                 { n.maximized, n.minimized = false, false }
func (n *stubNative) Show()                    { n.hidden = false }
func (n *stubNative) Hide()                    { n.hidden = true }
func (n *stubNative) SetTitle(string)          {}
func (n *stubNative) SetPosition(x, y int32)   {}
func (n *stubNative) Position() (int32, int32) { return 0, 0 }
func (n *stubNative) Size() (int32, int32)     { return n.w, n.h }
func (n *stubNative) SetIcon(*image.RGBA) error {
	return nil
}
func (n *stubNative) DisplayMode() (int32, int32, error) { return 1920, 1080, nil }
func (n *stubNative) SetSize(w, h int32) error {
	n.w, n.h = w, h
	return nil
}
func (n *stubNative) SetFullscreen(on bool) error {
	if n.failFullscreen != nil {
		return n.failFullscreen
	}
	n.fullscreen = on
	return nil
}
func (n *stubNative) Destroy() error {
	n.destroyed++
	return nil
}

type stubCreator struct {
	nextID  uint32
	err     error
	created []*stubNative
}

func (c *stubCreator) CreateWindow(title string, width, height int32) (Native, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.nextID++
	n := &stubNative{id: c.nextID, w: width, h: height, bordered: true}
	c.created = append(c.created, n)
	return n, nil
}

func TestNewWindowDefaults(t *testing.T) {
	w := New(&stubNative{id: 9}, 2.5)

	assert.Equal(t, uint32(9), w.ID())
	assert.Equal(t, Flags{Ready: true, Bordered: true}, w.Flags())
	assert.Equal(t, 2.5, w.StartTime())
	assert.Equal(t, 2.5, w.PreviousTime())
	assert.Equal(t, 2.5, w.CurrentTime())
}

func TestTickKeepsOrdering(t *testing.T) {
	w := New(&stubNative{id: 1}, 1)
	for _, now := range []float64{1.5, 1.2, 2, 2, 3.25} {
		w.Tick(now)
		if !(w.CurrentTime() >= w.PreviousTime() && w.PreviousTime() >= w.StartTime()) {
			t.Fatalf("after Tick(%v): start=%v previous=%v current=%v",
				now, w.StartTime(), w.PreviousTime(), w.CurrentTime())
		}
	}
	assert.Equal(t, 3.25, w.CurrentTime())
	assert.Equal(t, 2.0, w.PreviousTime())
}

func TestToggleFullscreenParity(t *testing.T) {
	n := &stubNative{id: 1}
	w := New(n, 0)
	for i := 1; i <= 7; i++ {
		require.NoError(t, w.ToggleFullscreen())
		assert.Equal(t, i%2 == 1, w.Flags().Fullscreen, "after %d toggles", i)
		assert.Equal(t, w.Flags().Fullscreen, n.fullscreen)
	}
}

func TestToggleFullscreenFailureKeepsFlag(t *testing.T) {
	boom := errors.New("no display mode")
	w := New(&stubNative{id: 1, failFullscreen: boom}, 0)
	assert.ErrorIs(t, w.ToggleFullscreen(), boom)
	assert.False(t, w.Flags().Fullscreen)
}

func TestToggleBorderless(t *testing.T) {
	n := &stubNative{id: 1, bordered: true}
	w := New(n, 0)

	w.ToggleBorderless()
	assert.False(t, w.Flags().Bordered)
	assert.False(t, n.bordered)

	w.ToggleBorderless()
	assert.True(t, w.Flags().Bordered)
	assert.True(t, n.bordered)
}

func TestWindowStateTransitions(t *testing.T) {
	n := &stubNative{id: 1}
	w := New(n, 0)

	w.Maximize()
	assert.True(t, w.Flags().Maximized)
	w.Minimize()
	assert.True(t, w.Flags().Minimized)
	assert.False(t, w.Flags().Maximized)
	w.Restore()
	assert.False(t, w.Flags().Minimized)
	assert.False(t, w.Flags().Maximized)

	w.Hide()
	assert.True(t, w.Flags().Hidden)
	assert.True(t, n.hidden)
	w.Show()
	assert.False(t, w.Flags().Hidden)

	require.NoError(t, w.SetSize(320, 200))
	assert.True(t, w.Flags().Resized)
	w.StartFrame(1)
	assert.False(t, w.Flags().Resized)
}
