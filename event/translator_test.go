package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/platform"
	"github.com/ushitora-anqou/maygo/window"
)

func setup(t *testing.T, n int) (*platform.Headless, *window.Registry, []uint32) {
	t.Helper()
	h := platform.NewHeadless(clock.NewManualClock(0), 0)
	reg := window.NewRegistry()
	var ids []uint32
	for i := 0; i < n; i++ {
		id, err := reg.Create(h, "w", 320, 240, 0)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return h, reg, ids
}

func TestDrainOrdering(t *testing.T) {
	h, reg, ids := setup(t, 2)
	w1, w2 := ids[0], ids[1]

	h.Push(event.WindowClose(w1), event.FocusLost(w2), event.FocusGained(w2))
	tally := event.NewTranslator().Drain(h, reg)

	win1, _ := reg.Get(w1)
	win2, _ := reg.Get(w2)
	assert.True(t, win1.Flags().ShouldClose)
	assert.False(t, win2.Flags().ShouldClose)
	assert.True(t, win2.Flags().Focused, "the later focus_gained must win")

	assert.Equal(t, 3, tally.Total())
	assert.Equal(t, 1, tally.Count(event.KindWindowClose))
	assert.Equal(t, 1, tally.Count(event.KindFocusLost))
	assert.Equal(t, 1, tally.Count(event.KindFocusGained))
	assert.False(t, tally.Terminating)
}

func TestDrainConsumesOnce(t *testing.T) {
	h, reg, ids := setup(t, 1)
	tr := event.NewTranslator()

	h.Push(event.FocusGained(ids[0]))
	assert.Equal(t, 1, tr.Drain(h, reg).Total())
	assert.Equal(t, 0, h.Pending())
	assert.Equal(t, 0, tr.Drain(h, reg).Total())
}

func TestDrainStopsAtTermination(t *testing.T) {
	h, reg, ids := setup(t, 1)

	h.Push(event.AppTerminating(), event.WindowClose(ids[0]))
	tally := event.NewTranslator().Drain(h, reg)

	assert.True(t, tally.Terminating)
	assert.Equal(t, 1, tally.Count(event.KindAppTerminating))
	assert.Equal(t, 1, h.Pending())
	w, _ := reg.Get(ids[0])
	assert.False(t, w.Flags().ShouldClose)
}

func TestDrainIgnoresUnknownAndOther(t *testing.T) {
	h, reg, ids := setup(t, 1)
	require.NoError(t, reg.Remove(ids[0]))

	h.Push(
		event.WindowClose(ids[0]),
		event.FocusGained(99),
		event.Event{Kind: event.KindOther, WindowID: 1},
		event.Event{Kind: event.Kind(42)},
	)
	tally := event.NewTranslator().Drain(h, reg)

	assert.Equal(t, 2, tally.Unrouted)
	assert.Equal(t, 2, tally.Count(event.KindOther))
	assert.Equal(t, 4, tally.Total())
	assert.Equal(t, 0, reg.Len())
}

func TestTallyEach(t *testing.T) {
	h, reg, ids := setup(t, 1)
	h.Push(event.FocusGained(ids[0]), event.FocusLost(ids[0]), event.FocusGained(ids[0]))
	tally := event.NewTranslator().Drain(h, reg)

	got := map[string]int{}
	tally.Each(func(k event.Kind, n int) {
		got[k.String()] = n
	})
	assert.Equal(t, map[string]int{"focus_gained": 2, "focus_lost": 1}, got)
	assert.Equal(t, 0, tally.Count(event.Kind(-1)))
}
