package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixerSilence(t *testing.T) {
	m := NewMixer(2, 4)
	out := []float32{0.3, 0.3, 0.3, 0.3}
	m.Fill(out)
	assert.Equal(t, []float32{0, 0, 0, 0}, out)
}

func TestMixerSumsAndClamps(t *testing.T) {
	table := []struct {
		a, b     []float32
		expected []float32
	}{
		{[]float32{0.25, 0.25}, []float32{0.25, -0.5}, []float32{0.5, -0.25}},
		{[]float32{0.75, -0.75}, []float32{0.75, -0.75}, []float32{1, -1}},
		{[]float32{0.1, 0.1}, []float32{}, []float32{0.1, 0.1}},
	}

	for _, entry := range table {
		m := NewMixer(2, 4)
		require.NoError(t, m.Add(entry.a))
		require.NoError(t, m.Add(entry.b))
		out := make([]float32, 2)
		m.Fill(out)
		assert.InDeltaSlice(t, entry.expected, out, 1e-6)
		assert.Equal(t, 0, m.Active())
	}
}

func TestMixerAdvancesAcrossFills(t *testing.T) {
	m := NewMixer(1, 4)
	require.NoError(t, m.Add([]float32{0.1, 0.2, 0.3}))

	out := make([]float32, 2)
	m.Fill(out)
	assert.InDeltaSlice(t, []float32{0.1, 0.2}, out, 1e-6)
	assert.Equal(t, 1, m.Active())

	m.Fill(out)
	assert.InDeltaSlice(t, []float32{0.3, 0}, out, 1e-6)
	assert.Equal(t, 0, m.Active())
}

func TestMixerDropsOldestVoice(t *testing.T) {
	m := NewMixer(1, 2)
	require.NoError(t, m.Add([]float32{0.5}))
	require.NoError(t, m.Add([]float32{0.25}))
	require.NoError(t, m.Add([]float32{0.125}))
	assert.Equal(t, 2, m.Active())

	out := make([]float32, 1)
	m.Fill(out)
	assert.InDelta(t, 0.375, out[0], 1e-6)
}

func TestMixerRejectsPartialFrames(t *testing.T) {
	m := NewMixer(2, 2)
	assert.Error(t, m.Add([]float32{0.1, 0.2, 0.3}))
	assert.Equal(t, 0, m.Active())
}

func TestMixerCopiesInput(t *testing.T) {
	m := NewMixer(1, 2)
	buf := []float32{0.5}
	require.NoError(t, m.Add(buf))
	buf[0] = -1

	out := make([]float32, 1)
	m.Fill(out)
	assert.InDelta(t, 0.5, out[0], 1e-6)
}
