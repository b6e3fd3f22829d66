package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScancodeTableIsTotal(t *testing.T) {
	seen := map[int]Key{}
	for _, k := range Keys() {
		sc, err := k.Scancode()
		require.NoError(t, err, "key %v", k)
		if sc <= 0 {
			t.Fatalf("key %v maps to scancode %d", k, sc)
		}
		if other, dup := seen[sc]; dup {
			t.Fatalf("keys %v and %v share scancode %d", other, k, sc)
		}
		seen[sc] = k
		assert.NotEmpty(t, k.String())
	}
	assert.Len(t, seen, int(numKeys))
}

func TestScancodeKnownValues(t *testing.T) {
	table := []struct {
		key      Key
		scancode int
	}{
		{KeyA, 4},
		{KeyZ, 29},
		{KeyNum1, 30},
		{KeyNum0, 39},
		{KeyReturn, 40},
		{KeyEscape, 41},
		{KeySpace, 44},
		{KeyF1, 58},
		{KeyF12, 69},
		{KeyF13, 104},
		{KeyF24, 115},
		{KeyDelete, 76},
		{KeyUp, 82},
	}

	for _, entry := range table {
		sc, err := entry.key.Scancode()
		require.NoError(t, err)
		if sc != entry.scancode {
			t.Fatalf("%v: got scancode %d, expected %d", entry.key, sc, entry.scancode)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	for _, k := range []Key{-1, numKeys, 1000} {
		assert.False(t, k.Valid())
		_, err := k.Scancode()
		assert.Error(t, err)
		assert.Contains(t, k.String(), "Key(")
	}
}

func TestMouseButtons(t *testing.T) {
	table := []struct {
		button MouseButton
		mask   uint32
	}{
		{MouseLeft, 1},
		{MouseMiddle, 2},
		{MouseRight, 4},
	}

	for _, entry := range table {
		mask, err := entry.button.Mask()
		require.NoError(t, err)
		assert.Equal(t, entry.mask, mask, entry.button.String())
		assert.True(t, entry.button.Pressed(entry.mask|0x10))
		assert.False(t, entry.button.Pressed(^entry.mask))
	}

	_, err := MouseButton(7).Mask()
	assert.Error(t, err)
	assert.False(t, MouseButton(7).Pressed(0xffffffff))
}
