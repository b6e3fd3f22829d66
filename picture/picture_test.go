package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 0xff, A: 0xff})
			} else {
				img.Set(x, y, color.NRGBA{B: 0xff, A: 0xff})
			}
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := checker(4, 3)

	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	table := []struct {
		format string
		data   []byte
	}{
		{"png", pngBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
	}

	for _, entry := range table {
		img, format, err := Decode(bytes.NewReader(entry.data))
		require.NoError(t, err, entry.format)
		assert.Equal(t, entry.format, format)
		assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
		assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(1, 0))
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checker(2, 2)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestToRGBAMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.SetRGBA(5, 5, color.RGBA{G: 0xff, A: 0xff})

	dst := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, dst.RGBAAt(0, 0))

	already := image.NewRGBA(image.Rect(0, 0, 1, 1))
	assert.Same(t, already, ToRGBA(already))
}

func TestScale(t *testing.T) {
	src := ToRGBA(checker(4, 4))

	dst, err := Scale(src, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 2), dst.Bounds())

	same, err := Scale(src, 4, 4)
	require.NoError(t, err)
	assert.Same(t, src, same)

	_, err = Scale(src, 0, 4)
	assert.Error(t, err)
}
