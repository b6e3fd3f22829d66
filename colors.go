package maygo

import "image/color"

// Color is the color type every drawing call takes.
type Color = color.RGBA

var (
	White    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RayWhite = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	Silver   = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	Gray     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	MayGray  = color.RGBA{0x28, 0x28, 0x28, 0xff}
	Black    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Maroon   = color.RGBA{0x80, 0x00, 0x00, 0xff}
	Yellow   = color.RGBA{0xff, 0xff, 0x00, 0xff}
	Olive    = color.RGBA{0x80, 0x80, 0x00, 0xff}
	Lime     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Green    = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Aqua     = color.RGBA{0x00, 0xff, 0xff, 0xff}
	Teal     = color.RGBA{0x00, 0x80, 0x80, 0xff}
	Blue     = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Navy     = color.RGBA{0x00, 0x00, 0x80, 0xff}
	Fuchsia  = color.RGBA{0xff, 0x00, 0xff, 0xff}
	Purple   = color.RGBA{0x80, 0x00, 0x80, 0xff}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}
