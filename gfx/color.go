package gfx

import "image/color"

// RGB888 is a source pixel with three independent 8-bit channels.
type RGB888 struct {
	R, G, B uint8
}

// RGB565 is a packed 16bpp color: rrrrrggggggbbbbb.
type RGB565 uint16

const (
	rWidth = 5
	gWidth = 6
	bWidth = 5

	bShift = 0
	gShift = bShift + bWidth
	rShift = gShift + gWidth

	rMask = 1<<rWidth - 1
	gMask = 1<<gWidth - 1
	bMask = 1<<bWidth - 1
)

// NewRGB565 packs r, g and b by keeping the top 5/6/5 bits of each channel.
// The low bits are truncated, never rounded.
func NewRGB565(r, g, b uint8) RGB565 {
	rr := uint16(r>>(8-rWidth)) & rMask
	gg := uint16(g>>(8-gWidth)) & gMask
	bb := uint16(b>>(8-bWidth)) & bMask
	return RGB565(rr<<rShift | gg<<gShift | bb<<bShift)
}

// RGB565 converts c to the packed target format.
func (c RGB888) RGB565() RGB565 {
	return NewRGB565(c.R, c.G, c.B)
}

// Fields returns the raw 5/6/5 bit fields.
func (c RGB565) Fields() (r, g, b uint8) {
	return uint8(c>>rShift) & rMask, uint8(c>>gShift) & gMask, uint8(c>>bShift) & bMask
}

// RGBA8 expands c back to 8-bit channels, replicating the high bits into the
// low bits so that full intensity maps to 0xFF.
func (c RGB565) RGBA8() color.RGBA {
	r, g, b := c.Fields()
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGB565Model converts any color to RGB565, dropping alpha.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})
