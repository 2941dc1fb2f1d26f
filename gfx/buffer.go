package gfx

import (
	"fmt"
	"image"
	"image/color"
	"iter"
)

// Buffer is an RGB565 pixel buffer. Pixels are stored as little-endian 16-bit
// words, rows are Stride bytes apart.
//
// Buffer is a Sink, an image.Image and a drivers.Displayer.
type Buffer struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewBuffer allocates a w×h buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		Pix:    make([]byte, w*h*2),
		Stride: w * 2,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// BufferOf wraps existing framebuffer memory.
func BufferOf(pix []byte, w, h, stride int) (*Buffer, error) {
	if w <= 0 || h <= 0 || stride < w*2 {
		return nil, fmt.Errorf("gfx: invalid buffer geometry %dx%d stride %d", w, h, stride)
	}
	if len(pix) < (h-1)*stride+w*2 {
		return nil, fmt.Errorf("gfx: buffer too small for %dx%d stride %d: %d bytes", w, h, stride, len(pix))
	}
	return &Buffer{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, w, h)}, nil
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return b.Rect }

// ColorModel implements image.Image. It is always RGB565Model.
func (b *Buffer) ColorModel() color.Model { return RGB565Model }

// PixOffset is the index of the first byte of the pixel at (x, y) in Pix.
func (b *Buffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*2
}

// At implements image.Image. Pixels outside the bounds are black.
func (b *Buffer) At(x, y int) color.Color {
	return b.RGB565At(x, y)
}

// RGB565At returns the packed color at (x, y), or 0 outside the bounds.
func (b *Buffer) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}).In(b.Rect) {
		return 0
	}
	i := b.PixOffset(x, y)
	return RGB565(b.Pix[i]) | RGB565(b.Pix[i+1])<<8
}

func (b *Buffer) set(p image.Point, c RGB565) {
	i := b.PixOffset(p.X, p.Y)
	b.Pix[i] = byte(c)
	b.Pix[i+1] = byte(c >> 8)
}

// FillRegion writes colors into r. The whole region is checked against the
// buffer bounds before anything is written.
func (b *Buffer) FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error {
	if r.Empty() {
		return nil
	}
	if !r.In(b.Rect) {
		return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, r, b.Rect)
	}
	return fillEach(r, colors, func(p image.Point, c RGB565) error {
		b.set(p, c)
		return nil
	})
}

// Clear fills the whole buffer with c.
func (b *Buffer) Clear(c RGB565) {
	lo, hi := byte(c), byte(c>>8)
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.PixOffset(b.Rect.Min.X, y)
		for i := 0; i < b.Rect.Dx()*2; i += 2 {
			b.Pix[row+i] = lo
			b.Pix[row+i+1] = hi
		}
	}
}

// Size implements drivers.Displayer.
func (b *Buffer) Size() (x, y int16) {
	return int16(b.Rect.Dx()), int16(b.Rect.Dy())
}

// SetPixel implements drivers.Displayer. Writes outside the buffer are
// ignored.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	p := image.Point{X: b.Rect.Min.X + int(x), Y: b.Rect.Min.Y + int(y)}
	if !p.In(b.Rect) {
		return
	}
	b.set(p, NewRGB565(c.R, c.G, c.B))
}

// Display implements drivers.Displayer. A Buffer has nothing to flush.
func (b *Buffer) Display() error { return nil }
