package gfx

import (
	"errors"
	"image"
	"iter"
)

var (
	// ErrOutOfBounds is returned by sinks for fills that extend past their bounds.
	ErrOutOfBounds = errors.New("gfx: region out of bounds")
	// ErrShortColors is returned by sinks when a color stream ends before the
	// region is filled.
	ErrShortColors = errors.New("gfx: color stream shorter than region")
)

// Sink accepts rectangular fills from a color stream.
//
// FillRegion consumes exactly r.Dx()*r.Dy() colors in row-major order and
// does not pull any surplus. A stream that ends early yields ErrShortColors.
type Sink interface {
	FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error
}

// Translated returns a sink that moves every fill by delta before passing it
// to dst.
func Translated(dst Sink, delta image.Point) Sink {
	return translated{dst: dst, delta: delta}
}

type translated struct {
	dst   Sink
	delta image.Point
}

func (t translated) FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error {
	return t.dst.FillRegion(r.Add(t.delta), colors)
}

// Clipped returns a sink that silently drops every write outside area.
//
// A fill is forwarded to dst as a single fill of its intersection with area;
// colors for positions outside the intersection are skipped as they stream.
func Clipped(dst Sink, area image.Rectangle) Sink {
	return clipped{dst: dst, area: area.Canon()}
}

type clipped struct {
	dst  Sink
	area image.Rectangle
}

func (c clipped) FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error {
	in := r.Intersect(c.area)
	if in.Empty() {
		return nil
	}
	if in == r {
		return c.dst.FillRegion(r, colors)
	}
	return c.dst.FillRegion(in, func(yield func(RGB565) bool) {
		w := r.Dx()
		i := 0
		for col := range colors {
			p := image.Point{X: r.Min.X + i%w, Y: r.Min.Y + i/w}
			i++
			if p.Y >= in.Max.Y {
				return
			}
			if !p.In(in) {
				continue
			}
			if !yield(col) {
				return
			}
		}
	})
}

// PixelWriter writes a single pixel.
type PixelWriter interface {
	WritePixel(p image.Point, c RGB565) error
}

// PixelWriterFunc adapts a function to PixelWriter.
type PixelWriterFunc func(p image.Point, c RGB565) error

// WritePixel calls f(p, c).
func (f PixelWriterFunc) WritePixel(p image.Point, c RGB565) error { return f(p, c) }

// PixelSink adapts a per-pixel writer into a Sink. Pixels are written in
// row-major order and the first write error aborts the fill.
func PixelSink(w PixelWriter) Sink {
	return pixelSink{w: w}
}

type pixelSink struct {
	w PixelWriter
}

func (s pixelSink) FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error {
	return fillEach(r, colors, s.w.WritePixel)
}

// fillEach walks r in row-major order, pairing each position with the next
// color. It stops on the first error from write.
func fillEach(r image.Rectangle, colors iter.Seq[RGB565], write func(image.Point, RGB565) error) error {
	total := r.Dx() * r.Dy()
	if total == 0 {
		return nil
	}
	w := r.Dx()
	n := 0
	var err error
	for c := range colors {
		p := image.Point{X: r.Min.X + n%w, Y: r.Min.Y + n/w}
		if err = write(p, c); err != nil {
			break
		}
		n++
		if n == total {
			break
		}
	}
	if err != nil {
		return err
	}
	if n < total {
		return ErrShortColors
	}
	return nil
}
