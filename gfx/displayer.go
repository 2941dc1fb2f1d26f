package gfx

import (
	"fmt"
	"image"
	"iter"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Buffer)(nil)

// DisplayerSink returns a Sink that draws into a TinyGo display driver one
// pixel at a time. Fills are bounds-checked against d.Size() up front.
// Flushing with d.Display() is left to the caller.
func DisplayerSink(d drivers.Displayer) Sink {
	return displayerSink{d: d}
}

type displayerSink struct {
	d drivers.Displayer
}

func (s displayerSink) FillRegion(r image.Rectangle, colors iter.Seq[RGB565]) error {
	if r.Empty() {
		return nil
	}
	w, h := s.d.Size()
	bounds := image.Rect(0, 0, int(w), int(h))
	if !r.In(bounds) {
		return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, r, bounds)
	}
	return fillEach(r, colors, func(p image.Point, c RGB565) error {
		s.d.SetPixel(int16(p.X), int16(p.Y), c.RGBA8())
		return nil
	})
}
