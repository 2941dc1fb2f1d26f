package gfx

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// ErrRegion is returned by DrawSub for an empty region or one that is not
// fully inside the image.
var ErrRegion = errors.New("gfx: render region not inside image")

// Image is a decoded image that can stream its pixels.
//
// Pixels returns a fresh row-major sequence of exactly Size().X*Size().Y
// pixels on every call.
type Image interface {
	Size() image.Point
	Pixels() iter.Seq[RGB888]
}

// Adapter presents an RGB888 Image to RGB565 sinks. Pixels are converted as
// they stream; nothing is buffered.
type Adapter struct {
	img Image
}

// Wrap returns an Adapter over img. The adapter does not own img.
func Wrap(img Image) Adapter {
	return Adapter{img: img}
}

// Size reports the image dimensions.
func (a Adapter) Size() image.Point {
	return a.img.Size()
}

// Bounds is the image rectangle anchored at the origin.
func (a Adapter) Bounds() image.Rectangle {
	return image.Rectangle{Max: a.img.Size()}
}

// Draw fills the image into dst with its top-left corner at at, using a
// single FillRegion call. Errors from dst are returned unchanged.
func (a Adapter) Draw(dst Sink, at image.Point) error {
	return dst.FillRegion(a.Bounds().Add(at), a.colors())
}

// DrawSub draws the part of the image inside area, which is given in image
// coordinates, with area.Min placed at the origin of dst.
//
// The full image is drawn at the origin, clipped to area in image
// coordinates, then shifted by -area.Min. Regions that are empty or reach
// outside the image are rejected with ErrRegion before anything is written.
func (a Adapter) DrawSub(dst Sink, area image.Rectangle) error {
	b := a.Bounds()
	if area.Empty() || !area.In(b) {
		return fmt.Errorf("%w: %v outside %v", ErrRegion, area, b)
	}
	return a.Draw(Clipped(Translated(dst, area.Min.Mul(-1)), area), image.Point{})
}

func (a Adapter) colors() iter.Seq[RGB565] {
	return func(yield func(RGB565) bool) {
		for px := range a.img.Pixels() {
			if !yield(px.RGB565()) {
				return
			}
		}
	}
}
