package main

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// scaleBox returns the source rectangle to sample and the output size when
// resizing a src-sized image to width x height. A zero width or height
// follows the source aspect ratio.
//
// Without crop the whole source is kept and the result fits inside the box.
// With crop the result is exactly the box and the source is trimmed evenly
// on the long axis.
func scaleBox(src image.Point, width, height int, crop bool) (from image.Rectangle, to image.Point) {
	from = image.Rectangle{Max: src}
	if src.X <= 0 || src.Y <= 0 {
		return from, image.Point{}
	}
	sw, sh := float64(src.X), float64(src.Y)
	srcAR := sw / sh

	switch {
	case width <= 0 && height <= 0:
		return from, src
	case width <= 0:
		return from, image.Pt(max(1, int(math.Round(float64(height)*srcAR))), height)
	case height <= 0:
		return from, image.Pt(width, max(1, int(math.Round(float64(width)/srcAR))))
	}

	dw, dh := float64(width), float64(height)
	destAR := dw / dh
	if crop {
		if srcAR < destAR {
			d := int(math.Round((sh - sw/destAR) / 2))
			from.Min.Y += d
			from.Max.Y -= d
		} else if srcAR > destAR {
			d := int(math.Round((sw - sh*destAR) / 2))
			from.Min.X += d
			from.Max.X -= d
		}
		return from, image.Pt(width, height)
	}

	to = image.Pt(width, height)
	if srcAR < destAR {
		to.X = max(1, int(math.Round(dh*srcAR)))
	} else if srcAR > destAR {
		to.Y = max(1, int(math.Round(dw/srcAR)))
	}
	return from, to
}

// parseRegion reads "x,y,w,h" into a rectangle.
func parseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("region %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("region %q: empty", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
