package gfx

import (
	"errors"
	"image"
	"iter"
	"testing"
)

type sliceImage struct {
	w, h  int
	px    []RGB888
	pulls int
}

func (s *sliceImage) Size() image.Point { return image.Pt(s.w, s.h) }

func (s *sliceImage) Pixels() iter.Seq[RGB888] {
	return func(yield func(RGB888) bool) {
		for _, p := range s.px {
			s.pulls++
			if !yield(p) {
				return
			}
		}
	}
}

// gradient returns a w×h image where every pixel is distinct.
func gradient(w, h int) *sliceImage {
	img := &sliceImage{w: w, h: h}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.px = append(img.px, RGB888{R: uint8(x * 40), G: uint8(y * 36), B: uint8((x + y) * 24)})
		}
	}
	return img
}

type write struct {
	p image.Point
	c RGB565
}

type recorder struct {
	writes []write
	failAt int
	err    error
}

func (r *recorder) WritePixel(p image.Point, c RGB565) error {
	if r.failAt > 0 && len(r.writes)+1 == r.failAt {
		return r.err
	}
	r.writes = append(r.writes, write{p: p, c: c})
	return nil
}

var quad = &sliceImage{w: 2, h: 2, px: []RGB888{
	{R: 255}, {G: 255}, {B: 255}, {R: 255, G: 255, B: 255},
}}

func TestDrawFullQuad(t *testing.T) {
	var rec recorder
	if err := Wrap(quad).Draw(PixelSink(&rec), image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := []write{
		{image.Pt(0, 0), NewRGB565(255, 0, 0)},
		{image.Pt(1, 0), NewRGB565(0, 255, 0)},
		{image.Pt(0, 1), NewRGB565(0, 0, 255)},
		{image.Pt(1, 1), NewRGB565(255, 255, 255)},
	}
	if len(rec.writes) != len(want) {
		t.Fatalf("writes=%v", rec.writes)
	}
	for i := range want {
		if rec.writes[i] != want[i] {
			t.Fatalf("write %d = %+v want %+v", i, rec.writes[i], want[i])
		}
	}
}

func TestDrawSubQuad(t *testing.T) {
	var rec recorder
	err := Wrap(quad).DrawSub(PixelSink(&rec), image.Rect(1, 0, 2, 1))
	if err != nil {
		t.Fatalf("DrawSub: %v", err)
	}
	if len(rec.writes) != 1 {
		t.Fatalf("writes=%v", rec.writes)
	}
	if got := rec.writes[0]; got != (write{image.Pt(0, 0), NewRGB565(0, 255, 0)}) {
		t.Fatalf("write=%+v", got)
	}
}

func TestDrawFullCompleteness(t *testing.T) {
	img := gradient(5, 3)
	var rec recorder
	at := image.Pt(7, 2)
	if err := Wrap(img).Draw(PixelSink(&rec), at); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rec.writes) != 15 {
		t.Fatalf("writes=%d", len(rec.writes))
	}
	for i, w := range rec.writes {
		p := image.Pt(at.X+i%5, at.Y+i/5)
		if w.p != p {
			t.Fatalf("write %d at %v want %v", i, w.p, p)
		}
		if w.c != img.px[i].RGB565() {
			t.Fatalf("write %d color %#04x", i, uint16(w.c))
		}
	}
}

func TestDrawSubEquivalence(t *testing.T) {
	img := gradient(4, 3)
	var full recorder
	if err := Wrap(img).Draw(PixelSink(&full), image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for y0 := 0; y0 < 3; y0++ {
		for y1 := y0 + 1; y1 <= 3; y1++ {
			for x0 := 0; x0 < 4; x0++ {
				for x1 := x0 + 1; x1 <= 4; x1++ {
					area := image.Rect(x0, y0, x1, y1)

					var want []write
					for _, w := range full.writes {
						if w.p.In(area) {
							want = append(want, write{p: w.p.Sub(area.Min), c: w.c})
						}
					}

					var rec recorder
					if err := Wrap(img).DrawSub(PixelSink(&rec), area); err != nil {
						t.Fatalf("DrawSub(%v): %v", area, err)
					}
					if len(rec.writes) != len(want) {
						t.Fatalf("DrawSub(%v) writes=%d want %d", area, len(rec.writes), len(want))
					}
					for i := range want {
						if rec.writes[i] != want[i] {
							t.Fatalf("DrawSub(%v) write %d = %+v want %+v", area, i, rec.writes[i], want[i])
						}
					}
				}
			}
		}
	}
}

func TestDrawSubRejectsOutside(t *testing.T) {
	img := gradient(4, 3)
	cases := []image.Rectangle{
		image.Rect(3, 0, 5, 1),
		image.Rect(-1, 0, 2, 2),
		image.Rect(0, 2, 4, 4),
		image.Rect(10, 10, 12, 12),
		image.Rect(1, 1, 1, 2),
		{},
	}
	for _, area := range cases {
		var rec recorder
		err := Wrap(img).DrawSub(PixelSink(&rec), area)
		if !errors.Is(err, ErrRegion) {
			t.Fatalf("DrawSub(%v) err=%v", area, err)
		}
		if len(rec.writes) != 0 {
			t.Fatalf("DrawSub(%v) wrote %d pixels", area, len(rec.writes))
		}
		if img.pulls != 0 {
			t.Fatalf("DrawSub(%v) pulled %d pixels", area, img.pulls)
		}
	}
}

func TestDrawSinkErrorStops(t *testing.T) {
	boom := errors.New("boom")
	rec := recorder{failAt: 2, err: boom}
	img := gradient(3, 3)
	err := Wrap(img).Draw(PixelSink(&rec), image.Point{})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	if len(rec.writes) != 1 {
		t.Fatalf("writes=%d", len(rec.writes))
	}
	if img.pulls != 2 {
		t.Fatalf("pulled %d pixels after failure", img.pulls)
	}
}

func TestDrawOutOfBoundsBuffer(t *testing.T) {
	buf := NewBuffer(4, 4)
	img := gradient(3, 3)
	err := Wrap(img).Draw(buf, image.Pt(2, 2))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err=%v", err)
	}
	if img.pulls != 0 {
		t.Fatalf("pulled %d pixels", img.pulls)
	}
}

func TestDrawSubNotBuffered(t *testing.T) {
	// Only the rows up to the bottom of the region are pulled.
	img := gradient(4, 4)
	var rec recorder
	if err := Wrap(img).DrawSub(PixelSink(&rec), image.Rect(1, 0, 3, 2)); err != nil {
		t.Fatalf("DrawSub: %v", err)
	}
	if img.pulls > 8 {
		t.Fatalf("pulled %d pixels", img.pulls)
	}
}

func TestAdapterSize(t *testing.T) {
	a := Wrap(gradient(6, 2))
	for i := 0; i < 3; i++ {
		if got := a.Size(); got != image.Pt(6, 2) {
			t.Fatalf("Size=%v", got)
		}
	}
}
