package gfx

import (
	"errors"
	"image"
	"image/color"
	"iter"
	"slices"
	"testing"
)

func seq(cs ...RGB565) iter.Seq[RGB565] {
	return slices.Values(cs)
}

func TestTranslated(t *testing.T) {
	var rec recorder
	s := Translated(PixelSink(&rec), image.Pt(10, -1))
	if err := s.FillRegion(image.Rect(0, 1, 2, 2), seq(1, 2)); err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	want := []write{{image.Pt(10, 0), 1}, {image.Pt(11, 0), 2}}
	if !slices.Equal(rec.writes, want) {
		t.Fatalf("writes=%v", rec.writes)
	}
}

func TestClipped(t *testing.T) {
	tests := []struct {
		name string
		clip image.Rectangle
		fill image.Rectangle
		want []write
	}{
		{
			name: "inside",
			clip: image.Rect(0, 0, 4, 4),
			fill: image.Rect(1, 1, 3, 2),
			want: []write{{image.Pt(1, 1), 1}, {image.Pt(2, 1), 2}},
		},
		{
			name: "right column",
			clip: image.Rect(1, 0, 2, 2),
			fill: image.Rect(0, 0, 2, 2),
			want: []write{{image.Pt(1, 0), 2}, {image.Pt(1, 1), 4}},
		},
		{
			name: "bottom row",
			clip: image.Rect(0, 1, 9, 9),
			fill: image.Rect(0, 0, 2, 2),
			want: []write{{image.Pt(0, 1), 3}, {image.Pt(1, 1), 4}},
		},
		{
			name: "disjoint",
			clip: image.Rect(5, 5, 6, 6),
			fill: image.Rect(0, 0, 2, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			err := Clipped(PixelSink(&rec), tt.clip).FillRegion(tt.fill, seq(1, 2, 3, 4))
			if err != nil {
				t.Fatalf("FillRegion: %v", err)
			}
			if !slices.Equal(rec.writes, tt.want) {
				t.Fatalf("writes=%v want %v", rec.writes, tt.want)
			}
		})
	}
}

func TestTranslatedClippedComposition(t *testing.T) {
	area := image.Rect(1, 1, 3, 3)
	want := []write{
		{image.Pt(0, 0), 5}, {image.Pt(1, 0), 6},
		{image.Pt(0, 1), 8}, {image.Pt(1, 1), 9},
	}
	views := map[string]func(Sink) Sink{
		"clip outside": func(dst Sink) Sink {
			return Clipped(Translated(dst, area.Min.Mul(-1)), area)
		},
		"translate outside": func(dst Sink) Sink {
			return Translated(Clipped(dst, image.Rectangle{Max: area.Size()}), area.Min.Mul(-1))
		},
	}
	for name, view := range views {
		t.Run(name, func(t *testing.T) {
			var rec recorder
			err := view(PixelSink(&rec)).FillRegion(image.Rect(0, 0, 3, 3), seq(1, 2, 3, 4, 5, 6, 7, 8, 9))
			if err != nil {
				t.Fatalf("FillRegion: %v", err)
			}
			if !slices.Equal(rec.writes, want) {
				t.Fatalf("writes=%v want %v", rec.writes, want)
			}
		})
	}
}

func TestTranslatedClippedIntoBuffer(t *testing.T) {
	buf := NewBuffer(2, 2)
	area := image.Rect(2, 1, 4, 3)
	view := Clipped(Translated(buf, area.Min.Mul(-1)), area)
	err := view.FillRegion(image.Rect(0, 0, 4, 3), seq(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12))
	if err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	for i, c := range []RGB565{7, 8, 11, 12} {
		if got := buf.RGB565At(i%2, i/2); got != c {
			t.Fatalf("(%d,%d)=%d want %d", i%2, i/2, got, c)
		}
	}
}

func TestPixelSinkShortStream(t *testing.T) {
	var rec recorder
	err := PixelSink(&rec).FillRegion(image.Rect(0, 0, 2, 2), seq(1, 2, 3))
	if !errors.Is(err, ErrShortColors) {
		t.Fatalf("err=%v", err)
	}
	if len(rec.writes) != 3 {
		t.Fatalf("writes=%d", len(rec.writes))
	}
}

func TestPixelSinkIgnoresSurplus(t *testing.T) {
	pulled := 0
	colors := func(yield func(RGB565) bool) {
		for i := 0; i < 100; i++ {
			pulled++
			if !yield(RGB565(i)) {
				return
			}
		}
	}
	var rec recorder
	if err := PixelSink(&rec).FillRegion(image.Rect(0, 0, 2, 1), colors); err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	if pulled != 2 {
		t.Fatalf("pulled=%d", pulled)
	}
}

func TestBufferFillAndAt(t *testing.T) {
	buf := NewBuffer(3, 2)
	if err := buf.FillRegion(image.Rect(1, 0, 3, 2), seq(0xF800, 0x07E0, 0x001F, 0xFFFF)); err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	if got := buf.RGB565At(2, 1); got != 0xFFFF {
		t.Fatalf("At(2,1)=%#04x", uint16(got))
	}
	if got := buf.RGB565At(1, 0); got != 0xF800 {
		t.Fatalf("At(1,0)=%#04x", uint16(got))
	}
	if got := buf.RGB565At(0, 0); got != 0 {
		t.Fatalf("At(0,0)=%#04x", uint16(got))
	}
	// Little-endian storage.
	if buf.Pix[2] != 0x00 || buf.Pix[3] != 0xF8 {
		t.Fatalf("pix=%x", buf.Pix[:6])
	}
	if got := buf.At(1, 0); got != RGB565(0xF800) {
		t.Fatalf("At=%v", got)
	}
}

func TestBufferOutOfBoundsWritesNothing(t *testing.T) {
	buf := NewBuffer(2, 2)
	err := buf.FillRegion(image.Rect(1, 1, 3, 3), seq(1, 2, 3, 4))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err=%v", err)
	}
	for i, b := range buf.Pix {
		if b != 0 {
			t.Fatalf("pix[%d]=%#02x", i, b)
		}
	}
}

func TestBufferOfStride(t *testing.T) {
	pix := make([]byte, 3*8)
	buf, err := BufferOf(pix, 2, 3, 8)
	if err != nil {
		t.Fatalf("BufferOf: %v", err)
	}
	buf.Clear(0xABCD)
	for y := 0; y < 3; y++ {
		row := pix[y*8 : y*8+8]
		if row[0] != 0xCD || row[1] != 0xAB || row[3] != 0xAB {
			t.Fatalf("row %d=%x", y, row)
		}
		if row[4] != 0 {
			t.Fatalf("padding written in row %d: %x", y, row)
		}
	}

	if _, err := BufferOf(pix, 4, 3, 6); err == nil {
		t.Fatal("expected stride error")
	}
	if _, err := BufferOf(pix[:10], 2, 3, 8); err == nil {
		t.Fatal("expected size error")
	}
}

func TestBufferDisplayer(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetPixel(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	buf.SetPixel(5, 5, color.RGBA{G: 0xFF, A: 0xFF})
	if got := buf.RGB565At(1, 1); got != 0xF800 {
		t.Fatalf("At(1,1)=%#04x", uint16(got))
	}
	if w, h := buf.Size(); w != 2 || h != 2 {
		t.Fatalf("Size=%d,%d", w, h)
	}
}

type fakeDisplay struct {
	w, h int16
	px   map[image.Point]color.RGBA
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.px[image.Pt(int(x), int(y))] = c
}

func (d *fakeDisplay) Display() error { return nil }

func TestDisplayerSink(t *testing.T) {
	d := &fakeDisplay{w: 4, h: 4, px: map[image.Point]color.RGBA{}}
	s := DisplayerSink(d)
	if err := Wrap(quad).Draw(s, image.Pt(2, 2)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(d.px) != 4 {
		t.Fatalf("pixels=%d", len(d.px))
	}
	if got := d.px[image.Pt(3, 2)]; got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Fatalf("(3,2)=%v", got)
	}

	err := Wrap(quad).Draw(s, image.Pt(3, 3))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err=%v", err)
	}
}
