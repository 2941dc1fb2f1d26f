package app

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"strings"
	"unicode/utf8"

	"qoiview/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var font = &proggy.TinySZ8pt7b

const (
	lineHeight = int16(12)
	lineOffset = int16(9)
	// margin keeps text inside the visible disc of a round panel.
	margin = 28
)

var (
	statusFg = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	statusBg = gfx.NewRGB565(0x20, 0x20, 0x20)
	errorFg  = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}
)

func (v *Viewer) statusText() string {
	vp := v.Viewport()
	if vp.Size() == v.size {
		return fmt.Sprintf("%s %dx%d", v.cfg.Name, v.size.X, v.size.Y)
	}
	return fmt.Sprintf("%s %d,%d/%dx%d", v.cfg.Name, vp.Min.X, vp.Min.Y, v.size.X, v.size.Y)
}

func (v *Viewer) drawStatus() {
	s := v.statusText()
	_, w := tinyfont.LineWidth(font, s)

	d := v.displaySize()
	y := d.Y - margin - int(lineHeight)
	strip := image.Rect(0, y, d.X, y+int(lineHeight))
	if err := v.buf.FillRegion(strip, solid(statusBg)); err != nil {
		v.logf("qoiview: status: %v", err)
		return
	}

	x := (d.X - int(w)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(v.buf, font, int16(x), int16(y)+lineOffset, s, statusFg)
}

// showError replaces the screen with err's text, wrapped to the display.
func (v *Viewer) showError(err error) {
	v.buf.Clear(gfx.NewRGB565(0xFF, 0xFF, 0xFF))

	_, outbox := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outbox)
	if fontWidth <= 0 {
		_ = v.fb.Present()
		return
	}

	d := v.displaySize()
	cols := int16(d.X-2*margin) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	lines := append([]string{"qoiview error:"}, strings.Split(err.Error(), ": ")...)
	y := int16(margin)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y+lineHeight) > d.Y-margin {
				_ = v.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(v.buf, font, margin, y+lineOffset, chunk, errorFg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = v.fb.Present()
}

func solid(c gfx.RGB565) iter.Seq[gfx.RGB565] {
	return func(yield func(gfx.RGB565) bool) {
		for yield(c) {
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
