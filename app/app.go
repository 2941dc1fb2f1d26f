package app

import (
	"errors"
	"fmt"
	"image"

	"qoiview/gfx"
	"qoiview/hal"
	"qoiview/qoi"
)

// Config describes what the viewer shows.
type Config struct {
	// Name is shown in the status line and in log messages.
	Name string
	// Data is the encoded QOI image. It must stay unchanged while the viewer
	// runs; pixels are decoded from it on every redraw.
	Data []byte
	// Pan is the viewport step per arrow key press, in pixels.
	Pan int
	// Background fills the area around images smaller than the display.
	Background gfx.RGB565
	// HideStatus turns off the status line.
	HideStatus bool
}

const defaultPan = 16

// Viewer shows one QOI image on a HAL framebuffer and pans over it with the
// arrow keys when it is larger than the display.
type Viewer struct {
	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard
	buf *gfx.Buffer

	img  *qoi.Image
	cfg  Config
	size image.Point

	origin image.Point
	dirty  bool
	err    error
}

// New decodes the image header and binds the viewer to the HAL display.
func New(h hal.HAL, cfg Config) (*Viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	if cfg.Name == "" {
		cfg.Name = "image"
	}
	if cfg.Pan <= 0 {
		cfg.Pan = defaultPan
	}

	disp := h.Display()
	if disp == nil {
		return nil, errors.New("app: no display")
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("app: unsupported framebuffer")
	}
	buf, err := gfx.BufferOf(fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	img, err := qoi.Decode(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", cfg.Name, err)
	}

	v := &Viewer{
		log:   h.Logger(),
		fb:    fb,
		buf:   buf,
		img:   img,
		cfg:   cfg,
		size:  img.Size(),
		dirty: true,
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
	}
	v.logf("qoiview: %s %dx%d on %dx%d", cfg.Name, v.size.X, v.size.Y, fb.Width(), fb.Height())
	return v, nil
}

// Step handles pending key events and redraws if the view changed. Once a
// draw has failed every later call returns the same error.
func (v *Viewer) Step() error {
	if v.err != nil {
		return v.err
	}
	if err := v.pollKeys(); err != nil {
		return err
	}
	if !v.dirty {
		return nil
	}
	v.dirty = false

	if err := v.Redraw(); err != nil {
		v.err = fmt.Errorf("app: draw %s: %w", v.cfg.Name, err)
		v.logf("qoiview: %v", v.err)
		v.showError(v.err)
		return v.err
	}
	return nil
}

func (v *Viewer) pollKeys() error {
	if v.kbd == nil {
		return nil
	}
	ch := v.kbd.Events()
	if ch == nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape {
				return hal.ErrQuit
			}
			v.handleKey(ev.Code)
		default:
			return nil
		}
	}
}

func (v *Viewer) handleKey(code hal.KeyCode) {
	o := v.origin
	switch code {
	case hal.KeyLeft:
		o.X -= v.cfg.Pan
	case hal.KeyRight:
		o.X += v.cfg.Pan
	case hal.KeyUp:
		o.Y -= v.cfg.Pan
	case hal.KeyDown:
		o.Y += v.cfg.Pan
	case hal.KeyHome:
		o = image.Point{}
	case hal.KeyEnd:
		o = v.size
	default:
		return
	}
	v.PanTo(o)
}

// PanTo moves the viewport's top-left corner to p in image coordinates,
// clamped so the viewport stays inside the image.
func (v *Viewer) PanTo(p image.Point) {
	vp := v.viewportSize()
	p.X = clampInt(p.X, 0, v.size.X-vp.X)
	p.Y = clampInt(p.Y, 0, v.size.Y-vp.Y)
	if p != v.origin {
		v.origin = p
		v.dirty = true
	}
}

func (v *Viewer) displaySize() image.Point {
	return image.Pt(v.fb.Width(), v.fb.Height())
}

func (v *Viewer) viewportSize() image.Point {
	d := v.displaySize()
	return image.Pt(min(v.size.X, d.X), min(v.size.Y, d.Y))
}

// Viewport is the visible part of the image, in image coordinates.
func (v *Viewer) Viewport() image.Rectangle {
	return image.Rectangle{Min: v.origin, Max: v.origin.Add(v.viewportSize())}
}

// Placement is where the viewport's top-left corner lands on the display.
// Axes on which the image is smaller than the display are centered.
func (v *Viewer) Placement() image.Point {
	return v.displaySize().Sub(v.viewportSize()).Div(2)
}

// Redraw paints the current view and presents the framebuffer.
func (v *Viewer) Redraw() error {
	v.buf.Clear(v.cfg.Background)

	a := gfx.Wrap(v.img)
	area := v.Viewport()
	at := v.Placement()
	if area == a.Bounds() {
		if err := a.Draw(v.buf, at); err != nil {
			return err
		}
	} else {
		if err := a.DrawSub(gfx.Translated(v.buf, at), area); err != nil {
			return err
		}
	}

	if !v.cfg.HideStatus {
		v.drawStatus()
	}
	return v.fb.Present()
}

func (v *Viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
