//go:build tinygo

package hal

import "qoiview/gfx"

// ramFramebuffer keeps the frame in RAM and hands it to present on Present.
type ramFramebuffer struct {
	w       int
	h       int
	stride  int
	buf     []byte
	present func(f *ramFramebuffer) error
}

func newRAMFramebuffer(w, h int, present func(f *ramFramebuffer) error) *ramFramebuffer {
	stride := w * 2
	return &ramFramebuffer{
		w:       w,
		h:       h,
		stride:  stride,
		buf:     make([]byte, stride*h),
		present: present,
	}
}

func (f *ramFramebuffer) Width() int          { return f.w }
func (f *ramFramebuffer) Height() int         { return f.h }
func (f *ramFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *ramFramebuffer) StrideBytes() int    { return f.stride }
func (f *ramFramebuffer) Buffer() []byte      { return f.buf }

func (f *ramFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := gfx.NewRGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *ramFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f)
}

type ramDisplay struct {
	fb *ramFramebuffer
}

func (d ramDisplay) Framebuffer() Framebuffer { return d.fb }
