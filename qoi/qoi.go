// Package qoi streams pixels out of QOI ("Quite OK Image") data without
// decoding into a frame buffer.
//
// Decode only parses the header. Each call to Image.Pixels starts a new pass
// over the chunk data with a few dozen bytes of state.
package qoi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"iter"

	"qoiview/gfx"
)

const (
	headerSize  = 14
	paddingSize = 8
	magic       = "qoif"

	// MaxPixels bounds width*height, matching the reference decoder.
	MaxPixels = 400_000_000
)

const (
	opIndex = 0x00 // 00xxxxxx
	opDiff  = 0x40 // 01xxxxxx
	opLuma  = 0x80 // 10xxxxxx
	opRun   = 0xC0 // 11xxxxxx
	opRGB   = 0xFE
	opRGBA  = 0xFF

	mask2 = 0xC0
)

var (
	ErrMagic    = errors.New("qoi: bad magic")
	ErrHeader   = errors.New("qoi: bad header")
	ErrTooLarge = errors.New("qoi: image too large")
)

// Colorspace is the informational colorspace byte of the header.
type Colorspace uint8

const (
	SRGB   Colorspace = 0
	Linear Colorspace = 1
)

// Image is a parsed QOI header plus a reference to the encoded chunks.
// It does not copy data; the caller must keep it alive and unchanged.
type Image struct {
	width      int
	height     int
	channels   uint8
	colorspace Colorspace
	chunks     []byte
}

// Decode parses the QOI header in data.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeader, len(data))
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("%w: %q", ErrMagic, data[:4])
	}
	w := binary.BigEndian.Uint32(data[4:8])
	h := binary.BigEndian.Uint32(data[8:12])
	channels := data[12]
	cs := Colorspace(data[13])

	switch {
	case w == 0 || h == 0:
		return nil, fmt.Errorf("%w: size %dx%d", ErrHeader, w, h)
	case channels != 3 && channels != 4:
		return nil, fmt.Errorf("%w: channels %d", ErrHeader, channels)
	case cs != SRGB && cs != Linear:
		return nil, fmt.Errorf("%w: colorspace %d", ErrHeader, cs)
	case uint64(w)*uint64(h) > MaxPixels:
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}

	return &Image{
		width:      int(w),
		height:     int(h),
		channels:   channels,
		colorspace: cs,
		chunks:     data[headerSize:],
	}, nil
}

// DecodeConfig reports the header fields without keeping data.
func DecodeConfig(data []byte) (size image.Point, channels uint8, cs Colorspace, err error) {
	img, err := Decode(data)
	if err != nil {
		return image.Point{}, 0, 0, err
	}
	return img.Size(), img.channels, img.colorspace, nil
}

func (img *Image) Size() image.Point      { return image.Pt(img.width, img.height) }
func (img *Image) Channels() uint8        { return img.channels }
func (img *Image) Colorspace() Colorspace { return img.colorspace }

type rgba struct {
	r, g, b, a uint8
}

func (p rgba) hash() int {
	return (int(p.r)*3 + int(p.g)*5 + int(p.b)*7 + int(p.a)*11) % 64
}

// Pixels streams exactly width*height pixels in row-major order. Alpha is
// dropped. The 8-byte end marker is never read as chunk data, and if the
// chunks end early the last pixel repeats, as in the reference decoder.
func (img *Image) Pixels() iter.Seq[gfx.RGB888] {
	return func(yield func(gfx.RGB888) bool) {
		var (
			index [64]rgba
			px    = rgba{a: 0xFF}
			run   int
			p     int
		)
		data := img.chunks
		if len(data) >= paddingSize {
			data = data[:len(data)-paddingSize]
		}
		total := img.width * img.height

		for n := 0; n < total; n++ {
			if run > 0 {
				run--
			} else if p < len(data) {
				b1 := data[p]
				p++

				switch {
				case b1 == opRGB:
					if p+3 > len(data) {
						p = len(data)
						break
					}
					px.r, px.g, px.b = data[p], data[p+1], data[p+2]
					p += 3
				case b1 == opRGBA:
					if p+4 > len(data) {
						p = len(data)
						break
					}
					px = rgba{data[p], data[p+1], data[p+2], data[p+3]}
					p += 4
				case b1&mask2 == opIndex:
					px = index[b1]
				case b1&mask2 == opDiff:
					px.r += (b1>>4)&0x03 - 2
					px.g += (b1>>2)&0x03 - 2
					px.b += b1&0x03 - 2
				case b1&mask2 == opLuma:
					if p >= len(data) {
						break
					}
					b2 := data[p]
					p++
					vg := b1&0x3F - 32
					px.r += vg - 8 + (b2>>4)&0x0F
					px.g += vg
					px.b += vg - 8 + b2&0x0F
				case b1&mask2 == opRun:
					run = int(b1 & 0x3F)
				}

				index[px.hash()] = px
			}

			if !yield(gfx.RGB888{R: px.r, G: px.g, B: px.b}) {
				return
			}
		}
	}
}
