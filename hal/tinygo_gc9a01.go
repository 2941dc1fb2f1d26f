//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"qoiview/gfx"

	"tinygo.org/x/drivers/gc9a01"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *ramFramebuffer
	kbd    stubKeyboard
}

// New returns a HAL for a GC9A01 round panel on SPI0 (Seeed XIAO RP2040
// wiring: DC on D3, CS on D1, reset and backlight tied high).
//
// UART: the board's default UART, 115200 8N1.
func New() HAL {
	uart := machine.DefaultUART
	uart.Configure(machine.UARTConfig{BaudRate: 115200})
	logger := &uartLogger{uart: uart}

	h := &tinyGoHAL{logger: logger}
	lcd, err := initGC9A01()
	if err != nil {
		logger.WriteLineString("hal: gc9a01: " + err.Error())
		h.fb = newRAMFramebuffer(DisplayWidth, DisplayHeight, func(*ramFramebuffer) error {
			return ErrNotImplemented
		})
		return h
	}
	h.fb = newRAMFramebuffer(DisplayWidth, DisplayHeight, lcd.present)
	return h
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return ramDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

type panel struct {
	dev gc9a01.Device
	row []color.RGBA
}

func initGC9A01() (*panel, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		Mode:      0,
	}); err != nil {
		return nil, err
	}

	p := &panel{
		dev: gc9a01.New(machine.SPI0, machine.NoPin, machine.D3, machine.D1, machine.NoPin),
		row: make([]color.RGBA, DisplayWidth),
	}
	p.dev.Configure(gc9a01.Config{
		Orientation: gc9a01.HORIZONTAL,
		Width:       DisplayWidth,
		Height:      DisplayHeight,
	})
	return p, nil
}

// present streams the framebuffer one row at a time so only a single row of
// RGBA scratch is needed.
func (p *panel) present(f *ramFramebuffer) error {
	for y := 0; y < f.h; y++ {
		line := f.buf[y*f.stride:]
		for x := 0; x < f.w; x++ {
			p.row[x] = gfx.RGB565(uint16(line[x*2]) | uint16(line[x*2+1])<<8).RGBA8()
		}
		if err := p.dev.FillRectangleWithBuffer(0, int16(y), int16(f.w), 1, p.row[:f.w]); err != nil {
			return err
		}
	}
	return nil
}

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type stubKeyboard struct{}

func (stubKeyboard) Events() <-chan KeyEvent { return nil }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
