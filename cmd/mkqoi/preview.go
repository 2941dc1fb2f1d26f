package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"qoiview/gfx"
	"qoiview/qoi"

	"github.com/alecthomas/kong"
)

type PreviewCmd struct {
	In     string `help:"Source QOI file." required:"" type:"existingfile"`
	Out    string `help:"Destination PNG file." required:""`
	Region string `help:"Only render this part of the image, as x,y,w,h." placeholder:"X,Y,W,H"`

	Area image.Rectangle `kong:"-"`
}

func (c *PreviewCmd) Validate(kctx *kong.Context) error {
	if c.Region == "" {
		return nil
	}
	r, err := parseRegion(c.Region)
	if err != nil {
		return err
	}
	c.Area = r
	return nil
}

func (c *PreviewCmd) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(c.In)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", c.In, err)
	}
	img, err := qoi.Decode(data)
	if err != nil {
		return fmt.Errorf("could not decode %q: %w", c.In, err)
	}

	buf, err := render(img, c.Area)
	if err != nil {
		return fmt.Errorf("could not render %q: %w", c.In, err)
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	if err := png.Encode(out, buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("could not write %q: %w", c.Out, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", c.Out, err)
	}

	logger.Info("preview", "in", c.In, "out", c.Out, "bounds", buf.Bounds())
	return nil
}

// render draws img, or only area of it when area is not empty, into a
// buffer of the drawn size.
func render(img gfx.Image, area image.Rectangle) (*gfx.Buffer, error) {
	a := gfx.Wrap(img)
	if area.Empty() {
		buf := gfx.NewBuffer(a.Size().X, a.Size().Y)
		return buf, a.Draw(buf, image.Point{})
	}
	buf := gfx.NewBuffer(area.Dx(), area.Dy())
	return buf, a.DrawSub(buf, area)
}
