package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	xqoi "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type EncodeCmd struct {
	In     string `help:"Source image (png, jpeg, gif, bmp, tiff, webp)." required:"" type:"existingfile"`
	Out    string `help:"Destination QOI file." required:""`
	Width  int    `help:"Target width, 0 keeps the aspect ratio." group:"resize"`
	Height int    `help:"Target height, 0 keeps the aspect ratio." group:"resize"`
	Crop   bool   `help:"Fill the whole width x height box, trimming the source." default:"false" group:"resize"`
}

func (c *EncodeCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	case c.Crop && (c.Width == 0 || c.Height == 0):
		return fmt.Errorf("crop needs both width and height")
	}
	return nil
}

func (c *EncodeCmd) Run(logger *slog.Logger) error {
	logger = logger.With("file", c.In)

	f, err := os.Open(c.In)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.In, err)
	}
	img, format, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.In, err)
	}
	logger.Debug("decoded", "format", format, "bounds", img.Bounds())

	img = resize(logger, img, c.Width, c.Height, c.Crop)

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	if err := xqoi.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("could not encode %q: %w", c.Out, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", c.Out, err)
	}

	b := img.Bounds()
	logger.Info("encoded", "out", c.Out, "width", b.Dx(), "height", b.Dy())
	return nil
}

func resize(logger *slog.Logger, img image.Image, width, height int, crop bool) image.Image {
	b := img.Bounds()
	from, to := scaleBox(b.Size(), width, height, crop)
	from = from.Add(b.Min)
	if from == b && to == b.Size() {
		return img
	}

	logger.Info("resizing", "width", to.X, "height", to.Y, "crop", crop)
	dst := image.NewNRGBA(image.Rectangle{Max: to})
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, from, draw.Src, nil)
	return dst
}
