package main

import (
	"fmt"
	"io"
	"os"

	"qoiview/qoi"
)

type InfoCmd struct {
	In string `help:"QOI file." required:"" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	data, err := os.ReadFile(c.In)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", c.In, err)
	}
	return describe(os.Stdout, data)
}

func describe(w io.Writer, data []byte) error {
	size, channels, cs, err := qoi.DecodeConfig(data)
	if err != nil {
		return err
	}
	space := "srgb"
	if cs == qoi.Linear {
		space = "linear"
	}
	_, err = fmt.Fprintf(w, "width=%d height=%d channels=%d colorspace=%s bytes=%d\n",
		size.X, size.Y, channels, space, len(data))
	return err
}
