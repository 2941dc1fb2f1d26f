//go:build tinygo

package main

import (
	"time"

	"qoiview/app"
	"qoiview/hal"
)

func main() {
	h := hal.New()
	err := app.Run(h, app.Config{Name: "sample", Data: app.Sample}, 20*time.Millisecond)
	if err != nil {
		h.Logger().WriteLineString("qoiview: halted: " + err.Error())
	}
	select {}
}
