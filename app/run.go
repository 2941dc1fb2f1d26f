package app

import (
	"time"

	"qoiview/hal"
)

// NewStep builds a viewer and returns its step function in the shape the
// HAL runners expect. A construction error is logged and returned from the
// first step.
func NewStep(h hal.HAL, cfg Config) func() error {
	v, err := New(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("qoiview: " + err.Error())
		}
		return func() error { return err }
	}
	return v.Step
}

// Run drives the viewer on hardware without a host runner. It returns when
// a step fails or the viewer quits.
func Run(h hal.HAL, cfg Config, tick time.Duration) error {
	step := NewStep(h, cfg)
	for {
		if err := step(); err != nil {
			return err
		}
		time.Sleep(tick)
	}
}
