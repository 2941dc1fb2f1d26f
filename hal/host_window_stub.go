//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs the ebiten backend; use RunHeadless in cgo-free builds.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("qoiview: window needs cgo, rebuild with CGO_ENABLED=1 or pass -headless")
}
