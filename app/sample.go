package app

import _ "embed"

// Sample is a 320×320 QOI test card shown when no image is given. It is
// larger than the display so the viewer can pan over it.
//
//go:embed sample.qoi
var Sample []byte
