// Package encoder maps output format names to image encoders and
// provides decode support for the input side.
package encoder

import (
	"image"
	"io"
	"strings"
)

// EncodeFunc is the function signature for any encoder
type EncodeFunc func(w io.Writer, img image.Image, opts EncodeOptions) error

type EncodeOptions struct {
	Quality int
}

// Registry maps format name → encoder function. The jpg alias shares
// the jpeg encoder but keeps its own output extension.
var Registry = map[string]EncodeFunc{
	"webp": EncodeWebP,
	"png":  EncodePNG,
	"jpeg": EncodeJPEG,
	"jpg":  EncodeJPEG,
}

// Get looks up an encoder by format name, case-insensitively.
func Get(format string) (EncodeFunc, bool) {
	fn, ok := Registry[strings.ToLower(format)]
	return fn, ok
}
