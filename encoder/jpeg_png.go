package encoder

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// EncodePNG writes lossless PNG; the quality option is ignored.
func EncodePNG(w io.Writer, img image.Image, o EncodeOptions) error {
	return png.Encode(w, img)
}

// EncodeJPEG writes JPEG at the library default quality. The quality
// option only applies to webp output.
func EncodeJPEG(w io.Writer, img image.Image, o EncodeOptions) error {
	return jpeg.Encode(w, img, nil)
}
