package encoder

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

// EncodeWebP writes lossy WebP at the given quality. The image is
// flattened to 3-channel RGB first; alpha does not survive.
func EncodeWebP(w io.Writer, img image.Image, o EncodeOptions) error {
	data, err := webp.EncodeRGB(img, float32(o.Quality))
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
