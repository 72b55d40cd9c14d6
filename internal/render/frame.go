// ABOUTME: Frame is one captured RGBA pixel buffer covering the terminal grid
// ABOUTME: Width x 2*rows pixels, replaced wholesale on every refresh

package render

import (
	"bytes"
	"fmt"
	"image"

	// Screenshot bytes arrive as PNG.
	_ "image/png"
)

// Frame holds raw RGBA pixels, 4 bytes per pixel, row-major.
// Height is in pixel rows: a frame covering R terminal rows has Height 2R.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// PixelAt returns the color at (x, y). Reads past the end of the buffer
// return black; this happens when a resize lands between capture and encode
// and the buffer is shorter than the dimensions imply.
func (f Frame) PixelAt(x, y int) RGB {
	i := (y*f.Width + x) * 4
	if i < 0 || i+2 >= len(f.Pix) {
		return RGB{}
	}
	return RGB{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// Decode parses screenshot bytes into an image.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty screenshot data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding screenshot: %w", err)
	}
	return img, nil
}
