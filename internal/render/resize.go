// ABOUTME: Downsamples a captured screenshot to exact terminal-pixel dimensions
// ABOUTME: CatmullRom interpolation into an RGBA buffer wrapped as a Frame

package render

import (
	goimage "image"

	"golang.org/x/image/draw"
)

// Downsample scales img to exactly cols x 2*rows pixels and returns the
// result as a Frame. An input that is already an RGBA image of the right
// size is wrapped without copying.
func Downsample(img goimage.Image, cols, rows int) Frame {
	targetW := cols
	targetH := rows * 2
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	if rgba, ok := img.(*goimage.RGBA); ok {
		b := rgba.Bounds()
		if b.Min.X == 0 && b.Min.Y == 0 && b.Dx() == targetW && b.Dy() == targetH && rgba.Stride == targetW*4 {
			return Frame{Width: targetW, Height: targetH, Pix: rgba.Pix}
		}
	}

	dst := goimage.NewRGBA(goimage.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return Frame{Width: targetW, Height: targetH, Pix: dst.Pix}
}
