// ABOUTME: Viewport math tying terminal cell dimensions to browser pixel dimensions
// ABOUTME: MapToSource converts cell coordinates to page coordinates, no caching

package render

// Viewport describes the terminal grid and the pixel scale factor.
// Scale is the number of source pixels per terminal cell horizontally;
// vertically each cell covers two pixel rows, hence the factor of 2.
type Viewport struct {
	Cols  int
	Rows  int
	Scale int
}

// SourceSize returns the browser viewport dimensions in pixels:
// cols*scale wide, rows*scale*2 tall.
func (v Viewport) SourceSize() (w, h int) {
	return v.Cols * v.Scale, v.Rows * v.Scale * 2
}

// MapToSource converts a terminal cell coordinate to a source-surface pixel
// coordinate. All dimensions are taken as arguments so the mapping always
// reflects the current terminal size; nothing is cached across resizes.
// Out-of-range inputs map out of range; clamping is the caller's business.
func MapToSource(termX, termY float64, termW, termH, srcW, srcH int) (x, y float64) {
	if termW <= 0 || termH <= 0 {
		return 0, 0
	}
	x = termX / float64(termW) * float64(srcW)
	y = termY / float64(termH) * float64(srcH)
	return x, y
}
