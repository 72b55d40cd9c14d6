// ABOUTME: Pure encoder from an RGBA frame to a grid of half-block cells
// ABOUTME: Each terminal cell shows two vertically adjacent pixels via ▀

package render

// Glyph is the upper half block. The top pixel renders as the cell's
// foreground, the bottom pixel as its background. Every cell uses this
// one glyph.
const Glyph = '▀'

// Cell is one terminal cell of the encoded grid.
type Cell struct {
	Fg RGB
	Bg RGB
}

// Grid is a rows x cols matrix of cells, row-major.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

// Encode maps a frame of cols x 2*rows pixels onto a rows x cols grid.
// Terminal row y reads source rows 2y (foreground) and 2y+1 (background).
// Pure: identical frame and dimensions always produce an identical grid.
func Encode(f Frame, cols, rows int) Grid {
	g := Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	for y := range rows {
		for x := range cols {
			g.Cells[y*cols+x] = Cell{
				Fg: f.PixelAt(x, 2*y),
				Bg: f.PixelAt(x, 2*y+1),
			}
		}
	}
	return g
}
