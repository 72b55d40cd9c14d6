// ABOUTME: Display adapter turning an encoded grid into ANSI true-color rows
// ABOUTME: One ▀ per cell with 38;2 foreground and 48;2 background escapes

package render

import (
	"fmt"
	"strings"
)

// Lines renders the grid as one ANSI string per terminal row, each reset
// at the end so surrounding UI text keeps its own colors.
func (g Grid) Lines() []string {
	lines := make([]string, g.Rows)
	for y := range g.Rows {
		var b strings.Builder
		for x := range g.Cols {
			c := g.Cells[y*g.Cols+x]
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				c.Fg.R, c.Fg.G, c.Fg.B, c.Bg.R, c.Bg.G, c.Bg.B)
		}
		b.WriteString("\x1b[0m")
		lines[y] = b.String()
	}
	return lines
}
