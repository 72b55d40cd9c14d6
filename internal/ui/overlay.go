// ABOUTME: Composites an overlay box centered on the rendered page view
// ABOUTME: Splices overlay lines into the background, preserving page cells around them

package ui

import (
	"strings"

	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

// overlayCompose centers overlay text on top of background text. Rows and
// columns outside the overlay keep their background content.
func overlayCompose(background, overlay string, termWidth, termHeight int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < termHeight {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > termHeight {
		bgLines = bgLines[:termHeight]
	}

	ovLines := strings.Split(overlay, "\n")
	ovWidth := 0
	for _, l := range ovLines {
		if w := termwidth.Visible(l); w > ovWidth {
			ovWidth = w
		}
	}

	startRow := (termHeight - len(ovLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (termWidth - ovWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, ovLine := range ovLines {
		row := startRow + i
		if row >= termHeight {
			break
		}

		bgLine := bgLines[row]
		if vis := termwidth.Visible(bgLine); vis < startCol {
			bgLine += strings.Repeat(" ", startCol-vis)
		}

		prefix := termwidth.Cut(bgLine, startCol)
		// Pad the overlay line to the full box width so short lines still
		// cover the background underneath.
		ovVis := termwidth.Visible(ovLine)
		if ovVis < ovWidth {
			ovLine += strings.Repeat(" ", ovWidth-ovVis)
			ovVis = ovWidth
		}
		suffix := termwidth.SliceFrom(bgLines[row], startCol+ovVis)

		bgLines[row] = prefix + "\x1b[0m" + ovLine + suffix
	}

	return strings.Join(bgLines, "\n")
}
