// ABOUTME: Rounded box drawing helpers shared by the overlay dialogs
// ABOUTME: Title-centered top border, padded content lines, bottom border

package ui

import (
	"strings"

	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

const (
	boxDash = "─"
	boxSide = "│"
	boxTopL = "╭"
	boxTopR = "╮"
	boxBotL = "╰"
	boxBotR = "╯"
)

// writeBoxTop draws the top border with the title centered in it.
func writeBoxTop(b *strings.Builder, s UIStyles, title string, innerWidth int) {
	titled := s.OverlayTitle.Render(title)
	titleLen := termwidth.Visible(title)
	left := max((innerWidth-titleLen)/2, 0)
	right := max(innerWidth-titleLen-left, 0)
	b.WriteString(s.OverlayBorder.Render(boxTopL))
	b.WriteString(s.OverlayBorder.Render(strings.Repeat(boxDash, left)))
	b.WriteString(titled)
	b.WriteString(s.OverlayBorder.Render(strings.Repeat(boxDash, right)))
	b.WriteString(s.OverlayBorder.Render(boxTopR))
	b.WriteByte('\n')
}

// writeBoxLine draws one bordered content line padded to contentWidth.
func writeBoxLine(b *strings.Builder, s UIStyles, content string, contentWidth int) {
	border := s.OverlayBorder.Render(boxSide)
	b.WriteString(border)
	b.WriteString(" ")
	b.WriteString(termwidth.Pad(content, contentWidth))
	b.WriteString(" ")
	b.WriteString(border)
	b.WriteByte('\n')
}

// writeBoxBottom draws the bottom border. No trailing newline; callers end
// their view here.
func writeBoxBottom(b *strings.Builder, s UIStyles, innerWidth int) {
	b.WriteString(s.OverlayBorder.Render(boxBotL))
	b.WriteString(s.OverlayBorder.Render(strings.Repeat(boxDash, innerWidth)))
	b.WriteString(s.OverlayBorder.Render(boxBotR))
}
