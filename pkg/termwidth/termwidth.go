// ABOUTME: Display-width measurement and truncation for styled terminal strings
// ABOUTME: Grapheme-aware via uniseg/runewidth; ANSI escapes count as zero width

package termwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the display width of s. ANSI escape sequences contribute
// zero width; grapheme clusters are measured by their leading rune, which
// handles East Asian wide characters and emoji bases.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}

	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSI(s, i)
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w += clusterWidth(cluster)
		i += len(s[i:]) - len(rest)
	}
	return w
}

// Truncate shortens s to at most max visible columns, replacing the cut
// tail with a single ellipsis. ANSI sequences are carried through and a
// reset is emitted before the ellipsis so its styling is the terminal's own.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Visible(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := max - 1
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSI(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune('…')
	return b.String()
}

// Pad extends s with spaces to exactly max visible columns, truncating
// first if it is too long.
func Pad(s string, max int) string {
	if max <= 0 {
		return ""
	}
	s = Truncate(s, max)
	if gap := max - Visible(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Cut returns the prefix of s occupying at most max visible columns, with
// no ellipsis. ANSI sequences inside the kept prefix are preserved.
func Cut(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Visible(s) <= max {
		return s
	}

	var b strings.Builder
	col := 0
	i := 0
	for i < len(s) && col < max {
		if s[i] == '\x1b' {
			end := skipANSI(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if col+cw > max {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	return b.String()
}

// SliceFrom returns the portion of s starting at visible column startCol.
// The cut lands on a cluster boundary and keeps the escape sequences that
// immediately precede it, so styled cells stay self-contained.
func SliceFrom(s string, startCol int) string {
	if startCol <= 0 {
		return s
	}
	col := 0
	segStart := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSI(s, i)
			continue
		}
		if col >= startCol {
			return s[segStart:]
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		col += clusterWidth(cluster)
		i += len(s[i:]) - len(rest)
		segStart = i
	}
	return ""
}

func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// skipANSI returns the index just past the escape sequence starting at i.
// Handles CSI sequences (ESC [ ... final byte) and bare two-byte escapes.
func skipANSI(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		return i + 2
	}
	j := i + 2
	for j < len(s) {
		b := s[j]
		j++
		if b >= 0x40 && b <= 0x7E {
			break
		}
	}
	return j
}
