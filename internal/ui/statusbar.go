// ABOUTME: StatusBarModel renders the single status line under the page view
// ABOUTME: Shows title, URL, viewport dimensions, zoom, and transient notices

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

// StatusBarModel renders one line: title + URL on the left, viewport,
// zoom, and notice on the right.
type StatusBarModel struct {
	title   string
	url     string
	cols    int
	rows    int
	srcW    int
	srcH    int
	zoom    float64
	notice  string
	loading bool
	width   int
}

// NewStatusBarModel creates an empty status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{zoom: 1.0}
}

// Init returns nil; no commands needed for a leaf model.
func (m StatusBarModel) Init() tea.Cmd { return nil }

// Update handles window size; everything else arrives via WithX setters.
func (m StatusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// WithPage returns a StatusBarModel with the page title and URL set.
func (m StatusBarModel) WithPage(title, url string) StatusBarModel {
	m.title = title
	m.url = url
	return m
}

// WithViewport returns a StatusBarModel with the terminal and source
// dimensions set.
func (m StatusBarModel) WithViewport(cols, rows, srcW, srcH int) StatusBarModel {
	m.cols = cols
	m.rows = rows
	m.srcW = srcW
	m.srcH = srcH
	return m
}

// WithZoom returns a StatusBarModel with the zoom level set.
func (m StatusBarModel) WithZoom(z float64) StatusBarModel {
	m.zoom = z
	return m
}

// WithNotice returns a StatusBarModel with the transient notice set.
func (m StatusBarModel) WithNotice(n string) StatusBarModel {
	m.notice = n
	return m
}

// WithLoading returns a StatusBarModel with the loading indicator set.
func (m StatusBarModel) WithLoading(loading bool) StatusBarModel {
	m.loading = loading
	return m
}

// View renders the status line truncated to the terminal width.
func (m StatusBarModel) View() string {
	s := Styles()

	var left []string
	if m.loading {
		left = append(left, s.StatusNotice.Render("~"))
	}
	if m.title != "" {
		left = append(left, s.StatusTitle.Render(m.title))
	}
	if m.url != "" {
		left = append(left, s.StatusURL.Render(m.url))
	}

	var right []string
	if m.notice != "" {
		right = append(right, s.StatusNotice.Render(m.notice))
	}
	if m.zoom != 1.0 {
		right = append(right, s.StatusDetail.Render(fmt.Sprintf("%d%%", int(m.zoom*100+0.5))))
	}
	if m.cols > 0 && m.rows > 0 {
		right = append(right, s.StatusDetail.Render(
			fmt.Sprintf("%dx%d %dx%d", m.cols, m.rows, m.srcW, m.srcH)))
	}

	leftStr := strings.Join(left, s.StatusDetail.Render(" | "))
	rightStr := strings.Join(right, s.StatusDetail.Render("  "))

	if m.width <= 0 {
		if rightStr == "" {
			return leftStr
		}
		return leftStr + "  " + rightStr
	}

	rightW := termwidth.Visible(rightStr)
	leftMax := m.width - rightW - 2
	if leftMax < 0 {
		return termwidth.Truncate(rightStr, m.width)
	}
	leftStr = termwidth.Truncate(leftStr, leftMax)
	gap := m.width - termwidth.Visible(leftStr) - rightW
	if gap < 0 {
		gap = 0
	}
	return leftStr + strings.Repeat(" ", gap) + rightStr
}
