package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"karolbroda.com/karatune/internal/render"
)

const (
	activeLeftMarker  = ">     "
	activeRightMarker = "     <"
	playingControls   = "⇄  ◀  ‖  ▶  ⟲"
	endedControls     = "♫ Song Ended - Press R to Restart ♫"
)

var (
	sungStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	unsungStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	completedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	upcomingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	markerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	barPlayedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	barUnplayedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#505050"))
	barDotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)
	timeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	controlsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

func (m Model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	if m.quitting {
		return ""
	}

	currentTime := m.clock.CurrentTime()
	offset := m.clock.Offset()
	window := render.Project(m.index, currentTime, offset)

	// bottom three rows are the progress bar, the title and the controls;
	// the rest is the lyric area with the five-row window centered in it
	lyricsHeight := height - 3
	if lyricsHeight < render.VisibleLines {
		lyricsHeight = render.VisibleLines
	}
	topPadding := (lyricsHeight - render.VisibleLines) / 2

	lines := make([]string, 0, height)

	for y := 0; y < lyricsHeight; y++ {
		if y >= topPadding && y < topPadding+render.VisibleLines {
			lines = append(lines, m.renderWindowRow(window[y-topPadding], width))
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.renderProgressLine(currentTime, width))
	lines = append(lines, centerLine(titleStyle.Render(m.title), width))
	lines = append(lines, m.renderControlsLine(width))

	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderWindowRow(row render.Row, width int) string {
	switch row.Kind {
	case render.RowActive:
		runes := []rune(row.Text)
		sung := string(runes[:row.SplitAt])
		unsung := string(runes[row.SplitAt:])

		var b strings.Builder
		b.WriteString(markerStyle.Render(activeLeftMarker))
		if sung != "" {
			b.WriteString(sungStyle.Render(sung))
		}
		if unsung != "" {
			b.WriteString(unsungStyle.Render(unsung))
		}
		b.WriteString(markerStyle.Render(activeRightMarker))
		return centerLine(b.String(), width)

	case render.RowCompleted:
		return centerLine(completedStyle.Render(row.Text), width)

	case render.RowUpcoming:
		return centerLine(upcomingStyle.Render(row.Text), width)
	}

	return ""
}

func (m Model) renderProgressLine(currentTime float64, width int) string {
	duration := m.clock.Duration()
	cells := render.BarCells(render.Ratio(currentTime, duration), render.BarWidth)

	var bar strings.Builder
	for _, cell := range cells {
		switch cell {
		case render.CellMarker:
			bar.WriteString(barDotStyle.Render("●"))
		case render.CellPlayed:
			bar.WriteString(barPlayedStyle.Render("━"))
		default:
			bar.WriteString(barUnplayedStyle.Render("━"))
		}
	}

	line := timeStyle.Render(render.FormatTime(currentTime)) +
		"  " + bar.String() +
		"  " + timeStyle.Render(render.FormatTime(duration))

	return centerLine(line, width)
}

func (m Model) renderControlsLine(width int) string {
	controls := playingControls
	if m.clock.IsEnded() {
		controls = endedControls
	}
	return centerLine(controlsStyle.Render(controls), width)
}

func centerLine(text string, screenWidth int) string {
	padding := (screenWidth - lipgloss.Width(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}
