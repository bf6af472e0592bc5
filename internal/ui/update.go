package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"karolbroda.com/karatune/internal/config"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case " ":
		m.clock.TogglePause()
		return m, nil

	case "r":
		m.clock.Restart()
		return m, nil

	case "up", "k":
		m.clock.AdjustOffset(config.OffsetStep)
		return m, nil

	case "down", "j":
		m.clock.AdjustOffset(-config.OffsetStep)
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// reaching the end while running forces a pause pinned at the duration;
	// FinishSong is idempotent so later ticks are harmless
	if m.clock.IsEnded() && !m.clock.Paused() {
		m.clock.FinishSong()
	}

	return m, m.tickCmd()
}
