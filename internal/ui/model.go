package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"karolbroda.com/karatune/internal/config"
	"karolbroda.com/karatune/internal/lyrics"
	"karolbroda.com/karatune/internal/playback"
	"karolbroda.com/karatune/internal/song"
)

type TickMsg time.Time

// Model is the bubbletea model for the karaoke viewer. All playback state
// lives in the clock; the model itself only carries immutable song data and
// the terminal dimensions.
type Model struct {
	title        string
	index        lyrics.Index
	clock        *playback.Clock
	tickInterval time.Duration

	width    int
	height   int
	quitting bool
}

type ModelConfig struct {
	Song         *song.Config
	SyncOffset   float64
	TickInterval time.Duration
}

func NewModel(cfg ModelConfig) Model {
	clock := playback.New(cfg.Song.Duration, cfg.Song.StartPosition)
	clock.AdjustOffset(cfg.SyncOffset)

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = config.DefaultTickInterval
	}

	return Model{
		title:        cfg.Song.Title,
		index:        lyrics.NewIndex(cfg.Song.Lyrics),
		clock:        clock,
		tickInterval: tickInterval,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Title() string          { return m.title }
func (m Model) Clock() *playback.Clock { return m.clock }
func (m Model) Index() lyrics.Index    { return m.index }
func (m Model) IsQuitting() bool       { return m.quitting }
