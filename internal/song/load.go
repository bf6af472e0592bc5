package song

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"karolbroda.com/karatune/internal/lyrics"
)

// fallbackLastLineSeconds pads the final LRC line when the file carries no
// [length:] tag, since LRC only records start times.
const fallbackLastLineSeconds = 5.0

type jsonLine struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type jsonSong struct {
	Title         string     `json:"title"`
	Duration      float64    `json:"duration"`
	StartPosition float64    `json:"start_position"`
	Lyrics        []jsonLine `json:"lyrics"`
}

// LoadFile reads and validates a song from a .json or .lrc file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read song file: %w", err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cfg, err = parseJSON(data)
	case ".lrc":
		cfg, err = parseLRC(data)
	default:
		return nil, fmt.Errorf("unsupported song file extension %q (want .json or .lrc)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid song in %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

func parseJSON(data []byte) (*Config, error) {
	var raw jsonSong
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode song json: %w", err)
	}

	cfg := &Config{
		Title:         raw.Title,
		Duration:      raw.Duration,
		StartPosition: raw.StartPosition,
		Lyrics:        make([]lyrics.Line, 0, len(raw.Lyrics)),
	}
	for _, line := range raw.Lyrics {
		cfg.Lyrics = append(cfg.Lyrics, lyrics.Line{
			Text:  line.Text,
			Start: line.Start,
			End:   line.End,
		})
	}

	return cfg, nil
}

// parseLRC builds a song from synced LRC lyrics. Each line ends where the
// next begins; the final line runs to the song duration, taken from the
// [length:] tag when present.
func parseLRC(data []byte) (*Config, error) {
	timed, meta, err := lyrics.ParseLRC(string(data))
	if err != nil {
		return nil, err
	}

	duration := meta.LengthSeconds
	lastStart := timed[len(timed)-1].TimeSeconds
	if duration <= lastStart {
		duration = lastStart + fallbackLastLineSeconds
	}

	lines := make([]lyrics.Line, 0, len(timed))
	for i, entry := range timed {
		end := duration
		if i+1 < len(timed) {
			end = timed[i+1].TimeSeconds
		}
		lines = append(lines, lyrics.Line{
			Text:  entry.Text,
			Start: entry.TimeSeconds,
			End:   end,
		})
	}

	title := meta.Title
	if title == "" {
		title = "Untitled"
	}
	if meta.Artist != "" {
		title = meta.Artist + " - " + title
	}

	return &Config{
		Title:    title,
		Duration: duration,
		Lyrics:   lines,
	}, nil
}
