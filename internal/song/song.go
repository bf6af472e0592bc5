package song

import (
	"errors"
	"fmt"

	"karolbroda.com/karatune/internal/lyrics"
)

// Config is everything the viewer needs about one song. It is loaded once
// at startup and read-only afterwards.
type Config struct {
	Title         string
	Duration      float64
	StartPosition float64
	Lyrics        []lyrics.Line
}

// Validate rejects malformed song data before the event loop starts.
// Any error here is fatal; the renderer assumes validated input.
func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("song duration must be positive, got %g", c.Duration)
	}
	if len(c.Lyrics) == 0 {
		return errors.New("song has no lyric lines")
	}
	if c.StartPosition < 0 || c.StartPosition >= c.Duration {
		return fmt.Errorf("start position %g outside [0, %g)", c.StartPosition, c.Duration)
	}

	prevStart := -1.0
	for i, line := range c.Lyrics {
		if line.Start < 0 {
			return fmt.Errorf("line %d: negative start time %g", i, line.Start)
		}
		if line.End <= line.Start {
			return fmt.Errorf("line %d: end time %g not after start time %g", i, line.End, line.Start)
		}
		if line.Start < prevStart {
			return fmt.Errorf("line %d: start time %g before previous line's %g", i, line.Start, prevStart)
		}
		prevStart = line.Start
	}

	return nil
}

// Default returns the built-in demo song. Edit the literals below to play
// a different song without an external file.
func Default() *Config {
	return &Config{
		Title:         "Karatune Demo",
		Duration:      21.0,
		StartPosition: 0,
		Lyrics: []lyrics.Line{
			{Text: "Example line 1", Start: 0, End: 3},
			{Text: "Example line 2", Start: 3, End: 6},
			{Text: "Example line 3", Start: 6, End: 9},
			{Text: "Example line 4", Start: 9, End: 12},
			{Text: "Example line 5", Start: 12, End: 15},
			{Text: "Example line 6", Start: 15, End: 18},
			{Text: "Example line 7", Start: 18, End: 21},
		},
	}
}
