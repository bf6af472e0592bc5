package song

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karolbroda.com/karatune/internal/lyrics"
)

func validConfig() *Config {
	return &Config{
		Title:    "Test",
		Duration: 6,
		Lyrics: []lyrics.Line{
			{Text: "A", Start: 0, End: 3},
			{Text: "B", Start: 3, End: 6},
		},
	}
}

func TestValidateAcceptsWellFormedSong(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejectsNonPositiveDuration(t *testing.T) {
	cfg := validConfig()
	cfg.Duration = 0
	assert.Error(t, cfg.Validate())

	cfg.Duration = -3
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyLyrics(t *testing.T) {
	cfg := validConfig()
	cfg.Lyrics = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsInvertedInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Lyrics[1].End = cfg.Lyrics[1].Start
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Lyrics[1].End = 1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonMonotonicStarts(t *testing.T) {
	cfg := validConfig()
	cfg.Lyrics = []lyrics.Line{
		{Text: "A", Start: 3, End: 6},
		{Text: "B", Start: 0, End: 3},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNegativeStart(t *testing.T) {
	cfg := validConfig()
	cfg.Lyrics[0].Start = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadStartPosition(t *testing.T) {
	cfg := validConfig()
	cfg.StartPosition = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.StartPosition = 6
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.StartPosition = 2
	assert.NoError(t, cfg.Validate())
}

func TestDefaultSongIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
