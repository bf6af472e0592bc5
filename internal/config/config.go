package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultTickInterval is the redraw cadence, roughly 60 frames per second.
	DefaultTickInterval = 16 * time.Millisecond
	// OffsetStep is how far one keypress nudges the lyric sync offset.
	OffsetStep = 0.1
)

type Config struct {
	SongPath     string
	SyncOffset   float64
	TickInterval time.Duration
}

func Load() *Config {
	syncOffsetStr := getEnvOrDefault("SYNC_OFFSET", "0")
	syncOffset, err := strconv.ParseFloat(syncOffsetStr, 64)
	if err != nil || syncOffset < 0 {
		// same floor the clock enforces: the offset means "lyrics appear
		// later" and never goes negative
		syncOffset = 0
	}

	tickInterval := DefaultTickInterval
	tickMsStr := getEnvOrDefault("TICK_MS", "")
	if tickMsStr != "" {
		tickMs, err := strconv.Atoi(tickMsStr)
		if err == nil && tickMs > 0 {
			tickInterval = time.Duration(tickMs) * time.Millisecond
		}
	}

	return &Config{
		SongPath:     getEnvOrDefault("SONG_FILE", ""),
		SyncOffset:   syncOffset,
		TickInterval: tickInterval,
	}
}

func getEnvOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
