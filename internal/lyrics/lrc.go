package lyrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimedLine is a raw LRC entry: a start timestamp and its text. Line end
// times are not part of the LRC format; callers derive them from the next
// line's start.
type TimedLine struct {
	TimeSeconds float64
	Text        string
}

// Meta holds the ID tags an LRC file may carry ahead of its timed lines.
type Meta struct {
	Title         string
	Artist        string
	LengthSeconds float64
}

// ParseLRC splits raw LRC content into metadata tags and timed lines.
// Malformed lines are skipped rather than failing the whole file.
func ParseLRC(raw string) ([]TimedLine, Meta, error) {
	var meta Meta

	if strings.TrimSpace(raw) == "" {
		return nil, meta, errors.New("empty lrc content")
	}

	lines := strings.Split(raw, "\n")
	result := make([]TimedLine, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if tag, value, ok := splitIDTag(trimmed); ok {
			switch tag {
			case "ti":
				meta.Title = value
			case "ar":
				meta.Artist = value
			case "length":
				seconds, err := parseLrcTimeToSeconds(value)
				if err == nil {
					meta.LengthSeconds = seconds
				}
			}
			continue
		}

		timePart, text := splitLrcLine(trimmed)
		if timePart == "" || text == "" {
			continue
		}

		seconds, err := parseLrcTimeToSeconds(timePart)
		if err != nil {
			continue
		}

		result = append(result, TimedLine{
			TimeSeconds: seconds,
			Text:        text,
		})
	}

	if len(result) == 0 {
		return nil, meta, errors.New("no timed lines in lrc content")
	}

	return result, meta, nil
}

// splitIDTag recognizes [tag:value] metadata lines, where tag is
// alphabetic ("ti", "ar", "length", ...). Timestamp lines start with a
// digit and are not ID tags.
func splitIDTag(line string) (string, string, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}

	endIndex := strings.Index(line, "]")
	if endIndex <= 1 {
		return "", "", false
	}

	inner := line[1:endIndex]
	colon := strings.Index(inner, ":")
	if colon <= 0 {
		return "", "", false
	}

	tag := strings.ToLower(strings.TrimSpace(inner[:colon]))
	for _, r := range tag {
		if r < 'a' || r > 'z' {
			return "", "", false
		}
	}

	value := strings.TrimSpace(inner[colon+1:])
	return tag, value, true
}

func splitLrcLine(line string) (string, string) {
	if !strings.HasPrefix(line, "[") {
		return "", ""
	}

	endIndex := strings.Index(line, "]")
	if endIndex <= 1 {
		return "", ""
	}

	timePart := line[1:endIndex]
	textPart := strings.TrimSpace(line[endIndex+1:])
	if textPart == "" {
		return "", ""
	}

	return timePart, textPart
}

func parseLrcTimeToSeconds(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("empty time value")
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time format: %s", raw)
	}

	var hours float64
	var minutes float64
	var seconds float64
	var err error

	if len(parts) == 3 {
		hours, err = parseFloatSafe(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err = parseFloatSafe(parts[1])
		if err != nil {
			return 0, err
		}
		seconds, err = parseFloatSafe(parts[2])
		if err != nil {
			return 0, err
		}
	} else {
		hours = 0
		minutes, err = parseFloatSafe(parts[0])
		if err != nil {
			return 0, err
		}
		seconds, err = parseFloatSafe(parts[1])
		if err != nil {
			return 0, err
		}
	}

	total := hours*3600 + minutes*60 + seconds
	if total < 0 {
		return 0, errors.New("negative time not allowed")
	}

	return total, nil
}

func parseFloatSafe(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", s, err)
	}
	return value, nil
}
