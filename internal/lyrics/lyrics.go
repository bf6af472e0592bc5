package lyrics

// Line is a single timed lyric line. Times are seconds from the start of
// the song, before any sync offset is applied.
type Line struct {
	Text  string
	Start float64
	End   float64
}

// Index wraps an ordered, immutable sequence of timed lines and resolves
// playback positions to line state. All methods are pure functions of
// (position, offset, lines).
type Index struct {
	lines []Line
}

func NewIndex(lines []Line) Index {
	return Index{lines: lines}
}

func (x Index) Len() int {
	return len(x.lines)
}

func (x Index) Line(i int) Line {
	return x.lines[i]
}

// ActiveIndex returns the index of the line considered active at position t,
// or -1 when no line has started yet. The sync offset shifts every line
// boundary later by the same amount.
//
// Resolution order matters and must stay exactly as written:
//  1. first line whose [start, end) window contains t
//  2. past the last line's end: the last line stays up as completed
//  3. inside a gap between lines: the most recently completed line stays up
//  4. before the first line: nothing
//
// The scan is O(n) per call, which is fine at lyric scale (dozens of lines
// polled per frame).
func (x Index) ActiveIndex(t float64, offset float64) int {
	if len(x.lines) == 0 {
		return -1
	}

	for i, line := range x.lines {
		adjustedStart := line.Start + offset
		adjustedEnd := line.End + offset
		if t >= adjustedStart && t < adjustedEnd {
			return i
		}
	}

	if t >= x.lines[len(x.lines)-1].End+offset {
		return len(x.lines) - 1
	}

	for i := len(x.lines) - 1; i >= 0; i-- {
		if t >= x.lines[i].End+offset {
			return i
		}
	}

	return -1
}

// Progress reports how far through line i the position t is, clamped to
// [0, 1] and linear in between.
func (x Index) Progress(t float64, offset float64, i int) float64 {
	if i < 0 || i >= len(x.lines) {
		return 0
	}

	line := x.lines[i]
	adjustedStart := line.Start + offset
	adjustedEnd := line.End + offset

	if t < adjustedStart {
		return 0
	}
	if t >= adjustedEnd {
		return 1
	}
	return (t - adjustedStart) / (adjustedEnd - adjustedStart)
}

// Completed reports whether line i has been fully sung at position t.
func (x Index) Completed(t float64, offset float64, i int) bool {
	if i < 0 || i >= len(x.lines) {
		return false
	}
	return t >= x.lines[i].End+offset
}
