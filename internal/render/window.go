package render

import "karolbroda.com/karatune/internal/lyrics"

const (
	// VisibleLines is the fixed height of the lyric window.
	VisibleLines = 5
	// CenterLine is the row the active line is pinned to.
	CenterLine = 2
)

type RowKind int

const (
	RowBlank RowKind = iota
	RowActive
	RowCompleted
	RowUpcoming
)

// Row is one line of the lyric window before styling. For an active row,
// SplitAt is the rune index separating the sung prefix from the unsung
// suffix; it is zero for every other kind.
type Row struct {
	Kind    RowKind
	Text    string
	SplitAt int
}

// Window is the five-row lyric viewport centered on the active line.
type Window [VisibleLines]Row

// Project maps the lyric state at position t (with sync offset applied by
// the index) onto the viewport. When no line is active yet, every row is
// blank. Rows whose signed offset from the active index fall outside the
// lyric sequence are blank; in-range neighbors render whole as completed
// or upcoming.
func Project(index lyrics.Index, t float64, offset float64) Window {
	var w Window

	activeIdx := index.ActiveIndex(t, offset)
	if activeIdx < 0 {
		return w
	}

	for row := 0; row < VisibleLines; row++ {
		lineIdx := activeIdx + row - CenterLine
		if lineIdx < 0 || lineIdx >= index.Len() {
			continue
		}

		line := index.Line(lineIdx)
		if row == CenterLine {
			progress := index.Progress(t, offset, lineIdx)
			w[row] = Row{
				Kind:    RowActive,
				Text:    line.Text,
				SplitAt: splitPoint(line.Text, progress),
			}
			continue
		}

		kind := RowUpcoming
		if index.Completed(t, offset, lineIdx) {
			kind = RowCompleted
		}
		w[row] = Row{Kind: kind, Text: line.Text}
	}

	return w
}

// splitPoint converts line progress into a rune index. Splitting on runes
// keeps multi-byte text from being cut mid-character.
func splitPoint(text string, progress float64) int {
	runes := []rune(text)
	return int(float64(len(runes)) * progress)
}
