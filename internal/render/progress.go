package render

import "fmt"

// BarWidth is the progress bar width in character cells.
const BarWidth = 30

// subUnitsPerCell gives each bar cell fractional fill precision: a cell
// counts as played as soon as any of its sub-units are filled.
const subUnitsPerCell = 100

type CellKind int

const (
	CellUnplayed CellKind = iota
	CellPlayed
	CellMarker
)

// BarCells lays out a progress bar of the given width for a playback ratio
// in [0, 1]. Exactly one cell is the marker; it overrides the fill state of
// the cell it sits on.
func BarCells(ratio float64, width int) []CellKind {
	if width <= 0 {
		return nil
	}

	totalSubUnits := float64(width * subUnitsPerCell)
	filledSubUnits := int(totalSubUnits * ratio)

	markerCell := min(int(float64(width)*ratio), width-1)

	cells := make([]CellKind, width)
	for i := range cells {
		if i == markerCell {
			cells[i] = CellMarker
			continue
		}
		if filledSubUnits-i*subUnitsPerCell > 0 {
			cells[i] = CellPlayed
		}
	}

	return cells
}

// Ratio clamps a position/duration quotient to at most 1.
func Ratio(current float64, duration float64) float64 {
	return min(current/duration, 1.0)
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		return "0:00"
	}
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
