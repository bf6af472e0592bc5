package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarCellsPartialFill(t *testing.T) {
	// width 10, ratio 0.35: 350 sub-units filled, so cells 0-3 count as
	// played and the marker lands on cell 3
	cells := BarCells(0.35, 10)
	require.Len(t, cells, 10)

	assert.Equal(t, CellPlayed, cells[0])
	assert.Equal(t, CellPlayed, cells[1])
	assert.Equal(t, CellPlayed, cells[2])
	assert.Equal(t, CellMarker, cells[3])
	for i := 4; i < 10; i++ {
		assert.Equal(t, CellUnplayed, cells[i], "cell %d", i)
	}
}

func TestBarCellsAtStart(t *testing.T) {
	cells := BarCells(0, 10)
	require.Len(t, cells, 10)

	assert.Equal(t, CellMarker, cells[0])
	for i := 1; i < 10; i++ {
		assert.Equal(t, CellUnplayed, cells[i], "cell %d", i)
	}
}

func TestBarCellsAtEnd(t *testing.T) {
	cells := BarCells(1.0, 10)
	require.Len(t, cells, 10)

	// marker clamps onto the last cell, everything before it is played
	assert.Equal(t, CellMarker, cells[9])
	for i := 0; i < 9; i++ {
		assert.Equal(t, CellPlayed, cells[i], "cell %d", i)
	}
}

func TestBarCellsSingleMarker(t *testing.T) {
	for _, ratio := range []float64{0, 0.1, 0.33, 0.5, 0.77, 0.999, 1.0} {
		cells := BarCells(ratio, BarWidth)

		markers := 0
		for _, cell := range cells {
			if cell == CellMarker {
				markers++
			}
		}
		assert.Equal(t, 1, markers, "ratio %.3f", ratio)
	}
}

func TestBarCellsZeroWidth(t *testing.T) {
	assert.Nil(t, BarCells(0.5, 0))
}

func TestRatioClamps(t *testing.T) {
	assert.Equal(t, 0.5, Ratio(3, 6))
	assert.Equal(t, 1.0, Ratio(6, 6))
	assert.Equal(t, 1.0, Ratio(10, 6))
	assert.Equal(t, 0.0, Ratio(0, 6))
}

func TestFormatTime(t *testing.T) {
	testCases := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{21, "0:21"},
		{60, "1:00"},
		{83.4, "1:23"},
		{600, "10:00"},
		{-1, "0:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatTime(tc.seconds), "%.1f seconds", tc.seconds)
	}
}
