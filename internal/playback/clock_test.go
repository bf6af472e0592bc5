package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTime lets tests advance the clock deterministically instead of
// sleeping against the wall clock.
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.t
}

func (f *fakeTime) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestClock(duration float64, startPosition float64) (*Clock, *fakeTime) {
	f := &fakeTime{t: time.Unix(1700000000, 0)}
	return NewWithNow(duration, startPosition, f.Now), f
}

func TestCurrentTimeAdvancesWithWallClock(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	assert.Equal(t, 0.0, c.CurrentTime())

	f.Advance(2 * time.Second)
	assert.InDelta(t, 2.0, c.CurrentTime(), 1e-9)

	f.Advance(1500 * time.Millisecond)
	assert.InDelta(t, 3.5, c.CurrentTime(), 1e-9)
}

func TestCurrentTimeClampsToDuration(t *testing.T) {
	c, f := newTestClock(6.0, 0)

	f.Advance(10 * time.Second)
	assert.Equal(t, 6.0, c.CurrentTime())
	assert.True(t, c.IsEnded())
}

func TestCurrentTimeHonorsStartPosition(t *testing.T) {
	c, f := newTestClock(21.0, 5.0)

	assert.Equal(t, 5.0, c.CurrentTime())

	f.Advance(1 * time.Second)
	assert.InDelta(t, 6.0, c.CurrentTime(), 1e-9)
}

func TestPauseFreezesPosition(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	f.Advance(3 * time.Second)
	c.TogglePause()
	assert.True(t, c.Paused())

	f.Advance(10 * time.Second)
	assert.InDelta(t, 3.0, c.CurrentTime(), 1e-9)
}

// TestSecondPauseSnapshotsLatestPosition guards the snapshot order in
// TogglePause: pausing must capture the running position, not the base
// recorded at the previous resume.
func TestSecondPauseSnapshotsLatestPosition(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	f.Advance(2 * time.Second)
	c.TogglePause()
	f.Advance(3 * time.Second)
	c.TogglePause()
	f.Advance(4 * time.Second)
	c.TogglePause()

	assert.InDelta(t, 6.0, c.CurrentTime(), 1e-9)

	f.Advance(10 * time.Second)
	assert.InDelta(t, 6.0, c.CurrentTime(), 1e-9)
}

func TestResumeReanchorsWithoutJumping(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	f.Advance(3 * time.Second)
	c.TogglePause()
	f.Advance(5 * time.Second)
	c.TogglePause()
	assert.False(t, c.Paused())

	// position picks up where it paused, not where the wall clock went
	assert.InDelta(t, 3.0, c.CurrentTime(), 1e-9)

	f.Advance(2 * time.Second)
	assert.InDelta(t, 5.0, c.CurrentTime(), 1e-9)
}

func TestPauseResumeRoundTripIsIdempotent(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	f.Advance(4 * time.Second)
	before := c.CurrentTime()

	c.TogglePause()
	c.TogglePause()

	assert.InDelta(t, before, c.CurrentTime(), 1e-9)
	assert.False(t, c.Paused())
}

func TestTogglePauseIsNoOpAfterEnd(t *testing.T) {
	c, f := newTestClock(6.0, 0)

	f.Advance(10 * time.Second)
	assert.True(t, c.IsEnded())

	c.TogglePause()
	assert.False(t, c.Paused())
	assert.Equal(t, 6.0, c.CurrentTime())
}

func TestRestartResetsFromAnyState(t *testing.T) {
	c, f := newTestClock(6.0, 0)

	f.Advance(10 * time.Second)
	c.FinishSong()
	assert.True(t, c.Paused())

	c.Restart()
	assert.Equal(t, 0.0, c.CurrentTime())
	assert.False(t, c.Paused())
	assert.False(t, c.IsEnded())

	f.Advance(1 * time.Second)
	assert.InDelta(t, 1.0, c.CurrentTime(), 1e-9)
}

func TestAdjustOffsetClampsAtZero(t *testing.T) {
	c, _ := newTestClock(21.0, 0)

	c.AdjustOffset(-1000)
	assert.Equal(t, 0.0, c.Offset())

	c.AdjustOffset(0.5)
	c.AdjustOffset(-2.0)
	assert.Equal(t, 0.0, c.Offset())
}

func TestAdjustOffsetAccumulates(t *testing.T) {
	c, _ := newTestClock(21.0, 0)

	for i := 0; i < 10; i++ {
		c.AdjustOffset(0.1)
	}
	assert.InDelta(t, 1.0, c.Offset(), 1e-9)
}

func TestOffsetDoesNotMoveTransport(t *testing.T) {
	c, f := newTestClock(21.0, 0)

	f.Advance(3 * time.Second)
	c.AdjustOffset(2.0)
	assert.InDelta(t, 3.0, c.CurrentTime(), 1e-9)
}

func TestFinishSongIsIdempotent(t *testing.T) {
	c, f := newTestClock(6.0, 0)

	f.Advance(10 * time.Second)
	c.FinishSong()
	c.FinishSong()

	assert.True(t, c.Paused())
	assert.Equal(t, 6.0, c.CurrentTime())
	assert.True(t, c.IsEnded())
}
