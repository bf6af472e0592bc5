package playback

import "time"

// Clock tracks elapsed playback time for a song of fixed duration. It owns
// pause/resume transitions, restart, and the user-adjustable lyric sync
// offset. The offset never moves the transport itself; it only shifts how
// lyric boundaries are perceived, so it is exposed separately and applied
// by the lyric index.
//
// Clock is not safe for concurrent use; the event loop is the only caller.
type Clock struct {
	base     float64
	anchor   time.Time
	paused   bool
	offset   float64
	duration float64

	// now is swapped out in tests to control elapsed time
	now func() time.Time
}

// New returns a running clock positioned at startPosition seconds.
// Duration must be positive; the song loader guarantees that.
func New(duration float64, startPosition float64) *Clock {
	return NewWithNow(duration, startPosition, time.Now)
}

// NewWithNow is New with a custom time source, for deterministic tests.
func NewWithNow(duration float64, startPosition float64, now func() time.Time) *Clock {
	c := &Clock{
		base:     startPosition,
		duration: duration,
		now:      now,
	}
	c.anchor = c.now()
	return c
}

// CurrentTime returns the playback position in seconds, always within
// [0, duration].
func (c *Clock) CurrentTime() float64 {
	if c.paused {
		return c.base
	}
	t := c.base + c.now().Sub(c.anchor).Seconds()
	return min(t, c.duration)
}

// IsEnded reports whether playback has reached the song's end.
func (c *Clock) IsEnded() bool {
	return c.CurrentTime() >= c.duration
}

// TogglePause flips between paused and running. Pausing snapshots the
// current position; resuming re-anchors to the wall clock. A no-op once
// the song has ended.
func (c *Clock) TogglePause() {
	if c.IsEnded() {
		return
	}

	if c.paused {
		c.anchor = c.now()
		c.paused = false
	} else {
		// snapshot while still running; flipping paused first would
		// freeze the stale base instead of the current position
		c.base = c.CurrentTime()
		c.paused = true
	}
}

// Restart rewinds to position zero and resumes playback.
func (c *Clock) Restart() {
	c.base = 0
	c.anchor = c.now()
	c.paused = false
}

// AdjustOffset shifts the lyric sync offset by delta seconds, clamped so it
// never goes negative: the offset means "lyrics appear later", and boundaries
// earlier than the true timing are disallowed.
func (c *Clock) AdjustOffset(delta float64) {
	c.offset = max(c.offset+delta, 0)
}

// FinishSong clamps the transport to the end-of-song state: paused at
// exactly the duration. Safe to call repeatedly.
func (c *Clock) FinishSong() {
	c.paused = true
	c.base = c.duration
}

func (c *Clock) Offset() float64 {
	return c.offset
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) Duration() float64 {
	return c.duration
}
