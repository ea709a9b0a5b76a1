// Package timer implements the exam countdown as a Bubble Tea tick loop.
//
// A Countdown only holds an absolute deadline. Every tick recomputes the
// remaining time from the wall clock, so a countdown rebuilt from a persisted
// deadline behaves exactly like the one it replaces.
package timer

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Interval is the tick period.
const Interval = time.Second

// DefaultDuration is the NMT mathematics exam length.
const DefaultDuration = 60 * time.Minute

// TickMsg is emitted once per Interval while the countdown runs.
type TickMsg struct {
	ID   string
	Time time.Time
}

// Countdown counts down to a fixed deadline.
type Countdown struct {
	id       string
	deadline time.Time
	expired  bool
	stopped  bool
}

// Start creates a countdown to an absolute deadline, as when resuming a
// persisted session. The id tags its tick messages.
func Start(id string, deadline time.Time) *Countdown {
	return &Countdown{id: id, deadline: deadline}
}

// StartFor creates a countdown that ends d after now.
func StartFor(id string, now time.Time, d time.Duration) *Countdown {
	return Start(id, now.Add(d))
}

// ID returns the tag carried by this countdown's ticks.
func (c *Countdown) ID() string { return c.id }

// Deadline returns the absolute end time.
func (c *Countdown) Deadline() time.Time { return c.deadline }

// Remaining returns the time left at now, never negative.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	if d := c.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Observe reports the remaining time at now. expired is true for exactly
// one call: the first one made at or after the deadline.
func (c *Countdown) Observe(now time.Time) (remaining time.Duration, expired bool) {
	remaining = c.Remaining(now)
	if remaining > 0 || c.expired || c.stopped {
		return remaining, false
	}
	c.expired = true
	return 0, true
}

// Expired reports whether expiry has been observed.
func (c *Countdown) Expired() bool { return c.expired }

// Stop ends the tick loop. Ticks already in flight are ignored by Owns.
func (c *Countdown) Stop() { c.stopped = true }

// Running reports whether the countdown still schedules ticks.
func (c *Countdown) Running() bool { return !c.expired && !c.stopped }

// Owns reports whether msg belongs to this countdown and should be handled.
func (c *Countdown) Owns(msg TickMsg) bool {
	return msg.ID == c.id && c.Running()
}

// Tick schedules the next tick, or returns nil once the countdown has
// expired or been stopped.
func (c *Countdown) Tick() tea.Cmd {
	if !c.Running() {
		return nil
	}
	id := c.id
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// Format renders the remaining time for the exam header.
func Format(remaining time.Duration) string {
	if remaining <= 0 {
		return "Час вичерпано"
	}
	total := int(remaining / time.Second)
	return fmt.Sprintf("Залишилось: %02d:%02d", total/60, total%60)
}
