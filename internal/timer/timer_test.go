package timer

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

func TestStartForMatchesDeadline(t *testing.T) {
	fresh := StartFor("a", t0, DefaultDuration)
	resumed := Start("a", t0.Add(DefaultDuration))

	if !fresh.Deadline().Equal(resumed.Deadline()) {
		t.Fatalf("deadlines differ: %v vs %v", fresh.Deadline(), resumed.Deadline())
	}
	now := t0.Add(17 * time.Minute)
	if fresh.Remaining(now) != resumed.Remaining(now) {
		t.Errorf("Remaining differs: %v vs %v", fresh.Remaining(now), resumed.Remaining(now))
	}
}

func TestRemaining(t *testing.T) {
	c := StartFor("a", t0, time.Minute)
	tests := []struct {
		at   time.Time
		want time.Duration
	}{
		{t0, time.Minute},
		{t0.Add(45 * time.Second), 15 * time.Second},
		{t0.Add(time.Minute), 0},
		{t0.Add(time.Hour), 0},
	}
	for _, tc := range tests {
		if got := c.Remaining(tc.at); got != tc.want {
			t.Errorf("Remaining(%v) = %v, want %v", tc.at.Sub(t0), got, tc.want)
		}
	}
}

func TestObserveExpiresOnce(t *testing.T) {
	c := StartFor("a", t0, 3*time.Second)

	expiries := 0
	for s := 0; s <= 6; s++ {
		_, expired := c.Observe(t0.Add(time.Duration(s) * time.Second))
		if expired {
			expiries++
			if s != 3 {
				t.Errorf("expired at %ds, want 3s", s)
			}
		}
	}
	if expiries != 1 {
		t.Errorf("expiries = %d, want 1", expiries)
	}
	if !c.Expired() || c.Running() {
		t.Error("countdown should be expired and stopped")
	}
	if c.Tick() != nil {
		t.Error("Tick() after expiry should be nil")
	}
}

func TestResumePastDeadline(t *testing.T) {
	c := Start("a", t0)
	if _, expired := c.Observe(t0.Add(10 * time.Minute)); !expired {
		t.Error("countdown resumed after its deadline should expire on first observation")
	}
}

func TestStop(t *testing.T) {
	c := StartFor("a", t0, time.Second)
	if c.Tick() == nil {
		t.Fatal("running countdown should schedule a tick")
	}
	c.Stop()
	if c.Tick() != nil {
		t.Error("stopped countdown scheduled a tick")
	}
	if _, expired := c.Observe(t0.Add(time.Hour)); expired {
		t.Error("stopped countdown reported expiry")
	}
	if c.Owns(TickMsg{ID: "a"}) {
		t.Error("stopped countdown still owns its ticks")
	}
}

func TestOwns(t *testing.T) {
	c := StartFor("current", t0, time.Minute)
	if !c.Owns(TickMsg{ID: "current"}) {
		t.Error("countdown should own its own ticks")
	}
	if c.Owns(TickMsg{ID: "previous"}) {
		t.Error("countdown should ignore ticks of another session")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{60 * time.Minute, "Залишилось: 60:00"},
		{59*time.Minute + 59*time.Second + 900*time.Millisecond, "Залишилось: 59:59"},
		{65 * time.Second, "Залишилось: 01:05"},
		{500 * time.Millisecond, "Залишилось: 00:00"},
		{0, "Час вичерпано"},
		{-time.Second, "Час вичерпано"},
	}
	for _, tc := range tests {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
