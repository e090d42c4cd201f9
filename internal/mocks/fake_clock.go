package mocks

import "time"

// FakeClock is a settable Clock for deterministic alarm-driven tests,
// grounded on the teacher's own pattern of injecting a controllable
// clock rather than sleeping real time in unit tests.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock { return &FakeClock{now: start} }

func (c *FakeClock) Now() time.Time { return c.now }

func (c *FakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *FakeClock) Set(t time.Time) { c.now = t }
