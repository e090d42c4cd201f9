package mocks

import (
	"time"

	"github.com/quicwire/qconn/internal/connio"
)

// fakeAlarm is a bare AlarmHandle recording only its own deadline and
// set-ness; it never fires on its own. Tests call Connection.OnAlarm
// directly once they've driven FakeClock past a recorded deadline,
// mirroring how the teacher's own fake alarms work: deterministic
// inspection instead of a real timer goroutine.
type fakeAlarm struct {
	deadline time.Time
	set      bool
}

func (a *fakeAlarm) Set(deadline time.Time) {
	a.deadline = deadline
	a.set = true
}

func (a *fakeAlarm) Update(deadline time.Time, granularity time.Duration) {
	if a.set && absDuration(deadline.Sub(a.deadline)) < granularity {
		return
	}
	a.Set(deadline)
}

func (a *fakeAlarm) Cancel()          { a.set = false }
func (a *fakeAlarm) IsSet() bool      { return a.set }
func (a *fakeAlarm) Deadline() time.Time { return a.deadline }

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// FakeAlarmFactory hands out fakeAlarm handles; it is not a gomock.Call-
// backed mock because tests inspect alarm state directly far more often
// than they assert on how many times CreateAlarm was invoked.
type FakeAlarmFactory struct {
	alarms []*fakeAlarm
}

func NewFakeAlarmFactory() *FakeAlarmFactory { return &FakeAlarmFactory{} }

func (f *FakeAlarmFactory) CreateAlarm(delegate connio.AlarmDelegate) connio.AlarmHandle {
	a := &fakeAlarm{}
	f.alarms = append(f.alarms, a)
	return a
}
