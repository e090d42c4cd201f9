package quic

import "time"

// alarmSet owns the eight timers the connection driver arms: ack,
// retransmission, send, timeout (idle), ping, MTU discovery, path
// degrading, and undecryptable-packet drain. Grounded on quiche's
// QuicConnection constructor, which creates exactly these eight via
// alarm_factory_->CreateAlarm.
type alarmSet struct {
	ack                AlarmHandle
	retransmission     AlarmHandle
	send               AlarmHandle
	timeout            AlarmHandle
	ping               AlarmHandle
	mtuDiscovery       AlarmHandle
	pathDegrading      AlarmHandle
	undecryptableDrain AlarmHandle
}

func newAlarmSet(factory AlarmFactory, delegate AlarmDelegate) *alarmSet {
	return &alarmSet{
		ack:                factory.CreateAlarm(delegate),
		retransmission:     factory.CreateAlarm(delegate),
		send:               factory.CreateAlarm(delegate),
		timeout:            factory.CreateAlarm(delegate),
		ping:               factory.CreateAlarm(delegate),
		mtuDiscovery:       factory.CreateAlarm(delegate),
		pathDegrading:      factory.CreateAlarm(delegate),
		undecryptableDrain: factory.CreateAlarm(delegate),
	}
}

// cancelAll cancels every alarm; called once from the close path's
// tear-down, never piecemeal.
func (a *alarmSet) cancelAll() {
	a.ack.Cancel()
	a.retransmission.Cancel()
	a.send.Cancel()
	a.timeout.Cancel()
	a.ping.Cancel()
	a.mtuDiscovery.Cancel()
	a.pathDegrading.Cancel()
	a.undecryptableDrain.Cancel()
}

// setRetransmissionAlarm re-arms the retransmission alarm to deadline, or
// cancels it if deadline is zero. Invariant 6: called after any event
// that may change the sent-packet manager's loss-detection deadline.
func (a *alarmSet) setRetransmissionAlarm(deadline time.Time) {
	if deadline.IsZero() {
		a.retransmission.Cancel()
		return
	}
	a.retransmission.Set(deadline)
}

func (a *alarmSet) setAckAlarm(deadline time.Time) {
	if deadline.IsZero() {
		a.ack.Cancel()
		return
	}
	a.ack.Set(deadline)
}

func (a *alarmSet) setTimeoutAlarm(deadline time.Time) {
	a.timeout.Set(deadline)
}

func (a *alarmSet) setPingAlarm(deadline time.Time) {
	a.ping.Set(deadline)
}
