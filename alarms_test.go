package quic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/mocks"
)

type noopAlarmDelegate struct{}

func (noopAlarmDelegate) OnAlarm() {}

func TestNewAlarmSetCreatesEightAlarms(t *testing.T) {
	factory := mocks.NewFakeAlarmFactory()
	a := newAlarmSet(factory, noopAlarmDelegate{})

	require.NotNil(t, a.ack)
	require.NotNil(t, a.retransmission)
	require.NotNil(t, a.send)
	require.NotNil(t, a.timeout)
	require.NotNil(t, a.ping)
	require.NotNil(t, a.mtuDiscovery)
	require.NotNil(t, a.pathDegrading)
	require.NotNil(t, a.undecryptableDrain)
}

func TestCancelAllCancelsEveryAlarm(t *testing.T) {
	factory := mocks.NewFakeAlarmFactory()
	a := newAlarmSet(factory, noopAlarmDelegate{})
	deadline := time.Now().Add(time.Second)
	a.ack.Set(deadline)
	a.retransmission.Set(deadline)
	a.timeout.Set(deadline)

	a.cancelAll()

	require.False(t, a.ack.IsSet())
	require.False(t, a.retransmission.IsSet())
	require.False(t, a.timeout.IsSet())
}

func TestSetRetransmissionAlarmZeroDeadlineCancels(t *testing.T) {
	factory := mocks.NewFakeAlarmFactory()
	a := newAlarmSet(factory, noopAlarmDelegate{})
	a.setRetransmissionAlarm(time.Now().Add(time.Second))
	require.True(t, a.retransmission.IsSet())

	a.setRetransmissionAlarm(time.Time{})
	require.False(t, a.retransmission.IsSet())
}

func TestSetAckAlarmZeroDeadlineCancels(t *testing.T) {
	factory := mocks.NewFakeAlarmFactory()
	a := newAlarmSet(factory, noopAlarmDelegate{})
	a.setAckAlarm(time.Now().Add(time.Second))
	require.True(t, a.ack.IsSet())

	a.setAckAlarm(time.Time{})
	require.False(t, a.ack.IsSet())
}

func TestSetTimeoutAndPingAlarmAlwaysArm(t *testing.T) {
	factory := mocks.NewFakeAlarmFactory()
	a := newAlarmSet(factory, noopAlarmDelegate{})
	deadline := time.Now().Add(30 * time.Second)

	a.setTimeoutAlarm(deadline)
	a.setPingAlarm(deadline)

	require.True(t, a.timeout.IsSet())
	require.Equal(t, deadline, a.timeout.Deadline())
	require.True(t, a.ping.IsSet())
	require.Equal(t, deadline, a.ping.Deadline())
}
