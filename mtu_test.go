package quic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
)

func newMTUTestFinder() *mtuFinder {
	return newMTUDiscoverer(&utils.RTTStats{}, 1200, 1452)
}

func TestMTUFinderDoneWhenCloseToMax(t *testing.T) {
	f := newMTUTestFinder()
	f.current = 1440
	require.True(t, f.done(), "within maxMTUDiff of max must stop probing")
}

func TestMTUFinderDoneAfterMaxAttempts(t *testing.T) {
	f := newMTUTestFinder()
	f.attempts = protocol.MaxMTUDiscoveryAttempts
	require.True(t, f.done())
}

func TestMTUFinderDoneWhenDisabled(t *testing.T) {
	f := newMTUTestFinder()
	f.disable()
	require.True(t, f.done())
}

func TestMTUFinderShouldProbeNowRespectsSpacing(t *testing.T) {
	f := newMTUTestFinder()
	require.False(t, f.shouldProbeNow(protocol.PacketsBetweenMTUProbesBase-1))
	require.True(t, f.shouldProbeNow(protocol.PacketsBetweenMTUProbesBase))
}

func TestMTUFinderShouldProbeNowFalseWhileProbeInFlight(t *testing.T) {
	f := newMTUTestFinder()
	f.probeSent(0)
	require.False(t, f.shouldProbeNow(1000))
}

func TestMTUFinderSpacingDoublesPerAttempt(t *testing.T) {
	f := newMTUTestFinder()
	f.probeSent(0)
	f.probeLost()
	require.False(t, f.shouldProbeNow(protocol.PacketsBetweenMTUProbesBase))
	require.True(t, f.shouldProbeNow(protocol.PacketsBetweenMTUProbesBase*2))
}

func TestMTUFinderProbeSize(t *testing.T) {
	f := newMTUTestFinder()
	require.Equal(t, protocol.ByteCount(1326), f.probeSize())
}

func TestMTUFinderProbeAckedRaisesCurrent(t *testing.T) {
	f := newMTUTestFinder()
	f.probeSent(0)
	f.probeAcked(1326)
	require.False(t, f.probeInFlight)
	require.Equal(t, protocol.ByteCount(1326), f.current)
}

func TestMTUFinderProbeAckedIgnoresSmallerSize(t *testing.T) {
	f := newMTUTestFinder()
	f.current = 1300
	f.probeSent(0)
	f.probeAcked(1250)
	require.Equal(t, protocol.ByteCount(1300), f.current)
}

func TestMTUFinderProbeLostShrinksMax(t *testing.T) {
	f := newMTUTestFinder()
	probed := f.probeSize()
	f.probeSent(0)
	f.probeLost()
	require.False(t, f.probeInFlight)
	require.Equal(t, probed, f.max)
}
