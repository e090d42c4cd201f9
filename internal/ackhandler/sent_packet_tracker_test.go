package ackhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/congestion"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
)

type fakeAck struct{ largest protocol.PacketNumber }

func (a fakeAck) LargestAckedPN() protocol.PacketNumber { return a.largest }

func newTestSentPacketHandler() *sentPacketTracker {
	return NewSentPacketHandler(congestion.NewRenoSender(), &utils.RTTStats{}, nil).(*sentPacketTracker)
}

func TestSentPacketTrackerSentPacketTracksBytesInFlight(t *testing.T) {
	h := newTestSentPacketHandler()
	h.SentPacket(1, &Packet{Length: 100, EncryptionLevel: protocol.Encryption1RTT, Retransmittable: true, IncludedInBytesInFlight: true, SendTime: time.Now()})

	require.EqualValues(t, 100, h.bytesInFlight)
	require.EqualValues(t, 1, h.largestSent[protocol.PacketNumberSpaceAppData])
}

func TestSentPacketTrackerSentPacketNotIncludedInFlightIsNotCounted(t *testing.T) {
	h := newTestSentPacketHandler()
	h.SentPacket(1, &Packet{Length: 100, EncryptionLevel: protocol.Encryption1RTT, IncludedInBytesInFlight: false, SendTime: time.Now()})

	require.EqualValues(t, 0, h.bytesInFlight)
}

func TestSentPacketTrackerReceivedAckRemovesAckedPacketsAndReducesBytesInFlight(t *testing.T) {
	h := newTestSentPacketHandler()
	now := time.Now()
	h.SentPacket(1, &Packet{Length: 50, EncryptionLevel: protocol.Encryption1RTT, IncludedInBytesInFlight: true, SendTime: now})
	h.SentPacket(2, &Packet{Length: 50, EncryptionLevel: protocol.Encryption1RTT, IncludedInBytesInFlight: true, SendTime: now})
	h.ptoCount = 3

	rearm, err := h.ReceivedAck(fakeAck{largest: 1}, protocol.PacketNumberSpaceAppData, now)

	require.NoError(t, err)
	require.True(t, rearm)
	require.EqualValues(t, 50, h.bytesInFlight)
	require.Equal(t, 0, h.ptoCount, "any ACK resets the PTO counter")
	require.NotContains(t, h.outstanding[protocol.PacketNumberSpaceAppData], protocol.PacketNumber(1))
	require.Contains(t, h.outstanding[protocol.PacketNumberSpaceAppData], protocol.PacketNumber(2))
}

func TestSentPacketTrackerReceivedAckWithNoMatchingPacketsDoesNotRearm(t *testing.T) {
	h := newTestSentPacketHandler()
	rearm, err := h.ReceivedAck(fakeAck{largest: 5}, protocol.PacketNumberSpaceAppData, time.Now())
	require.NoError(t, err)
	require.False(t, rearm)
}

func TestSentPacketTrackerDropPacketsClearsSpaceAndBytesInFlight(t *testing.T) {
	h := newTestSentPacketHandler()
	now := time.Now()
	h.SentPacket(1, &Packet{Length: 100, EncryptionLevel: protocol.EncryptionInitial, IncludedInBytesInFlight: true, SendTime: now})

	h.DropPackets(protocol.PacketNumberSpaceInitial)

	require.EqualValues(t, 0, h.bytesInFlight)
	require.Empty(t, h.outstanding[protocol.PacketNumberSpaceInitial])
}

func TestSentPacketTrackerResetForRetryOnlyDropsInitialSpace(t *testing.T) {
	h := newTestSentPacketHandler()
	now := time.Now()
	h.SentPacket(1, &Packet{Length: 10, EncryptionLevel: protocol.EncryptionInitial, IncludedInBytesInFlight: true, SendTime: now})
	h.SentPacket(2, &Packet{Length: 10, EncryptionLevel: protocol.Encryption1RTT, IncludedInBytesInFlight: true, SendTime: now})
	h.ptoCount = 2

	h.ResetForRetry(now)

	require.Empty(t, h.outstanding[protocol.PacketNumberSpaceInitial])
	require.NotEmpty(t, h.outstanding[protocol.PacketNumberSpaceAppData])
	require.Equal(t, 0, h.ptoCount)
}

func TestSentPacketTrackerPeekAndPopPacketNumberAreIndependentPerSpace(t *testing.T) {
	h := newTestSentPacketHandler()

	pn, _ := h.PeekPacketNumber(protocol.PacketNumberSpaceAppData)
	require.EqualValues(t, 0, pn)

	popped := h.PopPacketNumber(protocol.PacketNumberSpaceAppData)
	require.EqualValues(t, 0, popped)

	next, _ := h.PeekPacketNumber(protocol.PacketNumberSpaceAppData)
	require.EqualValues(t, 1, next)

	initialPN, _ := h.PeekPacketNumber(protocol.PacketNumberSpaceInitial)
	require.EqualValues(t, 0, initialPN, "popping one space must not advance another")
}

func TestSentPacketTrackerGetLossDetectionTimeoutZeroWithoutRTTSample(t *testing.T) {
	h := newTestSentPacketHandler()
	require.True(t, h.GetLossDetectionTimeout().IsZero())
}

func TestSentPacketTrackerGetLossDetectionTimeoutArmedAfterRTTSample(t *testing.T) {
	h := newTestSentPacketHandler()
	h.rtt.UpdateRTT(100*time.Millisecond, 0, time.Now())

	require.False(t, h.GetLossDetectionTimeout().IsZero())
}

func TestSentPacketTrackerOnLossDetectionTimeoutIncrementsPTOCount(t *testing.T) {
	h := newTestSentPacketHandler()
	require.NoError(t, h.OnLossDetectionTimeout())
	require.Equal(t, 1, h.ptoCount)
}

func TestSentPacketTrackerQueueProbePacketReflectsOutstandingPackets(t *testing.T) {
	h := newTestSentPacketHandler()
	require.False(t, h.QueueProbePacket(protocol.PacketNumberSpaceAppData))

	h.SentPacket(1, &Packet{Length: 10, EncryptionLevel: protocol.Encryption1RTT, IncludedInBytesInFlight: true, SendTime: time.Now()})
	require.True(t, h.QueueProbePacket(protocol.PacketNumberSpaceAppData))
}

func TestSentPacketTrackerSendModeNoneWhenCongestionWindowFull(t *testing.T) {
	h := NewSentPacketHandler(congestion.NewRenoSender(), &utils.RTTStats{}, nil).(*sentPacketTracker)
	window := h.algo.GetCongestionWindow()
	h.bytesInFlight = window + 1

	require.Equal(t, SendNone, h.SendMode(time.Now()))
}
