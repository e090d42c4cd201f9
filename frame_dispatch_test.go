package quic

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/mocks"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
	"github.com/quicwire/qconn/internal/wire"
)

func TestMaybeConsiderAsMemoryCorruptionMatchesTags(t *testing.T) {
	require.True(t, maybeConsiderAsMemoryCorruption([]byte("CHLOxxx")))
	require.True(t, maybeConsiderAsMemoryCorruption([]byte("REJ\x00xxx")))
	require.False(t, maybeConsiderAsMemoryCorruption([]byte("GET /")))
	require.False(t, maybeConsiderAsMemoryCorruption([]byte("CH")))
}

func TestDispatchFrameIgnoredWhenNotConnected(t *testing.T) {
	c := &Connection{connected: false}
	result := c.dispatchFrame(wire.PingFrame{}, protocol.Encryption1RTT, 0)
	require.Equal(t, continueProcessing, result)
}

func TestDispatchFramePingMarksRetransmittableAndNeedsAck(t *testing.T) {
	c := &Connection{connected: true}
	result := c.dispatchFrame(wire.PingFrame{}, protocol.Encryption1RTT, 0)
	require.Equal(t, continueProcessing, result)
	require.True(t, c.ackNeededRetransmittable)
}

func TestDispatchFrameConnectionCloseClosesFromPeer(t *testing.T) {
	c := &Connection{connected: true}
	f := &wire.ConnectionCloseFrame{ErrorCode: uint64(qerr.ProtocolViolation), ReasonPhrase: "bye"}
	result := c.dispatchFrame(f, protocol.Encryption1RTT, 0)
	require.True(t, result.shouldClose())
}

func TestDispatchFrameHandshakeDoneOnServerIsAViolation(t *testing.T) {
	c := &Connection{connected: true, perspective: protocol.PerspectiveServer}
	result := c.dispatchFrame(&wire.HandshakeDoneFrame{}, protocol.Encryption1RTT, 0)
	require.True(t, result.shouldClose())
}

func TestDispatchFrameHandshakeDoneOnClientConfirmsHandshake(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.connected = true

	result := c.dispatchFrame(&wire.HandshakeDoneFrame{}, protocol.Encryption1RTT, 0)

	require.Equal(t, continueProcessing, result)
}

func TestOnStreamFrameAtInitialOnNonCryptoStreamIsAViolation(t *testing.T) {
	c := &Connection{}
	f := &wire.StreamFrame{Data: []byte("hello"), IsCryptoStream: false}

	result := c.onStreamFrame(f, protocol.EncryptionInitial)

	require.True(t, result.shouldClose())
}

func TestOnStreamFrameAtInitialResemblingHandshakeTagIsMemoryCorruption(t *testing.T) {
	c := &Connection{}
	f := &wire.StreamFrame{Data: []byte("CHLOxxx"), IsCryptoStream: false}

	result := c.onStreamFrame(f, protocol.EncryptionInitial)

	require.True(t, result.shouldClose())
}

func TestOnStreamFrameCryptoStreamAtInitialIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := mocks.NewMockVisitor(ctrl)
	visitor.EXPECT().OnCryptoFrame(gomock.Any()).Return(nil)
	c := &Connection{visitor: visitor}
	f := &wire.StreamFrame{Data: []byte("CHLOxxx"), IsCryptoStream: true}

	result := c.onStreamFrame(f, protocol.EncryptionInitial)

	require.Equal(t, continueProcessing, result)
}

func TestOnStreamFrameNilVisitorIsANoOp(t *testing.T) {
	c := &Connection{}
	f := &wire.StreamFrame{Data: []byte("hi"), IsCryptoStream: false}

	result := c.onStreamFrame(f, protocol.Encryption1RTT)

	require.Equal(t, continueProcessing, result)
}

func TestOnStreamFrameVisitorErrorClosesConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := mocks.NewMockVisitor(ctrl)
	visitor.EXPECT().OnStreamFrame(gomock.Any()).Return(errors.New("boom"))
	c := &Connection{visitor: visitor}
	f := &wire.StreamFrame{Data: []byte("hi"), IsCryptoStream: false}

	result := c.onStreamFrame(f, protocol.Encryption1RTT)

	require.True(t, result.shouldClose())
}

func TestOnAckFrameRejectsAckForNeverSentPacket(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.largestSentPacketNumber = 5

	result := c.onAckFrame(&wire.AckFrame{LargestAcked: 10}, protocol.Encryption1RTT)

	require.True(t, result.shouldClose())
}

func TestOnAckFrameStaleAckIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.largestSentPacketNumber = 10
	c.largestAckedByPeer[protocol.PacketNumberSpaceAppData] = 8

	result := c.onAckFrame(&wire.AckFrame{LargestAcked: 5}, protocol.Encryption1RTT)

	require.Equal(t, continueProcessing, result)
	require.EqualValues(t, 8, c.largestAckedByPeer[protocol.PacketNumberSpaceAppData], "a stale ACK must not regress the watermark")
}

func TestOnAckFrameRejectsNestedProcessing(t *testing.T) {
	c := &Connection{processingAckFrame: true}

	result := c.onAckFrame(&wire.AckFrame{}, protocol.Encryption1RTT)

	require.True(t, result.shouldClose())
}

func TestOnStopWaitingFrameAdvancesLowWaterMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.peerLeastUnacked = 2

	result := c.onStopWaitingFrame(&wire.StopWaitingFrame{LeastUnacked: 5}, 10)

	require.Equal(t, continueProcessing, result)
	require.EqualValues(t, 5, c.peerLeastUnacked)
}

func TestOnStopWaitingFrameOutsideRangeIsAViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.peerLeastUnacked = 2

	result := c.onStopWaitingFrame(&wire.StopWaitingFrame{LeastUnacked: 20}, 10)

	require.True(t, result.shouldClose())
}

func TestOnStopWaitingFrameSkippedWhenConfigDisablesIt(t *testing.T) {
	c := &Connection{config: &Config{NoStopWaitingFrames: true}}

	result := c.onStopWaitingFrame(&wire.StopWaitingFrame{LeastUnacked: 999}, 1)

	require.Equal(t, continueProcessing, result)
}

func TestOnPathResponseFrameMatchingDataClearsChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)
	c.outstandingPathChallenge = &wire.PathChallengeFrame{Data: [8]byte{1, 2, 3}}
	c.pathDegrading.Set(c.clock.Now().Add(3 * time.Second))

	c.onPathResponseFrame(&wire.PathResponseFrame{Data: [8]byte{1, 2, 3}})

	require.Nil(t, c.outstandingPathChallenge)
	require.False(t, c.pathDegrading.IsSet())
}

func TestOnPathResponseFrameMismatchedDataIsIgnored(t *testing.T) {
	c := &Connection{outstandingPathChallenge: &wire.PathChallengeFrame{Data: [8]byte{1, 2, 3}}}

	c.onPathResponseFrame(&wire.PathResponseFrame{Data: [8]byte{9, 9, 9}})

	require.NotNil(t, c.outstandingPathChallenge)
}

func TestOnPathResponseFrameWithoutOutstandingChallengeIsANoOp(t *testing.T) {
	c := &Connection{}
	c.onPathResponseFrame(&wire.PathResponseFrame{Data: [8]byte{1}})
	require.Nil(t, c.outstandingPathChallenge)
}

func TestOnNewConnectionIDFrameAppendsToAvailableIDs(t *testing.T) {
	c := &Connection{}
	result := c.onNewConnectionIDFrame(&wire.NewConnectionIDFrame{SequenceNumber: 1})
	require.Equal(t, continueProcessing, result)
	require.Len(t, c.availablePeerConnIDs, 1)
}

func TestOnRetireConnectionIDFrameRecordsSequenceNumber(t *testing.T) {
	c := &Connection{}
	c.onRetireConnectionIDFrame(&wire.RetireConnectionIDFrame{SequenceNumber: 7})
	require.Equal(t, []uint64{7}, c.retiredConnIDSeqNumbers)
}

func TestDispatchFramePathChallengeQueuesResponse(t *testing.T) {
	c := &Connection{connected: true}
	f := &wire.PathChallengeFrame{Data: [8]byte{4, 5, 6}}

	result := c.dispatchFrame(f, protocol.Encryption1RTT, 0)

	require.Equal(t, continueProcessing, result)
	require.NotNil(t, c.pendingPathResponse)
	require.Equal(t, f.Data, c.pendingPathResponse.Data)
}
