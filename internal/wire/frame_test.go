package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/protocol"
)

func TestAckFrameAcksPacketWithinAnyRange(t *testing.T) {
	f := &AckFrame{AckRanges: []AckRange{{Smallest: 10, Largest: 12}, {Smallest: 5, Largest: 6}}}

	require.True(t, f.AcksPacket(5))
	require.True(t, f.AcksPacket(11))
	require.True(t, f.AcksPacket(12))
	require.False(t, f.AcksPacket(7))
	require.False(t, f.AcksPacket(13))
}

func TestAckFrameHasMissingRanges(t *testing.T) {
	require.False(t, (&AckFrame{AckRanges: []AckRange{{Smallest: 1, Largest: 5}}}).HasMissingRanges())
	require.True(t, (&AckFrame{AckRanges: []AckRange{{Smallest: 4, Largest: 5}, {Smallest: 1, Largest: 2}}}).HasMissingRanges())
}

func TestFrameRetransmittability(t *testing.T) {
	require.False(t, (&AckFrame{}).IsRetransmittable())
	require.False(t, (&StopWaitingFrame{}).IsRetransmittable())
	require.True(t, PingFrame{}.IsRetransmittable())
	require.False(t, (&PaddingFrame{}).IsRetransmittable())
	require.True(t, (&StreamFrame{}).IsRetransmittable())
	require.False(t, (&ConnectionCloseFrame{}).IsRetransmittable())
	require.True(t, (&PathChallengeFrame{}).IsRetransmittable())
	require.True(t, (&PathResponseFrame{}).IsRetransmittable())
	require.True(t, (&NewConnectionIDFrame{}).IsRetransmittable())
	require.True(t, (&RetireConnectionIDFrame{}).IsRetransmittable())
	require.True(t, (&NewTokenFrame{}).IsRetransmittable())
	require.True(t, HandshakeDoneFrame{}.IsRetransmittable())
}

func TestAckFrameWithNoRangesHasNoMissingRangesAndAcksNothing(t *testing.T) {
	f := &AckFrame{}
	require.False(t, f.HasMissingRanges())
	require.False(t, f.AcksPacket(0))
}

func TestPacketTypeConstantsAreDistinct(t *testing.T) {
	types := []PacketType{
		PacketTypeInitial, PacketTypeZeroRTT, PacketTypeHandshake,
		PacketTypeRetry, PacketTypeShortHeader, PacketTypeVersionNegotiation,
	}
	seen := make(map[PacketType]bool, len(types))
	for _, pt := range types {
		require.False(t, seen[pt])
		seen[pt] = true
	}
}

func TestHeaderCarriesRetryFieldsIndependently(t *testing.T) {
	h := Header{
		Type:                 PacketTypeRetry,
		RetryToken:           []byte{0x01, 0x02},
		OrigDestConnectionID: protocol.ParseConnectionID([]byte{0xaa}),
	}
	require.Equal(t, PacketTypeRetry, h.Type)
	require.Equal(t, []byte{0x01, 0x02}, h.RetryToken)
}
