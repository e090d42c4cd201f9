package quic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
)

func TestConnectionCloseEncryptionLevelPicksHighestUsable(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, _, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)

	require.Equal(t, protocol.EncryptionInitial, c.connectionCloseEncryptionLevel(), "before the handshake only Initial keys exist")

	c.crypto.SetHandshakeConfirmed()
	require.Equal(t, protocol.Encryption1RTT, c.connectionCloseEncryptionLevel())
}

func TestSendConnectionCloseWritesAPacketAndTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, writer, framer, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)

	writer.EXPECT().IsWriteBlocked().Return(false).AnyTimes()
	writer.EXPECT().SupportsReleaseTime().Return(false).AnyTimes()
	writer.EXPECT().WritePacket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(WriteResult{Status: WriteOk, BytesWritten: 32})
	framer.EXPECT().EncodeFrame(gomock.Any(), gomock.Any()).Return([]byte{0xaa}, nil)
	visitor.EXPECT().WillingAndAbleToWrite().Return(false).AnyTimes()
	visitor.EXPECT().OnConnectionClosed(false, gomock.Any())

	c.SendConnectionClose(qerr.ProtocolViolation, "bye")

	require.False(t, c.connected)
}

func TestSendConnectionCloseSilentlyNeverTouchesTheWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)

	visitor.EXPECT().OnConnectionClosed(false, gomock.Any())
	// No writer/framer EXPECT(): a silent close must not write anything.

	c.SendConnectionCloseSilently(qerr.InternalError, "unreachable")

	require.False(t, c.connected)
}

func TestClosePeerInitiatedReportsRemoteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, writer, framer, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)

	writer.EXPECT().IsWriteBlocked().Return(false).AnyTimes()
	writer.EXPECT().SupportsReleaseTime().Return(false).AnyTimes()
	writer.EXPECT().WritePacket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(WriteResult{Status: WriteOk, BytesWritten: 32})
	framer.EXPECT().EncodeFrame(gomock.Any(), gomock.Any()).Return([]byte{0xaa}, nil)
	visitor.EXPECT().WillingAndAbleToWrite().Return(false).AnyTimes()
	visitor.EXPECT().OnConnectionClosed(true, gomock.Any())

	c.closePeerInitiated(qerr.ProtocolViolation, "peer closed")

	require.False(t, c.connected)
}

func TestCloseConnectionIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	c := NewConnection(opts)

	visitor.EXPECT().OnConnectionClosed(false, gomock.Any()).Times(1)

	c.SendConnectionCloseSilently(qerr.InternalError, "first")
	c.SendConnectionCloseSilently(qerr.InternalError, "second")

	require.False(t, c.connected)
}
