package quic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
)

func TestOnProtocolVersionMismatchRejectsClient(t *testing.T) {
	c := &Connection{perspective: protocol.PerspectiveClient}
	result := c.onProtocolVersionMismatch(protocol.VersionWhatever)
	require.True(t, result.shouldClose())
	require.Equal(t, qerr.InternalError, result.close.err.ErrorCode)
}

func TestOnProtocolVersionMismatchUnsupportedTriggersNegotiation(t *testing.T) {
	c := &Connection{
		perspective: protocol.PerspectiveServer,
		config:      &Config{Versions: []protocol.Version{protocol.VersionWhatever}},
		peerConnID:  protocol.ParseConnectionID([]byte{1, 2, 3, 4}),
		selfConnID:  protocol.ParseConnectionID([]byte{5, 6, 7, 8}),
	}

	result := c.onProtocolVersionMismatch(protocol.Version(0xdeadbeef))

	require.Equal(t, continueProcessing, result)
	require.Equal(t, negotiationInProgress, c.negotiation)
	require.NotNil(t, c.queuedVersionNegotiation)
	require.Equal(t, []protocol.Version{protocol.VersionWhatever}, c.queuedVersionNegotiation.versions)
}

func TestOnProtocolVersionMismatchSupportedVersionIsAdopted(t *testing.T) {
	c := &Connection{
		perspective: protocol.PerspectiveServer,
		config:      &Config{Versions: []protocol.Version{protocol.VersionWhatever}},
		negotiation: negotiationStart,
	}

	result := c.onProtocolVersionMismatch(protocol.VersionWhatever)

	require.Equal(t, continueProcessing, result)
	require.Equal(t, protocol.VersionWhatever, c.version)
	require.Equal(t, negotiationDone, c.negotiation)
	require.Nil(t, c.queuedVersionNegotiation)
}

func TestOnProtocolVersionMismatchAfterNegotiationDoneIsIgnored(t *testing.T) {
	c := &Connection{
		perspective: protocol.PerspectiveServer,
		config:      &Config{Versions: []protocol.Version{protocol.VersionWhatever}},
		negotiation: negotiationDone,
		version:     protocol.VersionWhatever,
	}

	result := c.onProtocolVersionMismatch(protocol.Version(0xdeadbeef))

	require.Equal(t, continueProcessing, result)
	require.Equal(t, protocol.VersionWhatever, c.version, "an already-negotiated connection must not change version")
	require.Nil(t, c.queuedVersionNegotiation)
}

func TestOnVersionNegotiationPacketRejectsServer(t *testing.T) {
	c := &Connection{perspective: protocol.PerspectiveServer}
	result := c.onVersionNegotiationPacket([]protocol.Version{protocol.VersionWhatever})
	require.True(t, result.shouldClose())
	require.Equal(t, qerr.InternalError, result.close.err.ErrorCode)
}

func TestOnVersionNegotiationPacketRejectsIfServerClaimsOwnVersionUnsupported(t *testing.T) {
	c := &Connection{perspective: protocol.PerspectiveClient, version: protocol.VersionWhatever}
	result := c.onVersionNegotiationPacket([]protocol.Version{protocol.VersionWhatever})
	require.True(t, result.shouldClose())
	require.Equal(t, qerr.InvalidVersion, result.close.err.ErrorCode)
}

func TestOnVersionNegotiationPacketRejectsWhenNoMutualVersion(t *testing.T) {
	c := &Connection{
		perspective: protocol.PerspectiveClient,
		version:     protocol.Version(42),
		config:      &Config{Versions: []protocol.Version{protocol.Version(42)}},
	}
	result := c.onVersionNegotiationPacket([]protocol.Version{protocol.Version(99)})
	require.True(t, result.shouldClose())
	require.Equal(t, qerr.InvalidVersion, result.close.err.ErrorCode)
}

func TestOnVersionNegotiationPacketAdoptsMutualVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveClient)
	opts.Config = &Config{Versions: []protocol.Version{protocol.Version(42), protocol.VersionWhatever}}
	opts.Version = protocol.Version(42)
	c := NewConnection(opts)
	c.version = protocol.Version(42)

	visitor.EXPECT().OnSuccessfulVersionNegotiation(protocol.VersionWhatever)

	result := c.onVersionNegotiationPacket([]protocol.Version{protocol.VersionWhatever})

	require.Equal(t, continueProcessing, result)
	require.Equal(t, protocol.VersionWhatever, c.version)
	require.Equal(t, negotiationInProgress, c.negotiation)
}

func TestSendVersionNegotiationPacketQueuesRequest(t *testing.T) {
	c := &Connection{
		config:     &Config{Versions: []protocol.Version{protocol.VersionWhatever}},
		peerConnID: protocol.ParseConnectionID([]byte{1, 2, 3, 4}),
		selfConnID: protocol.ParseConnectionID([]byte{5, 6, 7, 8}),
	}
	c.sendVersionNegotiationPacket()

	require.NotNil(t, c.queuedVersionNegotiation)
	require.Equal(t, c.peerConnID, c.queuedVersionNegotiation.destConnID)
	require.Equal(t, c.selfConnID, c.queuedVersionNegotiation.srcConnID)
}
