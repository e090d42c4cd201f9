package quic

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/mocks"
	"github.com/quicwire/qconn/internal/protocol"
)

func TestUpdatePacketContentConnectivityProbe(t *testing.T) {
	c := &Connection{}
	c.updatePacketContent(true, false)  // PING
	c.updatePacketContent(false, true)  // PADDING
	require.True(t, c.isConnectivityProbe())
}

func TestUpdatePacketContentDataFrameIsNotAProbe(t *testing.T) {
	c := &Connection{}
	c.updatePacketContent(false, false) // STREAM or similar
	require.False(t, c.isConnectivityProbe())
	require.Equal(t, contentHasDataFrame, c.currentPacketContent)
}

func TestUpdatePacketContentPingFollowedByDataIsNotAProbe(t *testing.T) {
	c := &Connection{}
	c.updatePacketContent(true, false)
	c.updatePacketContent(false, false)
	require.False(t, c.isConnectivityProbe())
}

func TestDetermineAddressChangeType(t *testing.T) {
	v4a := &net.UDPAddr{IP: net.IPv4(1, 2, 3, 4), Port: 1000}
	v4aSamePort := &net.UDPAddr{IP: net.IPv4(1, 2, 3, 4), Port: 1000}
	v4aOtherPort := &net.UDPAddr{IP: net.IPv4(1, 2, 3, 4), Port: 2000}
	v4b := &net.UDPAddr{IP: net.IPv4(5, 6, 7, 8), Port: 1000}
	v6 := &net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 1000}

	require.Equal(t, protocol.NoChange, determineAddressChangeType(v4a, v4aSamePort))
	require.Equal(t, protocol.PortChange, determineAddressChangeType(v4a, v4aOtherPort))
	require.Equal(t, protocol.IPv4SubnetChange, determineAddressChangeType(v4a, v4b))
	require.Equal(t, protocol.IPv4ToIPv6Change, determineAddressChangeType(v4a, v6))
	require.Equal(t, protocol.IPv6ToIPv4Change, determineAddressChangeType(v6, v4a))
	require.Equal(t, protocol.UnspecifiedChange, determineAddressChangeType(nil, v4a))
}

func TestOnPacketReceivedFromPeerClientNeverMigrates(t *testing.T) {
	c := &Connection{perspective: protocol.PerspectiveClient}
	result := c.onPacketReceivedFromPeer(&net.UDPAddr{}, 1, true)
	require.Equal(t, continueProcessing, result)
	require.Nil(t, c.directPeerAddr)
}

func TestOnPacketReceivedFromPeerFirstPacketSeedsAddr(t *testing.T) {
	c := &Connection{perspective: protocol.PerspectiveServer}
	addr := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 1}

	result := c.onPacketReceivedFromPeer(addr, 1, true)

	require.Equal(t, continueProcessing, result)
	require.Equal(t, addr, c.directPeerAddr)
	require.Equal(t, addr, c.effectivePeerAddr)
}

func TestOnPacketReceivedFromPeerSameAddrIsNoChange(t *testing.T) {
	addr := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 1}
	c := &Connection{perspective: protocol.PerspectiveServer, directPeerAddr: addr, effectivePeerAddr: addr}

	result := c.onPacketReceivedFromPeer(&net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 1}, 2, true)

	require.Equal(t, continueProcessing, result)
	require.Nil(t, c.pendingMigration)
}

func TestOnPacketReceivedFromPeerProbeDefersMigration(t *testing.T) {
	old := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 1}
	c := &Connection{perspective: protocol.PerspectiveServer, directPeerAddr: old, effectivePeerAddr: old}
	c.currentPacketContent = contentFirstFrameIsPing

	newAddr := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 2}
	result := c.onPacketReceivedFromPeer(newAddr, 2, true)

	require.Equal(t, continueProcessing, result)
	require.NotNil(t, c.pendingMigration, "a probe must defer, not commit, the migration")
	require.Equal(t, old, c.effectivePeerAddr, "effective address must not move until the probe is confirmed non-probing")
}

func TestOnPacketReceivedFromPeerCommitsMigrationOnNonProbingLargestPacket(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _, visitor, _, _ := newTestOptions(t, ctrl, protocol.PerspectiveServer)
	c := NewConnection(opts)
	old := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 1}
	c.directPeerAddr = old
	c.effectivePeerAddr = old

	newAddr := &net.UDPAddr{IP: net.IPv4(9, 9, 9, 9), Port: 2}
	visitor.EXPECT().OnConnectionMigration(protocol.PortChange)

	result := c.onPacketReceivedFromPeer(newAddr, 5, true)

	require.Equal(t, continueProcessing, result)
	require.Nil(t, c.pendingMigration)
	require.Equal(t, newAddr, c.effectivePeerAddr)
}

func TestValidateSelfAddressChangeAllowsNoChange(t *testing.T) {
	addr := &net.UDPAddr{IP: net.IPv4(1, 1, 1, 1), Port: 1}
	c := &Connection{}
	result := c.validateSelfAddressChange(addr, addr)
	require.Equal(t, continueProcessing, result)
}

func TestValidateSelfAddressChangeRejectedByDefault(t *testing.T) {
	c := &Connection{}
	a := &net.UDPAddr{IP: net.IPv4(1, 1, 1, 1), Port: 1}
	b := &net.UDPAddr{IP: net.IPv4(2, 2, 2, 2), Port: 1}

	result := c.validateSelfAddressChange(a, b)

	require.True(t, result.shouldClose())
}

func TestValidateSelfAddressChangeAllowedWhenVisitorOptsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := mocks.NewMockVisitor(ctrl)
	visitor.EXPECT().AllowSelfAddressChange().Return(true)
	c := &Connection{visitor: visitor}
	a := &net.UDPAddr{IP: net.IPv4(1, 1, 1, 1), Port: 1}
	b := &net.UDPAddr{IP: net.IPv4(2, 2, 2, 2), Port: 1}

	result := c.validateSelfAddressChange(a, b)

	require.Equal(t, continueProcessing, result)
}
