package quic

import (
	"net"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
)

// packetContent classifies the running connectivity-probe FSM spec.md
// §4.5/§4.6 describe: a packet consisting only of PING/PATH_CHALLENGE
// followed by PADDING is a probe, not data traffic, and must not trigger
// a migration decision on its own.
type packetContent uint8

const (
	contentNoFrames packetContent = iota
	contentFirstFrameIsPing
	contentSecondFrameIsPadding
	contentHasDataFrame
)

// updatePacketContent advances the FSM as each frame in the current
// packet is dispatched. Call once per frame, in wire order.
func (c *Connection) updatePacketContent(isPingOrChallenge, isPadding bool) {
	switch c.currentPacketContent {
	case contentNoFrames:
		if isPingOrChallenge {
			c.currentPacketContent = contentFirstFrameIsPing
			return
		}
		if !isPadding {
			c.currentPacketContent = contentHasDataFrame
		}
	case contentFirstFrameIsPing:
		if isPadding {
			c.currentPacketContent = contentSecondFrameIsPadding
			return
		}
		if !isPingOrChallenge {
			c.currentPacketContent = contentHasDataFrame
		}
	case contentSecondFrameIsPadding:
		if !isPadding {
			c.currentPacketContent = contentHasDataFrame
		}
	}
}

func (c *Connection) isConnectivityProbe() bool {
	return c.currentPacketContent == contentFirstFrameIsPing ||
		c.currentPacketContent == contentSecondFrameIsPadding
}

// determineAddressChangeType classifies how addr differs from last,
// grounded on quiche's DeterminePeerAddressChangeType enum.
func determineAddressChangeType(last, addr net.Addr) protocol.AddressChangeType {
	lastUDP, ok1 := last.(*net.UDPAddr)
	curUDP, ok2 := addr.(*net.UDPAddr)
	if !ok1 || !ok2 || lastUDP == nil || curUDP == nil {
		return protocol.UnspecifiedChange
	}
	sameIP := lastUDP.IP.Equal(curUDP.IP)
	samePort := lastUDP.Port == curUDP.Port
	if sameIP && samePort {
		return protocol.NoChange
	}
	if sameIP {
		return protocol.PortChange
	}
	lastIsV4 := lastUDP.IP.To4() != nil
	curIsV4 := curUDP.IP.To4() != nil
	switch {
	case lastIsV4 && curIsV4:
		return protocol.IPv4SubnetChange
	case lastIsV4 && !curIsV4:
		return protocol.IPv4ToIPv6Change
	case !lastIsV4 && curIsV4:
		return protocol.IPv6ToIPv4Change
	default:
		return protocol.IPv6SubnetChange
	}
}

// onPacketReceivedFromPeer updates migration state for one inbound
// packet. The migration itself is deferred until the packet is confirmed
// non-probing and is the largest received so far, per spec.md §4.5.
func (c *Connection) onPacketReceivedFromPeer(peerAddr net.Addr, pn protocol.PacketNumber, largestReceivedSoFar bool) frameResult {
	if c.perspective == protocol.PerspectiveClient {
		return continueProcessing
	}
	if c.directPeerAddr == nil {
		c.directPeerAddr = peerAddr
		c.effectivePeerAddr = peerAddr
		return continueProcessing
	}

	changeType := determineAddressChangeType(c.directPeerAddr, peerAddr)
	c.directPeerAddr = peerAddr
	if changeType == protocol.NoChange {
		return continueProcessing
	}

	c.pendingMigration = &pendingMigrationState{
		addr:       peerAddr,
		changeType: changeType,
	}
	if c.isConnectivityProbe() || !largestReceivedSoFar {
		return continueProcessing
	}
	c.startEffectivePeerMigration(pn)
	return continueProcessing
}

type pendingMigrationState struct {
	addr       net.Addr
	changeType protocol.AddressChangeType
}

// startEffectivePeerMigration commits a deferred migration: a new
// migration starts even if one is already in flight. It records the
// largest packet number sent before the path change in
// c.highestPacketSentBeforeMigration (not passed to the sent-packet
// manager) and resets the manager's Initial-space state.
func (c *Connection) startEffectivePeerMigration(pn protocol.PacketNumber) {
	if c.pendingMigration == nil {
		return
	}
	c.effectivePeerAddr = c.pendingMigration.addr
	c.highestPacketSentBeforeMigration = c.largestSentPacketNumber
	changeType := c.pendingMigration.changeType
	c.pendingMigration = nil

	c.sentPackets.ResetForRetry(c.clock.Now())
	c.qlog.connectionMigration(changeType)
	if c.visitor != nil {
		c.visitor.OnConnectionMigration(changeType)
	}
}

// validateSelfAddressChange implements the server-side restriction: a
// change to the address this endpoint is bound to is only allowed
// between equivalent IPv4/IPv4-mapped-IPv6 forms, unless the visitor
// opts in to more.
func (c *Connection) validateSelfAddressChange(last, current net.Addr) frameResult {
	if determineAddressChangeType(last, current) == protocol.NoChange {
		return continueProcessing
	}
	if c.visitor != nil && c.visitor.AllowSelfAddressChange() {
		return continueProcessing
	}
	return closeWith(qerr.ErrorMigratingAddress, "disallowed self address change", qerr.FromSelf)
}
