package quic

import (
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
)

// negotiationState is the version-negotiation FSM from spec.md §4.3:
// StartNegotiation -> NegotiationInProgress -> NegotiatedVersion, the
// last state terminal for the life of the connection.
type negotiationState uint8

const (
	negotiationStart negotiationState = iota
	negotiationInProgress
	negotiationDone
)

// onProtocolVersionMismatch implements the server side: a received
// packet names a version other than the one currently selected.
func (c *Connection) onProtocolVersionMismatch(recvVersion protocol.Version) frameResult {
	if c.perspective != protocol.PerspectiveServer {
		return closeWith(qerr.InternalError, "client received a version mismatch callback", qerr.FromSelf)
	}
	switch c.negotiation {
	case negotiationDone:
		// Negotiated already; a further mismatch is simply dropped.
		return continueProcessing
	case negotiationStart, negotiationInProgress:
		if !protocol.ContainsVersion(c.config.Versions, recvVersion) {
			c.sendVersionNegotiationPacket()
			c.negotiation = negotiationInProgress
			return continueProcessing
		}
		c.version = recvVersion
		if c.negotiation == negotiationStart {
			c.negotiation = negotiationDone
		}
		return continueProcessing
	}
	return continueProcessing
}

// sendVersionNegotiationPacket queues a version-negotiation reply listing
// every version this endpoint supports.
func (c *Connection) sendVersionNegotiationPacket() {
	c.queuedVersionNegotiation = &versionNegotiationRequest{
		destConnID: c.peerConnID,
		srcConnID:  c.selfConnID,
		versions:   c.config.Versions,
	}
}

type versionNegotiationRequest struct {
	destConnID protocol.ConnectionID
	srcConnID  protocol.ConnectionID
	versions   []protocol.Version
}

// onVersionNegotiationPacket implements the client side: the server
// rejected the client's chosen version and listed what it supports.
func (c *Connection) onVersionNegotiationPacket(serverVersions []protocol.Version) frameResult {
	if c.perspective != protocol.PerspectiveClient {
		return closeWith(qerr.InternalError, "server received a version-negotiation packet", qerr.FromSelf)
	}
	if protocol.ContainsVersion(serverVersions, c.version) {
		return closeWith(qerr.InvalidVersion, "server claims not to support the version it just used", qerr.FromSelf)
	}
	newVersion, ok := protocol.SelectMutualVersion(c.config.Versions, serverVersions)
	if !ok {
		return closeWith(qerr.InvalidVersion, "no mutually supported version", qerr.FromSelf)
	}
	if handshakeProtocolOf(newVersion) != handshakeProtocolOf(c.version) {
		return closeWith(qerr.InvalidVersion, "version negotiation changed handshake protocol", qerr.FromSelf)
	}
	c.version = newVersion
	c.negotiation = negotiationInProgress
	c.retransmitAllUnacked()
	if c.visitor != nil {
		c.visitor.OnSuccessfulVersionNegotiation(newVersion)
	}
	return continueProcessing
}

// handshakeProtocolOf is a stand-in for a per-version protocol table;
// every version this module lists uses TLS 1.3, so it's a constant for
// now and only exists so changing that later doesn't touch the FSM logic.
func handshakeProtocolOf(protocol.Version) protocol.HandshakeProtocol {
	return protocol.HandshakeTLS13
}

func (c *Connection) retransmitAllUnacked() {
	for space := protocol.PacketNumberSpaceInitial; space < protocol.NumPacketNumberSpaces; space++ {
		c.sentPackets.RetransmitAllUnacked(space)
	}
}
