package quic

import (
	"github.com/quicwire/qconn/internal/handshake"
	"github.com/quicwire/qconn/internal/protocol"
)

// onRetryPacket implements spec.md §4.4, client-only: at most one Retry
// may be accepted, it must match the connection id currently in use, and
// accepting it re-derives Initial keys bound to the new id.
func (c *Connection) onRetryPacket(originalCID, newCID protocol.ConnectionID, token []byte) frameResult {
	if c.perspective != protocol.PerspectiveClient {
		return continueProcessing
	}
	if c.retryHasBeenParsed {
		return continueProcessing
	}
	if !originalCID.Equal(c.peerConnID) {
		return continueProcessing
	}

	c.retryHasBeenParsed = true
	c.peerConnID = newCID
	c.retryToken = append([]byte(nil), token...)
	c.crypto = handshake.NewInitialCryptoSetup(newCID)
	c.sentPackets.ResetForRetry(c.clock.Now())
	return continueProcessing
}
