package quic

import (
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
)

// packetNumberSpaceState tracks per-space validation state: the largest
// packet number accepted so far, and whether any packet has been
// accepted yet (the first packet in a space is exempt from the gap
// check).
type packetNumberSpaceState struct {
	largestReceived protocol.PacketNumber
	hasReceived     bool
}

// validateReceivedPacketNumber rejects duplicates and out-of-window
// packet numbers, grounded on quiche's ValidateReceivedPacketNumber:
// post-decryption validation is assumed (the packet has already been
// decrypted by the time this runs, so the number is trustworthy). After
// the first packet in a space, every packet above the largest accepted so
// far is held to the MaxPacketGap check, whether or not the connection
// uses more than one packet number space.
func (c *Connection) validateReceivedPacketNumber(space protocol.PacketNumberSpace, pn protocol.PacketNumber) frameResult {
	handler := c.receivedPackets.ForSpace(space)
	if handler.IsPotentiallyDuplicate(pn) {
		return closeWith(qerr.InvalidPacketHeader, "duplicate or already-acknowledged packet number", qerr.FromSelf)
	}

	st := &c.pnSpaceState[space]
	if !st.hasReceived {
		if c.acceptRandomInitialPacketNumber && pn > protocol.MaxRandomInitialPacketNumber {
			return closeWith(qerr.InvalidPacketHeader, "initial packet number out of bounds", qerr.FromSelf)
		}
		st.hasReceived = true
		st.largestReceived = pn
		return continueProcessing
	}

	if pn > st.largestReceived {
		gap := pn - st.largestReceived
		if gap > protocol.MaxPacketGap {
			return closeWith(qerr.InvalidPacketHeader, "packet number gap too large", qerr.FromSelf)
		}
		st.largestReceived = pn
	}
	return continueProcessing
}

// isStatelessReset reports whether data matches the token learned from
// the peer's transport parameters, the short-circuit spec.md §4.1
// describes for packets that would otherwise fail the awaited check.
func (c *Connection) isStatelessReset(data []byte) bool {
	if c.peerStatelessResetToken == nil || len(data) < len(protocol.StatelessResetToken{}) {
		return false
	}
	tail := data[len(data)-len(protocol.StatelessResetToken{}):]
	for i, b := range tail {
		if b != c.peerStatelessResetToken[i] {
			return false
		}
	}
	return true
}
