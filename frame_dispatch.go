package quic

import (
	"bytes"
	"net"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
	"github.com/quicwire/qconn/internal/wire"
)

// packetFrameVisitor adapts one Framer.ProcessPacket callback sequence
// into the driver's existing per-packet and per-frame handling: the
// header callback runs the packet-number validator and the migration
// detector, and each frame callback runs dispatchFrame. It accumulates
// whichever frameResult first asks to close, and reports whether any
// dispatched frame was ack-eliciting so ProcessUdpPacket can pass that on
// to the received-packet tracker.
type packetFrameVisitor struct {
	c        *Connection
	peerAddr net.Addr

	headerOK     bool
	ackEliciting bool
	space        protocol.PacketNumberSpace
	pn           protocol.PacketNumber
	result       frameResult
}

func (v *packetFrameVisitor) OnHeader(hdr *wire.Header, level protocol.EncryptionLevel) bool {
	space := protocol.EncryptionLevelToSpace(level)
	pn := hdr.PacketNumber

	if r := v.c.validateReceivedPacketNumber(space, pn); r.shouldClose() {
		v.result = r
		return false
	}
	largestReceivedSoFar := pn == v.c.pnSpaceState[space].largestReceived
	if r := v.c.onPacketReceivedFromPeer(v.peerAddr, pn, largestReceivedSoFar); r.shouldClose() {
		v.result = r
		return false
	}

	v.headerOK = true
	v.space = space
	v.pn = pn
	return true
}

func (v *packetFrameVisitor) OnFrame(f wire.Frame, level protocol.EncryptionLevel, pn protocol.PacketNumber) bool {
	if f.IsRetransmittable() {
		v.ackEliciting = true
	}
	r := v.c.dispatchFrame(f, level, pn)
	if r.shouldClose() {
		v.result = r
		return false
	}
	return true
}

// handshakeTags are the CHLO/REJ byte prefixes MaybeConsiderAsMemoryCorruption
// checks for: a stream frame starting with one of these on a non-crypto
// stream at Initial looks less like unencrypted application data and
// more like a misrouted handshake message, which quiche treats as a
// stronger signal than a plain protocol violation.
var handshakeTags = [][]byte{[]byte("CHLO"), []byte("REJ\x00")}

func maybeConsiderAsMemoryCorruption(data []byte) bool {
	for _, tag := range handshakeTags {
		if len(data) >= len(tag) && bytes.Equal(data[:len(tag)], tag) {
			return true
		}
	}
	return false
}

// dispatchFrame drops the frame once the connection is no longer
// connected, and otherwise runs the per-type handler; the handlers
// themselves update the connectivity-probe FSM and check the encryption
// level where that applies. level is the encryption level the enclosing
// packet was decrypted at.
func (c *Connection) dispatchFrame(f wire.Frame, level protocol.EncryptionLevel, pn protocol.PacketNumber) frameResult {
	if !c.connected {
		return continueProcessing
	}

	switch frame := f.(type) {
	case *wire.StreamFrame:
		return c.onStreamFrame(frame, level)
	case *wire.AckFrame:
		return c.onAckFrame(frame, level)
	case *wire.StopWaitingFrame:
		return c.onStopWaitingFrame(frame, pn)
	case wire.PingFrame:
		c.updatePacketContent(true, false)
		c.ackNeededRetransmittable = true
		return continueProcessing
	case *wire.PaddingFrame:
		c.updatePacketContent(false, true)
		return continueProcessing
	case *wire.ConnectionCloseFrame:
		return closeWith(qerr.TransportErrorCode(frame.ErrorCode), frame.ReasonPhrase, qerr.FromPeer)
	case *wire.PathChallengeFrame:
		c.updatePacketContent(true, false)
		c.pendingPathResponse = &wire.PathResponseFrame{Data: frame.Data}
		return continueProcessing
	case *wire.PathResponseFrame:
		c.onPathResponseFrame(frame)
		return continueProcessing
	case *wire.NewConnectionIDFrame:
		return c.onNewConnectionIDFrame(frame)
	case *wire.RetireConnectionIDFrame:
		c.onRetireConnectionIDFrame(frame)
		return continueProcessing
	case *wire.HandshakeDoneFrame:
		if c.perspective != protocol.PerspectiveClient {
			return closeWith(qerr.ProtocolViolation, "server received HANDSHAKE_DONE", qerr.FromSelf)
		}
		c.sentPackets.SetHandshakeConfirmed()
		return continueProcessing
	default:
		return continueProcessing
	}
}

func (c *Connection) onStreamFrame(f *wire.StreamFrame, level protocol.EncryptionLevel) frameResult {
	c.updatePacketContent(false, false)
	if !f.IsCryptoStream && level == protocol.EncryptionInitial {
		if maybeConsiderAsMemoryCorruption(f.Data) {
			return closeWith(qerr.MaybeCorruptedMemory, "stream data at Initial resembles a handshake tag", qerr.FromSelf)
		}
		return closeWith(qerr.UnencryptedStreamData, "stream data received at Initial encryption", qerr.FromSelf)
	}
	if c.visitor == nil {
		return continueProcessing
	}
	if f.IsCryptoStream {
		if err := c.visitor.OnCryptoFrame(f); err != nil {
			return closeWith(qerr.InternalError, err.Error(), qerr.FromSelf)
		}
		return continueProcessing
	}
	if err := c.visitor.OnStreamFrame(f); err != nil {
		return closeWith(qerr.InternalError, err.Error(), qerr.FromSelf)
	}
	return continueProcessing
}

// onAckFrame handles one ACK frame dispatched as Start -> Range* ->
// Timestamp* -> End by the framer; this module receives it already
// assembled, so the reentrancy guard only needs to cover nested
// processing within the same packet.
func (c *Connection) onAckFrame(f *wire.AckFrame, level protocol.EncryptionLevel) frameResult {
	if c.processingAckFrame {
		return closeWith(qerr.InvalidAckData, "nested ACK frame in the same packet", qerr.FromSelf)
	}
	c.processingAckFrame = true
	defer func() { c.processingAckFrame = false }()

	space := protocol.EncryptionLevelToSpace(level)
	if f.LargestAcked > c.largestSentPacketNumber {
		return closeWith(qerr.InvalidAckData, "ACK for a packet never sent", qerr.FromSelf)
	}
	if f.LargestAcked < c.largestAckedByPeer[space] {
		return continueProcessing
	}
	c.largestAckedByPeer[space] = f.LargestAcked

	rearm, err := c.sentPackets.ReceivedAck(packetNumberSpaceAck{frame: f}, space, c.clock.Now())
	if err != nil {
		return closeWith(qerr.InvalidAckData, err.Error(), qerr.FromSelf)
	}
	if rearm {
		c.setRetransmissionAlarm(c.sentPackets.GetLossDetectionTimeout())
	}
	c.consecutiveRTOs = 0
	c.closeAfterFiveRTOsCount = 0
	if c.visitor != nil {
		c.visitor.OnForwardProgressConfirmed()
	}
	return continueProcessing
}

// onStopWaitingFrame is the legacy counterpart to an ACK's implicit
// low-water mark. It is a no-op when Config.NoStopWaitingFrames is set;
// the negotiated version is not consulted, so a connection on a version
// with IETF invariant headers still processes the frame.
func (c *Connection) onStopWaitingFrame(f *wire.StopWaitingFrame, enclosingPN protocol.PacketNumber) frameResult {
	if c.config.NoStopWaitingFrames {
		return continueProcessing
	}
	if f.LeastUnacked <= c.peerLeastUnacked || f.LeastUnacked > enclosingPN {
		return closeWith(qerr.InvalidStopWaitingData, "least_unacked outside (peer_least_awaiting, enclosing]", qerr.FromSelf)
	}
	c.peerLeastUnacked = f.LeastUnacked
	c.receivedPackets.ForSpace(protocol.PacketNumberSpaceAppData).IgnoreBelow(f.LeastUnacked)
	return continueProcessing
}

func (c *Connection) onPathResponseFrame(f *wire.PathResponseFrame) {
	if c.outstandingPathChallenge == nil {
		return
	}
	if f.Data == c.outstandingPathChallenge.Data {
		c.outstandingPathChallenge = nil
		c.pathDegrading.Cancel()
	}
}

func (c *Connection) onNewConnectionIDFrame(f *wire.NewConnectionIDFrame) frameResult {
	c.availablePeerConnIDs = append(c.availablePeerConnIDs, f.ConnectionID)
	return continueProcessing
}

func (c *Connection) onRetireConnectionIDFrame(f *wire.RetireConnectionIDFrame) {
	c.retiredConnIDSeqNumbers = append(c.retiredConnIDSeqNumbers, f.SequenceNumber)
}
