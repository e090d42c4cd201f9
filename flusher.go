package quic

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// ackSendDecision mirrors quiche's ShouldSendAck switch. The flusher does
// not use it: attach records no decision, and the outermost drop sends
// pending acks whenever the received-packet manager reports one is due.
type ackSendDecision uint8

const (
	sendAckIfPending ackSendDecision = iota
	sendAck
	sendAckIfQueued
	noAck
)

// withFlusher runs fn under a scoped packet flusher, the batch boundary
// spec.md §5 describes: nested calls share the outermost flusher's
// deferred alarm rearm and final flush, matching invariant 8.
func (c *Connection) withFlusher(fn func()) {
	c.attachPacketFlusher()
	defer c.detachPacketFlusher()
	fn()
}

func (c *Connection) attachPacketFlusher() {
	if c.flusherDepth == 0 {
		c.flusherAttached = true
	}
	c.flusherDepth++
}

// detachPacketFlusher is the flusher destructor: on the outermost drop it
// decides whether a pending ACK still needs to go out, flushes anything
// the packet generator queued, runs the application-limited check, and
// finally commits any retransmission-alarm rearm that was deferred while
// nested.
func (c *Connection) detachPacketFlusher() {
	c.flusherDepth--
	if c.flusherDepth > 0 {
		return
	}
	c.flusherAttached = false

	now := c.clock.Now()
	if c.receivedPackets.AckDue(now) {
		c.sendAllPendingAcks()
	}

	if c.queuedVersionNegotiation != nil {
		vn := c.queuedVersionNegotiation
		c.queuedVersionNegotiation = nil
		if buf, err := c.framer.EncodeVersionNegotiationPacket(&wire.VersionNegotiationPacket{
			DestConnectionID:  vn.destConnID,
			SrcConnectionID:   vn.srcConnID,
			SupportedVersions: vn.versions,
		}); err == nil {
			c.writer.WritePacket(buf, c.selfAddr, c.effectivePeerAddr, WriteOptions{IsLast: true})
		}
	}

	if c.pendingConnectionClose != nil {
		pc := c.pendingConnectionClose
		c.pendingConnectionClose = nil
		if buf, err := c.framer.EncodeFrame(pc.frame, pc.level); err == nil {
			c.writePacket(protocol.EncryptionLevelToSpace(pc.level), buf, pc.level, false, true)
		}
	}

	c.flushPackets()
	c.checkIfApplicationLimited()

	if c.pendingRetransmissionAlarmDeadline != nil {
		deadline := *c.pendingRetransmissionAlarmDeadline
		c.pendingRetransmissionAlarmDeadline = nil
		c.alarms.setRetransmissionAlarm(deadline)
	}
}

// setRetransmissionAlarm defers the actual alarm rearm while a flusher is
// attached (re-entry into the send path during a flusher must not rearm
// directly, per spec.md's ordering guarantee), and applies it immediately
// otherwise.
func (c *Connection) setRetransmissionAlarm(deadline time.Time) {
	if c.flusherAttached {
		d := deadline
		c.pendingRetransmissionAlarmDeadline = &d
		return
	}
	c.alarms.setRetransmissionAlarm(deadline)
}

func (c *Connection) sendAllPendingAcks() {
	c.receivedPackets.SendAllPendingAcks(func(level protocol.EncryptionLevel, ack *wire.AckFrame) {
		c.bundledAckByLevel[level] = ack
	})
}

// checkIfApplicationLimited sets c.applicationLimited when nothing is
// queued and the visitor is not willing and able to write. The flag is
// not passed to the sent-packet manager, and nothing here clears it.
func (c *Connection) checkIfApplicationLimited() {
	if c.visitor == nil {
		return
	}
	if len(c.queuedPackets) == 0 && !c.visitor.WillingAndAbleToWrite() {
		c.applicationLimited = true
	}
}
