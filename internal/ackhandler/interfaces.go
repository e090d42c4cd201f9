// Package ackhandler maintains per-number-space ack state: which packets
// have been received, which are still missing, and when an ACK frame
// should next go out. It is the in-scope "received-packet manager" the
// connection driver owns directly, as distinct from the sent-packet
// manager, which is a collaborator (congestion control lives outside this
// module's scope).
package ackhandler

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// AckMode selects the ACK-send scheduling policy for one number space.
type AckMode uint8

const (
	TcpAcking AckMode = iota
	AckDecimation
	AckDecimationWithReordering
)

// ReceivedPacketHandler tracks received packet numbers for one number space
// and decides when an ACK is due.
type ReceivedPacketHandler interface {
	// IsPotentiallyDuplicate reports whether pn has already been seen or
	// falls below the lowest tracked number, without mutating state.
	IsPotentiallyDuplicate(pn protocol.PacketNumber) bool

	// ReceivedPacket records pn as received. ackEliciting distinguishes
	// packets that count toward the ack-send cadence from pure ACK/PADDING
	// traffic.
	ReceivedPacket(pn protocol.PacketNumber, ecn protocol.ECN, rcvTime time.Time, ackEliciting bool) error

	// IgnoreBelow drops tracking state for packet numbers below pn; called
	// once the peer has confirmed it no longer needs them acknowledged.
	IgnoreBelow(pn protocol.PacketNumber)

	// GetAlarmTimeout returns when the next ACK must be sent, or the zero
	// time if none is pending.
	GetAlarmTimeout() time.Time

	// HasQueuedAck reports an ACK that is due right now, independent of
	// GetAlarmTimeout: queueAck's immediate-ack triggers clear the alarm
	// deadline entirely rather than arming it for "now", so a deadline
	// check alone would never see them.
	HasQueuedAck() bool

	// GetAckFrame returns the pending ACK frame, or nil if none is due.
	// When dequeue is true, the pending-ack state is cleared.
	GetAckFrame(dequeue bool) *wire.AckFrame
}
