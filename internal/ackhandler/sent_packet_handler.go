package ackhandler

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
)

// SendMode tells the connection driver what kind of packet it's allowed to
// send next.
type SendMode uint8

const (
	SendAny SendMode = iota
	SendAck
	SendPTOInitial
	SendPTOHandshake
	SendPTOAppData
	SendNone
)

// Packet describes one outgoing packet for loss-recovery bookkeeping.
type Packet struct {
	PacketNumber          protocol.PacketNumber
	LargestAcked          protocol.PacketNumber
	Length                protocol.ByteCount
	EncryptionLevel       protocol.EncryptionLevel
	SendTime              time.Time
	Retransmittable       bool
	IncludedInBytesInFlight bool
}

// SentPacketHandler is the sent-packet/congestion manager collaborator:
// out of scope to implement in full (see the module boundary this package
// documents), but the connection driver still needs something to call for
// loss-recovery alarms and send-gating, so this is the interface it is
// injected through.
type SentPacketHandler interface {
	SentPacket(pn protocol.PacketNumber, p *Packet)
	ReceivedAck(ack interface{ LargestAckedPN() protocol.PacketNumber }, space protocol.PacketNumberSpace, rcvTime time.Time) (bool, error)
	ReceivedBytes(n protocol.ByteCount, rcvTime time.Time)
	DropPackets(space protocol.PacketNumberSpace)
	// RetransmitAllUnacked requeues every outstanding packet in space as
	// lost, for the version-negotiation and retry paths, which must
	// resend everything sent under a now-abandoned version or id.
	RetransmitAllUnacked(space protocol.PacketNumberSpace)
	ResetForRetry(now time.Time)
	SetHandshakeConfirmed()

	SendMode(now time.Time) SendMode
	TimeUntilSend() time.Time
	HasPacingBudget(now time.Time) bool

	PeekPacketNumber(space protocol.PacketNumberSpace) (protocol.PacketNumber, protocol.PacketNumberLen)
	PopPacketNumber(space protocol.PacketNumberSpace) protocol.PacketNumber

	GetLossDetectionTimeout() time.Time
	OnLossDetectionTimeout() error

	QueueProbePacket(space protocol.PacketNumberSpace) bool
}
