package quic

import (
	"github.com/quicwire/qconn/internal/connio"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// The collaborator interfaces and their supporting types live in
// internal/connio so that internal/mocks can fake them without
// importing this package. These aliases keep the public surface of
// this package unchanged.
type (
	ReceivedPacket = connio.ReceivedPacket
	WriteStatus    = connio.WriteStatus
	WriteResult    = connio.WriteResult
	WriteOptions   = connio.WriteOptions
	Framer         = connio.Framer
	Writer         = connio.Writer
	Clock          = connio.Clock
	AlarmHandle    = connio.AlarmHandle
	AlarmDelegate  = connio.AlarmDelegate
	AlarmFactory   = connio.AlarmFactory
	Visitor        = connio.Visitor
	AckFrameSource = connio.AckFrameSource
	FrameVisitor   = connio.FrameVisitor
	Opener         = connio.Opener
	Sealer         = connio.Sealer
)

const (
	WriteOk                  = connio.WriteOk
	WriteBlocked             = connio.WriteBlocked
	WriteBlockedDataBuffered = connio.WriteBlockedDataBuffered
	WriteMsgTooBig           = connio.WriteMsgTooBig
	WriteError               = connio.WriteError
)

// realClock is the default Clock, backed by time.Now.
type realClock = connio.RealClock

// packetNumberSpaceAck adapts an *wire.AckFrame to the tiny interface
// SentPacketHandler.ReceivedAck needs, without ackhandler importing wire
// for just one accessor.
type packetNumberSpaceAck struct {
	frame *wire.AckFrame
}

func (a packetNumberSpaceAck) LargestAckedPN() protocol.PacketNumber {
	if a.frame == nil {
		return protocol.InvalidPacketNumber
	}
	return a.frame.LargestAcked
}
