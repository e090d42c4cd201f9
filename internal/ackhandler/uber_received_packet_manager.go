package ackhandler

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
	"github.com/quicwire/qconn/internal/wire"
)

// UberReceivedPacketManager owns one ReceivedPacketHandler per packet
// number space and knows how to drain them in wire order. Single-space
// connections use only PacketNumberSpaceAppData.
type UberReceivedPacketManager struct {
	handlers      [protocol.NumPacketNumberSpaces]ReceivedPacketHandler
	multiSpace    bool
}

// NewUberReceivedPacketManager constructs per-space trackers. multiSpace
// disables cross-space sharing of the Initial/Handshake spaces once the
// handshake no longer needs them tracked separately.
func NewUberReceivedPacketManager(rttStats *utils.RTTStats, log utils.Logger, mode AckMode, multiSpace bool) *UberReceivedPacketManager {
	m := &UberReceivedPacketManager{multiSpace: multiSpace}
	if multiSpace {
		for space := protocol.PacketNumberSpaceInitial; space < protocol.NumPacketNumberSpaces; space++ {
			m.handlers[space] = NewReceivedPacketHandler(rttStats, log, mode)
		}
	} else {
		h := NewReceivedPacketHandler(rttStats, log, mode)
		for space := range m.handlers {
			m.handlers[space] = h
		}
	}
	return m
}

func (m *UberReceivedPacketManager) ForSpace(space protocol.PacketNumberSpace) ReceivedPacketHandler {
	return m.handlers[space]
}

// NextAckTimeout returns the earliest pending ACK deadline across all
// spaces, or the zero time if none is pending.
func (m *UberReceivedPacketManager) NextAckTimeout() time.Time {
	var earliest time.Time
	for _, h := range m.uniqueHandlers() {
		t := h.GetAlarmTimeout()
		if t.IsZero() {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest
}

// AckDue reports whether any space has an ACK ready to send right now,
// either because its immediate-ack triggers fired (queueAck clears the
// alarm deadline entirely, so NextAckTimeout alone would miss these) or
// because its delayed-ack alarm has already elapsed.
func (m *UberReceivedPacketManager) AckDue(now time.Time) bool {
	for _, h := range m.uniqueHandlers() {
		if h.HasQueuedAck() {
			return true
		}
		if t := h.GetAlarmTimeout(); !t.IsZero() && !now.Before(t) {
			return true
		}
	}
	return false
}

// SendAllPendingAcks drains every space with a pending ACK, in
// Initial -> Handshake -> ApplicationData order, handing each frame to
// send together with the encryption level it must go out at.
func (m *UberReceivedPacketManager) SendAllPendingAcks(send func(protocol.EncryptionLevel, *wire.AckFrame)) {
	levelForSpace := [protocol.NumPacketNumberSpaces]protocol.EncryptionLevel{
		protocol.PacketNumberSpaceInitial:    protocol.EncryptionInitial,
		protocol.PacketNumberSpaceHandshake:  protocol.EncryptionHandshake,
		protocol.PacketNumberSpaceAppData:    protocol.Encryption1RTT,
	}
	seen := map[ReceivedPacketHandler]bool{}
	for space := protocol.PacketNumberSpaceInitial; space < protocol.NumPacketNumberSpaces; space++ {
		h := m.handlers[space]
		if h == nil || seen[h] {
			continue
		}
		seen[h] = true
		if ack := h.GetAckFrame(true); ack != nil {
			send(levelForSpace[space], ack)
		}
	}
}

func (m *UberReceivedPacketManager) uniqueHandlers() []ReceivedPacketHandler {
	seen := map[ReceivedPacketHandler]bool{}
	var out []ReceivedPacketHandler
	for _, h := range m.handlers {
		if h == nil || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
