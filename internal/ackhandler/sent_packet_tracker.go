package ackhandler

import (
	"time"

	"github.com/quicwire/qconn/internal/congestion"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
)

// sentPacketTracker is the reference SentPacketHandler: a single
// congestion.SendAlgorithm shared across number spaces (the common case
// for a connection that doesn't keep Initial/Handshake bytes-in-flight
// separate from 1-RTT), backed by per-space loss-detection bookkeeping.
type sentPacketTracker struct {
	algo congestion.SendAlgorithm
	rtt  *utils.RTTStats
	log  utils.Logger

	bytesInFlight protocol.ByteCount
	largestSent   [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	nextPN        [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	outstanding   [protocol.NumPacketNumberSpaces]map[protocol.PacketNumber]*Packet

	handshakeConfirmed bool
	ptoCount           int
}

// NewSentPacketHandler builds the reference SentPacketHandler, wiring in
// algo for congestion decisions and rttStats for loss-timer deadlines.
func NewSentPacketHandler(algo congestion.SendAlgorithm, rttStats *utils.RTTStats, log utils.Logger) SentPacketHandler {
	t := &sentPacketTracker{algo: algo, rtt: rttStats, log: log}
	for space := range t.largestSent {
		t.largestSent[space] = protocol.InvalidPacketNumber
		t.outstanding[space] = make(map[protocol.PacketNumber]*Packet)
	}
	return t
}

func (t *sentPacketTracker) SentPacket(pn protocol.PacketNumber, p *Packet) {
	space := protocol.EncryptionLevelToSpace(p.EncryptionLevel)
	t.largestSent[space] = pn
	t.outstanding[space][pn] = p
	if p.IncludedInBytesInFlight {
		t.bytesInFlight += p.Length
	}
	t.algo.OnPacketSent(p.SendTime, t.bytesInFlight, p.Length, pn, p.Retransmittable)
}

func (t *sentPacketTracker) ReceivedAck(ack interface{ LargestAckedPN() protocol.PacketNumber }, space protocol.PacketNumberSpace, rcvTime time.Time) (bool, error) {
	largest := ack.LargestAckedPN()
	bucket := t.outstanding[space]
	rearm := false
	for pn, p := range bucket {
		if pn > largest {
			continue
		}
		delete(bucket, pn)
		if p.IncludedInBytesInFlight {
			t.bytesInFlight -= p.Length
		}
		t.algo.OnPacketAcked(pn, p.Length, t.bytesInFlight, rcvTime)
		rearm = true
	}
	t.ptoCount = 0
	return rearm, nil
}

func (t *sentPacketTracker) ReceivedBytes(n protocol.ByteCount, rcvTime time.Time) {}

func (t *sentPacketTracker) DropPackets(space protocol.PacketNumberSpace) {
	for pn, p := range t.outstanding[space] {
		if p.IncludedInBytesInFlight {
			t.bytesInFlight -= p.Length
		}
		delete(t.outstanding[space], pn)
	}
}

func (t *sentPacketTracker) RetransmitAllUnacked(space protocol.PacketNumberSpace) {
	for pn, p := range t.outstanding[space] {
		t.algo.OnPacketLost(pn, p.Length, t.bytesInFlight)
	}
	t.DropPackets(space)
}

func (t *sentPacketTracker) ResetForRetry(now time.Time) {
	t.DropPackets(protocol.PacketNumberSpaceInitial)
	t.ptoCount = 0
}

func (t *sentPacketTracker) SetHandshakeConfirmed() { t.handshakeConfirmed = true }

func (t *sentPacketTracker) SendMode(now time.Time) SendMode {
	if !t.algo.CanSend(t.bytesInFlight) {
		return SendNone
	}
	return SendAny
}

func (t *sentPacketTracker) TimeUntilSend() time.Time { return time.Time{} }

func (t *sentPacketTracker) HasPacingBudget(now time.Time) bool { return true }

func (t *sentPacketTracker) PeekPacketNumber(space protocol.PacketNumberSpace) (protocol.PacketNumber, protocol.PacketNumberLen) {
	pn := t.nextPN[space]
	least := t.leastUnacked(space)
	return pn, protocol.PacketNumberLengthForHeader(pn, least)
}

func (t *sentPacketTracker) PopPacketNumber(space protocol.PacketNumberSpace) protocol.PacketNumber {
	pn := t.nextPN[space]
	t.nextPN[space]++
	return pn
}

func (t *sentPacketTracker) leastUnacked(space protocol.PacketNumberSpace) protocol.PacketNumber {
	least := t.nextPN[space]
	for pn := range t.outstanding[space] {
		if pn < least {
			least = pn
		}
	}
	return least
}

func (t *sentPacketTracker) GetLossDetectionTimeout() time.Time {
	if t.rtt.SmoothedRTT() == 0 {
		return time.Time{}
	}
	return time.Now().Add(t.rtt.PTO(!t.handshakeConfirmed))
}

func (t *sentPacketTracker) OnLossDetectionTimeout() error {
	t.ptoCount++
	t.algo.OnRetransmissionTimeout(true)
	return nil
}

func (t *sentPacketTracker) QueueProbePacket(space protocol.PacketNumberSpace) bool {
	return len(t.outstanding[space]) > 0
}
