package ackhandler

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
	"github.com/quicwire/qconn/internal/wire"
)

// receivedPacketTracker is the default ReceivedPacketHandler. It tracks
// received ranges as a small ordered list (ranges arrive mostly in order in
// practice, so a slice beats an interval tree here) and decides ACK timing
// from the configured AckMode.
type receivedPacketTracker struct {
	ranges []wire.AckRange // highest range first

	largestObserved             protocol.PacketNumber
	largestObservedReceivedTime time.Time
	ignoreBelow                 protocol.PacketNumber

	ackElicitingPacketsSinceLastAck int
	packetsReceivedSinceLastAck     int
	ackQueued                       bool
	ackAlarm                        time.Time

	ect0, ect1, ecnce uint64

	lastAck *wire.AckFrame

	mode  AckMode
	rtt   *utils.RTTStats
	log   utils.Logger
}

// NewReceivedPacketHandler builds the default tracker for one number space.
func NewReceivedPacketHandler(rttStats *utils.RTTStats, log utils.Logger, mode AckMode) ReceivedPacketHandler {
	return &receivedPacketTracker{
		rtt:          rttStats,
		log:          log,
		mode:         mode,
		ignoreBelow:  0,
		largestObserved: protocol.InvalidPacketNumber,
	}
}

func (t *receivedPacketTracker) IsPotentiallyDuplicate(pn protocol.PacketNumber) bool {
	if pn < t.ignoreBelow {
		return true
	}
	for _, r := range t.ranges {
		if pn >= r.Smallest && pn <= r.Largest {
			return true
		}
	}
	return false
}

func (t *receivedPacketTracker) ReceivedPacket(pn protocol.PacketNumber, ecn protocol.ECN, rcvTime time.Time, ackEliciting bool) error {
	isMissing := t.isMissing(pn)
	t.addToRanges(pn)

	switch ecn {
	case protocol.ECT0:
		t.ect0++
	case protocol.ECT1:
		t.ect1++
	case protocol.ECNCE:
		t.ecnce++
	}

	if t.largestObserved == protocol.InvalidPacketNumber || pn > t.largestObserved {
		t.largestObserved = pn
		t.largestObservedReceivedTime = rcvTime
	}

	if !ackEliciting {
		return nil
	}

	t.ackElicitingPacketsSinceLastAck++
	t.packetsReceivedSinceLastAck++

	switch {
	case t.lastAck == nil:
		// Always ack the very first packet immediately.
		t.queueAck(rcvTime)
	case isMissing:
		// An immediate-ack trigger: a previously missing packet filled a
		// gap, or a new gap just opened below the largest observed.
		t.queueAck(rcvTime)
	case t.hasNewMissingRanges():
		t.queueAck(rcvTime)
	default:
		t.scheduleAck(rcvTime)
	}
	return nil
}

func (t *receivedPacketTracker) isMissing(pn protocol.PacketNumber) bool {
	return t.lastAck != nil && pn >= t.ignoreBelow && pn < t.largestObserved && !t.lastAck.AcksPacket(pn)
}

func (t *receivedPacketTracker) hasNewMissingRanges() bool {
	return len(t.ranges) > 1
}

func (t *receivedPacketTracker) queueAck(now time.Time) {
	t.ackQueued = true
	t.ackAlarm = time.Time{}
	t.ackElicitingPacketsSinceLastAck = 0
}

func (t *receivedPacketTracker) scheduleAck(now time.Time) {
	switch t.mode {
	case TcpAcking:
		if t.ackElicitingPacketsSinceLastAck >= protocol.RetransmittablePacketsBeforeAckTCP {
			t.queueAck(now)
			return
		}
	default:
		if t.packetsReceivedSinceLastAck >= protocol.MaxRetransmittablePacketsBeforeAck {
			t.queueAck(now)
			return
		}
	}
	if t.ackAlarm.IsZero() {
		t.ackAlarm = now.Add(protocol.MaxAckDelay)
	}
}

// IgnoreBelow drops tracked ranges and missing-range bookkeeping below pn;
// it also re-bases what counts as "in order" so previously-missing packets
// below the new threshold no longer trigger an immediate ACK.
func (t *receivedPacketTracker) IgnoreBelow(pn protocol.PacketNumber) {
	if pn <= t.ignoreBelow {
		return
	}
	t.ignoreBelow = pn
	var kept []wire.AckRange
	for _, r := range t.ranges {
		if r.Largest < pn {
			continue
		}
		if r.Smallest < pn {
			r.Smallest = pn
		}
		kept = append(kept, r)
	}
	t.ranges = kept
}

func (t *receivedPacketTracker) GetAlarmTimeout() time.Time {
	return t.ackAlarm
}

func (t *receivedPacketTracker) HasQueuedAck() bool {
	return t.ackQueued
}

func (t *receivedPacketTracker) GetAckFrame(dequeue bool) *wire.AckFrame {
	if !t.ackQueued && t.ackAlarm.IsZero() {
		return nil
	}
	if !t.ackQueued && !t.ackAlarm.IsZero() && time.Now().Before(t.ackAlarm) {
		return nil
	}
	if len(t.ranges) == 0 {
		return nil
	}

	ack := &wire.AckFrame{
		LargestAcked: t.ranges[0].Largest,
		LowestAcked:  t.ranges[len(t.ranges)-1].Smallest,
		AckRanges:    append([]wire.AckRange(nil), t.ranges...),
		HasECN:       t.ect0 > 0 || t.ect1 > 0 || t.ecnce > 0,
		ECT0:         t.ect0,
		ECT1:         t.ect1,
		ECNCE:        t.ecnce,
	}
	if !t.largestObservedReceivedTime.IsZero() {
		ack.DelayTime = time.Since(t.largestObservedReceivedTime)
	}

	if dequeue {
		t.ackQueued = false
		t.ackAlarm = time.Time{}
		t.packetsReceivedSinceLastAck = 0
		t.lastAck = ack
	}
	return ack
}

func (t *receivedPacketTracker) addToRanges(pn protocol.PacketNumber) {
	for i, r := range t.ranges {
		if pn >= r.Smallest && pn <= r.Largest {
			return
		}
		if pn == r.Largest+1 {
			t.ranges[i].Largest = pn
			t.mergeForward(i)
			return
		}
		if pn == r.Smallest-1 {
			t.ranges[i].Smallest = pn
			if i+1 < len(t.ranges) && t.ranges[i+1].Largest+1 == pn {
				t.ranges[i].Smallest = t.ranges[i+1].Smallest
				t.ranges = append(t.ranges[:i+1], t.ranges[i+2:]...)
			}
			return
		}
		if pn > r.Largest {
			newRanges := make([]wire.AckRange, 0, len(t.ranges)+1)
			newRanges = append(newRanges, t.ranges[:i]...)
			newRanges = append(newRanges, wire.AckRange{Smallest: pn, Largest: pn})
			newRanges = append(newRanges, t.ranges[i:]...)
			t.ranges = newRanges
			return
		}
	}
	t.ranges = append(t.ranges, wire.AckRange{Smallest: pn, Largest: pn})
}

func (t *receivedPacketTracker) mergeForward(i int) {
	if i == 0 {
		return
	}
	if t.ranges[i].Largest+1 == t.ranges[i-1].Smallest {
		t.ranges[i-1].Smallest = t.ranges[i].Smallest
		t.ranges = append(t.ranges[:i], t.ranges[i+1:]...)
	}
}

