package quic

import (
	"time"

	rp "github.com/Clouded-Sabre/ringpool/lib"

	"github.com/quicwire/qconn/internal/ackhandler"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
	"github.com/quicwire/qconn/internal/wire"
)

// canWrite implements the CanWrite gate from spec.md §4.7: a forced probe
// transmission always proceeds, a write-blocked writer always refuses,
// packets without retransmittable data are never held back by pacing,
// and everything else waits on both the send alarm and the sent-packet
// manager's pacing budget.
func (c *Connection) canWrite(hasRetransmittableData bool, now time.Time) bool {
	if c.pendingTimerTransmissionCount > 0 {
		return true
	}
	if c.writer.IsWriteBlocked() {
		return false
	}
	if !hasRetransmittableData {
		return true
	}
	if c.sendAlarmSet {
		return false
	}
	return c.sentPackets.HasPacingBudget(now)
}

// writePacket implements the ordered steps of spec.md's send path: reject
// stale writes, refuse to send a packet number out of order within its
// space, still stash a termination packet even while blocked, capture
// send time before the syscall, branch on the writer's result, and only
// update packet-number-length bookkeeping after the sent-packet manager
// has recorded the send.
func (c *Connection) writePacket(space protocol.PacketNumberSpace, payload []byte, level protocol.EncryptionLevel, retransmittable bool, isTermination bool) frameResult {
	if c.shouldDiscardPacket(space) {
		c.stats.PacketsDiscarded++
		c.metrics.observeDiscarded()
		return continueProcessing
	}

	pn, _ := c.sentPackets.PeekPacketNumber(space)
	if pn <= c.largestSentInSpace[space] && c.largestSentInSpace[space] != protocol.InvalidPacketNumber {
		return closeWith(qerr.InternalError, "packet number sequencing violated", qerr.FromSelf)
	}

	if c.writer.IsWriteBlocked() {
		if isTermination {
			c.queuedPackets = append(c.queuedPackets, c.stashQueuedPacket(payload, level))
		}
		return continueProcessing
	}

	sendTime := c.clock.Now()
	opts := WriteOptions{ECN: protocol.ECNNon, IsLast: !c.flusherAttached}
	if c.writer.SupportsReleaseTime() {
		opts.ReleaseTime = sendTime
	}
	result := c.writer.WritePacket(payload, c.selfAddr, c.effectivePeerAddr, opts)

	switch result.Status {
	case WriteBlocked, WriteBlockedDataBuffered:
		c.queuedPackets = append(c.queuedPackets, c.stashQueuedPacket(payload, level))
		if result.Status == WriteBlocked && c.visitor != nil {
			c.visitor.OnWriteBlocked()
		}
		return continueProcessing
	case WriteMsgTooBig:
		if !retransmittable {
			c.mtuDiscoverer.disable()
		}
		c.stats.PacketsDropped++
		c.metrics.observeDropped()
		return continueProcessing
	case WriteError:
		return closeWith(qerr.PacketWriteError, result.Err.Error(), qerr.FromSelf)
	}

	c.stats.PacketsSent++
	c.stats.BytesSent += protocol.ByteCount(result.BytesWritten)
	c.metrics.observeSent(protocol.ByteCount(result.BytesWritten))

	if retransmittable && c.timeOfFirstRetransmittablePacketAfterReceiving.IsZero() {
		c.timeOfFirstRetransmittablePacketAfterReceiving = sendTime
		c.pathDegrading.Set(sendTime.Add(c.pathDegradingTimeout()))
	}

	c.sentPackets.SentPacket(pn, &ackhandler.Packet{
		PacketNumber:            pn,
		Length:                  protocol.ByteCount(result.BytesWritten),
		EncryptionLevel:         level,
		SendTime:                sendTime,
		Retransmittable:         retransmittable,
		IncludedInBytesInFlight: retransmittable,
	})
	c.qlog.packetSent(level, pn, protocol.ByteCount(result.BytesWritten))

	c.sentPackets.PopPacketNumber(space)
	c.largestSentInSpace[space] = pn
	if pn > c.largestSentPacketNumber {
		c.largestSentPacketNumber = pn
	}

	c.maybeSetMTUAlarm()
	c.setRetransmissionAlarm(c.sentPackets.GetLossDetectionTimeout())
	c.pingAlarm.Set(sendTime.Add(c.config.PingTimeout))

	return continueProcessing
}

// onCanWrite mirrors quiche's OnCanWrite: drain anything queued from a
// prior blocked write, send any ACK whose deadline has already passed,
// then give the connection a chance to compose and send new data.
// Invoked both when the writer unblocks and, via writeNewData's caller,
// at the tail of datagram processing (MaybeSendInResponseToPacket).
func (c *Connection) onCanWrite() {
	if !c.connected || c.writer.IsWriteBlocked() {
		return
	}
	c.withFlusher(func() {
		if result := c.flushPackets(); result.shouldClose() {
			c.closeConnection(*result.close)
			return
		}
		if c.receivedPackets.AckDue(c.clock.Now()) {
			c.sendAllPendingAcks()
		}
		c.writeNewData()
	})
}

// writeNewData mirrors quiche's WriteNewData: gate on the pacing/blocked
// state, compose and send whatever data this connection itself owns
// (invariant 7's bundled ACK, plus a retransmittable frame if one is
// owed), let the visitor take its own turn under a nested flusher, and
// finally register for immediate resumption if the visitor still has
// more to send than this pass could get out.
func (c *Connection) writeNewData() {
	now := c.clock.Now()
	if !c.canWrite(true, now) {
		return
	}

	var result frameResult
	c.withFlusher(func() {
		result = c.sendDataPacket(now)
		if result.shouldClose() {
			return
		}
		if c.visitor != nil {
			c.visitor.OnCanWrite()
		}
	})
	if result.shouldClose() {
		c.closeConnection(*result.close)
		return
	}

	now = c.clock.Now()
	if c.visitor != nil && c.visitor.WillingAndAbleToWrite() && !c.sendAlarmSet && c.canWrite(true, now) {
		c.setSendAlarm(now)
	}
}

// sendDataPacket composes the one outbound packet this connection
// generates on its own initiative: a pending ACK ready to bundle
// (flusher.go's sendAllPendingAcks populates bundledAckByLevel) plus,
// when a received PING or similar left ackNeededRetransmittable set, the
// retransmittable frame the visitor supplies so the ACK isn't sent alone.
// This is the generic data-bearing send path spec.md's send path module
// names, as distinct from the close and version-negotiation paths, which
// each compose their own fixed frame.
func (c *Connection) sendDataPacket(now time.Time) frameResult {
	level := c.connectionCloseEncryptionLevel()
	space := protocol.EncryptionLevelToSpace(level)

	var frames []wire.Frame
	if ack := c.bundledAckByLevel[level]; ack != nil {
		frames = append(frames, ack)
	}

	retransmittable := false
	if c.ackNeededRetransmittable && c.visitor != nil {
		if f := c.visitor.OnAckNeedsRetransmittableFrame(); f != nil {
			frames = append(frames, f)
			retransmittable = true
		}
	}

	if len(frames) == 0 {
		return continueProcessing
	}
	if !c.canWrite(retransmittable, now) {
		return continueProcessing
	}

	buf, err := c.framer.EncodeFrames(frames, level)
	if err != nil {
		return continueProcessing
	}

	result := c.writePacket(space, buf, level, retransmittable, false)
	if !result.shouldClose() {
		delete(c.bundledAckByLevel, level)
		c.ackNeededRetransmittable = false
	}
	return result
}

type queuedPacket struct {
	chunk *rp.Element
	data  []byte
	level protocol.EncryptionLevel
}

// stashQueuedPacket copies payload into a pooled buffer before it joins
// the blocked-writer queue: the caller's payload slice may be reused the
// moment this function returns, so the queue needs its own stable copy.
func (c *Connection) stashQueuedPacket(payload []byte, level protocol.EncryptionLevel) queuedPacket {
	e := c.bufPool.Get()
	if e == nil {
		return queuedPacket{data: append([]byte(nil), payload...), level: level}
	}
	CopyInto(e, payload)
	return queuedPacket{chunk: e, data: Slice(e), level: level}
}

func (c *Connection) releaseQueuedPacket(qp queuedPacket) {
	if qp.chunk != nil {
		c.bufPool.Put(qp.chunk)
	}
}

// shouldDiscardPacket mirrors quiche's ShouldDiscardPacket: once a space's
// keys have been dropped, any packet still queued for it is abandoned
// rather than sent.
func (c *Connection) shouldDiscardPacket(space protocol.PacketNumberSpace) bool {
	return c.keysDiscarded[space]
}

// flushPackets drains the queue built up while the writer was blocked.
// Invariant 3 (queue before send) means every newly serialized packet
// already joined this queue's tail rather than bypassing it.
func (c *Connection) flushPackets() frameResult {
	for len(c.queuedPackets) > 0 {
		if c.writer.IsWriteBlocked() {
			return continueProcessing
		}
		qp := c.queuedPackets[0]
		result := c.writer.WritePacket(qp.data, c.selfAddr, c.effectivePeerAddr, WriteOptions{IsLast: len(c.queuedPackets) == 1})
		if result.Status == WriteBlocked || result.Status == WriteBlockedDataBuffered {
			return continueProcessing
		}
		c.queuedPackets = c.queuedPackets[1:]
		c.releaseQueuedPacket(qp)
		if result.Status == WriteError {
			return closeWith(qerr.PacketWriteError, result.Err.Error(), qerr.FromSelf)
		}
	}
	return continueProcessing
}

func (c *Connection) maybeSetMTUAlarm() {
	if c.mtuDiscoverer == nil || c.config.DisableMTUDiscovery {
		return
	}
	if c.mtuDiscoverer.shouldProbeNow(int(c.stats.PacketsSent)) {
		c.mtuDiscoveryAlarm.Set(c.clock.Now())
	}
}

func (c *Connection) pathDegradingTimeout() time.Duration {
	if c.rttStats.SmoothedRTT() == 0 {
		return 3 * time.Second
	}
	return 3 * (c.rttStats.SmoothedRTT() + c.rttStats.MeanDeviation())
}
