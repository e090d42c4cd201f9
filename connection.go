// Package quic implements the per-connection state machine at the heart
// of a QUIC endpoint: packet sequencing, ACK/retransmission bookkeeping,
// version negotiation, migration detection, and the failure model. Wire
// codecs, symmetric crypto beyond Initial-level derivation, congestion
// control tuning, and stream multiplexing are collaborators this package
// depends on through the interfaces in interfaces.go, not things it
// implements itself.
package quic

import (
	"io"
	"net"
	"time"

	"github.com/quicwire/qconn/internal/ackhandler"
	"github.com/quicwire/qconn/internal/congestion"
	"github.com/quicwire/qconn/internal/handshake"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
	"github.com/quicwire/qconn/internal/utils"
	"github.com/quicwire/qconn/internal/wire"
)

// firstIETFInvariantVersion is the oldest version this module treats as
// carrying IETF invariant headers; anything older negotiates the legacy
// gQUIC StopWaiting/GoAway frame set.
const firstIETFInvariantVersion protocol.Version = 1

// Connection is the top-level entity: exclusive owner of every module
// below it, driven by exactly one I/O reactor at a time (spec.md §5).
type Connection struct {
	perspective protocol.Perspective
	version     protocol.Version
	config      *Config

	selfConnID protocol.ConnectionID
	peerConnID protocol.ConnectionID

	selfAddr          net.Addr
	directPeerAddr    net.Addr
	effectivePeerAddr net.Addr

	connected bool
	negotiation negotiationState
	queuedVersionNegotiation *versionNegotiationRequest

	retryHasBeenParsed bool
	retryToken         []byte

	crypto handshake.CryptoSetup

	sentPackets     ackhandler.SentPacketHandler
	receivedPackets *ackhandler.UberReceivedPacketManager
	rttStats        *utils.RTTStats

	pnSpaceState [protocol.NumPacketNumberSpaces]packetNumberSpaceState

	acceptRandomInitialPacketNumber bool
	peerStatelessResetToken         []byte

	alarms *alarmSet

	flusherDepth    int
	flusherAttached bool

	pendingConnectionClose              *pendingClose
	pendingRetransmissionAlarmDeadline  *time.Time
	pendingTimerTransmissionCount       int
	sendAlarmSet                        bool

	bundledAckByLevel map[protocol.EncryptionLevel]*wire.AckFrame

	writer Writer
	framer Framer
	visitor Visitor
	clock   Clock

	queuedPackets []queuedPacket

	largestSentPacketNumber protocol.PacketNumber
	largestSentInSpace      [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	largestAckedByPeer      [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	keysDiscarded           [protocol.NumPacketNumberSpaces]bool
	peerLeastUnacked        protocol.PacketNumber

	processingAckFrame bool

	currentPacketContent packetContent
	pendingMigration     *pendingMigrationState
	highestPacketSentBeforeMigration protocol.PacketNumber

	outstandingPathChallenge *wire.PathChallengeFrame
	pendingPathResponse      *wire.PathResponseFrame

	availablePeerConnIDs    []protocol.ConnectionID
	retiredConnIDSeqNumbers []uint64

	ackNeededRetransmittable bool
	applicationLimited       bool

	timeOfFirstRetransmittablePacketAfterReceiving time.Time
	pathDegrading                                  AlarmHandle
	pingAlarm                                       AlarmHandle
	mtuDiscoveryAlarm                               AlarmHandle

	mtuDiscoverer *mtuFinder
	bufPool       *packetBufferPool

	firstIETFInvariantVersion protocol.Version

	undecryptablePackets []ReceivedPacket

	stats   connectionStats
	metrics *connMetrics

	log utils.Logger
	qlog *qlogTracer

	closeAfterFiveRTOsCount int
	consecutiveRTOs         int

	creationTime           time.Time
	lastPacketReceivedTime time.Time
}

// Options bundles everything a caller supplies to construct a
// Connection; everything else is derived.
type Options struct {
	Perspective protocol.Perspective
	Version     protocol.Version
	Config      *Config

	SelfConnID protocol.ConnectionID
	PeerConnID protocol.ConnectionID
	SelfAddr   net.Addr
	PeerAddr   net.Addr

	Writer       Writer
	Framer       Framer
	Visitor      Visitor
	AlarmFactory AlarmFactory
	Clock        Clock

	Metrics  *connMetrics
	Logger   utils.Logger
	QlogSink io.Writer
}

// NewConnection wires every module together the way the connection
// driver's constructor does: the RTT estimator, then the managers that
// depend on it, then the crypto setup bound to the initial connection id
// pairing, the MTU discoverer and buffer pool, and the alarms last.
func NewConnection(opts Options) *Connection {
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	log := opts.Logger
	if log == nil {
		log = utils.DefaultLogger
	}
	cfg := populateConfig(opts.Config, opts.Perspective)

	c := &Connection{
		perspective:       opts.Perspective,
		version:           opts.Version,
		config:            cfg,
		selfConnID:        opts.SelfConnID,
		peerConnID:        opts.PeerConnID,
		selfAddr:          opts.SelfAddr,
		effectivePeerAddr: opts.PeerAddr,
		directPeerAddr:    opts.PeerAddr,
		connected:         true,
		writer:            opts.Writer,
		framer:            opts.Framer,
		visitor:           opts.Visitor,
		clock:             clock,
		metrics:           opts.Metrics,
		log:               log,
		qlog:              newQlogTracer(opts.QlogSink),
		firstIETFInvariantVersion: firstIETFInvariantVersion,
		bundledAckByLevel: map[protocol.EncryptionLevel]*wire.AckFrame{},
		creationTime:      clock.Now(),
	}
	c.lastPacketReceivedTime = c.creationTime

	for space := range c.largestSentInSpace {
		c.largestSentInSpace[space] = protocol.InvalidPacketNumber
		c.largestAckedByPeer[space] = protocol.InvalidPacketNumber
	}

	c.rttStats = &utils.RTTStats{}
	c.rttStats.SetMaxAckDelay(protocol.MaxAckDelay)

	c.receivedPackets = ackhandler.NewUberReceivedPacketManager(c.rttStats, log, cfg.AckMode, cfg.MultiSpaceAcks)
	c.sentPackets = ackhandler.NewSentPacketHandler(congestion.NewRenoSender(), c.rttStats, log)

	c.crypto = handshake.NewInitialCryptoSetup(opts.PeerConnID)

	c.mtuDiscoverer = newMTUDiscoverer(c.rttStats, cfg.MinPacketSize, cfg.MaxPacketSizeHint)
	c.bufPool = newPacketBufferPool(int(cfg.MaxPacketSizeHint), 32)

	if opts.AlarmFactory != nil {
		c.alarms = newAlarmSet(opts.AlarmFactory, c)
		c.pathDegrading = c.alarms.pathDegrading
		c.pingAlarm = c.alarms.ping
		c.mtuDiscoveryAlarm = c.alarms.mtuDiscovery
		c.alarms.setTimeoutAlarm(clock.Now().Add(cfg.HandshakeTimeout))
	}

	return c
}

// ProcessUdpPacket is the datagram-input entry point: validate receipt
// time, hand the bytes to the framer, run the per-frame dispatch, and
// let a scoped flusher commit whatever the dispatch queued. Grounded on
// quiche's ProcessUdpPacket / handlePacketImpl: a stateless reset is
// recognized and acted on before anything else touches the bytes, the
// packet number validator and migration detector run once per packet
// from the decoded header, every frame reaches dispatchFrame, and only
// then is the received-packet tracker told a real packet of this number
// arrived.
func (c *Connection) ProcessUdpPacket(pkt ReceivedPacket) {
	if !c.connected {
		return
	}
	now := c.clock.Now()
	if now.Sub(pkt.ReceiptTime) > 2*time.Minute || pkt.ReceiptTime.Sub(now) > 2*time.Minute {
		c.log.Debugf("packet has implausible receipt time")
	}

	if c.isStatelessReset(pkt.Data) || c.framer.IsIetfStatelessResetPacket(pkt.Data, c.peerStatelessResetToken) {
		c.closePeerInitiated(qerr.NoError, "stateless reset")
		return
	}

	c.withFlusher(func() {
		c.currentPacketContent = contentNoFrames

		pv := &packetFrameVisitor{c: c, peerAddr: pkt.PeerAddr}
		if !c.framer.ProcessPacket(pkt.Data, pv) {
			c.stats.PacketsDropped++
			c.metrics.observeDropped()
			return
		}
		if pv.result.shouldClose() {
			c.closeConnection(*pv.result.close)
			return
		}
		if !pv.headerOK {
			return
		}
		if err := c.receivedPackets.ForSpace(pv.space).ReceivedPacket(pv.pn, pkt.ECN, now, pv.ackEliciting); err != nil {
			c.closeConnection(closeReason{err: qerr.NewError(qerr.TooManyOutstandingReceivedPackets, err.Error()), source: qerr.FromSelf})
			return
		}

		c.onForwardProgress(now)
		if c.receivedPackets.AckDue(now) {
			c.sendAllPendingAcks()
		}
		c.writeNewData()
	})
}

func (c *Connection) onForwardProgress(now time.Time) {
	c.lastPacketReceivedTime = now
	handshakeConfirmed := c.crypto != nil && c.crypto.HandshakeConfirmed()
	deadline := computeIdleTimeoutDeadline(c.lastPacketReceivedTime, c.creationTime, c.config.IdleTimeout, c.config.HandshakeTimeout, handshakeConfirmed)
	c.alarms.setTimeoutAlarm(deadline)
	if c.visitor != nil {
		c.visitor.OnForwardProgressConfirmed()
	}
}

// OnAlarm implements AlarmDelegate; the factory tells us which alarm
// fired by having already set up a dedicated delegate per connection and
// routing through here, matching the teacher's single-dispatch style
// where the connection is its own alarm delegate.
func (c *Connection) OnAlarm() {
	now := c.clock.Now()
	switch {
	case c.alarms.timeout.IsSet() && !now.Before(c.alarms.timeout.Deadline()):
		c.onIdleOrHandshakeTimeout()
	case c.alarms.retransmission.IsSet() && !now.Before(c.alarms.retransmission.Deadline()):
		c.onRetransmissionTimeout()
	case c.alarms.ack.IsSet() && !now.Before(c.alarms.ack.Deadline()):
		c.onCanWrite()
	case c.alarms.send.IsSet() && !now.Before(c.alarms.send.Deadline()):
		c.sendAlarmSet = false
		c.alarms.send.Cancel()
		c.onCanWrite()
	case c.alarms.ping.IsSet() && !now.Before(c.alarms.ping.Deadline()):
		c.onPingAlarm()
	case c.alarms.pathDegrading.IsSet() && !now.Before(c.alarms.pathDegrading.Deadline()):
		c.onPathDegrading()
	}
}

// setSendAlarm schedules an immediate resumption of onCanWrite, the
// "register for immediate resumption" step quiche's WriteNewData performs
// when the visitor still has data to send but something held this pass
// back.
func (c *Connection) setSendAlarm(deadline time.Time) {
	c.sendAlarmSet = true
	c.alarms.send.Set(deadline)
}

func (c *Connection) onIdleOrHandshakeTimeout() {
	if c.crypto != nil && !c.crypto.HandshakeConfirmed() {
		c.closeConnection(closeReason{err: qerr.NewError(qerr.HandshakeTimeout, "handshake did not complete in time"), source: qerr.FromSelf})
		return
	}
	visitorWantsAlive := c.visitor != nil && c.visitor.ShouldKeepConnectionAlive()
	if !shouldCloseOnIdleTimeout(c.consecutiveRTOs, visitorWantsAlive) {
		c.closeConnection(closeReason{err: qerr.NewError(qerr.NetworkIdleTimeout, "idle timeout"), source: qerr.FromSelf, silent: true})
		return
	}
	c.closeConnection(closeReason{err: qerr.NewError(qerr.NetworkIdleTimeout, "idle timeout"), source: qerr.FromSelf})
}

func (c *Connection) onRetransmissionTimeout() {
	if c.config.CloseAfterFiveRTOs {
		c.closeAfterFiveRTOsCount++
		if c.closeAfterFiveRTOsCount >= 5 {
			c.closeConnection(closeReason{err: qerr.NewError(qerr.TooManyRtos, "five consecutive RTOs"), source: qerr.FromSelf})
			return
		}
	}
	c.pendingTimerTransmissionCount++
	c.consecutiveRTOs++
	if err := c.sentPackets.OnLossDetectionTimeout(); err != nil {
		c.closeConnection(closeReason{err: qerr.NewError(qerr.InternalError, err.Error()), source: qerr.FromSelf})
	}
}

func (c *Connection) onPingAlarm() {
	if c.perspective != protocol.PerspectiveClient {
		return
	}
	if c.visitor != nil {
		c.visitor.SendPing()
	}
	hasInFlight := c.alarms.retransmission.IsSet()
	c.alarms.setPingAlarm(computePingDeadline(c.clock.Now(), c.config.PingTimeout, hasInFlight))
}

func (c *Connection) onPathDegrading() {
	c.log.Debugf("path degrading")
}
