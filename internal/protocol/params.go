package protocol

import "time"

// Defaults and constants pulled from the ack-scheduling and loss-recovery
// policy this module's received-packet manager and timers implement.
const (
	// DefaultAckDecimationDelay is the fraction of the min RTT to wait before
	// sending a decimated ACK.
	DefaultAckDecimationDelay = 0.25
	// ShortAckDecimationDelay is used when fast_ack_after_quiescence-style
	// reordering sensitivity calls for a tighter bound.
	ShortAckDecimationDelay = 0.125

	// MinReceivedBeforeAckDecimation is the number of packets received
	// before ack decimation kicks in.
	MinReceivedBeforeAckDecimation = 100

	// MaxRetransmittablePacketsBeforeAck bounds how many ack-eliciting
	// packets may arrive, once decimating, before an ACK is forced.
	MaxRetransmittablePacketsBeforeAck = 10

	// RetransmittablePacketsBeforeAckTCP is the legacy "every second packet"
	// cadence used by TcpAcking mode.
	RetransmittablePacketsBeforeAckTCP = 2

	// MaxAckDelay bounds how long a receiver may delay sending an ACK.
	MaxAckDelay = 25 * time.Millisecond

	// FastAckAfterQuiescenceDelay is the forced ACK delay for the first
	// packet received after a long inter-arrival gap.
	FastAckAfterQuiescenceDelay = time.Millisecond

	// DefaultIdleTimeout is the idle timeout absent explicit configuration.
	DefaultIdleTimeout = 30 * time.Second

	// DefaultHandshakeTimeout bounds how long the handshake may take.
	DefaultHandshakeTimeout = 10 * time.Second

	// ServerIdleTimeoutPad is added to the configured idle timeout on the
	// server, so the client (which pads down) times out first.
	ServerIdleTimeoutPad = 3 * time.Second

	// ClientIdleTimeoutPad is subtracted from the configured idle timeout on
	// the client.
	ClientIdleTimeoutPad = time.Second

	// DefaultPingTimeout is the client's keepalive interval.
	DefaultPingTimeout = 15 * time.Second

	// MaxUndecryptablePackets bounds how many packets are buffered while
	// waiting for keys to arrive.
	MaxUndecryptablePackets = 32

	// PacketsBetweenMTUProbesBase is the initial spacing between MTU probes;
	// it doubles after every probe.
	PacketsBetweenMTUProbesBase = 10

	// MaxMTUDiscoveryAttempts bounds how many MTU probes are sent.
	MaxMTUDiscoveryAttempts = 4

	// MaxConsecutiveNonRetransmittablePackets bounds how many packets in a
	// row may carry no retransmittable frame before one is forced.
	MaxConsecutiveNonRetransmittablePackets = 19

	// TimerGranularity is the assumed precision of the platform timer; PTO
	// computations never return a value tighter than this above the RTT.
	TimerGranularity = time.Millisecond
)

// InvalidPathID is retained only for API parity with configurations that
// carry a multipath field; this module never activates multipath.
const InvalidPathID = ^uint64(0)
