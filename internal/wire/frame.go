// Package wire defines the frame and header value types the connection
// driver dispatches on. Encoding and decoding them to and from bytes is a
// framer concern, owned by a collaborator outside this package; these are
// plain data carriers.
package wire

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
)

// Frame is implemented by every frame type the connection dispatches.
type Frame interface {
	// IsRetransmittable reports whether loss of the packet carrying this
	// frame requires retransmitting the frame itself.
	IsRetransmittable() bool
}

// AckRange is one contiguous range of acknowledged packet numbers,
// inclusive on both ends.
type AckRange struct {
	Smallest protocol.PacketNumber
	Largest  protocol.PacketNumber
}

// AckFrame acknowledges a set of packet numbers. Ranges are ordered highest
// first, mirroring how a received-packet manager builds them off its
// interval set.
type AckFrame struct {
	LargestAcked protocol.PacketNumber
	LowestAcked  protocol.PacketNumber
	AckRanges    []AckRange
	DelayTime    time.Duration

	// ECT0, ECT1 and ECNCE are the ECN counters, present only when the
	// negotiated version carries ECN counts in the ACK frame.
	ECT0, ECT1, ECNCE uint64
	HasECN            bool
}

func (f *AckFrame) IsRetransmittable() bool { return false }

// AcksPacket reports whether pn falls inside one of the frame's ranges.
func (f *AckFrame) AcksPacket(pn protocol.PacketNumber) bool {
	for _, r := range f.AckRanges {
		if pn >= r.Smallest && pn <= r.Largest {
			return true
		}
	}
	return false
}

// HasMissingRanges reports whether the frame's ranges skip any packet
// number between LowestAcked and LargestAcked.
func (f *AckFrame) HasMissingRanges() bool {
	return len(f.AckRanges) > 1
}

// StopWaitingFrame is the legacy (gQUIC) counterpart to an ACK's implicit
// low-water mark: the sender will not retransmit packets below LeastUnacked.
type StopWaitingFrame struct {
	LeastUnacked protocol.PacketNumber
}

func (f *StopWaitingFrame) IsRetransmittable() bool { return false }

// PingFrame requests liveness acknowledgment and nothing else.
type PingFrame struct{}

func (PingFrame) IsRetransmittable() bool { return true }

// PaddingFrame pads a packet to a target size and carries no semantics.
type PaddingFrame struct {
	Length protocol.ByteCount
}

func (PaddingFrame) IsRetransmittable() bool { return false }

// StreamFrame carries application or crypto-handshake stream bytes.
type StreamFrame struct {
	StreamID uint64
	Offset   protocol.ByteCount
	Data     []byte
	Fin      bool
	// IsCryptoStream marks data carried on the reserved handshake stream,
	// which is legal at Initial encryption; anything else carried at
	// Initial is a protocol violation.
	IsCryptoStream bool
}

func (f *StreamFrame) IsRetransmittable() bool { return true }

// ConnectionCloseFrame signals a graceful or fatal teardown. Style
// distinguishes the legacy Google-QUIC wire form from the IETF transport
// form; both carry the same semantic payload.
type ConnectionCloseStyle uint8

const (
	ConnectionCloseGoogle ConnectionCloseStyle = iota
	ConnectionCloseIETFTransport
	ConnectionCloseIETFApplication
)

type ConnectionCloseFrame struct {
	Style        ConnectionCloseStyle
	ErrorCode    uint64
	ReasonPhrase string
	// FrameType is the offending frame type for IETF transport closes; 0
	// when not applicable.
	FrameType uint64
}

func (f *ConnectionCloseFrame) IsRetransmittable() bool { return false }

// PathChallengeFrame probes a path; the receiver must echo the payload in a
// PathResponseFrame on the same path it arrived on.
type PathChallengeFrame struct {
	Data [8]byte
}

func (f *PathChallengeFrame) IsRetransmittable() bool { return true }

// PathResponseFrame answers a PathChallengeFrame.
type PathResponseFrame struct {
	Data [8]byte
}

func (f *PathResponseFrame) IsRetransmittable() bool { return true }

// NewConnectionIDFrame offers the peer a fresh connection id it may switch
// to, together with a stateless-reset token bound to it.
type NewConnectionIDFrame struct {
	SequenceNumber      uint64
	RetirePriorTo       uint64
	ConnectionID        protocol.ConnectionID
	StatelessResetToken protocol.StatelessResetToken
}

func (f *NewConnectionIDFrame) IsRetransmittable() bool { return true }

// RetireConnectionIDFrame tells the peer a connection id sequence number is
// no longer in use and may be forgotten.
type RetireConnectionIDFrame struct {
	SequenceNumber uint64
}

func (f *RetireConnectionIDFrame) IsRetransmittable() bool { return true }

// NewTokenFrame hands the client an address-validation token for future
// connections.
type NewTokenFrame struct {
	Token []byte
}

func (f *NewTokenFrame) IsRetransmittable() bool { return true }

// HandshakeDoneFrame is sent exactly once, by the server, once the
// handshake is confirmed.
type HandshakeDoneFrame struct{}

func (HandshakeDoneFrame) IsRetransmittable() bool { return true }

// Legacy gQUIC-era frames, kept for the version range that still predates
// IETF invariant headers.

type GoAwayFrame struct {
	ErrorCode  uint64
	StreamID   uint64
	ReasonPhrase string
}

func (f *GoAwayFrame) IsRetransmittable() bool { return true }

type WindowUpdateFrame struct {
	StreamID   uint64
	ByteOffset protocol.ByteCount
}

func (f *WindowUpdateFrame) IsRetransmittable() bool { return true }

type BlockedFrame struct {
	StreamID uint64
}

func (f *BlockedFrame) IsRetransmittable() bool { return true }

type RstStreamFrame struct {
	StreamID  uint64
	ErrorCode uint64
	FinalSize protocol.ByteCount
}

func (f *RstStreamFrame) IsRetransmittable() bool { return true }
