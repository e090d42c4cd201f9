// Package connio holds the connection driver's collaborator interfaces:
// the wire codec, the socket writer, the injected clock, and the alarm
// abstraction. It is split out from the root package so that
// internal/mocks can fake these collaborators without importing the
// package under test.
package connio

import (
	"net"
	"time"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// ReceivedPacket is one datagram handed to ProcessUdpPacket, paired with
// the addresses it arrived on and the time it was read off the socket.
type ReceivedPacket struct {
	Data        []byte
	SelfAddr    net.Addr
	PeerAddr    net.Addr
	ReceiptTime time.Time
	ECN         protocol.ECN
}

// WriteStatus is the result a Writer reports for one WritePacket call.
type WriteStatus uint8

const (
	WriteOk WriteStatus = iota
	WriteBlocked
	WriteBlockedDataBuffered
	WriteMsgTooBig
	WriteError
)

// WriteResult is what the writer collaborator returns for one send.
type WriteResult struct {
	Status       WriteStatus
	BytesWritten int
	Err          error
}

// WriteOptions carries the per-packet hints the driver passes to the
// writer: release time for pacing, ECN codepoint, and whether this is the
// last packet in a flusher batch (so a batching writer knows to flush).
type WriteOptions struct {
	ReleaseTime time.Time
	ECN         protocol.ECN
	IsLast      bool
}

// FrameVisitor receives one decoded packet's header and frame stream as
// Framer.ProcessPacket parses it. OnHeader runs once, before any frame
// callback, and its return controls whether the rest of the packet is
// parsed at all; OnFrame runs once per frame in wire order, and its
// return controls whether parsing continues to the next frame. Both
// false values mean "stop, I've already recorded why" — the visitor,
// not the framer, owns closing the connection.
type FrameVisitor interface {
	OnHeader(hdr *wire.Header, level protocol.EncryptionLevel) bool
	OnFrame(f wire.Frame, level protocol.EncryptionLevel, pn protocol.PacketNumber) bool
}

// Opener decrypts and removes header protection for packets at a fixed
// encryption level. Shaped to match internal/handshake.Opener without
// importing it, so connio stays free of a dependency on the crypto
// package.
type Opener interface {
	Open(dst, src []byte, pn protocol.PacketNumber, ad []byte) ([]byte, error)
}

// Sealer encrypts and applies header protection for packets at a fixed
// encryption level. Shaped to match internal/handshake.Sealer.
type Sealer interface {
	Seal(dst, src []byte, pn protocol.PacketNumber, ad []byte) []byte
	Overhead() int
}

// Framer is the wire-format collaborator: encoding frames and packets to
// bytes, and decoding received bytes back into frames, per spec §1's
// explicit out-of-scope boundary. ProcessPacket is the decode entry
// point: it infers the packet number, removes header protection,
// decrypts with the keys InstallKeys last installed for the packet's
// level, and reports the header and each frame to visitor in wire
// order. Its bool return is false only for a packet the framer could
// not parse or decrypt at all (distinct from a frame handler closing the
// connection, which the visitor reports through its own return values).
type Framer interface {
	EncodeFrame(f wire.Frame, level protocol.EncryptionLevel) ([]byte, error)
	EncodeFrames(frames []wire.Frame, level protocol.EncryptionLevel) ([]byte, error)
	EncodeVersionNegotiationPacket(pkt *wire.VersionNegotiationPacket) ([]byte, error)
	ProcessPacket(data []byte, visitor FrameVisitor) bool
	IsIetfStatelessResetPacket(data []byte, token []byte) bool
	InstallKeys(level protocol.EncryptionLevel, opener Opener, sealer Sealer)
	DiscardKeys(level protocol.EncryptionLevel)
}

// Writer is the UDP-socket-I/O collaborator. The connection core never
// touches a socket directly.
type Writer interface {
	WritePacket(buf []byte, selfAddr, peerAddr net.Addr, opts WriteOptions) WriteResult
	IsWriteBlocked() bool
	SetWritable()
	IsBatchMode() bool
	Flush() error
	GetMaxPacketSize(peer net.Addr) protocol.ByteCount
	SupportsReleaseTime() bool
}

// Clock is the injected time source; production code wires the real
// clock, tests wire a fake one to drive alarms deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock is the default Clock, backed by time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// AlarmHandle is a single timer owned by an AlarmFactory.
type AlarmHandle interface {
	Set(deadline time.Time)
	Update(deadline time.Time, granularity time.Duration)
	Cancel()
	IsSet() bool
	Deadline() time.Time
}

// AlarmDelegate is notified when its alarm fires.
type AlarmDelegate interface {
	OnAlarm()
}

// AlarmFactory constructs alarms bound to a delegate; how they are
// scheduled (real timers, a reactor's timer wheel, simulated time in
// tests) is entirely up to the implementation.
type AlarmFactory interface {
	CreateAlarm(delegate AlarmDelegate) AlarmHandle
}

// Visitor is the session-layer collaborator: everything the connection
// core notifies about but does not itself implement (stream
// multiplexing, flow control, the application's write-readiness logic).
type Visitor interface {
	OnStreamFrame(*wire.StreamFrame) error
	OnCryptoFrame(*wire.StreamFrame) error
	OnCanWrite()
	OnWriteBlocked()
	OnConnectionClosed(remote bool, err error)
	OnConnectionMigration(protocol.AddressChangeType)
	OnSuccessfulVersionNegotiation(protocol.Version)
	OnConnectivityProbeReceived(peerAddr net.Addr)
	OnForwardProgressConfirmed()
	OnAckNeedsRetransmittableFrame() wire.Frame
	HasPendingHandshake() bool
	WillingAndAbleToWrite() bool
	SendProbingData() bool
	SendPing()
	ShouldKeepConnectionAlive() bool
	AllowSelfAddressChange() bool
}

// AckFrameSource abstracts "give me the ACK frame due right now at this
// encryption level", decoupling the send path from ackhandler directly.
type AckFrameSource interface {
	GetAckFrame(space protocol.PacketNumberSpace, dequeue bool) *wire.AckFrame
}
