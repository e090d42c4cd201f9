package wire

import "github.com/quicwire/qconn/internal/protocol"

// PacketType distinguishes long-header packet types.
type PacketType uint8

const (
	PacketTypeInitial PacketType = iota
	PacketTypeZeroRTT
	PacketTypeHandshake
	PacketTypeRetry
	PacketTypeShortHeader
	PacketTypeVersionNegotiation
)

// Header is the decoded, version-independent form of a packet header: the
// fields the connection driver needs before any frame is parsed.
type Header struct {
	IsLongHeader bool
	Type         PacketType

	Version protocol.Version

	DestConnectionID protocol.ConnectionID
	SrcConnectionID  protocol.ConnectionID

	// PacketNumber is already decoded from its truncated wire form; the
	// framer owns that decode and hands back the full value.
	PacketNumber    protocol.PacketNumber
	PacketNumberLen protocol.PacketNumberLen

	// RetryToken and OrigDestConnectionID are only set on Retry packets.
	RetryToken           []byte
	OrigDestConnectionID protocol.ConnectionID

	// Length is the payload length declared in a long header; zero for
	// short headers, which have no explicit length field.
	Length protocol.ByteCount
}

// VersionNegotiationPacket is the reply sent when an endpoint receives a
// packet naming a version it does not support.
type VersionNegotiationPacket struct {
	DestConnectionID  protocol.ConnectionID
	SrcConnectionID   protocol.ConnectionID
	SupportedVersions []protocol.Version
}

// RetryPacket carries a server-issued address-validation token and the
// connection id the server wants retried packets to target.
type RetryPacket struct {
	DestConnectionID     protocol.ConnectionID
	SrcConnectionID      protocol.ConnectionID
	OrigDestConnectionID protocol.ConnectionID
	RetryToken           []byte
}
