// Package qerr defines the typed error codes the connection state machine
// recognizes, independent of how they are represented on the wire.
package qerr

import "fmt"

// TransportErrorCode identifies a protocol-level failure.
type TransportErrorCode uint64

const (
	NoError TransportErrorCode = iota
	InternalError
	InvalidVersion
	InvalidAckData
	InvalidStopWaitingData
	InvalidPacketHeader
	MaybeCorruptedMemory
	UnencryptedStreamData
	ErrorMigratingAddress
	TooManyOutstandingSentPackets
	TooManyOutstandingReceivedPackets
	TooManyRtos
	BadMultipathFlag
	PacketWriteError
	HandshakeTimeout
	NetworkIdleTimeout
	ProtocolViolation
)

func (c TransportErrorCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case InternalError:
		return "INTERNAL_ERROR"
	case InvalidVersion:
		return "INVALID_VERSION"
	case InvalidAckData:
		return "INVALID_ACK_DATA"
	case InvalidStopWaitingData:
		return "INVALID_STOP_WAITING_DATA"
	case InvalidPacketHeader:
		return "INVALID_PACKET_HEADER"
	case MaybeCorruptedMemory:
		return "MAYBE_CORRUPTED_MEMORY"
	case UnencryptedStreamData:
		return "UNENCRYPTED_STREAM_DATA"
	case ErrorMigratingAddress:
		return "ERROR_MIGRATING_ADDRESS"
	case TooManyOutstandingSentPackets:
		return "TOO_MANY_OUTSTANDING_SENT_PACKETS"
	case TooManyOutstandingReceivedPackets:
		return "TOO_MANY_OUTSTANDING_RECEIVED_PACKETS"
	case TooManyRtos:
		return "TOO_MANY_RTOS"
	case BadMultipathFlag:
		return "BAD_MULTIPATH_FLAG"
	case PacketWriteError:
		return "PACKET_WRITE_ERROR"
	case HandshakeTimeout:
		return "HANDSHAKE_TIMEOUT"
	case NetworkIdleTimeout:
		return "NETWORK_IDLE_TIMEOUT"
	case ProtocolViolation:
		return "PROTOCOL_VIOLATION"
	default:
		return fmt.Sprintf("unknown error code %d", uint64(c))
	}
}

// TransportError is a protocol-level error with a human-readable detail
// string, the shape every CONNECTION_CLOSE frame needs.
type TransportError struct {
	ErrorCode    TransportErrorCode
	ErrorMessage string
}

func (e *TransportError) Error() string {
	if e.ErrorMessage == "" {
		return e.ErrorCode.String()
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.ErrorMessage)
}

func NewError(code TransportErrorCode, msg string) *TransportError {
	return &TransportError{ErrorCode: code, ErrorMessage: msg}
}

// CloseSource identifies who originated a connection teardown.
type CloseSource uint8

const (
	FromSelf CloseSource = iota
	FromPeer
)

func (s CloseSource) String() string {
	if s == FromPeer {
		return "FromPeer"
	}
	return "FromSelf"
}
