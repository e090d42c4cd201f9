package protocol

// ByteCount is used to count bytes.
type ByteCount int64

// InvalidByteCount is an invalid byte count.
const InvalidByteCount ByteCount = -1

// ECN is an explicit congestion notification codepoint.
type ECN uint8

const (
	ECNNon ECN = iota
	ECT0
	ECT1
	ECNCE
)

// AddressChangeType classifies how a peer's address changed between two
// packets.
type AddressChangeType uint8

const (
	NoChange AddressChangeType = iota
	PortChange
	IPv4SubnetChange
	IPv4ToIPv6Change
	IPv6ToIPv4Change
	IPv6SubnetChange
	UnspecifiedChange
)

func (t AddressChangeType) String() string {
	switch t {
	case NoChange:
		return "NoChange"
	case PortChange:
		return "PortChange"
	case IPv4SubnetChange:
		return "IPv4SubnetChange"
	case IPv4ToIPv6Change:
		return "IPv4ToIPv6Change"
	case IPv6ToIPv4Change:
		return "IPv6ToIPv4Change"
	case IPv6SubnetChange:
		return "IPv6SubnetChange"
	default:
		return "UnspecifiedChange"
	}
}

// StatelessResetToken is the 16-byte token an endpoint gives its peer so the
// peer can recognize a stateless reset sent in response to a packet it
// cannot otherwise process.
type StatelessResetToken [16]byte

const MaxPacketBufferSize ByteCount = 1452

const MinInitialPacketSize ByteCount = 1200

// MaxTrackedPackets bounds the number of outstanding sent packets the
// connection will track before considering the peer unresponsive.
const MaxTrackedPackets = 10000
