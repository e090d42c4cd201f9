package quic

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/quicwire/qconn/internal/ackhandler"
	"github.com/quicwire/qconn/internal/protocol"
)

// Config carries every option the connection driver consumes, mirroring
// the tagged connection options (MTUH/ACKD/5RTO/...) a real QUIC
// deployment negotiates, but as named Go fields instead of wire tags.
type Config struct {
	// MaxPacketSizeHint (MTUH) and MinPacketSize (MTUL) bound MTU
	// discovery's probe range.
	MaxPacketSizeHint protocol.ByteCount
	MinPacketSize     protocol.ByteCount
	DisableMTUDiscovery bool

	// AckMode selects the scheduling policy (ACD0 selects the decimation
	// delay variant, ACKD/AKD2/AKD3/AKD4 select TcpAcking vs the
	// decimation family, AKDU leaves it unset so the default applies).
	AckMode          ackhandler.AckMode
	AckDecimationDelay float64
	// FastAckAfterQuiescence is ACKQ. The connection does not read this
	// field: ack delays are not shortened after a long gap.
	FastAckAfterQuiescence bool

	// CloseAfterFiveRTOs is 5RTO: give up and close after five
	// consecutive retransmission timeouts instead of retrying forever.
	CloseAfterFiveRTOs bool
	// NoStopWaitingFrames is NSTP: received legacy StopWaiting frames are
	// ignored. The connection never sends StopWaiting frames either way.
	NoStopWaitingFrames bool
	// SendTimestamps is STMP. The connection does not read this field:
	// outgoing ACKs carry no per-packet receive timestamps.
	SendTimestamps bool
	// NoPathMTUDiscoveryOnPathChange is NPCO. The connection does not read
	// this field: a migration neither restarts nor suppresses MTU
	// discovery.
	NoPathMTUDiscoveryOnPathChange bool

	IdleTimeout      time.Duration
	HandshakeTimeout time.Duration
	PingTimeout      time.Duration

	MaxUndecryptablePackets int

	StatelessResetKey []byte

	MultiSpaceAcks bool

	Versions []protocol.Version
}

// Clone returns a shallow copy, the way a connection that inherits a
// shared default config expects to be able to tweak its own without
// mutating the original.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// populateConfig fills in defaults for anything left zero-valued. It may
// be called with nil.
func populateConfig(c *Config, perspective protocol.Perspective) *Config {
	if c == nil {
		c = &Config{}
	} else {
		c = c.Clone()
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = protocol.DefaultIdleTimeout
		if perspective == protocol.PerspectiveServer {
			c.IdleTimeout += protocol.ServerIdleTimeoutPad
		} else {
			c.IdleTimeout -= protocol.ClientIdleTimeoutPad
		}
	}
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = protocol.DefaultHandshakeTimeout
	}
	if c.PingTimeout == 0 {
		c.PingTimeout = protocol.DefaultPingTimeout
	}
	if c.MaxUndecryptablePackets == 0 {
		c.MaxUndecryptablePackets = protocol.MaxUndecryptablePackets
	}
	if c.AckDecimationDelay == 0 {
		c.AckDecimationDelay = protocol.DefaultAckDecimationDelay
	}
	if c.MaxPacketSizeHint == 0 {
		c.MaxPacketSizeHint = protocol.MaxPacketBufferSize
	}
	if c.MinPacketSize == 0 {
		c.MinPacketSize = protocol.MinInitialPacketSize
	}
	return c
}

// LoadConfigTOML reads connection defaults from a TOML file, for
// deployments that want config-as-data instead of constructing a Config
// literal. This is ambient-stack sugar; nothing in the connection core
// depends on it.
func LoadConfigTOML(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
