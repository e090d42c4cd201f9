package protocol

import "fmt"

// MaxConnIDLen is the maximum length of a QUIC connection ID.
const MaxConnIDLen = 20

// ConnectionID is an opaque, variable-length identifier for one side of a
// connection.
type ConnectionID struct {
	b [MaxConnIDLen]byte
	l uint8
}

// ParseConnectionID wraps raw bytes as a ConnectionID. It panics if b is
// longer than MaxConnIDLen, mirroring the wire format's hard limit.
func ParseConnectionID(b []byte) ConnectionID {
	if len(b) > MaxConnIDLen {
		panic("connection ID too long")
	}
	var c ConnectionID
	copy(c.b[:], b)
	c.l = uint8(len(b))
	return c
}

func (c ConnectionID) Len() int { return int(c.l) }

func (c ConnectionID) Bytes() []byte { return c.b[:c.l] }

func (c ConnectionID) Equal(other ConnectionID) bool {
	return c.l == other.l && string(c.Bytes()) == string(other.Bytes())
}

func (c ConnectionID) String() string {
	if c.l == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%x", c.Bytes())
}
