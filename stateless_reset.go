package quic

import (
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"

	"github.com/quicwire/qconn/internal/protocol"
)

// statelessResetTokenInfo is the fixed HKDF label RFC 9001-adjacent
// derivations use for stateless-reset tokens; any stable per-endpoint
// context string works so long as both directions of a connection id
// derive the same token from the same key.
const statelessResetTokenInfo = "qconn stateless reset"

// deriveStatelessResetToken derives the 16-byte token this endpoint
// will recognize in a future stateless reset packet for connID, bound
// to key (normally StatelessResetKey from Config). Grounded on quiche's
// GetStatelessResetToken, which HKDFs the token from a static key and
// the connection id rather than storing one token per id.
func deriveStatelessResetToken(key []byte, connID protocol.ConnectionID) []byte {
	token := make([]byte, len(protocol.StatelessResetToken{}))
	r := hkdf.New(sha256.New, key, connID.Bytes(), []byte(statelessResetTokenInfo))
	if _, err := r.Read(token); err != nil {
		return token
	}
	return token
}

// SetStatelessResetToken computes and stores the token this connection
// will advertise to its peer via transport parameters, grounded on the
// server-side half of quiche's IsStatelessReset check: a server must
// tell the client what to send back before the client can use it.
func (c *Connection) SetStatelessResetToken() []byte {
	if len(c.config.StatelessResetKey) == 0 {
		return nil
	}
	return deriveStatelessResetToken(c.config.StatelessResetKey, c.selfConnID)
}

// SetPeerStatelessResetToken records the token carried in the peer's
// transport parameters, consulted by isStatelessReset in
// packet_number_validator.go.
func (c *Connection) SetPeerStatelessResetToken(token []byte) {
	c.peerStatelessResetToken = append([]byte(nil), token...)
}
