package quic

import (
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/qerr"
	"github.com/quicwire/qconn/internal/wire"
)

// closeConnection is the single entry point every teardown path funnels
// through, idempotent by construction: once connected is false, it's a
// no-op. Grounded on quiche's CloseConnection -> SendConnectionClosePacket
// -> TearDownLocalConnectionState chain.
func (c *Connection) closeConnection(reason closeReason) {
	if !c.connected {
		return
	}
	if !reason.silent {
		c.sendConnectionClosePacket(reason)
	}
	c.tearDownLocalConnectionState(reason)
}

// connectionCloseEncryptionLevel picks the highest level whose keys are
// still usable: ForwardSecure once the handshake is confirmed, ZeroRTT if
// only those keys exist, else Initial.
func (c *Connection) connectionCloseEncryptionLevel() protocol.EncryptionLevel {
	if c.crypto != nil && c.crypto.HandshakeConfirmed() {
		return protocol.Encryption1RTT
	}
	if _, ok := c.crypto.GetSealer(protocol.EncryptionZeroRTT); ok {
		return protocol.EncryptionZeroRTT
	}
	return protocol.EncryptionInitial
}

func (c *Connection) sendConnectionClosePacket(reason closeReason) {
	level := c.connectionCloseEncryptionLevel()
	for _, qp := range c.queuedPackets {
		c.releaseQueuedPacket(qp)
	}
	c.queuedPackets = nil

	style := wire.ConnectionCloseIETFTransport
	if c.version < c.firstIETFInvariantVersion {
		style = wire.ConnectionCloseGoogle
	}
	frame := &wire.ConnectionCloseFrame{
		Style:        style,
		ErrorCode:    uint64(reason.err.ErrorCode),
		ReasonPhrase: reason.err.ErrorMessage,
	}
	c.withFlusher(func() {
		c.pendingConnectionClose = &pendingClose{frame: frame, level: level}
	})
}

type pendingClose struct {
	frame *wire.ConnectionCloseFrame
	level protocol.EncryptionLevel
}

// tearDownLocalConnectionState flushes anything still queued, marks the
// connection dead, notifies the visitor, and cancels every alarm exactly
// once.
func (c *Connection) tearDownLocalConnectionState(reason closeReason) {
	c.flushPackets()
	c.connected = false
	c.qlog.connectionClosed(reason.source == qerr.FromPeer, reason.err.Error())
	if c.visitor != nil {
		c.visitor.OnConnectionClosed(reason.source == qerr.FromPeer, reason.err)
	}
	c.alarms.cancelAll()
}

// SendConnectionClose is the public graceful-close entry point: a local
// decision to end the connection for code/msg, as opposed to a failure
// detected mid-processing.
func (c *Connection) SendConnectionClose(code qerr.TransportErrorCode, msg string) {
	c.closeConnection(closeReason{
		err:    qerr.NewError(code, msg),
		source: qerr.FromSelf,
	})
}

// SendConnectionCloseSilently tears down without ever emitting a
// CONNECTION_CLOSE packet, for callers that already know the peer is
// unreachable.
func (c *Connection) SendConnectionCloseSilently(code qerr.TransportErrorCode, msg string) {
	c.closeConnection(closeReason{
		err:    qerr.NewError(code, msg),
		source: qerr.FromSelf,
		silent: true,
	})
}

// closePeerInitiated handles the three peer-initiated teardown triggers
// spec.md §8 lists: CONNECTION_CLOSE frame, PublicReset, and the IETF
// stateless reset signature.
func (c *Connection) closePeerInitiated(code qerr.TransportErrorCode, msg string) {
	c.closeConnection(closeReason{
		err:    qerr.NewError(code, msg),
		source: qerr.FromPeer,
	})
}
