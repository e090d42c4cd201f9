package quic

import "time"

// computeIdleTimeoutDeadline implements spec.md §4.8's timeout row: while
// the handshake hasn't confirmed, the timeout alarm guards the earlier of
// the idle deadline and the handshake deadline; once confirmed, only idle
// matters. Grounded on quiche's GetConnectionTimeout /
// QuicConnection::OnHandshakeTimeout, which fold both deadlines into the
// same alarm rather than keeping two.
func computeIdleTimeoutDeadline(lastPacketTime, creationTime time.Time, idleTimeout, handshakeTimeout time.Duration, handshakeConfirmed bool) time.Time {
	idleDeadline := lastPacketTime.Add(idleTimeout)
	if handshakeConfirmed {
		return idleDeadline
	}
	handshakeDeadline := creationTime.Add(handshakeTimeout)
	if handshakeDeadline.Before(idleDeadline) {
		return handshakeDeadline
	}
	return idleDeadline
}

// computePingDeadline implements the Ping row: shorter when there is
// in-flight retransmittable data and nothing else on the wire to keep
// the path alive.
func computePingDeadline(now time.Time, pingTimeout time.Duration, hasInFlightRetransmittable bool) time.Time {
	d := pingTimeout
	if hasInFlightRetransmittable {
		d = d / 2
	}
	return now.Add(d)
}

// shouldCloseOnIdleTimeout implements the idle-timeout decision spec.md
// §4.8 spells out: a connection that has retransmitted at least once
// (consecutive TLP/RTO) or whose visitor insists on staying alive gets a
// graceful CONNECTION_CLOSE instead of a silent drop.
func shouldCloseOnIdleTimeout(consecutiveRTOs int, visitorWantsAlive bool) bool {
	return consecutiveRTOs >= 1 || visitorWantsAlive
}
