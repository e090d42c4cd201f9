// Package congestion is the sent-packet manager's congestion-control
// collaborator: out of scope for the connection state machine itself
// (spec §1), but the driver still needs a concrete default so a
// connection can run without an application supplying its own. This is a
// reference implementation, not a tuned one.
package congestion

import (
	"time"

	"github.com/quicwire/qconn/internal/protocol"
)

// SendAlgorithm is the interface the sent-packet manager drives.
type SendAlgorithm interface {
	OnPacketSent(sentTime time.Time, bytesInFlight, bytes protocol.ByteCount, pn protocol.PacketNumber, retransmittable bool) bool
	OnPacketAcked(pn protocol.PacketNumber, ackedBytes, bytesInFlight protocol.ByteCount, ackTime time.Time)
	OnPacketLost(pn protocol.PacketNumber, lostBytes, bytesInFlight protocol.ByteCount)
	CanSend(bytesInFlight protocol.ByteCount) bool
	GetCongestionWindow() protocol.ByteCount
	InRecovery() bool
	InSlowStart() bool
	MaybeExitSlowStart()
	OnRetransmissionTimeout(packetsRetransmitted bool)
}

const (
	initialWindow    = 10 * 1200
	minWindow        = 2 * 1200
	maxWindow        = 10 * 1024 * 1024
	lossReductionFactor = 0.5
)

// renoSender is a standard additive-increase/multiplicative-decrease
// controller, the Go-side counterpart to quiche's TCP-Reno mode
// (protocol.RENO in the teacher's congestion.go enum).
type renoSender struct {
	congestionWindow protocol.ByteCount
	slowStartThresh  protocol.ByteCount
	largestSentAtLastCutback protocol.PacketNumber
	inRecovery       bool
}

// NewRenoSender constructs a Reno controller starting at the standard
// 10-segment initial window.
func NewRenoSender() SendAlgorithm {
	return &renoSender{
		congestionWindow: initialWindow,
		slowStartThresh:  maxWindow,
	}
}

func (s *renoSender) CanSend(bytesInFlight protocol.ByteCount) bool {
	return bytesInFlight < s.congestionWindow
}

func (s *renoSender) GetCongestionWindow() protocol.ByteCount { return s.congestionWindow }

func (s *renoSender) InSlowStart() bool { return s.congestionWindow < s.slowStartThresh }

func (s *renoSender) InRecovery() bool { return s.inRecovery }

func (s *renoSender) MaybeExitSlowStart() {
	if s.InSlowStart() {
		s.slowStartThresh = s.congestionWindow
	}
}

func (s *renoSender) OnPacketSent(_ time.Time, _, bytes protocol.ByteCount, pn protocol.PacketNumber, retransmittable bool) bool {
	if !retransmittable {
		return false
	}
	return true
}

func (s *renoSender) OnPacketAcked(pn protocol.PacketNumber, ackedBytes, bytesInFlight protocol.ByteCount, _ time.Time) {
	if s.inRecovery {
		if pn > s.largestSentAtLastCutback {
			s.inRecovery = false
		}
		return
	}
	if s.InSlowStart() {
		s.congestionWindow += ackedBytes
	} else {
		s.congestionWindow += protocol.ByteCount(float64(ackedBytes*1200) / float64(s.congestionWindow))
	}
	if s.congestionWindow > maxWindow {
		s.congestionWindow = maxWindow
	}
}

func (s *renoSender) OnPacketLost(pn protocol.PacketNumber, _, _ protocol.ByteCount) {
	if s.inRecovery {
		return
	}
	s.inRecovery = true
	s.largestSentAtLastCutback = pn
	s.congestionWindow = protocol.ByteCount(float64(s.congestionWindow) * lossReductionFactor)
	if s.congestionWindow < minWindow {
		s.congestionWindow = minWindow
	}
	s.slowStartThresh = s.congestionWindow
}

func (s *renoSender) OnRetransmissionTimeout(packetsRetransmitted bool) {
	if !packetsRetransmitted {
		return
	}
	s.congestionWindow = minWindow
	s.inRecovery = false
}
