package quic

import (
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/utils"
)

// maxMTUDiff is how close current may get to max before discovery stops:
// quiche is happy to land a search within 20 bytes of the true path MTU
// rather than spend more probes closing the last gap.
const maxMTUDiff = 20

// mtuFinder binary-searches the path MTU between current and max. Probe
// spacing starts at protocol.PacketsBetweenMTUProbesBase packets and
// doubles with each attempt.
type mtuFinder struct {
	rttStats *utils.RTTStats
	current  protocol.ByteCount
	max      protocol.ByteCount
	attempts int

	probeInFlight  bool
	lastProbeAfter int
	disabled       bool
}

func newMTUDiscoverer(rttStats *utils.RTTStats, start, max protocol.ByteCount) *mtuFinder {
	return &mtuFinder{rttStats: rttStats, current: start, max: max}
}

func (f *mtuFinder) done() bool {
	return f.disabled || f.max-f.current <= maxMTUDiff || f.attempts >= protocol.MaxMTUDiscoveryAttempts
}

// shouldProbeNow reports whether enough packets have elapsed since the
// last probe to send another one; spacing doubles after each attempt.
func (f *mtuFinder) shouldProbeNow(packetsSent int) bool {
	if f.probeInFlight || f.done() {
		return false
	}
	spacing := protocol.PacketsBetweenMTUProbesBase << f.attempts
	return packetsSent-f.lastProbeAfter >= spacing
}

func (f *mtuFinder) probeSize() protocol.ByteCount {
	return (f.current + f.max) / 2
}

func (f *mtuFinder) probeSent(packetsSent int) {
	f.probeInFlight = true
	f.lastProbeAfter = packetsSent
	f.attempts++
}

func (f *mtuFinder) probeAcked(size protocol.ByteCount) {
	f.probeInFlight = false
	if size > f.current {
		f.current = size
	}
}

func (f *mtuFinder) probeLost() {
	f.probeInFlight = false
	f.max = f.probeSize()
}

// disable permanently stops MTU discovery. Called on MsgTooBig without
// retransmittable frames, spec.md §4.7 point 6.
func (f *mtuFinder) disable() {
	f.disabled = true
}
