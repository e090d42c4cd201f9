package congestion

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/quicwire/qconn/internal/protocol"
)

// Pacer smooths a burst of congestion-window-permitted bytes out over the
// RTT, so a full window doesn't leave the wire in one syscall. It backs
// the send path's "release time into the future" delay: WritePacket in
// the connection driver asks TimeUntilSend, and a pacer answer greater
// than now defers the write rather than blocking it.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer builds a pacer for the given congestion window and smoothed
// RTT: the target rate is one window per RTT, bucket sized to allow a
// full window as an initial burst.
func NewPacer(congestionWindow protocol.ByteCount, rtt time.Duration) *Pacer {
	if rtt <= 0 {
		rtt = 100 * time.Millisecond
	}
	bytesPerSecond := float64(congestionWindow) / rtt.Seconds()
	return &Pacer{
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), int(congestionWindow)),
	}
}

// UpdateBudget re-derives the pacing rate after the congestion window or
// RTT estimate changes. A window larger than the current burst makes the
// whole new window available at once; a smaller or equal window keeps the
// tokens already accrued.
func (p *Pacer) UpdateBudget(congestionWindow protocol.ByteCount, rtt time.Duration) {
	if rtt <= 0 {
		rtt = 100 * time.Millisecond
	}
	bytesPerSecond := float64(congestionWindow) / rtt.Seconds()
	if int(congestionWindow) > p.limiter.Burst() {
		p.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), int(congestionWindow))
		return
	}
	p.limiter.SetLimit(rate.Limit(bytesPerSecond))
	p.limiter.SetBurst(int(congestionWindow))
}

// TimeUntilSend returns when the next packet of size n may leave, given
// now.
func (p *Pacer) TimeUntilSend(now time.Time, n protocol.ByteCount) time.Time {
	r := p.limiter.ReserveN(now, int(n))
	if !r.OK() {
		return now
	}
	delay := r.DelayFrom(now)
	if delay <= 0 {
		return now
	}
	return now.Add(delay)
}

// HasBudget reports whether n bytes could leave immediately.
func (p *Pacer) HasBudget(now time.Time, n protocol.ByteCount) bool {
	return p.limiter.AllowN(now, int(n))
}
