package utils

import (
	"time"

	"github.com/VividCortex/ewma"

	"github.com/quicwire/qconn/internal/protocol"
)

const rttAlpha = 0.125
const oneMinusRTTAlpha = 1 - rttAlpha
const rttBeta = 0.25
const oneMinusRTTBeta = 1 - rttBeta

// RTTStats tracks the latest, smoothed and min RTT samples for a single
// packet number space, plus a jitter-smoothed variant fed through an
// exponentially weighted moving average for callers that want a cheaper,
// decimal-free gap estimate than MeanDeviation.
type RTTStats struct {
	minRTT        time.Duration
	latestRTT     time.Duration
	smoothedRTT   time.Duration
	meanDeviation time.Duration
	maxAckDelay   time.Duration

	hasMeasurement bool
	gapEstimate    ewma.MovingAverage
}

// MinRTT returns the lowest RTT sample seen, ignoring ack delay.
func (r *RTTStats) MinRTT() time.Duration { return r.minRTT }

// LatestRTT returns the most recent RTT sample.
func (r *RTTStats) LatestRTT() time.Duration { return r.latestRTT }

// SmoothedRTT returns the exponentially smoothed RTT estimate.
func (r *RTTStats) SmoothedRTT() time.Duration { return r.smoothedRTT }

// MeanDeviation returns the smoothed absolute deviation from SmoothedRTT.
func (r *RTTStats) MeanDeviation() time.Duration { return r.meanDeviation }

// MaxAckDelay returns the peer-advertised maximum ACK delay.
func (r *RTTStats) MaxAckDelay() time.Duration { return r.maxAckDelay }

// SetMaxAckDelay records the peer's advertised max_ack_delay transport
// parameter.
func (r *RTTStats) SetMaxAckDelay(d time.Duration) { r.maxAckDelay = d }

// SetInitialRTT seeds the smoothed RTT before any real sample exists. It has
// no effect once a measurement has already been taken.
func (r *RTTStats) SetInitialRTT(rtt time.Duration) {
	if r.hasMeasurement {
		return
	}
	r.latestRTT = rtt
	r.smoothedRTT = rtt
}

// UpdateRTT updates the RTT estimators from a new sample. sendDelta is the
// time between sending the packet and receiving its acknowledgment; ackDelay
// is the delay the peer reported applying before sending the ACK.
func (r *RTTStats) UpdateRTT(sendDelta, ackDelay time.Duration, now time.Time) {
	if sendDelta <= 0 {
		return
	}

	if r.minRTT == 0 || sendDelta < r.minRTT {
		r.minRTT = sendDelta
	}

	sample := sendDelta
	if sample-r.minRTT >= ackDelay && ackDelay <= r.maxAckDelayBound() {
		sample -= ackDelay
	}
	r.latestRTT = sample

	if !r.hasMeasurement {
		r.hasMeasurement = true
		r.smoothedRTT = sample
		r.meanDeviation = sample / 2
		r.gapEstimate = ewma.NewMovingAverage()
		r.gapEstimate.Set(float64(sample))
		return
	}

	r.meanDeviation = time.Duration(oneMinusRTTBeta*float64(r.meanDeviation) +
		rttBeta*float64(abs(r.smoothedRTT-sample)))
	r.smoothedRTT = time.Duration(oneMinusRTTAlpha*float64(r.smoothedRTT) +
		rttAlpha*float64(sample))
	r.gapEstimate.Add(float64(sample))
}

// maxAckDelayBound returns the bound used to decide whether an ack delay
// sample looks reasonable; a configured MaxAckDelay caps it, absent that the
// sample's own magnitude is trusted.
func (r *RTTStats) maxAckDelayBound() time.Duration {
	if r.maxAckDelay > 0 {
		return r.maxAckDelay
	}
	return time.Duration(1<<63 - 1)
}

// PTO returns the probe timeout duration: smoothed RTT plus four mean
// deviations, plus the peer's max ack delay if includeMaxAckDelay is set.
// The result is never below SmoothedRTT+TimerGranularity.
func (r *RTTStats) PTO(includeMaxAckDelay bool) time.Duration {
	if r.smoothedRTT == 0 {
		return protocol.TimerGranularity
	}
	pto := r.smoothedRTT + max4(4*r.meanDeviation, protocol.TimerGranularity)
	if includeMaxAckDelay {
		pto += r.maxAckDelay
	}
	return pto
}

// SmoothedGap returns the ewma-smoothed RTT sample, a coarser but cheaper
// alternative to SmoothedRTT for components that only need a ballpark
// figure, such as pacing headroom estimates.
func (r *RTTStats) SmoothedGap() time.Duration {
	if r.gapEstimate == nil {
		return r.smoothedRTT
	}
	return time.Duration(r.gapEstimate.Value())
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func max4(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
