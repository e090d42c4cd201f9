package quic

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quicwire/qconn/internal/protocol"
)

// connectionStats mirrors quiche's QuicConnectionStats counters, the
// supplemented feature this module keeps as plain fields rather than the
// full struct quiche tracks (RTT/bandwidth samples stay in RTTStats and
// the congestion controller). The core is single-threaded per
// connection (spec.md §5), so these are plain fields, not atomics.
type connectionStats struct {
	PacketsSent      int64
	BytesSent        protocol.ByteCount
	PacketsDropped   int64
	PacketsDiscarded int64
	PacketsLost      int64
}

// connMetrics is the prometheus-backed counterpart to connectionStats,
// wired per the ambient-stack metrics surface: the connection core never
// registers these itself (metrics exporters are an explicit §1
// collaborator concern), it only increments counters handed to it.
type connMetrics struct {
	packetsSent      prometheus.Counter
	bytesSent        prometheus.Counter
	packetsDropped   prometheus.Counter
	packetsDiscarded prometheus.Counter
	packetsLost      prometheus.Counter
}

// NewConnMetrics registers the connection's counters under reg. Passing
// a nil registry is fine; callers that don't care about metrics can skip
// registration and the returned counters simply go unobserved.
func NewConnMetrics(reg prometheus.Registerer, connLabel string) *connMetrics {
	labels := prometheus.Labels{"connection": connLabel}
	m := &connMetrics{
		packetsSent:      prometheus.NewCounter(prometheus.CounterOpts{Name: "qconn_packets_sent_total", ConstLabels: labels}),
		bytesSent:        prometheus.NewCounter(prometheus.CounterOpts{Name: "qconn_bytes_sent_total", ConstLabels: labels}),
		packetsDropped:   prometheus.NewCounter(prometheus.CounterOpts{Name: "qconn_packets_dropped_total", ConstLabels: labels}),
		packetsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{Name: "qconn_packets_discarded_total", ConstLabels: labels}),
		packetsLost:      prometheus.NewCounter(prometheus.CounterOpts{Name: "qconn_packets_lost_total", ConstLabels: labels}),
	}
	if reg != nil {
		reg.MustRegister(m.packetsSent, m.bytesSent, m.packetsDropped, m.packetsDiscarded, m.packetsLost)
	}
	return m
}

func (m *connMetrics) observeSent(n protocol.ByteCount) {
	if m == nil {
		return
	}
	m.packetsSent.Inc()
	m.bytesSent.Add(float64(n))
}

func (m *connMetrics) observeDropped() {
	if m != nil {
		m.packetsDropped.Inc()
	}
}

func (m *connMetrics) observeDiscarded() {
	if m != nil {
		m.packetsDiscarded.Inc()
	}
}

func (m *connMetrics) observeLost() {
	if m != nil {
		m.packetsLost.Inc()
	}
}
