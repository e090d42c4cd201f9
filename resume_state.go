package quic

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quicwire/qconn/internal/protocol"
)

// ResumeState is the small set of network parameters worth remembering
// across connections to the same peer: the last-measured RTT (to seed
// SetInitialRTT instead of starting from the default) and the MTU a
// previous connection discovered. Grounded on quiche's
// CachedNetworkParameters, carried over as the supplemented-feature
// spec.md's distillation dropped but original_source/ still tracks.
type ResumeState struct {
	PeerAddr    string        `yaml:"peer_addr"`
	SmoothedRTT time.Duration `yaml:"smoothed_rtt"`
	MTU         protocol.ByteCount `yaml:"mtu"`
	SavedAt     time.Time     `yaml:"saved_at"`
}

// SaveResumeState captures the connection's current network parameters.
// Callers own persistence; this module never touches disk on its own.
func (c *Connection) SaveResumeState() ResumeState {
	return ResumeState{
		PeerAddr:    c.effectivePeerAddr.String(),
		SmoothedRTT: c.rttStats.SmoothedRTT(),
		MTU:         c.mtuDiscoverer.current,
		SavedAt:     c.clock.Now(),
	}
}

// ApplyResumeState seeds a freshly constructed connection's RTT estimate
// and MTU start point from a previously saved state, provided it still
// looks fresh (SetInitialRTT refuses to override a measurement already
// taken, matching utils.RTTStats's own guard).
func (c *Connection) ApplyResumeState(s ResumeState) {
	if s.SmoothedRTT > 0 {
		c.rttStats.SetInitialRTT(s.SmoothedRTT)
	}
	if s.MTU > c.mtuDiscoverer.current && s.MTU <= c.mtuDiscoverer.max {
		c.mtuDiscoverer.current = s.MTU
	}
}

// LoadResumeStateYAML reads a ResumeState from a YAML file, the caller-owned
// persistence format spec.md §6 leaves unspecified.
func LoadResumeStateYAML(path string) (ResumeState, error) {
	var s ResumeState
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, err
	}
	return s, nil
}

// SaveResumeStateYAML writes s to path as YAML.
func SaveResumeStateYAML(path string, s ResumeState) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
