package quic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/protocol"
)

func TestPopulateConfigNilGetsDefaults(t *testing.T) {
	c := populateConfig(nil, protocol.PerspectiveClient)
	require.Equal(t, protocol.DefaultIdleTimeout-protocol.ClientIdleTimeoutPad, c.IdleTimeout)
	require.Equal(t, protocol.DefaultHandshakeTimeout, c.HandshakeTimeout)
	require.Equal(t, protocol.DefaultPingTimeout, c.PingTimeout)
	require.Equal(t, protocol.MaxUndecryptablePackets, c.MaxUndecryptablePackets)
}

func TestPopulateConfigServerPadsIdleTimeout(t *testing.T) {
	c := populateConfig(nil, protocol.PerspectiveServer)
	require.Equal(t, protocol.DefaultIdleTimeout+protocol.ServerIdleTimeoutPad, c.IdleTimeout)
}

func TestPopulateConfigDoesNotOverrideExplicitValues(t *testing.T) {
	c := populateConfig(&Config{IdleTimeout: 42, HandshakeTimeout: 7}, protocol.PerspectiveClient)
	require.EqualValues(t, 42, c.IdleTimeout)
	require.EqualValues(t, 7, c.HandshakeTimeout)
}

func TestPopulateConfigClonesRatherThanMutatesInput(t *testing.T) {
	original := &Config{}
	_ = populateConfig(original, protocol.PerspectiveClient)
	require.EqualValues(t, 0, original.IdleTimeout, "populateConfig must not mutate the caller's Config")
}

func TestConfigCloneIsIndependentStruct(t *testing.T) {
	c := &Config{IdleTimeout: 5}
	cp := c.Clone()
	cp.IdleTimeout = 10
	require.EqualValues(t, 5, c.IdleTimeout)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("MaxUndecryptablePackets = 64\n"), 0o600))

	c, err := LoadConfigTOML(path)
	require.NoError(t, err)
	require.Equal(t, 64, c.MaxUndecryptablePackets)
}

func TestLoadConfigTOMLMissingFile(t *testing.T) {
	_, err := LoadConfigTOML(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
