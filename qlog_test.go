package quic

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/protocol"
)

func TestNewQlogTracerNilWriter(t *testing.T) {
	require.Nil(t, newQlogTracer(nil))
}

func TestNilQlogTracerEmitIsSafe(t *testing.T) {
	var tr *qlogTracer
	tr.packetSent(protocol.EncryptionInitial, 1, 100) // must not panic
}

func TestQlogTracerPacketSentEmitsEnvelope(t *testing.T) {
	var buf bytes.Buffer
	tr := newQlogTracer(&buf)
	require.NotNil(t, tr)

	tr.packetSent(protocol.EncryptionInitial, 42, 1200)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "transport", decoded["category"])
	require.Equal(t, "packet_sent", decoded["name"])
	require.NotEmpty(t, decoded["time"])

	data, ok := decoded["data"].(map[string]interface{})
	require.True(t, ok)
	require.EqualValues(t, 42, data["packet_number"])
	require.EqualValues(t, 1200, data["length"])
}

func TestQlogTracerConnectionClosedEmitsEnvelope(t *testing.T) {
	var buf bytes.Buffer
	tr := newQlogTracer(&buf)

	tr.connectionClosed(true, "idle timeout")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "connectivity", decoded["category"])
	require.Equal(t, "connection_closed", decoded["name"])

	data := decoded["data"].(map[string]interface{})
	require.Equal(t, true, data["remote"])
	require.Equal(t, "idle timeout", data["reason"])
}

func TestQlogTracerConnectionMigrationEmitsEnvelope(t *testing.T) {
	var buf bytes.Buffer
	tr := newQlogTracer(&buf)

	tr.connectionMigration(protocol.PortChange)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "connection_migration", decoded["name"])
}
