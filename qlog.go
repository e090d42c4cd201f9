package quic

import (
	"io"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quicwire/qconn/internal/protocol"
)

// qlogEvent is one qlog-style structured event: a category/name pair plus a
// JSON data payload, matching the generic qlog envelope the teacher's
// logging tree assumes at every call site that names a "trace" sink.
type qlogEvent struct {
	Time     string
	Category string
	Name     string
	Data     gojay.MarshalerJSONObject
}

func (e *qlogEvent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("time", e.Time)
	enc.StringKey("category", e.Category)
	enc.StringKey("name", e.Name)
	if e.Data != nil {
		enc.ObjectKey("data", e.Data)
	}
}
func (e *qlogEvent) IsNil() bool { return e == nil }

// qlogTracer is the connection's event sink, separate from the general
// utils.Logger: qlog events are one-per-occurrence structured records meant
// for offline analysis, not free-form operator-facing log lines.
type qlogTracer struct {
	w io.Writer
}

func newQlogTracer(w io.Writer) *qlogTracer {
	if w == nil {
		return nil
	}
	return &qlogTracer{w: w}
}

func (t *qlogTracer) emit(category, name string, data gojay.MarshalerJSONObject) {
	if t == nil || t.w == nil {
		return
	}
	ev := &qlogEvent{
		Time:     time.Now().Format(time.RFC3339Nano),
		Category: category,
		Name:     name,
		Data:     data,
	}
	b, err := gojay.MarshalJSONObject(ev)
	if err != nil {
		return
	}
	t.w.Write(append(b, '\n'))
}

type packetSentData struct {
	PacketNumber protocol.PacketNumber
	Level        string
	Length       protocol.ByteCount
}

func (d *packetSentData) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("packet_number", int64(d.PacketNumber))
	enc.StringKey("encryption_level", d.Level)
	enc.Int64Key("length", int64(d.Length))
}
func (d *packetSentData) IsNil() bool { return d == nil }

func (t *qlogTracer) packetSent(level protocol.EncryptionLevel, pn protocol.PacketNumber, length protocol.ByteCount) {
	t.emit("transport", "packet_sent", &packetSentData{PacketNumber: pn, Level: level.String(), Length: length})
}

type connectionCloseData struct {
	Remote bool
	Reason string
}

func (d *connectionCloseData) MarshalJSONObject(enc *gojay.Encoder) {
	enc.BoolKey("remote", d.Remote)
	enc.StringKey("reason", d.Reason)
}
func (d *connectionCloseData) IsNil() bool { return d == nil }

func (t *qlogTracer) connectionClosed(remote bool, reason string) {
	t.emit("connectivity", "connection_closed", &connectionCloseData{Remote: remote, Reason: reason})
}

type migrationData struct {
	ChangeType string
}

func (d *migrationData) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("change_type", d.ChangeType)
}
func (d *migrationData) IsNil() bool { return d == nil }

func (t *qlogTracer) connectionMigration(changeType protocol.AddressChangeType) {
	t.emit("connectivity", "connection_migration", &migrationData{ChangeType: changeType.String()})
}
