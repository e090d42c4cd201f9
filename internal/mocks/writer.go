package mocks

import (
	"net"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/connio"
	"github.com/quicwire/qconn/internal/protocol"
)

// MockWriter fakes the Writer collaborator: the connection core never
// touches a socket, so tests drive it through this instead.
type MockWriter struct {
	ctrl     *gomock.Controller
	recorder *MockWriterMockRecorder
}

type MockWriterMockRecorder struct {
	mock *MockWriter
}

func NewMockWriter(ctrl *gomock.Controller) *MockWriter {
	m := &MockWriter{ctrl: ctrl}
	m.recorder = &MockWriterMockRecorder{m}
	return m
}

func (m *MockWriter) EXPECT() *MockWriterMockRecorder { return m.recorder }

func (m *MockWriter) WritePacket(buf []byte, selfAddr, peerAddr net.Addr, opts connio.WriteOptions) connio.WriteResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WritePacket", buf, selfAddr, peerAddr, opts)
	ret0, _ := ret[0].(connio.WriteResult)
	return ret0
}

func (mr *MockWriterMockRecorder) WritePacket(buf, selfAddr, peerAddr, opts interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WritePacket", reflect.TypeOf((*MockWriter)(nil).WritePacket), buf, selfAddr, peerAddr, opts)
}

func (m *MockWriter) IsWriteBlocked() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsWriteBlocked")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockWriterMockRecorder) IsWriteBlocked() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsWriteBlocked", reflect.TypeOf((*MockWriter)(nil).IsWriteBlocked))
}

func (m *MockWriter) SetWritable() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetWritable")
}

func (mr *MockWriterMockRecorder) SetWritable() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetWritable", reflect.TypeOf((*MockWriter)(nil).SetWritable))
}

func (m *MockWriter) IsBatchMode() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsBatchMode")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockWriterMockRecorder) IsBatchMode() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsBatchMode", reflect.TypeOf((*MockWriter)(nil).IsBatchMode))
}

func (m *MockWriter) Flush() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flush")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWriterMockRecorder) Flush() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flush", reflect.TypeOf((*MockWriter)(nil).Flush))
}

func (m *MockWriter) GetMaxPacketSize(peer net.Addr) protocol.ByteCount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMaxPacketSize", peer)
	ret0, _ := ret[0].(protocol.ByteCount)
	return ret0
}

func (mr *MockWriterMockRecorder) GetMaxPacketSize(peer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMaxPacketSize", reflect.TypeOf((*MockWriter)(nil).GetMaxPacketSize), peer)
}

func (m *MockWriter) SupportsReleaseTime() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupportsReleaseTime")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockWriterMockRecorder) SupportsReleaseTime() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupportsReleaseTime", reflect.TypeOf((*MockWriter)(nil).SupportsReleaseTime))
}
