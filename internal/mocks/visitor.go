package mocks

import (
	"net"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// MockVisitor fakes the session-layer collaborator: everything the
// connection core notifies about but does not itself implement.
type MockVisitor struct {
	ctrl     *gomock.Controller
	recorder *MockVisitorMockRecorder
}

type MockVisitorMockRecorder struct {
	mock *MockVisitor
}

func NewMockVisitor(ctrl *gomock.Controller) *MockVisitor {
	m := &MockVisitor{ctrl: ctrl}
	m.recorder = &MockVisitorMockRecorder{m}
	return m
}

func (m *MockVisitor) EXPECT() *MockVisitorMockRecorder { return m.recorder }

func (m *MockVisitor) OnStreamFrame(f *wire.StreamFrame) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnStreamFrame", f)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockVisitorMockRecorder) OnStreamFrame(f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnStreamFrame", reflect.TypeOf((*MockVisitor)(nil).OnStreamFrame), f)
}

func (m *MockVisitor) OnCryptoFrame(f *wire.StreamFrame) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnCryptoFrame", f)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockVisitorMockRecorder) OnCryptoFrame(f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnCryptoFrame", reflect.TypeOf((*MockVisitor)(nil).OnCryptoFrame), f)
}

func (m *MockVisitor) OnCanWrite() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnCanWrite")
}

func (mr *MockVisitorMockRecorder) OnCanWrite() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnCanWrite", reflect.TypeOf((*MockVisitor)(nil).OnCanWrite))
}

func (m *MockVisitor) OnWriteBlocked() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnWriteBlocked")
}

func (mr *MockVisitorMockRecorder) OnWriteBlocked() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnWriteBlocked", reflect.TypeOf((*MockVisitor)(nil).OnWriteBlocked))
}

func (m *MockVisitor) OnConnectionClosed(remote bool, err error) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnConnectionClosed", remote, err)
}

func (mr *MockVisitorMockRecorder) OnConnectionClosed(remote, err interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnConnectionClosed", reflect.TypeOf((*MockVisitor)(nil).OnConnectionClosed), remote, err)
}

func (m *MockVisitor) OnConnectionMigration(t protocol.AddressChangeType) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnConnectionMigration", t)
}

func (mr *MockVisitorMockRecorder) OnConnectionMigration(t interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnConnectionMigration", reflect.TypeOf((*MockVisitor)(nil).OnConnectionMigration), t)
}

func (m *MockVisitor) OnSuccessfulVersionNegotiation(v protocol.Version) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnSuccessfulVersionNegotiation", v)
}

func (mr *MockVisitorMockRecorder) OnSuccessfulVersionNegotiation(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnSuccessfulVersionNegotiation", reflect.TypeOf((*MockVisitor)(nil).OnSuccessfulVersionNegotiation), v)
}

func (m *MockVisitor) OnConnectivityProbeReceived(peerAddr net.Addr) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnConnectivityProbeReceived", peerAddr)
}

func (mr *MockVisitorMockRecorder) OnConnectivityProbeReceived(peerAddr interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnConnectivityProbeReceived", reflect.TypeOf((*MockVisitor)(nil).OnConnectivityProbeReceived), peerAddr)
}

func (m *MockVisitor) OnForwardProgressConfirmed() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnForwardProgressConfirmed")
}

func (mr *MockVisitorMockRecorder) OnForwardProgressConfirmed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnForwardProgressConfirmed", reflect.TypeOf((*MockVisitor)(nil).OnForwardProgressConfirmed))
}

func (m *MockVisitor) OnAckNeedsRetransmittableFrame() wire.Frame {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnAckNeedsRetransmittableFrame")
	ret0, _ := ret[0].(wire.Frame)
	return ret0
}

func (mr *MockVisitorMockRecorder) OnAckNeedsRetransmittableFrame() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnAckNeedsRetransmittableFrame", reflect.TypeOf((*MockVisitor)(nil).OnAckNeedsRetransmittableFrame))
}

func (m *MockVisitor) HasPendingHandshake() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPendingHandshake")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockVisitorMockRecorder) HasPendingHandshake() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPendingHandshake", reflect.TypeOf((*MockVisitor)(nil).HasPendingHandshake))
}

func (m *MockVisitor) WillingAndAbleToWrite() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WillingAndAbleToWrite")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockVisitorMockRecorder) WillingAndAbleToWrite() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WillingAndAbleToWrite", reflect.TypeOf((*MockVisitor)(nil).WillingAndAbleToWrite))
}

func (m *MockVisitor) SendProbingData() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendProbingData")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockVisitorMockRecorder) SendProbingData() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendProbingData", reflect.TypeOf((*MockVisitor)(nil).SendProbingData))
}

func (m *MockVisitor) SendPing() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SendPing")
}

func (mr *MockVisitorMockRecorder) SendPing() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendPing", reflect.TypeOf((*MockVisitor)(nil).SendPing))
}

func (m *MockVisitor) ShouldKeepConnectionAlive() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ShouldKeepConnectionAlive")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockVisitorMockRecorder) ShouldKeepConnectionAlive() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShouldKeepConnectionAlive", reflect.TypeOf((*MockVisitor)(nil).ShouldKeepConnectionAlive))
}

func (m *MockVisitor) AllowSelfAddressChange() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllowSelfAddressChange")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockVisitorMockRecorder) AllowSelfAddressChange() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllowSelfAddressChange", reflect.TypeOf((*MockVisitor)(nil).AllowSelfAddressChange))
}
