package mocks

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/handshake"
	"github.com/quicwire/qconn/internal/protocol"
)

// MockCryptoSetup fakes the key-installation collaborator so connection
// tests can control exactly which levels have keys and when the
// handshake is reported confirmed, without deriving any real keys.
type MockCryptoSetup struct {
	ctrl     *gomock.Controller
	recorder *MockCryptoSetupMockRecorder
}

type MockCryptoSetupMockRecorder struct {
	mock *MockCryptoSetup
}

func NewMockCryptoSetup(ctrl *gomock.Controller) *MockCryptoSetup {
	m := &MockCryptoSetup{ctrl: ctrl}
	m.recorder = &MockCryptoSetupMockRecorder{m}
	return m
}

func (m *MockCryptoSetup) EXPECT() *MockCryptoSetupMockRecorder { return m.recorder }

func (m *MockCryptoSetup) GetSealer(level protocol.EncryptionLevel) (handshake.Sealer, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSealer", level)
	ret0, _ := ret[0].(handshake.Sealer)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

func (mr *MockCryptoSetupMockRecorder) GetSealer(level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSealer", reflect.TypeOf((*MockCryptoSetup)(nil).GetSealer), level)
}

func (m *MockCryptoSetup) GetOpener(level protocol.EncryptionLevel) (handshake.Opener, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOpener", level)
	ret0, _ := ret[0].(handshake.Opener)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

func (mr *MockCryptoSetupMockRecorder) GetOpener(level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOpener", reflect.TypeOf((*MockCryptoSetup)(nil).GetOpener), level)
}

func (m *MockCryptoSetup) SetHandshakeConfirmed() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetHandshakeConfirmed")
}

func (mr *MockCryptoSetupMockRecorder) SetHandshakeConfirmed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetHandshakeConfirmed", reflect.TypeOf((*MockCryptoSetup)(nil).SetHandshakeConfirmed))
}

func (m *MockCryptoSetup) HandshakeConfirmed() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandshakeConfirmed")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockCryptoSetupMockRecorder) HandshakeConfirmed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandshakeConfirmed", reflect.TypeOf((*MockCryptoSetup)(nil).HandshakeConfirmed))
}

func (m *MockCryptoSetup) DiscardKeys(level protocol.EncryptionLevel) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DiscardKeys", level)
}

func (mr *MockCryptoSetupMockRecorder) DiscardKeys(level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DiscardKeys", reflect.TypeOf((*MockCryptoSetup)(nil).DiscardKeys), level)
}

// MockSealer and MockOpener back GetSealer/GetOpener's return values in
// tests that need to assert what bytes a packet was sealed/opened with,
// rather than just that a level's keys exist.
type MockSealer struct {
	ctrl     *gomock.Controller
	recorder *MockSealerMockRecorder
}

type MockSealerMockRecorder struct {
	mock *MockSealer
}

func NewMockSealer(ctrl *gomock.Controller) *MockSealer {
	m := &MockSealer{ctrl: ctrl}
	m.recorder = &MockSealerMockRecorder{m}
	return m
}

func (m *MockSealer) EXPECT() *MockSealerMockRecorder { return m.recorder }

func (m *MockSealer) Seal(dst, src []byte, pn protocol.PacketNumber, ad []byte) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Seal", dst, src, pn, ad)
	ret0, _ := ret[0].([]byte)
	return ret0
}

func (mr *MockSealerMockRecorder) Seal(dst, src, pn, ad interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Seal", reflect.TypeOf((*MockSealer)(nil).Seal), dst, src, pn, ad)
}

func (m *MockSealer) Overhead() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Overhead")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockSealerMockRecorder) Overhead() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Overhead", reflect.TypeOf((*MockSealer)(nil).Overhead))
}

type MockOpener struct {
	ctrl     *gomock.Controller
	recorder *MockOpenerMockRecorder
}

type MockOpenerMockRecorder struct {
	mock *MockOpener
}

func NewMockOpener(ctrl *gomock.Controller) *MockOpener {
	m := &MockOpener{ctrl: ctrl}
	m.recorder = &MockOpenerMockRecorder{m}
	return m
}

func (m *MockOpener) EXPECT() *MockOpenerMockRecorder { return m.recorder }

func (m *MockOpener) Open(dst, src []byte, pn protocol.PacketNumber, ad []byte) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", dst, src, pn, ad)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOpenerMockRecorder) Open(dst, src, pn, ad interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockOpener)(nil).Open), dst, src, pn, ad)
}
