package mocks

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/connio"
	"github.com/quicwire/qconn/internal/protocol"
	"github.com/quicwire/qconn/internal/wire"
)

// MockFramer is a gomock-style fake of the root quic package's Framer
// collaborator interface, hand-authored in mockgen's usual shape since
// the wire-format encoder itself is out of this module's scope.
type MockFramer struct {
	ctrl     *gomock.Controller
	recorder *MockFramerMockRecorder
}

type MockFramerMockRecorder struct {
	mock *MockFramer
}

func NewMockFramer(ctrl *gomock.Controller) *MockFramer {
	m := &MockFramer{ctrl: ctrl}
	m.recorder = &MockFramerMockRecorder{m}
	return m
}

func (m *MockFramer) EXPECT() *MockFramerMockRecorder { return m.recorder }

func (m *MockFramer) EncodeFrame(f wire.Frame, level protocol.EncryptionLevel) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EncodeFrame", f, level)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFramerMockRecorder) EncodeFrame(f, level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EncodeFrame", reflect.TypeOf((*MockFramer)(nil).EncodeFrame), f, level)
}

func (m *MockFramer) EncodeVersionNegotiationPacket(pkt *wire.VersionNegotiationPacket) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EncodeVersionNegotiationPacket", pkt)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFramerMockRecorder) EncodeVersionNegotiationPacket(pkt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EncodeVersionNegotiationPacket", reflect.TypeOf((*MockFramer)(nil).EncodeVersionNegotiationPacket), pkt)
}

func (m *MockFramer) EncodeFrames(frames []wire.Frame, level protocol.EncryptionLevel) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EncodeFrames", frames, level)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFramerMockRecorder) EncodeFrames(frames, level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EncodeFrames", reflect.TypeOf((*MockFramer)(nil).EncodeFrames), frames, level)
}

func (m *MockFramer) ProcessPacket(data []byte, visitor connio.FrameVisitor) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProcessPacket", data, visitor)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockFramerMockRecorder) ProcessPacket(data, visitor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessPacket", reflect.TypeOf((*MockFramer)(nil).ProcessPacket), data, visitor)
}

func (m *MockFramer) IsIetfStatelessResetPacket(data []byte, token []byte) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsIetfStatelessResetPacket", data, token)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockFramerMockRecorder) IsIetfStatelessResetPacket(data, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsIetfStatelessResetPacket", reflect.TypeOf((*MockFramer)(nil).IsIetfStatelessResetPacket), data, token)
}

func (m *MockFramer) InstallKeys(level protocol.EncryptionLevel, opener connio.Opener, sealer connio.Sealer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InstallKeys", level, opener, sealer)
}

func (mr *MockFramerMockRecorder) InstallKeys(level, opener, sealer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InstallKeys", reflect.TypeOf((*MockFramer)(nil).InstallKeys), level, opener, sealer)
}

func (m *MockFramer) DiscardKeys(level protocol.EncryptionLevel) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DiscardKeys", level)
}

func (mr *MockFramerMockRecorder) DiscardKeys(level interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DiscardKeys", reflect.TypeOf((*MockFramer)(nil).DiscardKeys), level)
}
