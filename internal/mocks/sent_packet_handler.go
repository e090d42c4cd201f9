package mocks

import (
	"reflect"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/ackhandler"
	"github.com/quicwire/qconn/internal/protocol"
)

// MockSentPacketHandler fakes the congestion/loss-recovery collaborator,
// letting connection-driver tests control exactly when SendMode,
// GetLossDetectionTimeout, and ReceivedAck's rearm signal fire without
// a real congestion controller in the loop.
type MockSentPacketHandler struct {
	ctrl     *gomock.Controller
	recorder *MockSentPacketHandlerMockRecorder
}

type MockSentPacketHandlerMockRecorder struct {
	mock *MockSentPacketHandler
}

func NewMockSentPacketHandler(ctrl *gomock.Controller) *MockSentPacketHandler {
	m := &MockSentPacketHandler{ctrl: ctrl}
	m.recorder = &MockSentPacketHandlerMockRecorder{m}
	return m
}

func (m *MockSentPacketHandler) EXPECT() *MockSentPacketHandlerMockRecorder { return m.recorder }

func (m *MockSentPacketHandler) SentPacket(pn protocol.PacketNumber, p *ackhandler.Packet) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SentPacket", pn, p)
}

func (mr *MockSentPacketHandlerMockRecorder) SentPacket(pn, p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SentPacket", reflect.TypeOf((*MockSentPacketHandler)(nil).SentPacket), pn, p)
}

func (m *MockSentPacketHandler) ReceivedAck(ack interface {
	LargestAckedPN() protocol.PacketNumber
}, space protocol.PacketNumberSpace, rcvTime time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReceivedAck", ack, space, rcvTime)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSentPacketHandlerMockRecorder) ReceivedAck(ack, space, rcvTime interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceivedAck", reflect.TypeOf((*MockSentPacketHandler)(nil).ReceivedAck), ack, space, rcvTime)
}

func (m *MockSentPacketHandler) ReceivedBytes(n protocol.ByteCount, rcvTime time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReceivedBytes", n, rcvTime)
}

func (mr *MockSentPacketHandlerMockRecorder) ReceivedBytes(n, rcvTime interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceivedBytes", reflect.TypeOf((*MockSentPacketHandler)(nil).ReceivedBytes), n, rcvTime)
}

func (m *MockSentPacketHandler) DropPackets(space protocol.PacketNumberSpace) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DropPackets", space)
}

func (mr *MockSentPacketHandlerMockRecorder) DropPackets(space interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DropPackets", reflect.TypeOf((*MockSentPacketHandler)(nil).DropPackets), space)
}

func (m *MockSentPacketHandler) RetransmitAllUnacked(space protocol.PacketNumberSpace) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RetransmitAllUnacked", space)
}

func (mr *MockSentPacketHandlerMockRecorder) RetransmitAllUnacked(space interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RetransmitAllUnacked", reflect.TypeOf((*MockSentPacketHandler)(nil).RetransmitAllUnacked), space)
}

func (m *MockSentPacketHandler) ResetForRetry(now time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ResetForRetry", now)
}

func (mr *MockSentPacketHandlerMockRecorder) ResetForRetry(now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetForRetry", reflect.TypeOf((*MockSentPacketHandler)(nil).ResetForRetry), now)
}

func (m *MockSentPacketHandler) SetHandshakeConfirmed() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetHandshakeConfirmed")
}

func (mr *MockSentPacketHandlerMockRecorder) SetHandshakeConfirmed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetHandshakeConfirmed", reflect.TypeOf((*MockSentPacketHandler)(nil).SetHandshakeConfirmed))
}

func (m *MockSentPacketHandler) SendMode(now time.Time) ackhandler.SendMode {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMode", now)
	ret0, _ := ret[0].(ackhandler.SendMode)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) SendMode(now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMode", reflect.TypeOf((*MockSentPacketHandler)(nil).SendMode), now)
}

func (m *MockSentPacketHandler) TimeUntilSend() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TimeUntilSend")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) TimeUntilSend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TimeUntilSend", reflect.TypeOf((*MockSentPacketHandler)(nil).TimeUntilSend))
}

func (m *MockSentPacketHandler) HasPacingBudget(now time.Time) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPacingBudget", now)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) HasPacingBudget(now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPacingBudget", reflect.TypeOf((*MockSentPacketHandler)(nil).HasPacingBudget), now)
}

func (m *MockSentPacketHandler) PeekPacketNumber(space protocol.PacketNumberSpace) (protocol.PacketNumber, protocol.PacketNumberLen) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeekPacketNumber", space)
	ret0, _ := ret[0].(protocol.PacketNumber)
	ret1, _ := ret[1].(protocol.PacketNumberLen)
	return ret0, ret1
}

func (mr *MockSentPacketHandlerMockRecorder) PeekPacketNumber(space interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeekPacketNumber", reflect.TypeOf((*MockSentPacketHandler)(nil).PeekPacketNumber), space)
}

func (m *MockSentPacketHandler) PopPacketNumber(space protocol.PacketNumberSpace) protocol.PacketNumber {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PopPacketNumber", space)
	ret0, _ := ret[0].(protocol.PacketNumber)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) PopPacketNumber(space interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PopPacketNumber", reflect.TypeOf((*MockSentPacketHandler)(nil).PopPacketNumber), space)
}

func (m *MockSentPacketHandler) GetLossDetectionTimeout() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLossDetectionTimeout")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) GetLossDetectionTimeout() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLossDetectionTimeout", reflect.TypeOf((*MockSentPacketHandler)(nil).GetLossDetectionTimeout))
}

func (m *MockSentPacketHandler) OnLossDetectionTimeout() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnLossDetectionTimeout")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) OnLossDetectionTimeout() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnLossDetectionTimeout", reflect.TypeOf((*MockSentPacketHandler)(nil).OnLossDetectionTimeout))
}

func (m *MockSentPacketHandler) QueueProbePacket(space protocol.PacketNumberSpace) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueueProbePacket", space)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSentPacketHandlerMockRecorder) QueueProbePacket(space interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueueProbePacket", reflect.TypeOf((*MockSentPacketHandler)(nil).QueueProbePacket), space)
}
