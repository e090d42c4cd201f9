package mocks

import (
	"reflect"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/quicwire/qconn/internal/connio"
)

// MockAlarmHandle fakes a single timer; tests query IsSet/Deadline
// directly instead of waiting on a real clock.
type MockAlarmHandle struct {
	ctrl     *gomock.Controller
	recorder *MockAlarmHandleMockRecorder
}

type MockAlarmHandleMockRecorder struct {
	mock *MockAlarmHandle
}

func NewMockAlarmHandle(ctrl *gomock.Controller) *MockAlarmHandle {
	m := &MockAlarmHandle{ctrl: ctrl}
	m.recorder = &MockAlarmHandleMockRecorder{m}
	return m
}

func (m *MockAlarmHandle) EXPECT() *MockAlarmHandleMockRecorder { return m.recorder }

func (m *MockAlarmHandle) Set(deadline time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Set", deadline)
}

func (mr *MockAlarmHandleMockRecorder) Set(deadline interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockAlarmHandle)(nil).Set), deadline)
}

func (m *MockAlarmHandle) Update(deadline time.Time, granularity time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Update", deadline, granularity)
}

func (mr *MockAlarmHandleMockRecorder) Update(deadline, granularity interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAlarmHandle)(nil).Update), deadline, granularity)
}

func (m *MockAlarmHandle) Cancel() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Cancel")
}

func (mr *MockAlarmHandleMockRecorder) Cancel() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockAlarmHandle)(nil).Cancel))
}

func (m *MockAlarmHandle) IsSet() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSet")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockAlarmHandleMockRecorder) IsSet() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSet", reflect.TypeOf((*MockAlarmHandle)(nil).IsSet))
}

func (m *MockAlarmHandle) Deadline() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deadline")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

func (mr *MockAlarmHandleMockRecorder) Deadline() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deadline", reflect.TypeOf((*MockAlarmHandle)(nil).Deadline))
}

// MockAlarmFactory fakes AlarmFactory. Unlike the other mocks here it is
// usually wired to a real FakeAlarmFactory (see fake_alarm_factory.go)
// rather than driven through EXPECT() in most tests, since tests care
// about which deadline was set more than about call counts.
type MockAlarmFactory struct {
	ctrl     *gomock.Controller
	recorder *MockAlarmFactoryMockRecorder
}

type MockAlarmFactoryMockRecorder struct {
	mock *MockAlarmFactory
}

func NewMockAlarmFactory(ctrl *gomock.Controller) *MockAlarmFactory {
	m := &MockAlarmFactory{ctrl: ctrl}
	m.recorder = &MockAlarmFactoryMockRecorder{m}
	return m
}

func (m *MockAlarmFactory) EXPECT() *MockAlarmFactoryMockRecorder { return m.recorder }

func (m *MockAlarmFactory) CreateAlarm(delegate connio.AlarmDelegate) connio.AlarmHandle {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAlarm", delegate)
	ret0, _ := ret[0].(connio.AlarmHandle)
	return ret0
}

func (mr *MockAlarmFactoryMockRecorder) CreateAlarm(delegate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAlarm", reflect.TypeOf((*MockAlarmFactory)(nil).CreateAlarm), delegate)
}
