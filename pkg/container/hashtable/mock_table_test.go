// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashtable

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	kv "github.com/matrixorigin/mohash/pkg/container/kv"
)

// MockTable is a mock of the table interface.
type MockTable[K comparable, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockTableMockRecorder[K, V]
}

// MockTableMockRecorder is the mock recorder for MockTable.
type MockTableMockRecorder[K comparable, V any] struct {
	mock *MockTable[K, V]
}

// NewMockTable creates a new mock instance.
func NewMockTable[K comparable, V any](ctrl *gomock.Controller) *MockTable[K, V] {
	mock := &MockTable[K, V]{ctrl: ctrl}
	mock.recorder = &MockTableMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTable[K, V]) EXPECT() *MockTableMockRecorder[K, V] {
	return m.recorder
}

// appendEntries mocks base method.
func (m *MockTable[K, V]) appendEntries(buf []kv.Entry[K, V]) []kv.Entry[K, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "appendEntries", buf)
	ret0, _ := ret[0].([]kv.Entry[K, V])
	return ret0
}

// appendEntries indicates an expected call of appendEntries.
func (mr *MockTableMockRecorder[K, V]) appendEntries(buf interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "appendEntries", reflect.TypeOf((*MockTable[K, V])(nil).appendEntries), buf)
}

// bucketGet mocks base method.
func (m *MockTable[K, V]) bucketGet(h int, k K) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "bucketGet", h, k)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// bucketGet indicates an expected call of bucketGet.
func (mr *MockTableMockRecorder[K, V]) bucketGet(h, k interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "bucketGet", reflect.TypeOf((*MockTable[K, V])(nil).bucketGet), h, k)
}

// bucketPut mocks base method.
func (m *MockTable[K, V]) bucketPut(h int, k K, v V) (V, bool, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "bucketPut", h, k, v)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(int)
	return ret0, ret1, ret2
}

// bucketPut indicates an expected call of bucketPut.
func (mr *MockTableMockRecorder[K, V]) bucketPut(h, k, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "bucketPut", reflect.TypeOf((*MockTable[K, V])(nil).bucketPut), h, k, v)
}

// bucketRemove mocks base method.
func (m *MockTable[K, V]) bucketRemove(h int, k K) (V, bool, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "bucketRemove", h, k)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(int)
	return ret0, ret1, ret2
}

// bucketRemove indicates an expected call of bucketRemove.
func (mr *MockTableMockRecorder[K, V]) bucketRemove(h, k interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "bucketRemove", reflect.TypeOf((*MockTable[K, V])(nil).bucketRemove), h, k)
}

// create mocks base method.
func (m *MockTable[K, V]) create(capacity int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "create", capacity)
}

// create indicates an expected call of create.
func (mr *MockTableMockRecorder[K, V]) create(capacity interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "create", reflect.TypeOf((*MockTable[K, V])(nil).create), capacity)
}

// fillStats mocks base method.
func (m *MockTable[K, V]) fillStats(s *Stats) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "fillStats", s)
}

// fillStats indicates an expected call of fillStats.
func (mr *MockTableMockRecorder[K, V]) fillStats(s interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "fillStats", reflect.TypeOf((*MockTable[K, V])(nil).fillStats), s)
}
