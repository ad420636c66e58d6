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

// Package unsorted implements a small map kept as an unordered slice of
// entries. Every operation is a linear scan, so it only suits maps with a
// handful of keys, such as the buckets of a chaining hash table.
package unsorted

import (
	"iter"

	"github.com/matrixorigin/mohash/pkg/container/kv"
)

type Map[K comparable, V any] struct {
	entries []kv.Entry[K, V]
}

var _ kv.Map[int, int] = new(Map[int, int])

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func (m *Map[K, V]) findIndex(k K) int {
	for i := range m.entries {
		if m.entries[i].Key() == k {
			return i
		}
	}
	return -1
}

func (m *Map[K, V]) Size() int {
	return len(m.entries)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	i := m.findIndex(k)
	if i == -1 {
		return
	}
	return m.entries[i].Value(), true
}

func (m *Map[K, V]) Put(k K, v V) (old V, ok bool) {
	i := m.findIndex(k)
	if i == -1 {
		m.entries = append(m.entries, kv.NewEntry(k, v))
		return
	}
	return m.entries[i].SetValue(v), true
}

// Remove moves the last entry into the freed position, so removal does
// not preserve iteration order.
func (m *Map[K, V]) Remove(k K) (v V, ok bool) {
	i := m.findIndex(k)
	if i == -1 {
		return
	}
	v = m.entries[i].Value()
	last := len(m.entries) - 1
	if i != last {
		m.entries[i] = m.entries[last]
	}
	m.entries[last] = kv.Entry[K, V]{}
	m.entries = m.entries[:last]
	return v, true
}

// AppendEntries appends copies of all entries to buf.
func (m *Map[K, V]) AppendEntries(buf []kv.Entry[K, V]) []kv.Entry[K, V] {
	return append(buf, m.entries...)
}

func (m *Map[K, V]) Entries() iter.Seq[kv.Entry[K, V]] {
	return kv.Seq(m.AppendEntries(nil))
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return kv.KeysOf(m.AppendEntries(nil))
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return kv.ValuesOf(m.AppendEntries(nil))
}
