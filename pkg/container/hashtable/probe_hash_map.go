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
	"github.com/matrixorigin/mohash/pkg/common/hashcode"
	"github.com/matrixorigin/mohash/pkg/common/moerr"
	"github.com/matrixorigin/mohash/pkg/container/kv"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type probeSlot[K comparable, V any] struct {
	state slotState
	entry kv.Entry[K, V]
}

// ProbeHashMap resolves collisions by linear probing over one flat slot
// array. A removed entry leaves a tombstone so that probe sequences
// running through its slot stay intact; tombstones are reused by later
// inserts and dropped on resize.
type ProbeHashMap[K comparable, V any] struct {
	hashMap[K, V]
	slots      []probeSlot[K, V]
	tombstones int
}

var _ kv.Map[int, int] = new(ProbeHashMap[int, int])

func NewProbeHashMap[K comparable, V any](opts ...Option) *ProbeHashMap[K, V] {
	return NewProbeHashMapWithHasher[K, V](nil, opts...)
}

// NewProbeHashMapWithHasher is NewProbeHashMap with an explicit hasher.
// A nil hasher selects hashcode.Default.
func NewProbeHashMapWithHasher[K comparable, V any](h hashcode.Hasher[K], opts ...Option) *ProbeHashMap[K, V] {
	m := &ProbeHashMap[K, V]{}
	m.init(StrategyProbe, m, h, opts)
	return m
}

func (m *ProbeHashMap[K, V]) create(capacity int) {
	m.slots = make([]probeSlot[K, V], capacity)
	m.tombstones = 0
}

// findSlot scans from h until it meets k, an empty slot, or h again.
// On a hit it returns k's slot and true. On a miss it returns the first
// empty or tombstoned slot seen on the way, or -1 if there was none.
func (m *ProbeHashMap[K, V]) findSlot(h int, k K) (int, bool) {
	avail := -1
	i := h
	for {
		s := &m.slots[i]
		if s.state != slotOccupied {
			if avail == -1 {
				avail = i
			}
			if s.state == slotEmpty {
				break
			}
		} else if s.entry.Key() == k {
			return i, true
		}
		i = (i + 1) % m.capacity
		if i == h {
			break
		}
	}
	return avail, false
}

func (m *ProbeHashMap[K, V]) bucketGet(h int, k K) (v V, ok bool) {
	i, found := m.findSlot(h, k)
	if !found {
		return
	}
	return m.slots[i].entry.Value(), true
}

func (m *ProbeHashMap[K, V]) bucketPut(h int, k K, v V) (old V, found bool, added int) {
	i, found := m.findSlot(h, k)
	if found {
		return m.slots[i].entry.SetValue(v), true, 0
	}
	if i < 0 {
		// growth keeps n <= capacity/2, so a full cycle always passes a free slot
		panic(moerr.NewInternalErrorNoCtx("probe table full: capacity %d, entries %d", m.capacity, m.n))
	}
	s := &m.slots[i]
	if s.state == slotTombstone {
		m.tombstones--
	}
	s.state = slotOccupied
	s.entry = kv.NewEntry(k, v)
	return old, false, 1
}

func (m *ProbeHashMap[K, V]) bucketRemove(h int, k K) (v V, ok bool, removed int) {
	i, found := m.findSlot(h, k)
	if !found {
		return
	}
	s := &m.slots[i]
	v = s.entry.Value()
	// never back to empty: keys probing through i must still find their slot
	s.state = slotTombstone
	s.entry = kv.Entry[K, V]{}
	m.tombstones++
	return v, true, 1
}

func (m *ProbeHashMap[K, V]) appendEntries(buf []kv.Entry[K, V]) []kv.Entry[K, V] {
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			buf = append(buf, m.slots[i].entry)
		}
	}
	return buf
}

func (m *ProbeHashMap[K, V]) fillStats(s *Stats) {
	s.Tombstones = m.tombstones
}
