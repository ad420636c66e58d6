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
	"iter"

	"go.uber.org/zap"

	"github.com/matrixorigin/mohash/pkg/common/hashcode"
	"github.com/matrixorigin/mohash/pkg/container/kv"
)

const (
	StrategyChain = "chain"
	StrategyProbe = "probe"
)

// table is the storage strategy behind a hashMap. h is always a slot
// index in [0, capacity) already computed by the compression function.
type table[K comparable, V any] interface {
	// create installs empty storage for capacity slots.
	create(capacity int)
	bucketGet(h int, k K) (V, bool)
	// bucketPut inserts or updates k. added is the number of new entries.
	bucketPut(h int, k K, v V) (old V, found bool, added int)
	// bucketRemove deletes k. removed is the number of entries dropped.
	bucketRemove(h int, k K) (v V, ok bool, removed int)
	// appendEntries appends the live entries in slot order.
	appendEntries(buf []kv.Entry[K, V]) []kv.Entry[K, V]
	fillStats(s *Stats)
}

// ResizeEvent describes one growth of a table.
type ResizeEvent struct {
	Strategy    string
	OldCapacity int
	NewCapacity int
	Entries     int
}

// Stats is a point-in-time view of a table's shape.
type Stats struct {
	Strategy string
	Capacity int
	Size     int
	Resizes  int
	// Tombstones is the number of deleted slots still blocking probe
	// sequences. Always zero for chaining.
	Tombstones int
	// Buckets and LongestChain are only set for chaining.
	Buckets      int
	LongestChain int
}

type options struct {
	capacity int
	prime    int64
	rand     RandSource
	logger   *zap.Logger
	onResize func(ResizeEvent)
}

type Option func(*options)

// WithCapacity sets the initial slot count. Values below 1 become 1.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithPrime sets the prime modulus of the compression function.
// Values below 2 keep the default.
func WithPrime(prime int64) Option {
	return func(o *options) {
		o.prime = prime
	}
}

// WithRand sets the source of the compression coefficients.
func WithRand(r RandSource) Option {
	return func(o *options) {
		o.rand = r
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithResizeHook registers fn to be called after every resize.
func WithResizeHook(fn func(ResizeEvent)) Option {
	return func(o *options) {
		o.onResize = fn
	}
}

func newOptions(opts []Option) options {
	o := options{
		capacity: kDefaultCapacity,
		prime:    kDefaultPrime,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		o.capacity = 1
	}
	if o.prime < 2 {
		o.prime = kDefaultPrime
	}
	if o.rand == nil {
		o.rand = newRandSource()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// hashMap owns sizing, compression and growth. The slot storage lives in
// the strategy it is bound to.
type hashMap[K comparable, V any] struct {
	n        int
	capacity int
	resizes  int
	strategy string
	comp     compressor
	hasher   hashcode.Hasher[K]
	table    table[K, V]
	logger   *zap.Logger
	onResize func(ResizeEvent)
}

func (m *hashMap[K, V]) init(strategy string, t table[K, V], h hashcode.Hasher[K], opts []Option) {
	o := newOptions(opts)
	if h == nil {
		h = hashcode.Default[K]()
	}
	m.capacity = o.capacity
	m.strategy = strategy
	m.comp = newCompressor(o.prime, o.rand)
	m.hasher = h
	m.table = t
	m.logger = o.logger
	m.onResize = o.onResize
	m.table.create(m.capacity)
}

func (m *hashMap[K, V]) hashValue(k K) int {
	return m.comp.index(m.hasher.HashCode(k), m.capacity)
}

func (m *hashMap[K, V]) Size() int {
	return m.n
}

func (m *hashMap[K, V]) IsEmpty() bool {
	return m.n == 0
}

// Capacity returns the current number of slots.
func (m *hashMap[K, V]) Capacity() int {
	return m.capacity
}

func (m *hashMap[K, V]) Strategy() string {
	return m.strategy
}

func (m *hashMap[K, V]) Get(k K) (V, bool) {
	return m.table.bucketGet(m.hashValue(k), k)
}

// Put associates v with k. It returns the previous value and true when k
// was already present. A put that pushes the load factor above one half
// grows the table.
func (m *hashMap[K, V]) Put(k K, v V) (V, bool) {
	old, found := m.insert(k, v)
	for m.n > m.capacity/2 {
		m.resize(m.growTarget())
	}
	return old, found
}

func (m *hashMap[K, V]) Remove(k K) (V, bool) {
	v, ok, removed := m.table.bucketRemove(m.hashValue(k), k)
	m.n -= removed
	return v, ok
}

func (m *hashMap[K, V]) insert(k K, v V) (V, bool) {
	old, found, added := m.table.bucketPut(m.hashValue(k), k, v)
	m.n += added
	return old, found
}

func (m *hashMap[K, V]) growTarget() int {
	newCap := 2*m.capacity - 1
	if newCap <= m.capacity {
		newCap = m.capacity + 1
	}
	return newCap
}

// resize rebuilds the storage with newCap slots and re-inserts every live
// entry against the new capacity with the same coefficients.
func (m *hashMap[K, V]) resize(newCap int) {
	buffer := m.table.appendEntries(make([]kv.Entry[K, V], 0, m.n))
	oldCap := m.capacity

	m.capacity = newCap
	m.table.create(newCap)
	m.n = 0
	for i := range buffer {
		m.insert(buffer[i].Key(), buffer[i].Value())
	}
	m.resizes++

	m.logger.Debug("hashtable resized",
		zap.String("strategy", m.strategy),
		zap.Int("old-capacity", oldCap),
		zap.Int("new-capacity", newCap),
		zap.Int("entries", m.n))
	if m.onResize != nil {
		m.onResize(ResizeEvent{
			Strategy:    m.strategy,
			OldCapacity: oldCap,
			NewCapacity: newCap,
			Entries:     m.n,
		})
	}
}

func (m *hashMap[K, V]) snapshot() []kv.Entry[K, V] {
	return m.table.appendEntries(make([]kv.Entry[K, V], 0, m.n))
}

func (m *hashMap[K, V]) Entries() iter.Seq[kv.Entry[K, V]] {
	return kv.Seq(m.snapshot())
}

func (m *hashMap[K, V]) Keys() iter.Seq[K] {
	return kv.KeysOf(m.snapshot())
}

func (m *hashMap[K, V]) Values() iter.Seq[V] {
	return kv.ValuesOf(m.snapshot())
}

func (m *hashMap[K, V]) Stats() Stats {
	s := Stats{
		Strategy: m.strategy,
		Capacity: m.capacity,
		Size:     m.n,
		Resizes:  m.resizes,
	}
	m.table.fillStats(&s)
	return s
}
