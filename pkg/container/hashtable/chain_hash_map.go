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
	"github.com/matrixorigin/mohash/pkg/container/kv"
	"github.com/matrixorigin/mohash/pkg/container/unsorted"
)

// ChainHashMap resolves collisions by separate chaining: each slot holds
// its own small unordered map, allocated on first insert.
type ChainHashMap[K comparable, V any] struct {
	hashMap[K, V]
	buckets []*unsorted.Map[K, V]
}

var _ kv.Map[int, int] = new(ChainHashMap[int, int])

func NewChainHashMap[K comparable, V any](opts ...Option) *ChainHashMap[K, V] {
	return NewChainHashMapWithHasher[K, V](nil, opts...)
}

// NewChainHashMapWithHasher is NewChainHashMap with an explicit hasher.
// A nil hasher selects hashcode.Default.
func NewChainHashMapWithHasher[K comparable, V any](h hashcode.Hasher[K], opts ...Option) *ChainHashMap[K, V] {
	m := &ChainHashMap[K, V]{}
	m.init(StrategyChain, m, h, opts)
	return m
}

func (m *ChainHashMap[K, V]) create(capacity int) {
	m.buckets = make([]*unsorted.Map[K, V], capacity)
}

func (m *ChainHashMap[K, V]) bucketGet(h int, k K) (v V, ok bool) {
	bucket := m.buckets[h]
	if bucket == nil {
		return
	}
	return bucket.Get(k)
}

func (m *ChainHashMap[K, V]) bucketPut(h int, k K, v V) (old V, found bool, added int) {
	bucket := m.buckets[h]
	if bucket == nil {
		bucket = unsorted.New[K, V]()
		m.buckets[h] = bucket
	}
	oldSize := bucket.Size()
	old, found = bucket.Put(k, v)
	return old, found, bucket.Size() - oldSize
}

func (m *ChainHashMap[K, V]) bucketRemove(h int, k K) (v V, ok bool, removed int) {
	bucket := m.buckets[h]
	if bucket == nil {
		return
	}
	oldSize := bucket.Size()
	v, ok = bucket.Remove(k)
	removed = oldSize - bucket.Size()
	if bucket.IsEmpty() {
		m.buckets[h] = nil
	}
	return v, ok, removed
}

func (m *ChainHashMap[K, V]) appendEntries(buf []kv.Entry[K, V]) []kv.Entry[K, V] {
	for _, bucket := range m.buckets {
		if bucket != nil {
			buf = bucket.AppendEntries(buf)
		}
	}
	return buf
}

func (m *ChainHashMap[K, V]) fillStats(s *Stats) {
	for _, bucket := range m.buckets {
		if bucket == nil {
			continue
		}
		s.Buckets++
		if bucket.Size() > s.LongestChain {
			s.LongestChain = bucket.Size()
		}
	}
}
