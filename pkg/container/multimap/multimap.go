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

// Package multimap associates each key with a list of values, kept in a
// chaining hash map keyed by K.
package multimap

import (
	"iter"
	"slices"

	"github.com/matrixorigin/mohash/pkg/container/hashtable"
	"github.com/matrixorigin/mohash/pkg/container/kv"
)

type HashMultimap[K comparable, V comparable] struct {
	m     *hashtable.ChainHashMap[K, []V]
	total int
}

func New[K comparable, V comparable](opts ...hashtable.Option) *HashMultimap[K, V] {
	return &HashMultimap[K, V]{
		m: hashtable.NewChainHashMap[K, []V](opts...),
	}
}

// Size returns the number of (key, value) pairs.
func (mm *HashMultimap[K, V]) Size() int {
	return mm.total
}

func (mm *HashMultimap[K, V]) IsEmpty() bool {
	return mm.total == 0
}

// KeyCount returns the number of distinct keys.
func (mm *HashMultimap[K, V]) KeyCount() int {
	return mm.m.Size()
}

// Get returns a copy of the values stored under k, in insertion order.
func (mm *HashMultimap[K, V]) Get(k K) []V {
	vs, _ := mm.m.Get(k)
	return slices.Clone(vs)
}

func (mm *HashMultimap[K, V]) Put(k K, v V) {
	vs, _ := mm.m.Get(k)
	mm.m.Put(k, append(vs, v))
	mm.total++
}

// Remove drops one occurrence of v under k and reports whether one was found.
func (mm *HashMultimap[K, V]) Remove(k K, v V) bool {
	vs, ok := mm.m.Get(k)
	if !ok {
		return false
	}
	i := slices.Index(vs, v)
	if i == -1 {
		return false
	}
	vs = slices.Delete(vs, i, i+1)
	mm.total--
	if len(vs) == 0 {
		mm.m.Remove(k)
	} else {
		mm.m.Put(k, vs)
	}
	return true
}

// RemoveAll drops k and returns the values it held.
func (mm *HashMultimap[K, V]) RemoveAll(k K) []V {
	vs, ok := mm.m.Remove(k)
	if !ok {
		return nil
	}
	mm.total -= len(vs)
	return vs
}

func (mm *HashMultimap[K, V]) Keys() iter.Seq[K] {
	return mm.m.Keys()
}

// Entries yields one entry per (key, value) pair from a snapshot taken now.
func (mm *HashMultimap[K, V]) Entries() iter.Seq[kv.Entry[K, V]] {
	buf := make([]kv.Entry[K, V], 0, mm.total)
	for e := range mm.m.Entries() {
		for _, v := range e.Value() {
			buf = append(buf, kv.NewEntry(e.Key(), v))
		}
	}
	return kv.Seq(buf)
}
