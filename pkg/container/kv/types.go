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

// Package kv holds the entry type and the map contract shared by every
// associative container in this module.
package kv

import "iter"

// Entry is a key/value pair. The key never changes once the entry is
// stored; the value can be replaced in place by the owning map.
//
// Entries returned to callers are copies: calling SetValue on one does
// not change the map it came from. Use Put for that.
type Entry[K any, V any] struct {
	key   K
	value V
}

func NewEntry[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

func (e Entry[K, V]) Key() K {
	return e.key
}

func (e Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value and returns the old one.
func (e *Entry[K, V]) SetValue(v V) V {
	old := e.value
	e.value = v
	return old
}

// Map is an associative container with unique keys.
//
// Get, Put and Remove report absence through the bool result: Get and
// Remove return false when k is not present, Put returns false when k
// was newly inserted. The returned V is then the zero value.
//
// Keys, Values and Entries return finite sequences over a snapshot taken
// when they are called. Mutating the map while ranging over a sequence
// does not affect it; call again for a fresh snapshot.
//
// Keys are matched with ==. A key that does not equal itself, such as a
// float NaN, is stored on every Put and is never found again.
//
// Implementations are not safe for concurrent use.
type Map[K any, V any] interface {
	Size() int
	IsEmpty() bool
	Get(k K) (V, bool)
	Put(k K, v V) (V, bool)
	Remove(k K) (V, bool)
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq[Entry[K, V]]
}

// KeysOf projects an entry snapshot onto its keys.
func KeysOf[K any, V any](entries []Entry[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range entries {
			if !yield(entries[i].key) {
				return
			}
		}
	}
}

// ValuesOf projects an entry snapshot onto its values.
func ValuesOf[K any, V any](entries []Entry[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range entries {
			if !yield(entries[i].value) {
				return
			}
		}
	}
}

// Seq yields the entries of a snapshot in order.
func Seq[K any, V any](entries []Entry[K, V]) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for i := range entries {
			if !yield(entries[i]) {
				return
			}
		}
	}
}
