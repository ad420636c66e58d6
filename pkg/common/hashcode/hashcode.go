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

// Package hashcode derives the signed 64-bit hash code of a key.
//
// Equal keys must produce equal hash codes. Nothing here verifies that:
// a key type breaking the rule leaves entries unreachable.
package hashcode

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/matrixorigin/mohash/pkg/common/moerr"
)

// Hasher computes hash codes for keys of type K.
type Hasher[K any] interface {
	HashCode(K) int64
}

// Hashable is implemented by key types that compute their own hash code.
type Hashable interface {
	HashCode() int64
}

// Func adapts a plain function to Hasher.
type Func[K any] func(K) int64

func (f Func[K]) HashCode(k K) int64 {
	return f(k)
}

// Integer uses the integer value as its own hash code.
type Integer[T constraints.Integer] struct{}

func (Integer[T]) HashCode(k T) int64 {
	return int64(k)
}

// String hashes the bytes of a string with xxhash.
type String[T ~string] struct{}

func (String[T]) HashCode(k T) int64 {
	return int64(xxhash.Sum64String(string(k)))
}

// Float hashes the IEEE-754 bits of a float. -0 and +0 share a hash code
// because they compare equal. NaN never equals itself, so a NaN key put
// into a map can not be found or removed again; callers must not use it.
type Float[T constraints.Float] struct{}

func (Float[T]) HashCode(k T) int64 {
	f := float64(k)
	if f == 0 {
		f = 0
	}
	return int64(math.Float64bits(f))
}

// Bytes hashes a byte slice with xxhash.
func Bytes(b []byte) int64 {
	return int64(xxhash.Sum64(b))
}

// Default returns a Hasher that inspects the dynamic type of each key.
// Besides the builtin types and Hashable it handles named basic types,
// pointers, channels, and structs and arrays of those. Only keys holding
// a slice, map or func make HashCode panic with a not-supported error.
func Default[K comparable]() Hasher[K] {
	return Func[K](func(k K) int64 {
		return Of(k)
	})
}

// Of returns the hash code of k, panicking when its type is not hashable.
func Of(k any) int64 {
	switch v := k.(type) {
	case Hashable:
		return v.HashCode()
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case uintptr:
		return int64(v)
	case float32:
		return Float[float32]{}.HashCode(v)
	case float64:
		return Float[float64]{}.HashCode(v)
	case string:
		return int64(xxhash.Sum64String(v))
	case bool:
		return boolHash(v)
	case nil:
		return 0
	default:
		return valueOf(reflect.ValueOf(k))
	}
}

func boolHash(b bool) int64 {
	if b {
		return 1231
	}
	return 1237
}

// valueOf hashes by kind so that named types hash like their underlying
// type. Struct fields and array elements are folded 31-wise.
func valueOf(v reflect.Value) int64 {
	if v.CanInterface() {
		if h, ok := v.Interface().(Hashable); ok {
			return h.HashCode()
		}
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return Float[float64]{}.HashCode(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return 31*Float[float64]{}.HashCode(real(c)) + Float[float64]{}.HashCode(imag(c))
	case reflect.String:
		return int64(xxhash.Sum64String(v.String()))
	case reflect.Bool:
		return boolHash(v.Bool())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return int64(v.Pointer())
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return valueOf(v.Elem())
	case reflect.Struct:
		h := int64(17)
		for i := 0; i < v.NumField(); i++ {
			h = 31*h + valueOf(v.Field(i))
		}
		return h
	case reflect.Array:
		h := int64(17)
		for i := 0; i < v.Len(); i++ {
			h = 31*h + valueOf(v.Index(i))
		}
		return h
	default:
		panic(moerr.NewNotSupportedNoCtx("hash code of key type %s", v.Type()))
	}
}
