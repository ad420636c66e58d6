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
	"math/rand"
	"time"
)

const (
	kDefaultCapacity = 17
	kDefaultPrime    = 109345121
)

// RandSource draws the compression coefficients. *math/rand.Rand satisfies it.
type RandSource interface {
	Int63n(n int64) int64
}

// newRandSource builds the per-map source used when no WithRand option is given.
var newRandSource = func() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// compressor is the multiply-add-divide compression function
//
//	index = (|hc*scale + shift| mod prime) mod capacity
//
// scale and shift are fixed for the lifetime of a map; resizing only
// changes capacity.
type compressor struct {
	prime int64
	scale int64
	shift int64
}

func newCompressor(prime int64, r RandSource) compressor {
	return compressor{
		prime: prime,
		scale: r.Int63n(prime-1) + 1,
		shift: r.Int63n(prime),
	}
}

func (c compressor) index(hc int64, capacity int) int {
	v := hc*c.scale + c.shift
	u := uint64(v)
	if v < 0 {
		// two's complement negation also covers math.MinInt64
		u = -u
	}
	return int(u % uint64(c.prime) % uint64(capacity))
}
