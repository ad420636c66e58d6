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

package bench

import (
	"context"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/axiomhq/hyperloglog"
	"go.uber.org/zap"

	"github.com/matrixorigin/mohash/pkg/common/hashcode"
	"github.com/matrixorigin/mohash/pkg/common/moerr"
	"github.com/matrixorigin/mohash/pkg/config"
	"github.com/matrixorigin/mohash/pkg/container/hashtable"
	"github.com/matrixorigin/mohash/pkg/container/kv"
	v2 "github.com/matrixorigin/mohash/pkg/util/metric/v2"
)

type benchMap interface {
	kv.Map[uint64, uint64]
	Capacity() int
	Stats() hashtable.Stats
}

// task is one independent workload run against a map of its own.
type task struct {
	strategy string
	seed     int64
	cfg      *config.BenchConfig
	logger   *zap.Logger
}

type taskResult struct {
	puts     int64
	gets     int64
	removes  int64
	stats    hashtable.Stats
	duration time.Duration
	sketch   *hyperloglog.Sketch
}

func (t *task) newMap() benchMap {
	opts := []hashtable.Option{
		hashtable.WithCapacity(t.cfg.Capacity),
		hashtable.WithPrime(t.cfg.Prime),
		hashtable.WithRand(rand.New(rand.NewSource(^t.seed))),
		hashtable.WithLogger(t.logger),
		hashtable.WithResizeHook(v2.ResizeHook()),
	}
	h := hashcode.Integer[uint64]{}
	if t.strategy == hashtable.StrategyProbe {
		return hashtable.NewProbeHashMapWithHasher[uint64, uint64](h, opts...)
	}
	return hashtable.NewChainHashMapWithHasher[uint64, uint64](h, opts...)
}

// run drives a seeded put/get/remove workload and checks every answer of
// the map against a bitmap of the keys that must be present.
func (t *task) run(ctx context.Context) (res taskResult, err error) {
	start := time.Now()
	r := rand.New(rand.NewSource(t.seed))
	m := t.newMap()

	expected := roaring64.New()
	last := make(map[uint64]uint64)
	res.sketch = hyperloglog.New()
	getRatio := (1 - t.cfg.RemoveRatio) / 4

	putDuration := v2.GetHashtableOperationDuration(t.strategy, "put")
	getDuration := v2.GetHashtableOperationDuration(t.strategy, "get")
	removeDuration := v2.GetHashtableOperationDuration(t.strategy, "remove")

	var buf [8]byte
	for i := 0; i < t.cfg.Keys; i++ {
		k := uint64(r.Int63n(t.cfg.KeySpace))
		binary.LittleEndian.PutUint64(buf[:], k)
		res.sketch.Insert(buf[:])

		p := r.Float64()
		switch {
		case p < t.cfg.RemoveRatio:
			res.removes++
			opStart := time.Now()
			v, ok := m.Remove(k)
			removeDuration.Observe(time.Since(opStart).Seconds())
			if ok != expected.Contains(k) || (ok && v != last[k]) {
				return res, moerr.NewInvalidState(ctx, "remove %d returned (%d, %v)", k, v, ok)
			}
			expected.Remove(k)
			delete(last, k)
		case p < t.cfg.RemoveRatio+getRatio:
			res.gets++
			opStart := time.Now()
			v, ok := m.Get(k)
			getDuration.Observe(time.Since(opStart).Seconds())
			if ok != expected.Contains(k) || (ok && v != last[k]) {
				return res, moerr.NewInvalidState(ctx, "get %d returned (%d, %v)", k, v, ok)
			}
		default:
			res.puts++
			v := uint64(i)
			opStart := time.Now()
			old, found := m.Put(k, v)
			putDuration.Observe(time.Since(opStart).Seconds())
			if found != expected.Contains(k) || (found && old != last[k]) {
				return res, moerr.NewInvalidState(ctx, "put %d returned (%d, %v)", k, old, found)
			}
			expected.Add(k)
			last[k] = v
		}
	}

	if err = verify(ctx, m, expected, last); err != nil {
		return res, err
	}
	res.stats = m.Stats()
	res.duration = time.Since(start)
	return res, nil
}

// verify checks the final content of m: its size, every expected key with
// its last value, and no key outside the expected set.
func verify(ctx context.Context, m benchMap, expected *roaring64.Bitmap, last map[uint64]uint64) error {
	if uint64(m.Size()) != expected.GetCardinality() {
		return moerr.NewInvalidState(ctx, "size %d, expected %d", m.Size(), expected.GetCardinality())
	}
	if m.Size() > m.Capacity()/2 {
		return moerr.NewInvalidState(ctx, "size %d exceeds half of capacity %d", m.Size(), m.Capacity())
	}
	it := expected.Iterator()
	for it.HasNext() {
		k := it.Next()
		v, ok := m.Get(k)
		if !ok || v != last[k] {
			return moerr.NewInvalidState(ctx, "key %d lost, got (%d, %v)", k, v, ok)
		}
	}
	for k := range m.Keys() {
		if !expected.Contains(k) {
			return moerr.NewInvalidState(ctx, "removed key %d still present", k)
		}
	}
	return nil
}
