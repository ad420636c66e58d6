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

// Package bench runs randomized workloads against the hash maps and
// verifies every result.
package bench

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/axiomhq/hyperloglog"
	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/mohash/pkg/common/moerr"
	"github.com/matrixorigin/mohash/pkg/config"
	"github.com/matrixorigin/mohash/pkg/logutil"
	v2 "github.com/matrixorigin/mohash/pkg/util/metric/v2"
)

// StrategyReport aggregates every task run against one strategy.
type StrategyReport struct {
	Strategy    string
	Tasks       int
	Failed      int
	Puts        int64
	Gets        int64
	Removes     int64
	Resizes     int
	MaxCapacity int
	Tombstones  int
	Entries     int
	// DistinctKeys is a HyperLogLog estimate over the keys of all tasks.
	DistinctKeys uint64
	// Duration is the sum of task durations.
	Duration time.Duration

	sketch *hyperloglog.Sketch
}

type Report struct {
	Strategies []*StrategyReport
	Elapsed    time.Duration
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range r.Strategies {
		n, err := fmt.Fprintf(w,
			"%-6s tasks=%d failed=%d puts=%d gets=%d removes=%d resizes=%d max-capacity=%d tombstones=%d entries=%d distinct-keys~%d task-time=%s\n",
			s.Strategy, s.Tasks, s.Failed, s.Puts, s.Gets, s.Removes, s.Resizes,
			s.MaxCapacity, s.Tombstones, s.Entries, s.DistinctKeys, s.Duration)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "elapsed %s\n", r.Elapsed)
	return total + int64(n), err
}

func (s *StrategyReport) add(res taskResult) error {
	s.Puts += res.puts
	s.Gets += res.gets
	s.Removes += res.removes
	s.Resizes += res.stats.Resizes
	s.MaxCapacity = max(s.MaxCapacity, res.stats.Capacity)
	s.Tombstones += res.stats.Tombstones
	s.Entries += res.stats.Size
	s.Duration += res.duration
	return s.sketch.Merge(res.sketch)
}

// Run submits workers*rounds tasks per strategy to a pool of cfg.Workers
// goroutines and waits for them. Every task owns its map. Failed tasks are
// combined into the returned error; the report is returned either way.
// Cancelling ctx stops the submission of new tasks.
func Run(ctx context.Context, cfg config.BenchConfig) (*Report, error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, moerr.ConvertGoError(ctx, err)
	}
	defer pool.Release()

	logger := logutil.GetGlobalLogger()
	start := time.Now()
	report := &Report{}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		runErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		runErr = errors.CombineErrors(runErr, err)
	}

	taskCount := cfg.Workers * cfg.Rounds
submit:
	for si, strategy := range cfg.Strategies() {
		sr := &StrategyReport{Strategy: strategy, sketch: hyperloglog.New()}
		report.Strategies = append(report.Strategies, sr)

		for i := 0; i < taskCount; i++ {
			if ctx.Err() != nil {
				break submit
			}
			t := &task{
				strategy: strategy,
				seed:     cfg.Seed + int64(si*taskCount+i),
				cfg:      &cfg,
				logger:   logger,
			}
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				res, err := runTask(ctx, t)

				mu.Lock()
				defer mu.Unlock()
				sr.Tasks++
				if err != nil {
					sr.Failed++
					runErr = errors.CombineErrors(runErr, err)
					return
				}
				if err := sr.add(res); err != nil {
					runErr = errors.CombineErrors(runErr, err)
				}
			})
			if err != nil {
				wg.Done()
				fail(errors.Wrap(err, "submit bench task"))
				break submit
			}
		}
	}
	wg.Wait()

	for _, sr := range report.Strategies {
		sr.DistinctKeys = sr.sketch.Estimate()
	}
	report.Elapsed = time.Since(start)

	logger.Info("hash bench finished",
		zap.Int("strategies", len(report.Strategies)),
		zap.Duration("elapsed", report.Elapsed),
		zap.Error(runErr))
	if runErr == nil && ctx.Err() != nil {
		runErr = ctx.Err()
	}
	return report, runErr
}

// runTask runs t, turning a panic inside the map into an error.
func runTask(ctx context.Context, t *task) (res taskResult, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = moerr.ConvertPanicError(ctx, e)
		}
		result := "ok"
		if err != nil {
			result = "failed"
			logutil.Error("bench task failed",
				zap.String("strategy", t.strategy),
				zap.Int64("seed", t.seed),
				zap.Error(err))
		} else {
			v2.BenchTaskDurationHistogram.WithLabelValues(t.strategy).Observe(res.duration.Seconds())
			v2.GetHashtableOperationCounter(t.strategy, "put").Add(float64(res.puts))
			v2.GetHashtableOperationCounter(t.strategy, "get").Add(float64(res.gets))
			v2.GetHashtableOperationCounter(t.strategy, "remove").Add(float64(res.removes))
		}
		v2.BenchTaskCounter.WithLabelValues(t.strategy, result).Inc()
	}()
	return t.run(ctx)
}
