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

package v2

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HashtableResizeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "hashtable",
			Name:      "resize_total",
			Help:      "Total number of hashtable resizes.",
		}, []string{"strategy"})

	HashtableOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "hashtable",
			Name:      "operation_total",
			Help:      "Total number of hashtable operations.",
		}, []string{"strategy", "op"})

	HashtableOperationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mo",
			Subsystem: "hashtable",
			Name:      "operation_duration_seconds",
			Help:      "Bucketed histogram of hashtable operation duration.",
			Buckets:   prometheus.ExponentialBuckets(0.00000001, 2.0, 20),
		}, []string{"strategy", "op"})

	// HashtableEntriesGauge holds the size of the last map reported per strategy.
	HashtableEntriesGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mo",
			Subsystem: "hashtable",
			Name:      "entries",
			Help:      "Number of live entries in the last reported hashtable.",
		}, []string{"strategy"})
)

var (
	BenchTaskDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mo",
			Subsystem: "hashbench",
			Name:      "task_duration_seconds",
			Help:      "Bucketed histogram of bench task duration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2.0, 20),
		}, []string{"strategy"})

	BenchTaskCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "hashbench",
			Name:      "task_total",
			Help:      "Total number of bench tasks.",
		}, []string{"strategy", "result"})
)

// GetHashtableOperationDuration returns the duration histogram of op on
// maps of the given strategy.
func GetHashtableOperationDuration(strategy, op string) prometheus.Observer {
	return HashtableOperationDurationHistogram.WithLabelValues(strategy, op)
}

// GetHashtableOperationCounter returns the counter of op on maps of the
// given strategy.
func GetHashtableOperationCounter(strategy, op string) prometheus.Counter {
	return HashtableOperationCounter.WithLabelValues(strategy, op)
}
