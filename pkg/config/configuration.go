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

package config

import (
	"context"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/matrixorigin/mohash/pkg/common/moerr"
	"github.com/matrixorigin/mohash/pkg/container/hashtable"
	"github.com/matrixorigin/mohash/pkg/logutil"
)

const (
	// StrategyBoth runs every workload against both strategies.
	StrategyBoth = "both"

	defaultKeys      = 10000
	defaultKeySpace  = 20000
	defaultRounds    = 4
	defaultWorkers   = 4
	defaultPrime     = 109345121
	defaultCapacity  = 17
	defaultRemoveRat = 0.25
)

// BenchConfig of mo-hashbench
type BenchConfig struct {
	//chain, probe or both
	Strategy string `toml:"strategy"`

	//initial capacity of every map. default: 17
	Capacity int `toml:"capacity"`

	//prime modulus of the compression function. default: 109345121
	Prime int64 `toml:"prime"`

	//seed of the workload generator. The coefficients of every map are
	//drawn from a source derived from it as well.
	Seed int64 `toml:"seed"`

	//operations per task
	Keys int `toml:"keys"`

	//keys are drawn from [0, key-space)
	KeySpace int64 `toml:"key-space"`

	//fraction of operations that are removals, in [0, 1)
	RemoveRatio float64 `toml:"remove-ratio"`

	//tasks per worker
	Rounds int `toml:"rounds"`

	//size of the worker pool
	Workers int `toml:"workers"`

	//listen address of the prometheus endpoint. Empty disables it.
	MetricsAddr string `toml:"metrics-addr"`

	Log logutil.LogConfig `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() BenchConfig {
	return BenchConfig{
		Strategy:    StrategyBoth,
		Capacity:    defaultCapacity,
		Prime:       defaultPrime,
		Seed:        1,
		Keys:        defaultKeys,
		KeySpace:    defaultKeySpace,
		RemoveRatio: defaultRemoveRat,
		Rounds:      defaultRounds,
		Workers:     defaultWorkers,
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load decodes the TOML file at path on top of Default.
func Load(path string) (BenchConfig, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return BenchConfig{}, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return BenchConfig{}, errors.Newf("load config %s: unknown key %s", path, undecoded[0].String())
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c *BenchConfig) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}

// Strategies expands Strategy into the list of strategies to run.
func (c *BenchConfig) Strategies() []string {
	if c.Strategy == StrategyBoth {
		return []string{hashtable.StrategyChain, hashtable.StrategyProbe}
	}
	return []string{c.Strategy}
}

func (c *BenchConfig) Validate(ctx context.Context) error {
	switch c.Strategy {
	case hashtable.StrategyChain, hashtable.StrategyProbe, StrategyBoth:
	default:
		return moerr.NewBadConfig(ctx, "strategy must be chain, probe or both, got %q", c.Strategy)
	}
	if c.Capacity < 1 {
		return moerr.NewBadConfig(ctx, "capacity must be positive, got %d", c.Capacity)
	}
	if c.Prime < 2 {
		return moerr.NewBadConfig(ctx, "prime must be at least 2, got %d", c.Prime)
	}
	if c.Keys < 1 {
		return moerr.NewBadConfig(ctx, "keys must be positive, got %d", c.Keys)
	}
	if c.KeySpace < 1 {
		return moerr.NewBadConfig(ctx, "key-space must be positive, got %d", c.KeySpace)
	}
	if c.RemoveRatio < 0 || c.RemoveRatio >= 1 {
		return moerr.NewBadConfig(ctx, "remove-ratio must be in [0, 1), got %v", c.RemoveRatio)
	}
	if c.Rounds < 1 {
		return moerr.NewBadConfig(ctx, "rounds must be positive, got %d", c.Rounds)
	}
	if c.Workers < 1 {
		return moerr.NewBadConfig(ctx, "workers must be positive, got %d", c.Workers)
	}
	return nil
}
