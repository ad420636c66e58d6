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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mohash/pkg/common/moerr"
	"github.com/matrixorigin/mohash/pkg/container/hashtable"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate(context.Background()))
	require.Equal(t, []string{hashtable.StrategyChain, hashtable.StrategyProbe}, cfg.Strategies())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	data := `
strategy = "probe"
keys = 500
workers = 2

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, hashtable.StrategyProbe, cfg.Strategy)
	assert.Equal(t, 500, cfg.Keys)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep their defaults
	assert.Equal(t, defaultCapacity, cfg.Capacity)
	assert.Equal(t, int64(defaultPrime), cfg.Prime)
	assert.Equal(t, []string{hashtable.StrategyProbe}, cfg.Strategies())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("keys = \"many\""), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("buckets = 3"), 0o644))
	_, err = Load(unknown)
	require.ErrorContains(t, err, "unknown key buckets")
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Strategy = hashtable.StrategyChain
	cfg.MetricsAddr = "127.0.0.1:7001"

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	require.Contains(t, buf.String(), `metrics-addr = "127.0.0.1:7001"`)

	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *BenchConfig)
	}{
		{"strategy", func(c *BenchConfig) { c.Strategy = "cuckoo" }},
		{"capacity", func(c *BenchConfig) { c.Capacity = 0 }},
		{"prime", func(c *BenchConfig) { c.Prime = 1 }},
		{"keys", func(c *BenchConfig) { c.Keys = 0 }},
		{"key-space", func(c *BenchConfig) { c.KeySpace = 0 }},
		{"remove-ratio", func(c *BenchConfig) { c.RemoveRatio = 1 }},
		{"rounds", func(c *BenchConfig) { c.Rounds = -1 }},
		{"workers", func(c *BenchConfig) { c.Workers = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate(context.Background())
			require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadConfig), "%v", err)
			require.Contains(t, err.Error(), tt.name)
		})
	}
}
