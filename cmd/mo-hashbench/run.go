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

package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/mohash/pkg/bench"
	"github.com/matrixorigin/mohash/pkg/config"
	"github.com/matrixorigin/mohash/pkg/logutil"
	v2 "github.com/matrixorigin/mohash/pkg/util/metric/v2"
)

func runCommand() *cobra.Command {
	var (
		configFile string
		strategy   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bench",
		Long:  "Run the bench described by a TOML config file, or the default one when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				var err error
				if cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}
			if strategy != "" {
				cfg.Strategy = strategy
			}
			if err := cfg.Validate(cmd.Context()); err != nil {
				return err
			}
			logutil.SetupLogger(&cfg.Log)

			if cfg.MetricsAddr != "" {
				_, stop, err := serveMetrics(cfg.MetricsAddr)
				if err != nil {
					return err
				}
				defer stop()
			}

			report, err := bench.Run(cmd.Context(), cfg)
			if report != nil {
				if _, werr := report.WriteTo(cmd.OutOrStdout()); werr != nil {
					return errors.CombineErrors(err, werr)
				}
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path of the TOML config file")
	cmd.Flags().StringVar(&strategy, "strategy", "", "override the strategy of the config: chain, probe or both")
	return cmd
}

// serveMetrics exposes the metric registry on addr/metrics until the
// returned function is called. It returns the bound address.
func serveMetrics(addr string) (net.Addr, func(), error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listen metrics on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(v2.GetRegistry(), promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logutil.Error("metrics server stopped", zap.Error(err))
		}
	}()
	logutil.Info("serving metrics", zap.String("addr", lis.Addr().String()))

	return lis.Addr(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		<-done
	}, nil
}
