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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/matrixorigin/mohash/pkg/common/moerr"
)

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mo-hashbench",
		Short:         "Run verified workloads against the chaining and probing hash maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCommand())
	cmd.AddCommand(genConfigCommand())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		var me *moerr.Error
		if errors.As(err, &me) {
			fmt.Fprintf(os.Stderr, "mo-hashbench: error %d: %v\n", me.ErrorCode(), err)
		} else {
			fmt.Fprintf(os.Stderr, "mo-hashbench: %+v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
