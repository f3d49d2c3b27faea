// Copyright 2025 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scylladb/variates/pkg/plan"
	"github.com/scylladb/variates/pkg/status"
)

var planValidateOnly bool

func Plan() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <file.yaml>",
		Short: "Run every sampling job of a YAML plan",
		Long: `Run the jobs of a YAML plan one after another, each split across its own
shards. Every job is validated before the first one starts and all problems
are reported together.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}

	cmd.Flags().BoolVar(&planValidateOnly, "validate", false, "Only validate the plan and print the resolved jobs")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	jobs, err := p.Resolve()
	if err != nil {
		return errors.Wrap(err, "invalid plan")
	}

	out := cmd.OutOrStdout()
	for _, job := range jobs {
		printSetup(out, job)
	}
	if planValidateOnly {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := zap.L().Named("plan")
	st := status.NewRunStatus(maxErrorsToStore)
	reports := make([]jobReport, 0, len(jobs))
	for _, job := range jobs {
		logger.Info("starting job", zap.String("job", job.Name), zap.Uint64("count", job.Count))

		report, runErr := runJob(ctx, job, st)
		reports = append(reports, report)
		if runErr != nil {
			err = errors.Wrapf(runErr, "job %q", job.Name)
			logger.Error("job failed", zap.String("job", job.Name), zap.Error(runErr))
			break
		}
	}

	st.PrintResult(out, version, map[string]any{"jobs": reports})

	if err != nil {
		return err
	}
	if st.HasErrors() {
		return errors.Errorf("%d shards failed", st.ShardsFailed.Load())
	}
	return nil
}
