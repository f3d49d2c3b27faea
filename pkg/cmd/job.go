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
	"context"

	"go.uber.org/multierr"

	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/output"
	"github.com/scylladb/variates/pkg/plan"
	"github.com/scylladb/variates/pkg/shards"
	"github.com/scylladb/variates/pkg/status"
)

// ctxCheckInterval is how many draws a shard makes between context checks.
const ctxCheckInterval = 4096

type (
	shardReport struct {
		Summary *status.Summary `json:"summary,omitempty"`
		Error   string          `json:"error,omitempty"`
		Elapsed string          `json:"elapsed"`
		Shard   int             `json:"shard"`
		Seed    uint64          `json:"seed"`
	}

	jobReport struct {
		Job    plan.Resolved  `json:"job"`
		Shards []shardReport  `json:"shards"`
		Merged status.Summary `json:"merged"`
	}
)

// shareOf splits count across shards, giving the remainder to the lowest
// indexes.
func shareOf(count uint64, shards, index int) uint64 {
	n := uint64(shards)
	share := count / n
	if uint64(index) < count%n {
		share++
	}
	return share
}

func sampleTask(job plan.Resolved, sink output.Sink, st *status.RunStatus) shards.Task[*status.Summary] {
	return func(ctx context.Context, shard shards.Shard) (*status.Summary, error) {
		draw, err := distributions.New(string(job.Distribution), job.Params, shard.Handle)
		if err != nil {
			return nil, err
		}

		w := sink.Writer(shard.Index)
		summary := &status.Summary{}
		n := shareOf(job.Count, job.Shards, shard.Index)
		for i := range n {
			if i%ctxCheckInterval == 0 {
				if err = ctx.Err(); err != nil {
					return nil, err
				}
			}

			v := draw()
			summary.Add(v)
			if err = w.Append(i, v); err != nil {
				return nil, err
			}
		}
		if err = w.Flush(); err != nil {
			return nil, err
		}

		st.AddDraws(n)
		return summary, nil
	}
}

// runJob samples job across its shards. Shard failures are reported in the
// returned report and in st; the error covers the run itself and the output.
func runJob(ctx context.Context, job plan.Resolved, st *status.RunStatus) (jobReport, error) {
	report := jobReport{Job: job}

	sink, err := output.NewFileSink(ctx, job.Output, job.Compression)
	if err != nil {
		return report, err
	}

	results, runErr := shards.Run(ctx, shards.Config{
		Distribution: string(job.Distribution),
		Backend:      job.Backend,
		Seed:         job.Seed,
		Shards:       job.Shards,
		Parallelism:  parallelism,
		FailFast:     failFast,
	}, st, sampleTask(job, sink, st))

	report.Shards = make([]shardReport, 0, len(results))
	for _, r := range results {
		sr := shardReport{
			Shard:   r.Shard,
			Seed:    r.Seed,
			Elapsed: r.Elapsed.String(),
		}
		summary, err := r.Value.Get()
		switch {
		case err != nil:
			sr.Error = err.Error()
		case summary != nil:
			sr.Summary = summary
			report.Merged.Merge(*summary)
		}
		report.Shards = append(report.Shards, sr)
	}

	return report, multierr.Combine(runErr, sink.Close())
}
