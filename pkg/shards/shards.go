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

// Package shards runs one sampling task per shard, each on its own handle
// seeded from the run seed.
package shards

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/joberror"
	"github.com/scylladb/variates/pkg/metrics"
	"github.com/scylladb/variates/pkg/random"
	"github.com/scylladb/variates/pkg/status"
)

type (
	// Counted results report how many variates produced them.
	Counted interface {
		Count() uint64
	}

	Config struct {
		Distribution string
		Backend      bitgen.Backend
		Seed         uint64
		Shards       int
		// Parallelism bounds how many shards run at once. Zero means
		// GOMAXPROCS.
		Parallelism int
		// FailFast cancels the remaining shards after the first failure.
		FailFast bool
	}

	// Shard is handed to a task. Handle is owned by the task until it
	// returns and must not escape it.
	Shard struct {
		Handle *random.Handle
		Index  int
		Seed   uint64
	}

	Task[T Counted] func(ctx context.Context, shard Shard) (T, error)

	Result[T Counted] struct {
		Value   mo.Result[T]
		Shard   int
		Seed    uint64
		Elapsed time.Duration
	}
)

func (c Config) parallelism() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

// Run executes task once per shard and returns the results ordered by shard.
// A failing shard does not stop its siblings unless FailFast is set. The
// returned error is non-nil only when ctx ends or a FailFast run fails.
func Run[T Counted](ctx context.Context, cfg Config, st *status.RunStatus, task Task[T]) ([]Result[T], error) {
	if cfg.Shards < 1 {
		return nil, errors.Errorf("shard count must be at least 1, got %d", cfg.Shards)
	}

	logger := zap.L().Named("shards")
	logger.Debug("starting shards",
		zap.String("distribution", cfg.Distribution),
		zap.Int("shards", cfg.Shards),
		zap.Int("parallelism", cfg.parallelism()),
		zap.Stringer("backend", cfg.Backend),
		zap.Uint64("seed", cfg.Seed),
	)

	results := make([]Result[T], cfg.Shards)

	var (
		g    *errgroup.Group
		gCtx = ctx
	)
	if cfg.FailFast {
		g, gCtx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(cfg.parallelism())

	for i := range cfg.Shards {
		seed := random.DeriveSeed(cfg.Seed, i)
		results[i] = Result[T]{Shard: i, Seed: seed}

		g.Go(func() error {
			res := &results[i]
			value, elapsed, err := runShard(gCtx, cfg, i, seed, task)
			res.Elapsed = elapsed
			if err != nil {
				res.Value = mo.Err[T](err)
				st.AddShardError(joberror.JobError{
					Timestamp:    time.Now(),
					Err:          err,
					Message:      err.Error(),
					Distribution: cfg.Distribution,
					Shard:        i,
					Seed:         seed,
				})
				logger.Warn("shard failed", zap.Int("shard", i), zap.Error(err))
				if cfg.FailFast {
					return errors.Wrapf(err, "shard %d", i)
				}
				return nil
			}

			res.Value = mo.Ok(value)
			st.ShardDone()
			logger.Debug("shard finished",
				zap.Int("shard", i),
				zap.Uint64("draws", value.Count()),
				zap.Duration("elapsed", elapsed),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, "shards interrupted")
	}
	return results, nil
}

func runShard[T Counted](ctx context.Context, cfg Config, index int, seed uint64, task Task[T]) (T, time.Duration, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, 0, err
	}

	h, err := random.Allocate(cfg.Backend)
	if err != nil {
		return zero, 0, err
	}
	defer h.Release()
	h.Seed(seed)

	metrics.ShardsRunning.Inc()
	defer metrics.ShardsRunning.Dec()

	timer := metrics.ShardTimeStart(cfg.Distribution)
	value, err := task(ctx, Shard{Handle: h, Index: index, Seed: seed})
	elapsed := timer.Record()

	recordCacheStats(h.CacheStats())
	if err != nil {
		return zero, elapsed, err
	}

	metrics.DrawsTotal.WithLabelValues(cfg.Distribution).Add(float64(value.Count()))
	return value, elapsed, nil
}

func recordCacheStats(stats distributions.BinomialCacheStats) {
	if stats.Recomputations() == 0 && stats.Hits == 0 {
		return
	}
	metrics.BinomialCacheRecomputations.WithLabelValues("inversion").Add(float64(stats.Inversion))
	metrics.BinomialCacheRecomputations.WithLabelValues("btpe").Add(float64(stats.BTPE))
	metrics.BinomialCacheHits.Add(float64(stats.Hits))
}

// Values splits results into the successful values and the combined error of
// the failed shards.
func Values[T Counted](results []Result[T]) ([]T, error) {
	var errs error
	out := make([]T, 0, len(results))
	for _, r := range results {
		value, err := r.Value.Get()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "shard %d", r.Shard))
			continue
		}
		out = append(out, value)
	}
	return out, errs
}
