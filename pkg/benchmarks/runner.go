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

package benchmarks

import (
	"context"
	"flag"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/random"
)

const DefaultBenchTime = 200 * time.Millisecond

type Config struct {
	Distributions []string
	BenchTime     time.Duration
	Seed          uint64
	Backend       bitgen.Backend
}

var (
	initOnce sync.Once
	// Keeps the compiler from discarding draws.
	sink float64
)

// setBenchTime is global: testing.Benchmark reads -test.benchtime only.
func setBenchTime(d time.Duration) error {
	initOnce.Do(testing.Init)
	if d <= 0 {
		d = DefaultBenchTime
	}
	return flag.Set("test.benchtime", d.String())
}

// Measure benchmarks every configured distribution with its default
// parameters, each on a fresh handle seeded with cfg.Seed.
func Measure(ctx context.Context, cfg Config) ([]Result, error) {
	names := cfg.Distributions
	if len(names) == 0 {
		names = distributions.Names()
	}
	if err := setBenchTime(cfg.BenchTime); err != nil {
		return nil, errors.Wrap(err, "failed to set benchmark time")
	}

	logger := zap.L().Named("benchmarks")
	results := make([]Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := measure(name, cfg)
		if err != nil {
			return results, err
		}
		logger.Debug("benchmark finished",
			zap.String("distribution", name),
			zap.Float64("ns_per_draw", result.NsPerDraw),
			zap.Int("iterations", result.Iterations),
		)
		results = append(results, result)
	}

	return results, nil
}

func measure(name string, cfg Config) (Result, error) {
	handle, err := random.Allocate(cfg.Backend)
	if err != nil {
		return Result{}, err
	}
	defer handle.Release()
	handle.Seed(cfg.Seed)

	draw, err := distributions.New(name, distributions.DefaultParams(), handle)
	if err != nil {
		return Result{}, err
	}

	br := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sink = draw()
		}
	})
	if br.N == 0 {
		return Result{}, errors.Errorf("benchmark for %s did not run", name)
	}

	ns := float64(br.T.Nanoseconds()) / float64(br.N)
	result := Result{
		Name:        name,
		Backend:     cfg.Backend.String(),
		NsPerDraw:   ns,
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
		Iterations:  br.N,
		Parallelism: runtime.GOMAXPROCS(0),
	}
	if ns > 0 {
		result.DrawsPerSec = 1e9 / ns
	}
	return result, nil
}
