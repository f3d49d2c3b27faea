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

package shards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/random"
	"github.com/scylladb/variates/pkg/status"
)

var errInjected = errors.New("injected failure")

func normalTask(count int) Task[*status.Summary] {
	return func(ctx context.Context, shard Shard) (*status.Summary, error) {
		s := &status.Summary{}
		for range count {
			s.Add(distributions.StandardNormal(shard.Handle))
		}
		return s, ctx.Err()
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := Config{Distribution: "normal", Backend: bitgen.MT19937, Seed: 42, Shards: 4, Parallelism: 2}
	st := status.NewRunStatus(10)

	results, err := Run(t.Context(), cfg, st, normalTask(1000))
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.Shard)
		assert.Equal(t, random.DeriveSeed(42, i), r.Seed)
		require.True(t, r.Value.IsOk())
		assert.Equal(t, uint64(1000), r.Value.MustGet().Count())
	}
	assert.Equal(t, uint64(4), st.ShardsDone.Load())
	assert.False(t, st.HasErrors())

	again, err := Run(t.Context(), cfg, status.NewRunStatus(10), normalTask(1000))
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, results[i].Value.MustGet().Mean(), again[i].Value.MustGet().Mean())
	}
}

func TestSingleShardMatchesPlainHandle(t *testing.T) {
	t.Parallel()

	results, err := Run(t.Context(), Config{Distribution: "binomial", Seed: 42, Shards: 1}, status.NewRunStatus(1),
		func(_ context.Context, shard Shard) (*status.Summary, error) {
			s := &status.Summary{}
			for range 100 {
				status.Observe(s, shard.Handle.Binomial(0.3, 100))
			}
			return s, nil
		})
	require.NoError(t, err)

	h, err := random.Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)
	defer h.Release()
	h.Seed(42)
	want := &status.Summary{}
	for range 100 {
		status.Observe(want, h.Binomial(0.3, 100))
	}

	assert.Equal(t, want.Mean(), results[0].Value.MustGet().Mean())
}

func TestFailingShardDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	st := status.NewRunStatus(10)
	results, err := Run(t.Context(), Config{Distribution: "normal", Seed: 1, Shards: 4}, st,
		func(ctx context.Context, shard Shard) (*status.Summary, error) {
			if shard.Index == 2 {
				return nil, errInjected
			}
			return normalTask(10)(ctx, shard)
		})
	require.NoError(t, err)

	values, err := Values(results)
	require.ErrorIs(t, err, errInjected)
	assert.Len(t, values, 3)
	assert.True(t, results[2].Value.IsError())
	assert.Equal(t, uint64(1), st.ShardsFailed.Load())
	assert.Equal(t, uint64(3), st.ShardsDone.Load())
	require.Len(t, st.Errors.Errors(), 1)
	assert.Equal(t, 2, st.Errors.Errors()[0].Shard)
}

func TestFailFast(t *testing.T) {
	t.Parallel()

	cfg := Config{Distribution: "normal", Seed: 1, Shards: 4, Parallelism: 4, FailFast: true}
	_, err := Run(t.Context(), cfg, status.NewRunStatus(10),
		func(ctx context.Context, shard Shard) (*status.Summary, error) {
			if shard.Index == 0 {
				return nil, errInjected
			}
			<-ctx.Done()
			return nil, ctx.Err()
		})
	require.ErrorIs(t, err, errInjected)
}

func TestAllocationFailure(t *testing.T) {
	t.Parallel()

	st := status.NewRunStatus(10)
	results, err := Run(t.Context(), Config{Distribution: "normal", Backend: bitgen.Backend(99), Shards: 2}, st, normalTask(1))
	require.NoError(t, err)

	_, err = Values(results)
	require.ErrorIs(t, err, random.ErrAllocation)
	assert.Equal(t, uint64(2), st.ShardsFailed.Load())
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Run(ctx, Config{Distribution: "normal", Shards: 3}, status.NewRunStatus(10), normalTask(1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestInvalidShardCount(t *testing.T) {
	t.Parallel()

	_, err := Run(t.Context(), Config{Distribution: "normal"}, status.NewRunStatus(10), normalTask(1))
	require.Error(t, err)
}
