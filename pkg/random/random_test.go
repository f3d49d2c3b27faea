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

package random

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/scylladb/variates/pkg/bitgen"
	"github.com/scylladb/variates/pkg/distributions"
)

func sequence(t *testing.T, h *Handle, seed uint64) []float64 {
	t.Helper()

	h.Seed(seed)
	out := make([]float64, 0, 300)
	for i := range 100 {
		out = append(out,
			h.Uniform(),
			float64(h.Binomial(0.3, 100)),
			float64(h.Binomial(0.05, int64(i+1))),
		)
	}
	return out
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	for _, backend := range []bitgen.Backend{bitgen.MT19937, bitgen.MT19937x64, bitgen.PCG, bitgen.ChaCha8} {
		t.Run(backend.String(), func(t *testing.T) {
			t.Parallel()

			h, err := Allocate(backend)
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.False(t, h.Released())
			assert.Equal(t, backend, h.Backend())

			first := sequence(t, h, 7)
			second := sequence(t, h, 7)
			require.Empty(t, cmp.Diff(first, second))

			h.Release()
			assert.True(t, h.Released())
		})
	}
}

func TestAllocateFailure(t *testing.T) {
	t.Parallel()

	h, err := Allocate(bitgen.Backend(99))
	require.ErrorIs(t, err, ErrAllocation)
	require.Nil(t, h)
}

func TestReleaseTwice(t *testing.T) {
	t.Parallel()

	h, err := Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)

	h.Release()
	h.Release()

	var nilHandle *Handle
	nilHandle.Release()
	assert.True(t, nilHandle.Released())
}

func TestIdenticalHandlesAgree(t *testing.T) {
	t.Parallel()

	a, err := Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)
	defer a.Release()
	b, err := Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)
	defer b.Release()

	require.Empty(t, cmp.Diff(sequence(t, a, 1234), sequence(t, b, 1234)))
	require.NotEmpty(t, cmp.Diff(sequence(t, a, 1234), sequence(t, b, 1235)))
}

func TestSeedFortyTwoBinomial(t *testing.T) {
	t.Parallel()

	h, err := Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)
	defer h.Release()
	h.Seed(42)

	values := make([]float64, 10_000)
	for i := range values {
		x := h.Binomial(0.3, 100)
		require.GreaterOrEqual(t, x, int64(0))
		require.LessOrEqual(t, x, int64(100))
		values[i] = float64(x)
	}

	mean := stat.Mean(values, nil)
	assert.GreaterOrEqual(t, mean, 29.5)
	assert.LessOrEqual(t, mean, 30.5)
	assert.Equal(t, distributions.BinomialCacheStats{Hits: 9999, Inversion: 1}, h.CacheStats())
}

func TestReseedKeepsCache(t *testing.T) {
	t.Parallel()

	h, err := Allocate(bitgen.DefaultBackend)
	require.NoError(t, err)
	defer h.Release()

	h.Seed(1)
	h.Binomial(0.3, 100)
	h.Seed(2)
	h.Binomial(0.3, 100)
	assert.Equal(t, uint64(1), h.CacheStats().Recomputations())
}

func TestHandlesPerGoroutine(t *testing.T) {
	t.Parallel()

	const workers = 8

	want := make([][]float64, workers)
	for i := range workers {
		h, err := Allocate(bitgen.DefaultBackend)
		require.NoError(t, err)
		want[i] = sequence(t, h, DeriveSeed(5, i))
		h.Release()
	}

	got := make([][]float64, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			h, err := Allocate(bitgen.DefaultBackend)
			if err != nil {
				return err
			}
			defer h.Release()

			h.Seed(DeriveSeed(5, i))
			out := make([]float64, 0, 300)
			for j := range 100 {
				out = append(out, h.Uniform(), float64(h.Binomial(0.3, 100)), float64(h.Binomial(0.05, int64(j+1))))
			}
			got[i] = out
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Empty(t, cmp.Diff(want, got))
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	seed, err := ParseSeed("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), seed)

	seed, err = ParseSeed(" 18446744073709551615 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), seed)

	_, err = ParseSeed(RandomSeed)
	require.NoError(t, err)

	for _, bad := range []string{"-1", "", "0x10", "seed"} {
		_, err = ParseSeed(bad)
		assert.Errorf(t, err, "%q", bad)
	}
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(42), DeriveSeed(42, 0))
	assert.Equal(t, DeriveSeed(42, 3), DeriveSeed(42, 3))
	assert.NotEqual(t, DeriveSeed(42, 3), DeriveSeed(43, 3))

	seen := make(map[uint64]int)
	for shard := range 1000 {
		seed := DeriveSeed(42, shard)
		prev, ok := seen[seed]
		require.Falsef(t, ok, "shards %d and %d share seed %d", prev, shard, seed)
		seen[seed] = shard
	}
}

func TestAccessorsDrawFromHandleGenerator(t *testing.T) {
	t.Parallel()

	h, err := Allocate(bitgen.MT19937)
	require.NoError(t, err)
	defer h.Release()
	h.Seed(7)

	gen, err := bitgen.New(bitgen.MT19937)
	require.NoError(t, err)
	gen.Seed(7)

	assert.InDelta(t, distributions.StandardNormal(gen), h.StandardNormal(), 0)
	assert.InDelta(t, distributions.StandardExponential(gen), h.StandardExponential(), 0)
	assert.InDelta(t, distributions.StandardGamma(gen, 2.5), h.StandardGamma(2.5), 0)
	assert.InDelta(t, distributions.Normal(gen, 1, 2), h.Normal(1, 2), 0)
	assert.InDelta(t, distributions.Exponential(gen, 3), h.Exponential(3), 0)
	assert.InDelta(t, distributions.Gamma(gen, 0.5, 2), h.Gamma(0.5, 2), 0)
	assert.InDelta(t, distributions.Beta(gen, 0.5, 0.5), h.Beta(0.5, 0.5), 0)
	assert.Equal(t, distributions.Poisson(gen, 12), h.Poisson(12))
	assert.Equal(t, distributions.NegativeBinomial(gen, 5, 0.4), h.NegativeBinomial(5, 0.4))
	assert.InDelta(t, gen.Float64(), h.Uniform(), 0)
}
