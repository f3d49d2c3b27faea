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

package distributions

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// requirePMF bounds the total variation distance between the empirical
// frequencies of draw and prob.
func requirePMF(t *testing.T, samples int, maxTV float64, draw func() int64, prob func(float64) float64) {
	t.Helper()

	counts := make(map[int64]int)
	for range samples {
		counts[draw()]++
	}

	tv, covered := 0.0, 0.0
	for k, c := range counts {
		p := prob(float64(k))
		covered += p
		tv += math.Abs(float64(c)/float64(samples) - p)
	}
	tv = 0.5 * (tv + math.Max(0, 1-covered))
	require.Lessf(t, tv, maxTV, "total variation %v", tv)
}

func TestBinomialEdgeCases(t *testing.T) {
	t.Parallel()

	src := newSource(t, 10)
	cache := &BinomialCache{}

	for range 100 {
		require.Zero(t, Binomial(src, 0.3, 0, cache))
		require.Zero(t, Binomial(src, 0, 1_000_000, cache))
		require.Zero(t, Binomial(src, 0, 0, cache))
		require.Equal(t, int64(1), Binomial(src, 1, 1, cache))
		require.Equal(t, int64(17), Binomial(src, 1, 17, cache))
		require.Equal(t, int64(1_000_000), Binomial(src, 1, 1_000_000, cache))
	}
}

func TestBinomialDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n int64
		p float64
	}{
		{n: 1, p: 0.5},
		{n: 20, p: 0.1},
		{n: 60, p: 0.5},
		{n: 61, p: 0.5},
		{n: 100, p: 0.3},
		{n: 50, p: 0.7},
		{n: 400, p: 0.15},
		{n: 1000, p: 0.9},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("n=%d,p=%v", test.n, test.p), func(t *testing.T) {
			t.Parallel()

			src := newSource(t, uint64(test.n))
			cache := &BinomialCache{}
			ref := distuv.Binomial{N: float64(test.n), P: test.p}
			requirePMF(t, 100_000, 0.03, func() int64 {
				return Binomial(src, test.p, test.n, cache)
			}, ref.Prob)
		})
	}
}

func TestBinomialMoments(t *testing.T) {
	t.Parallel()

	const samples = 100_000

	for _, n := range []int64{10, 1000, 1_000_000, 1 << 40} {
		for _, p := range []float64{0.01, 0.3, 0.5, 0.77} {
			t.Run(fmt.Sprintf("n=%d,p=%v", n, p), func(t *testing.T) {
				t.Parallel()

				src := newSource(t, 11)
				cache := &BinomialCache{}
				values := make([]float64, samples)
				for i := range values {
					x := Binomial(src, p, n, cache)
					require.GreaterOrEqual(t, x, int64(0))
					require.LessOrEqual(t, x, n)
					values[i] = float64(x)
				}

				wantMean := float64(n) * p
				wantVar := wantMean * (1 - p)
				mean, variance := stat.MeanVariance(values, nil)
				assert.InDelta(t, wantMean, mean, 6*math.Sqrt(wantVar/samples))
				assert.InEpsilon(t, wantVar, variance, 0.05)
			})
		}
	}
}

func TestBinomialComplementSymmetry(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{40, 500} {
		src := newSource(t, 12)
		cache := &BinomialCache{}
		ref := distuv.Binomial{N: float64(n), P: 0.8}

		requirePMF(t, 100_000, 0.03, func() int64 {
			return Binomial(src, 0.8, n, cache)
		}, ref.Prob)
		requirePMF(t, 100_000, 0.03, func() int64 {
			return n - Binomial(src, 0.2, n, cache)
		}, ref.Prob)
	}
}

func TestBinomialSeedFortyTwo(t *testing.T) {
	t.Parallel()

	src := newSource(t, 42)
	cache := &BinomialCache{}
	values := make([]float64, 10_000)
	for i := range values {
		x := Binomial(src, 0.3, 100, cache)
		require.GreaterOrEqual(t, x, int64(0))
		require.LessOrEqual(t, x, int64(100))
		values[i] = float64(x)
	}

	mean := stat.Mean(values, nil)
	assert.GreaterOrEqual(t, mean, 29.5)
	assert.LessOrEqual(t, mean, 30.5)
}

func TestBinomialCacheStats(t *testing.T) {
	t.Parallel()

	src := newSource(t, 13)
	cache := &BinomialCache{}

	for range 1000 {
		Binomial(src, 0.25, 40, cache)
	}
	require.Equal(t, BinomialCacheStats{Hits: 999, Inversion: 1}, cache.Stats())

	// 0.75 is sampled as 40 minus Binomial(0.25)
	Binomial(src, 0.75, 40, cache)
	require.Equal(t, BinomialCacheStats{Hits: 1000, Inversion: 1}, cache.Stats())

	Binomial(src, 0.3, 1000, cache)
	Binomial(src, 0.3, 1000, cache)
	Binomial(src, 0.25, 40, cache)
	require.Equal(t, BinomialCacheStats{Hits: 1001, Inversion: 2, BTPE: 1}, cache.Stats())
	require.Equal(t, uint64(3), cache.Stats().Recomputations())

	// n*p equal to InversionLimit stays on inversion, just above it does not
	Binomial(src, 0.3, 100, cache)
	require.Equal(t, uint64(3), cache.Stats().Inversion)
	Binomial(src, 0.3, 101, cache)
	require.Equal(t, uint64(2), cache.Stats().BTPE)

	cache.Reset()
	require.Equal(t, BinomialCacheStats{}, cache.Stats())
}

func TestBinomialCacheDoesNotChangeVariates(t *testing.T) {
	t.Parallel()

	params := []struct {
		n int64
		p float64
	}{{100, 0.3}, {20, 0.1}, {5000, 0.62}, {100, 0.3}, {7, 0.99}}

	cached, fresh := newSource(t, 14), newSource(t, 14)
	cache := &BinomialCache{}
	var withCache, withoutCache []int64
	for i := range 5000 {
		pp := params[i%len(params)]
		withCache = append(withCache, Binomial(cached, pp.p, pp.n, cache))
		withoutCache = append(withoutCache, Binomial(fresh, pp.p, pp.n, &BinomialCache{}))
	}

	require.Empty(t, cmp.Diff(withCache, withoutCache))
}

func TestBinomialInversionRestartsPastBound(t *testing.T) {
	t.Parallel()

	// the first uniform is beyond the mass below the search bound
	src := &scriptedSource{floats: []float64{math.Nextafter(1, 0), 0.1}}
	cache := &BinomialCache{}

	require.Zero(t, Binomial(src, 0.001, 1000, cache))
	require.Equal(t, int64(15), cache.inversion.bound)
}
