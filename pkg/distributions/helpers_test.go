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
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scylladb/variates/pkg/bitgen"
)

const ksSamples = 20000

func newSource(t testing.TB, seed uint64) Source {
	t.Helper()

	gen, err := bitgen.New(bitgen.MT19937)
	require.NoError(t, err)
	gen.Seed(seed)

	return gen
}

// ksStatistic is the one-sample Kolmogorov-Smirnov distance between samples
// and cdf. samples is sorted in place.
func ksStatistic(samples []float64, cdf func(float64) float64) float64 {
	sort.Float64s(samples)
	n := float64(len(samples))
	d := 0.0
	for i, x := range samples {
		f := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/n-f, f-float64(i)/n))
	}
	return d
}

// ksCritical is far beyond the 0.1% critical value so a fixed seed never
// flakes while a wrong sampler still fails by a wide margin.
func ksCritical(n int) float64 {
	return 2.2 / math.Sqrt(float64(n))
}

func requireKS(t *testing.T, draw func() float64, cdf func(float64) float64) {
	t.Helper()

	samples := make([]float64, ksSamples)
	for i := range samples {
		samples[i] = draw()
	}
	d := ksStatistic(samples, cdf)
	require.Lessf(t, d, ksCritical(ksSamples), "KS distance %v", d)
}

// scriptedSource replays fixed uniforms and integers, repeating the last one.
type scriptedSource struct {
	floats []float64
	ints   []uint64
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	return v
}

func (s *scriptedSource) Uint32() uint32 {
	return uint32(s.Uint64())
}
