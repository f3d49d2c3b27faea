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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestContinuousDistributions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		draw func(Source) float64
		cdf  func(float64) float64
	}{
		"uniform": {
			draw: func(src Source) float64 { return Uniform(src, -2, 5) },
			cdf:  distuv.Uniform{Min: -2, Max: 3}.CDF,
		},
		"normal": {
			draw: func(src Source) float64 { return Normal(src, 3, 2) },
			cdf:  distuv.Normal{Mu: 3, Sigma: 2}.CDF,
		},
		"exponential": {
			draw: func(src Source) float64 { return Exponential(src, 2) },
			cdf:  distuv.Exponential{Rate: 0.5}.CDF,
		},
		"beta-johnk": {
			draw: func(src Source) float64 { return Beta(src, 0.5, 0.5) },
			cdf:  distuv.Beta{Alpha: 0.5, Beta: 0.5}.CDF,
		},
		"beta-johnk-skewed": {
			draw: func(src Source) float64 { return Beta(src, 0.8, 0.3) },
			cdf:  distuv.Beta{Alpha: 0.8, Beta: 0.3}.CDF,
		},
		"beta-gamma": {
			draw: func(src Source) float64 { return Beta(src, 2, 5) },
			cdf:  distuv.Beta{Alpha: 2, Beta: 5}.CDF,
		},
		"chisquare": {
			draw: func(src Source) float64 { return ChiSquare(src, 3) },
			cdf:  distuv.ChiSquared{K: 3}.CDF,
		},
		"f": {
			draw: func(src Source) float64 { return F(src, 5, 7) },
			cdf:  distuv.F{D1: 5, D2: 7}.CDF,
		},
		"t": {
			draw: func(src Source) float64 { return StandardT(src, 4) },
			cdf:  distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 4}.CDF,
		},
		"cauchy": {
			draw: StandardCauchy,
			cdf:  func(x float64) float64 { return 0.5 + math.Atan(x)/math.Pi },
		},
		"pareto": {
			draw: func(src Source) float64 { return Pareto(src, 3) },
			cdf:  func(x float64) float64 { return 1 - math.Pow(1+x, -3) },
		},
		"weibull": {
			draw: func(src Source) float64 { return Weibull(src, 1.5) },
			cdf:  distuv.Weibull{K: 1.5, Lambda: 1}.CDF,
		},
		"power": {
			draw: func(src Source) float64 { return Power(src, 2.5) },
			cdf:  func(x float64) float64 { return math.Pow(x, 2.5) },
		},
		"laplace": {
			draw: func(src Source) float64 { return Laplace(src, 1, 2) },
			cdf:  distuv.Laplace{Mu: 1, Scale: 2}.CDF,
		},
		"gumbel": {
			draw: func(src Source) float64 { return Gumbel(src, 1, 2) },
			cdf:  distuv.GumbelRight{Mu: 1, Beta: 2}.CDF,
		},
		"logistic": {
			draw: func(src Source) float64 { return Logistic(src, 1, 2) },
			cdf:  distuv.Logistic{Mu: 1, S: 2}.CDF,
		},
		"lognormal": {
			draw: func(src Source) float64 { return LogNormal(src, 0.5, 0.75) },
			cdf:  distuv.LogNormal{Mu: 0.5, Sigma: 0.75}.CDF,
		},
		"rayleigh": {
			draw: func(src Source) float64 { return Rayleigh(src, 2) },
			cdf:  func(x float64) float64 { return 1 - math.Exp(-x*x/8) },
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := newSource(t, 20)
			requireKS(t, func() float64 { return test.draw(src) }, test.cdf)
		})
	}
}

func TestPoisson(t *testing.T) {
	t.Parallel()

	for _, lambda := range []float64{0.5, 3, 9.99, 10, 25} {
		src := newSource(t, 21)
		ref := distuv.Poisson{Lambda: lambda}
		requirePMF(t, 100_000, 0.03, func() int64 { return Poisson(src, lambda) }, ref.Prob)
	}
}

func TestPoissonLargeMean(t *testing.T) {
	t.Parallel()

	const samples = 50_000

	src := newSource(t, 22)
	values := make([]float64, samples)
	for i := range values {
		values[i] = float64(Poisson(src, 1000))
	}
	mean, variance := stat.MeanVariance(values, nil)
	assert.InDelta(t, 1000, mean, 6*math.Sqrt(1000.0/samples))
	assert.InEpsilon(t, 1000, variance, 0.05)
}

func TestPoissonZeroMean(t *testing.T) {
	t.Parallel()

	src := newSource(t, 23)
	for range 100 {
		require.Zero(t, Poisson(src, 0))
	}
}

func TestNegativeBinomial(t *testing.T) {
	t.Parallel()

	const samples = 100_000

	src := newSource(t, 24)
	values := make([]float64, samples)
	for i := range values {
		x := NegativeBinomial(src, 3, 0.4)
		require.GreaterOrEqual(t, x, int64(0))
		values[i] = float64(x)
	}

	mean, variance := stat.MeanVariance(values, nil)
	assert.InDelta(t, 4.5, mean, 6*math.Sqrt(11.25/samples))
	assert.InEpsilon(t, 11.25, variance, 0.05)
}

func TestWeibullShapeZero(t *testing.T) {
	t.Parallel()

	src := newSource(t, 25)
	require.Zero(t, Weibull(src, 0))
}

func TestSingularUniformIsRedrawn(t *testing.T) {
	t.Parallel()

	laplace := Laplace(&scriptedSource{floats: []float64{0, 0.75}}, 1, 2)
	assert.InDelta(t, 1+2*math.Ln2, laplace, 1e-12)

	gumbel := Gumbel(&scriptedSource{floats: []float64{0, 0.5}}, 1, 2)
	assert.InDelta(t, 1-2*math.Log(math.Ln2), gumbel, 1e-12)

	logistic := Logistic(&scriptedSource{floats: []float64{0, 0.5}}, 1, 2)
	assert.InDelta(t, 1.0, logistic, 1e-12)
}

func TestDegenerateSourceReturnsLocation(t *testing.T) {
	t.Parallel()

	zero := &scriptedSource{floats: []float64{0}}
	assert.Equal(t, 1.5, Laplace(zero, 1.5, 2))
	assert.Equal(t, 1.5, Gumbel(zero, 1.5, 2))
	assert.Equal(t, 1.5, Logistic(zero, 1.5, 2))
}
