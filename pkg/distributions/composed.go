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
)

// singularRetryLimit caps the redraws made when a uniform lands on the single
// value a transform cannot map. Reaching it means the source is degenerate and
// the sampler returns its location parameter.
const singularRetryLimit = 64

// Uniform draws from [low, low+span).
func Uniform(src Source, low, span float64) float64 {
	return low + span*src.Float64()
}

func Exponential(src Source, scale float64) float64 {
	return scale * StandardExponential(src)
}

// ChiSquare draws from the chi-square distribution with df degrees of freedom.
func ChiSquare(src Source, df float64) float64 {
	return 2.0 * StandardGamma(src, df/2.0)
}

// F draws from Snedecor's F distribution.
func F(src Source, dfnum, dfden float64) float64 {
	return (ChiSquare(src, dfnum) * dfden) / (ChiSquare(src, dfden) * dfnum)
}

// StandardT draws from Student's t distribution with df degrees of freedom.
func StandardT(src Source, df float64) float64 {
	num := StandardNormal(src)
	denom := StandardGamma(src, df/2)
	return math.Sqrt(df/2) * num / math.Sqrt(denom)
}

func StandardCauchy(src Source) float64 {
	return StandardNormal(src) / StandardNormal(src)
}

// Pareto draws from the Lomax (Pareto II) distribution with shape a.
func Pareto(src Source, a float64) float64 {
	return math.Exp(StandardExponential(src)/a) - 1
}

func Weibull(src Source, a float64) float64 {
	if a == 0.0 {
		return 0.0
	}
	return math.Pow(StandardExponential(src), 1./a)
}

func Power(src Source, a float64) float64 {
	return math.Pow(1-math.Exp(-StandardExponential(src)), 1./a)
}

func Laplace(src Source, loc, scale float64) float64 {
	for range singularRetryLimit {
		u := src.Float64()
		if u >= 0.5 {
			return loc - scale*math.Log(2.0-u-u)
		}
		if u > 0.0 {
			return loc + scale*math.Log(u+u)
		}
	}
	return loc
}

func Gumbel(src Source, loc, scale float64) float64 {
	for range singularRetryLimit {
		u := 1.0 - src.Float64()
		if u < 1.0 {
			return loc - scale*math.Log(-math.Log(u))
		}
	}
	return loc
}

func Logistic(src Source, loc, scale float64) float64 {
	for range singularRetryLimit {
		u := src.Float64()
		if u > 0.0 {
			return loc + scale*math.Log(u/(1.0-u))
		}
	}
	return loc
}

func Rayleigh(src Source, mode float64) float64 {
	return mode * math.Sqrt(-2.0*math.Log(1.0-src.Float64()))
}

// NegativeBinomial draws the number of failures before n successes as a
// gamma-mixed Poisson.
func NegativeBinomial(src Source, n, p float64) int64 {
	y := Gamma(src, n, (1-p)/p)
	return Poisson(src, y)
}
