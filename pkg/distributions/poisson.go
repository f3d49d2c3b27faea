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

// PoissonThreshold is the smallest mean served by the transformed rejection
// sampler; smaller means use the multiplication method.
const PoissonThreshold = 10.0

// Poisson draws a count with mean lambda.
func Poisson(src Source, lambda float64) int64 {
	switch {
	case lambda >= PoissonThreshold:
		return poissonPTRS(src, lambda)
	case lambda == 0:
		return 0
	default:
		return poissonMultiplication(src, lambda)
	}
}

func poissonMultiplication(src Source, lambda float64) int64 {
	enlam := math.Exp(-lambda)
	x := int64(0)
	prod := 1.0
	for {
		prod *= src.Float64()
		if prod <= enlam {
			return x
		}
		x++
	}
}

// poissonPTRS is Hörmann's transformed rejection with squeeze.
func poissonPTRS(src Source, lambda float64) int64 {
	slam := math.Sqrt(lambda)
	loglam := math.Log(lambda)
	b := 0.931 + 2.53*slam
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)

	for {
		u := src.Float64() - 0.5
		v := src.Float64()
		us := 0.5 - math.Abs(u)
		k := int64(math.Floor((2*a/us+b)*u + lambda + 0.43))
		if us >= 0.07 && v <= vr {
			return k
		}
		if k < 0 || (us < 0.013 && v > us) {
			continue
		}
		if math.Log(v)+math.Log(invalpha)-math.Log(a/(us*us)+b) <= -lambda+float64(k)*loglam-LogGamma(float64(k)+1) {
			return k
		}
	}
}
