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

// Beta draws from Beta(a, b). When both shapes are at most 1 it uses Jöhnk's
// algorithm, otherwise the ratio of two gamma variates.
func Beta(src Source, a, b float64) float64 {
	if a > 1.0 || b > 1.0 {
		ga := StandardGamma(src, a)
		gb := StandardGamma(src, b)
		return ga / (ga + gb)
	}

	for {
		u := src.Float64()
		v := src.Float64()
		x := math.Pow(u, 1.0/a)
		y := math.Pow(v, 1.0/b)
		xpy := x + y
		if xpy > 1.0 || u+v <= 0.0 {
			continue
		}
		if xpy > 0.0 {
			return x / xpy
		}

		// x and y both underflowed; take the ratio in log space
		logX := math.Log(u) / a
		logY := math.Log(v) / b
		logM := math.Max(logX, logY)
		logX -= logM
		logY -= logM
		return math.Exp(logX - math.Log(math.Exp(logX)+math.Exp(logY)))
	}
}
