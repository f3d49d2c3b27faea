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

// Normal draws from N(loc, scale²).
func Normal(src Source, loc, scale float64) float64 {
	return loc + scale*StandardNormal(src)
}

// NormalF32 is the single precision form of Normal.
func NormalF32(src Source, loc, scale float32) float32 {
	return loc + scale*StandardNormalF32(src)
}

// LogNormal draws a value whose logarithm is N(mean, sigma²).
func LogNormal(src Source, mean, sigma float64) float64 {
	return math.Exp(Normal(src, mean, sigma))
}
