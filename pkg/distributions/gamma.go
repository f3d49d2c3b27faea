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

// StandardGamma draws from Gamma(shape, 1). A shape of exactly 1 reduces to
// the standard exponential and a shape of 0 yields 0. Shapes below 1 use the
// Ahrens-Dieter GS rejection scheme, the rest use Marsaglia-Tsang.
func StandardGamma(src Source, shape float64) float64 {
	switch {
	case shape == 1.0:
		return StandardExponential(src)
	case shape == 0.0:
		return 0.0
	case shape < 1.0:
		for {
			u := src.Float64()
			v := StandardExponential(src)
			if u <= 1.0-shape {
				x := math.Pow(u, 1.0/shape)
				if x <= v {
					return x
				}
			} else {
				y := -math.Log((1 - u) / shape)
				x := math.Pow(1.0-shape+shape*y, 1.0/shape)
				if x <= v+y {
					return x
				}
			}
		}
	default:
		b := shape - 1.0/3.0
		c := 1.0 / math.Sqrt(9*b)
		for {
			var x, v float64
			for {
				x = StandardNormal(src)
				v = 1.0 + c*x
				if v > 0.0 {
					break
				}
			}

			v = v * v * v
			u := src.Float64()
			if u < 1.0-0.0331*(x*x)*(x*x) {
				return b * v
			}
			if math.Log(u) < 0.5*x*x+b*(1.0-v+math.Log(v)) {
				return b * v
			}
		}
	}
}

// StandardGammaF32 is the single precision form of StandardGamma.
func StandardGammaF32(src Source, shape float32) float32 {
	switch {
	case shape == 1.0:
		return StandardExponentialF32(src)
	case shape == 0.0:
		return 0.0
	case shape < 1.0:
		for {
			u := StandardUniformF32(src)
			v := StandardExponentialF32(src)
			if u <= 1.0-shape {
				x := float32(math.Pow(float64(u), float64(1.0/shape)))
				if x <= v {
					return x
				}
			} else {
				y := -float32(math.Log(float64((1 - u) / shape)))
				x := float32(math.Pow(float64(1.0-shape+shape*y), float64(1.0/shape)))
				if x <= v+y {
					return x
				}
			}
		}
	default:
		b := shape - 1.0/3.0
		c := 1.0 / float32(math.Sqrt(float64(9*b)))
		for {
			var x, v float32
			for {
				x = StandardNormalF32(src)
				v = 1.0 + c*x
				if v > 0.0 {
					break
				}
			}

			v = v * v * v
			u := StandardUniformF32(src)
			if u < 1.0-0.0331*(x*x)*(x*x) {
				return b * v
			}
			if float32(math.Log(float64(u))) < 0.5*x*x+b*(1.0-v+float32(math.Log(float64(v)))) {
				return b * v
			}
		}
	}
}

// Gamma draws from Gamma(shape, scale).
func Gamma(src Source, shape, scale float64) float64 {
	return scale * StandardGamma(src, shape)
}

// GammaF32 is the single precision form of Gamma.
func GammaF32(src Source, shape, scale float32) float32 {
	return scale * StandardGammaF32(src, shape)
}
