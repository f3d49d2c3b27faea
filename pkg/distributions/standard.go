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

	"github.com/scylladb/variates/pkg/ziggurat"
)

// StandardExponential draws from Exp(1) with the 256-layer ziggurat.
// A 64-bit draw is reduced to 61 bits: the low 8 pick the layer and the
// remaining 53 form the magnitude.
func StandardExponential(src Source) float64 {
	for {
		ri := src.Uint64() >> 3
		idx := ri & 0xff
		ri >>= 8
		x := float64(ri) * ziggurat.ExponentialW[idx]
		if ri < ziggurat.ExponentialK[idx] {
			return x
		}

		if idx == 0 {
			// memoryless tail beyond r
			return ziggurat.ExponentialR - math.Log(1.0-src.Float64())
		}

		if (ziggurat.ExponentialF[idx-1]-ziggurat.ExponentialF[idx])*src.Float64()+ziggurat.ExponentialF[idx] < math.Exp(-x) {
			return x
		}
	}
}

// StandardExponentialF32 is the single precision form of StandardExponential.
func StandardExponentialF32(src Source) float32 {
	for {
		ri := src.Uint32() >> 1
		idx := ri & 0xff
		ri >>= 8
		x := float32(ri) * ziggurat.ExponentialW32[idx]
		if ri < ziggurat.ExponentialK32[idx] {
			return x
		}

		if idx == 0 {
			return ziggurat.ExponentialR32 - float32(math.Log(float64(1.0-StandardUniformF32(src))))
		}

		if (ziggurat.ExponentialF32[idx-1]-ziggurat.ExponentialF32[idx])*StandardUniformF32(src)+ziggurat.ExponentialF32[idx] <
			float32(math.Exp(-float64(x))) {
			return x
		}
	}
}

// StandardNormal draws from N(0, 1) with the 256-layer ziggurat. Of a 64-bit
// draw, the low 8 bits pick the layer, the next bit is the sign and the
// following 52 bits form the magnitude.
func StandardNormal(src Source) float64 {
	for {
		r := src.Uint64()
		idx := r & 0xff
		r >>= 8
		sign := r & 0x1
		rabs := (r >> 1) & 0x000fffffffffffff
		x := float64(rabs) * ziggurat.NormalW[idx]
		if sign != 0 {
			x = -x
		}
		if rabs < ziggurat.NormalK[idx] {
			return x
		}

		if idx == 0 {
			for {
				xx := -ziggurat.NormalInvR * math.Log(1.0-src.Float64())
				yy := -math.Log(1.0 - src.Float64())
				if yy+yy > xx*xx {
					if (rabs>>8)&0x1 != 0 {
						return -(ziggurat.NormalR + xx)
					}
					return ziggurat.NormalR + xx
				}
			}
		}

		if (ziggurat.NormalF[idx-1]-ziggurat.NormalF[idx])*src.Float64()+ziggurat.NormalF[idx] < math.Exp(-0.5*x*x) {
			return x
		}
	}
}

// StandardNormalF32 is the single precision form of StandardNormal. The 32-bit
// draw carries 8 layer bits, 1 sign bit and 23 magnitude bits.
func StandardNormalF32(src Source) float32 {
	for {
		r := src.Uint32()
		idx := r & 0xff
		sign := (r >> 8) & 0x1
		rabs := (r >> 9) & 0x0007fffff
		x := float32(rabs) * ziggurat.NormalW32[idx]
		if sign != 0 {
			x = -x
		}
		if rabs < ziggurat.NormalK32[idx] {
			return x
		}

		if idx == 0 {
			for {
				xx := -ziggurat.NormalInvR32 * float32(math.Log(float64(1.0-StandardUniformF32(src))))
				yy := -float32(math.Log(float64(1.0 - StandardUniformF32(src))))
				if yy+yy > xx*xx {
					if (rabs>>8)&0x1 != 0 {
						return -(ziggurat.NormalR32 + xx)
					}
					return ziggurat.NormalR32 + xx
				}
			}
		}

		if (ziggurat.NormalF32[idx-1]-ziggurat.NormalF32[idx])*StandardUniformF32(src)+ziggurat.NormalF32[idx] <
			float32(math.Exp(-0.5*float64(x)*float64(x))) {
			return x
		}
	}
}
