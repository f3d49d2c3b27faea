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

// Package ziggurat holds the immutable constant data consumed by the samplers:
// the 256-layer ziggurat boundaries for the standard normal and standard
// exponential densities (one set per precision) and the log-gamma series
// coefficients.
//
// For every table set, index 0 is the base layer that also covers the tail,
// K[i] is the acceptance bound for a raw magnitude drawn in layer i, W[i]
// scales that magnitude to the variate and F[i] is the density at the layer's
// right edge. The tables are shared by every handle and must never be written.
package ziggurat

//go:generate go run gen.go

const (
	// Layers is the number of ziggurat layers in every table.
	Layers = 256

	NormalR    = 3.6541528853610087963519472518
	NormalInvR = 0.27366123732975827203338247596

	ExponentialR = 7.6971174701310497140446280481

	NormalR32    float32 = NormalR
	NormalInvR32 float32 = NormalInvR

	ExponentialR32 float32 = ExponentialR
)

// LogGammaCoefficients are the asymptotic series terms of Zhang & Jin,
// "Computation of Special Functions" (1996), highest order last.
var LogGammaCoefficients = [10]float64{
	8.333333333333333e-02, -2.777777777777778e-03,
	7.936507936507937e-04, -5.952380952380952e-04,
	8.417508417508418e-04, -1.917526917526918e-03,
	6.410256410256410e-03, -2.955065359477124e-02,
	1.796443723688307e-01, -1.39243221690590e+00,
}
