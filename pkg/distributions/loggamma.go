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

var halfLog2Pi = 0.5 * math.Log(2.0*math.Pi)

// LogGamma returns log Γ(x) for x > 0 using the Zhang & Jin asymptotic series.
// Arguments up to 7 are shifted upward first and corrected with the
// recurrence afterwards.
func LogGamma(x float64) float64 {
	if x == 1.0 || x == 2.0 {
		return 0.0
	}

	x0 := x
	n := 0
	if x <= 7.0 {
		n = int(7 - x)
		x0 = x + float64(n)
	}

	a := &ziggurat.LogGammaCoefficients
	x2 := 1.0 / (x0 * x0)
	gl0 := a[9]
	for k := 8; k >= 0; k-- {
		gl0 *= x2
		gl0 += a[k]
	}

	gl := gl0/x0 + halfLog2Pi + (x0-0.5)*math.Log(x0) - x0
	for range n {
		gl -= math.Log(x0 - 1.0)
		x0 -= 1.0
	}
	return gl
}
