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

package random

import "github.com/scylladb/variates/pkg/distributions"

// The accessors below draw from the handle's generator. Parameters are not
// validated; see distributions.Validate.

func (h *Handle) StandardNormal() float64 {
	return distributions.StandardNormal(h.gen)
}

func (h *Handle) StandardExponential() float64 {
	return distributions.StandardExponential(h.gen)
}

func (h *Handle) StandardGamma(shape float64) float64 {
	return distributions.StandardGamma(h.gen, shape)
}

func (h *Handle) Normal(loc, scale float64) float64 {
	return distributions.Normal(h.gen, loc, scale)
}

func (h *Handle) Exponential(scale float64) float64 {
	return distributions.Exponential(h.gen, scale)
}

func (h *Handle) Gamma(shape, scale float64) float64 {
	return distributions.Gamma(h.gen, shape, scale)
}

func (h *Handle) Beta(a, b float64) float64 {
	return distributions.Beta(h.gen, a, b)
}

func (h *Handle) Poisson(lambda float64) int64 {
	return distributions.Poisson(h.gen, lambda)
}

func (h *Handle) NegativeBinomial(n, p float64) int64 {
	return distributions.NegativeBinomial(h.gen, n, p)
}
