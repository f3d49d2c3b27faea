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

// InversionLimit is the largest n*p served by the inversion sampler. Above it
// the BTPE sampler takes over.
const InversionLimit = 30.0

type binomialMethod uint8

const (
	methodNone binomialMethod = iota
	methodInversion
	methodBTPE
)

type (
	// BinomialCache memoizes the coefficients derived for the last (n, p)
	// pair a handle sampled. It belongs to exactly one handle; any change of
	// n, p or sampling method recomputes everything.
	BinomialCache struct {
		inversion inversionCoefficients
		btpe      btpeCoefficients
		stats     BinomialCacheStats
		n         int64
		p         float64
		method    binomialMethod
	}

	// BinomialCacheStats counts how often the cache was reused and how often
	// each method had to rebuild its coefficients.
	BinomialCacheStats struct {
		Hits      uint64 `json:"hits"`
		Inversion uint64 `json:"inversion_recomputations"`
		BTPE      uint64 `json:"btpe_recomputations"`
	}

	inversionCoefficients struct {
		q     float64
		qn    float64
		np    float64
		bound int64
	}

	btpeCoefficients struct {
		r, q, fm       float64
		p1, xm, xl, xr float64
		c, laml, lamr  float64
		p2, p3, p4     float64
		m              int64
	}
)

func (s BinomialCacheStats) Recomputations() uint64 {
	return s.Inversion + s.BTPE
}

// Stats returns the counters accumulated since the cache was created or last
// reset.
func (c *BinomialCache) Stats() BinomialCacheStats {
	return c.stats
}

// Reset invalidates the cached coefficients and clears the counters.
func (c *BinomialCache) Reset() {
	*c = BinomialCache{}
}

func (c *BinomialCache) lookup(method binomialMethod, n int64, p float64) bool {
	if c.method == method && c.n == n && c.p == p {
		c.stats.Hits++
		return true
	}

	c.method = method
	c.n = n
	c.p = p
	switch method {
	case methodInversion:
		c.stats.Inversion++
	case methodBTPE:
		c.stats.BTPE++
	}
	return false
}

// Binomial draws the number of successes in n trials with success
// probability p, reusing coefficients from cache when (n, p) is unchanged.
// The working probability is min(p, 1-p); draws made with 1-p are reflected
// as n minus the result.
func Binomial(src Source, p float64, n int64, cache *BinomialCache) int64 {
	if n == 0 || p == 0.0 {
		return 0
	}

	if p <= 0.5 {
		if p*float64(n) <= InversionLimit {
			return binomialInversion(src, n, p, cache)
		}
		return binomialBTPE(src, n, p, cache)
	}

	q := 1.0 - p
	if q*float64(n) <= InversionLimit {
		return n - binomialInversion(src, n, q, cache)
	}
	return n - binomialBTPE(src, n, q, cache)
}

func binomialInversion(src Source, n int64, p float64, cache *BinomialCache) int64 {
	c := &cache.inversion
	if !cache.lookup(methodInversion, n, p) {
		c.q = 1.0 - p
		c.qn = math.Exp(float64(n) * math.Log(c.q))
		c.np = float64(n) * p
		c.bound = int64(math.Min(float64(n), c.np+10.0*math.Sqrt(c.np*c.q+1)))
	}

	x := int64(0)
	px := c.qn
	u := src.Float64()
	for u > px {
		x++
		if x > c.bound {
			x = 0
			px = c.qn
			u = src.Float64()
		} else {
			u -= px
			px = (float64(n-x+1) * p * px) / (float64(x) * c.q)
		}
	}
	return x
}

type btpeStage uint8

const (
	stageDraw btpeStage = iota
	stageParallelogram
	stageLeftTail
	stageRightTail
	stageEvaluate
	stageSqueeze
	stageAccept
)

// binomialBTPE is the triangle/parallelogram/exponential acceptance-rejection
// sampler of Kachitvichyanukul & Schmeiser. Each stage of the algorithm is a
// case of the loop below; a rejection always returns to stageDraw.
func binomialBTPE(src Source, n int64, p float64, cache *BinomialCache) int64 {
	c := &cache.btpe
	if !cache.lookup(methodBTPE, n, p) {
		c.r = math.Min(p, 1.0-p)
		c.q = 1.0 - c.r
		c.fm = float64(n)*c.r + c.r
		c.m = int64(math.Floor(c.fm))
		c.p1 = math.Floor(2.195*math.Sqrt(float64(n)*c.r*c.q)-4.6*c.q) + 0.5
		c.xm = float64(c.m) + 0.5
		c.xl = c.xm - c.p1
		c.xr = c.xm + c.p1
		c.c = 0.134 + 20.5/(15.3+float64(c.m))
		a := (c.fm - c.xl) / (c.fm - c.xl*c.r)
		c.laml = a * (1.0 + a/2.0)
		a = (c.xr - c.fm) / (c.xr * c.q)
		c.lamr = a * (1.0 + a/2.0)
		c.p2 = c.p1 * (1.0 + 2.0*c.c)
		c.p3 = c.p2 + c.c/c.laml
		c.p4 = c.p3 + c.c/c.lamr
	}

	nrq := float64(n) * c.r * c.q
	var (
		u, v float64
		y    int64
	)

	stage := stageDraw
	for {
		switch stage {
		case stageDraw:
			u = src.Float64() * c.p4
			v = src.Float64()
			if u > c.p1 {
				stage = stageParallelogram
				continue
			}
			y = int64(math.Floor(c.xm - c.p1*v + u))
			stage = stageAccept

		case stageParallelogram:
			if u > c.p2 {
				stage = stageLeftTail
				continue
			}
			x := c.xl + (u-c.p1)/c.c
			v = v*c.c + 1.0 - math.Abs(float64(c.m)-x+0.5)/c.p1
			if v > 1.0 {
				stage = stageDraw
				continue
			}
			y = int64(math.Floor(x))
			stage = stageEvaluate

		case stageLeftTail:
			if u > c.p3 {
				stage = stageRightTail
				continue
			}
			if v == 0.0 {
				stage = stageDraw
				continue
			}
			y = int64(math.Floor(c.xl + math.Log(v)/c.laml))
			if y < 0 {
				stage = stageDraw
				continue
			}
			v = v * (u - c.p2) * c.laml
			stage = stageEvaluate

		case stageRightTail:
			if v == 0.0 {
				stage = stageDraw
				continue
			}
			y = int64(math.Floor(c.xr - math.Log(v)/c.lamr))
			if y > n {
				stage = stageDraw
				continue
			}
			v = v * (u - c.p3) * c.lamr
			stage = stageEvaluate

		case stageEvaluate:
			k := y - c.m
			if k < 0 {
				k = -k
			}
			if k > 20 && float64(k) < nrq/2.0-1 {
				stage = stageSqueeze
				continue
			}

			// explicit evaluation of f(y)/f(m)
			s := c.r / c.q
			a := s * float64(n+1)
			f := 1.0
			switch {
			case c.m < y:
				for i := c.m + 1; i <= y; i++ {
					f *= a/float64(i) - s
				}
			case c.m > y:
				for i := y + 1; i <= c.m; i++ {
					f /= a/float64(i) - s
				}
			}
			if v > f {
				stage = stageDraw
				continue
			}
			stage = stageAccept

		case stageSqueeze:
			k := y - c.m
			if k < 0 {
				k = -k
			}
			kf := float64(k)
			rho := (kf / nrq) * ((kf*(kf/3.0+0.625)+0.16666666666666666)/nrq + 0.5)
			t := float64(-k*k) / (2 * nrq)
			logV := math.Log(v)
			if logV < t-rho {
				stage = stageAccept
				continue
			}
			if logV > t+rho {
				stage = stageDraw
				continue
			}

			x1 := float64(y + 1)
			f1 := float64(c.m + 1)
			z := float64(n + 1 - c.m)
			w := float64(n - y + 1)
			bound := c.xm*math.Log(f1/x1) +
				(float64(n-c.m)+0.5)*math.Log(z/w) +
				float64(y-c.m)*math.Log(w*c.r/(x1*c.q)) +
				stirlingCorrection(f1) + stirlingCorrection(z) +
				stirlingCorrection(x1) + stirlingCorrection(w)
			if logV > bound {
				stage = stageDraw
				continue
			}
			stage = stageAccept

		case stageAccept:
			if p > 0.5 {
				y = n - y
			}
			return y
		}
	}
}

// stirlingCorrection is the tail of Stirling's series used by the final BTPE
// acceptance test.
func stirlingCorrection(v float64) float64 {
	v2 := v * v
	return (13680. - (462.-(132.-(99.-140./v2)/v2)/v2)/v2) / v / 166320.
}
