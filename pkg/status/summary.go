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

package status

import (
	"encoding/json"
	"math"

	"golang.org/x/exp/constraints"
)

// Summary accumulates count, mean, variance and range of a stream of values
// in a single pass. The zero value is empty and ready to use. Summaries of
// disjoint streams can be merged.
type Summary struct {
	count uint64
	mean  float64
	m2    float64
	min   float64
	max   float64
}

func (s *Summary) Add(x float64) {
	s.count++
	if s.count == 1 {
		s.min, s.max = x, x
	} else {
		s.min = math.Min(s.min, x)
		s.max = math.Max(s.max, x)
	}

	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

// Observe adds integer or floating point values to s.
func Observe[T constraints.Integer | constraints.Float](s *Summary, values ...T) {
	for _, v := range values {
		s.Add(float64(v))
	}
}

// Merge folds o into s.
func (s *Summary) Merge(o Summary) {
	switch {
	case o.count == 0:
		return
	case s.count == 0:
		*s = o
		return
	}

	n := float64(s.count + o.count)
	delta := o.mean - s.mean
	s.m2 += o.m2 + delta*delta*float64(s.count)*float64(o.count)/n
	s.mean += delta * float64(o.count) / n
	s.count += o.count
	s.min = math.Min(s.min, o.min)
	s.max = math.Max(s.max, o.max)
}

func (s *Summary) Count() uint64 {
	return s.count
}

func (s *Summary) Mean() float64 {
	return s.mean
}

// Variance is the unbiased sample variance, 0 for fewer than two values.
func (s *Summary) Variance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Summary) Min() float64 {
	return s.min
}

func (s *Summary) Max() float64 {
	return s.max
}

// Float encodes non-finite values as JSON strings.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count    uint64 `json:"count"`
		Mean     Float  `json:"mean"`
		Variance Float  `json:"variance"`
		StdDev   Float  `json:"stddev"`
		Min      Float  `json:"min"`
		Max      Float  `json:"max"`
	}{
		Count:    s.count,
		Mean:     Float(s.mean),
		Variance: Float(s.Variance()),
		StdDev:   Float(s.StdDev()),
		Min:      Float(s.min),
		Max:      Float(s.max),
	})
}
