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
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/multierr"
)

var (
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrInvalidParameter    = errors.New("invalid distribution parameter")
)

type (
	Distribution string

	// DistributionFunc returns the next variate of a configured distribution.
	// Counting distributions return their integer result as a float64.
	DistributionFunc func() float64

	// Params is the union of every parameter a named distribution accepts.
	// Unused fields are ignored.
	Params struct {
		Loc    float64 `mapstructure:"loc" yaml:"loc,omitempty" json:"loc,omitempty"`
		Scale  float64 `mapstructure:"scale" yaml:"scale,omitempty" json:"scale,omitempty"`
		Low    float64 `mapstructure:"low" yaml:"low,omitempty" json:"low,omitempty"`
		High   float64 `mapstructure:"high" yaml:"high,omitempty" json:"high,omitempty"`
		Shape  float64 `mapstructure:"shape" yaml:"shape,omitempty" json:"shape,omitempty"`
		A      float64 `mapstructure:"a" yaml:"a,omitempty" json:"a,omitempty"`
		B      float64 `mapstructure:"b" yaml:"b,omitempty" json:"b,omitempty"`
		DF     float64 `mapstructure:"df" yaml:"df,omitempty" json:"df,omitempty"`
		DFNum  float64 `mapstructure:"dfnum" yaml:"dfnum,omitempty" json:"dfnum,omitempty"`
		DFDen  float64 `mapstructure:"dfden" yaml:"dfden,omitempty" json:"dfden,omitempty"`
		Lambda float64 `mapstructure:"lambda" yaml:"lambda,omitempty" json:"lambda,omitempty"`
		N      float64 `mapstructure:"n" yaml:"n,omitempty" json:"n,omitempty"`
		P      float64 `mapstructure:"p" yaml:"p,omitempty" json:"p,omitempty"`
	}

	// binomialSource is implemented by sources that carry their own
	// coefficient cache.
	binomialSource interface {
		Binomial(p float64, n int64) int64
	}
)

const (
	UniformDistribution          Distribution = "uniform"
	NormalDistribution           Distribution = "normal"
	ExponentialDistribution      Distribution = "exponential"
	GammaDistribution            Distribution = "gamma"
	BetaDistribution             Distribution = "beta"
	ChiSquareDistribution        Distribution = "chisquare"
	FDistribution                Distribution = "f"
	TDistribution                Distribution = "t"
	CauchyDistribution           Distribution = "cauchy"
	ParetoDistribution           Distribution = "pareto"
	WeibullDistribution          Distribution = "weibull"
	PowerDistribution            Distribution = "power"
	LaplaceDistribution          Distribution = "laplace"
	GumbelDistribution           Distribution = "gumbel"
	LogisticDistribution         Distribution = "logistic"
	LogNormalDistribution        Distribution = "lognormal"
	RayleighDistribution         Distribution = "rayleigh"
	PoissonDistribution          Distribution = "poisson"
	BinomialDistribution         Distribution = "binomial"
	NegativeBinomialDistribution Distribution = "negative_binomial"
)

var aliases = map[string]Distribution{
	"negbinomial": NegativeBinomialDistribution,
	"chi2":        ChiSquareDistribution,
	"student_t":   TDistribution,
}

var parameterKeys = map[Distribution]*strset.Set{
	UniformDistribution:          strset.New("low", "high"),
	NormalDistribution:           strset.New("loc", "scale"),
	ExponentialDistribution:      strset.New("scale"),
	GammaDistribution:            strset.New("shape", "scale"),
	BetaDistribution:             strset.New("a", "b"),
	ChiSquareDistribution:        strset.New("df"),
	FDistribution:                strset.New("dfnum", "dfden"),
	TDistribution:                strset.New("df"),
	CauchyDistribution:           strset.New(),
	ParetoDistribution:           strset.New("a"),
	WeibullDistribution:          strset.New("a"),
	PowerDistribution:            strset.New("a"),
	LaplaceDistribution:          strset.New("loc", "scale"),
	GumbelDistribution:           strset.New("loc", "scale"),
	LogisticDistribution:         strset.New("loc", "scale"),
	LogNormalDistribution:        strset.New("loc", "scale"),
	RayleighDistribution:         strset.New("scale"),
	PoissonDistribution:          strset.New("lambda"),
	BinomialDistribution:         strset.New("n", "p"),
	NegativeBinomialDistribution: strset.New("n", "p"),
}

// DefaultParams returns the parameters used for keys a caller leaves unset.
func DefaultParams() Params {
	return Params{
		Scale:  1,
		High:   1,
		Shape:  1,
		A:      1,
		B:      1,
		DF:     1,
		DFNum:  1,
		DFDen:  1,
		Lambda: 1,
		N:      1,
		P:      0.5,
	}
}

// Names lists every distribution New accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(parameterKeys))
	for d := range parameterKeys {
		names = append(names, string(d))
	}
	sort.Strings(names)
	return names
}

func ParseDistribution(name string) (Distribution, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := aliases[key]; ok {
		return d, nil
	}
	if _, ok := parameterKeys[Distribution(key)]; ok {
		return Distribution(key), nil
	}
	return "", errors.Wrapf(ErrUnknownDistribution, "%q", name)
}

// ParameterKeys returns the parameter names the distribution reads.
func ParameterKeys(d Distribution) []string {
	keys, ok := parameterKeys[d]
	if !ok {
		return nil
	}
	list := keys.List()
	sort.Strings(list)
	return list
}

// DecodeParams overlays raw on DefaultParams. Values may be strings, as they
// arrive from the command line. Keys the distribution does not read are an
// error.
func DecodeParams(name string, raw map[string]any) (Params, error) {
	params := DefaultParams()
	d, err := ParseDistribution(name)
	if err != nil {
		return params, err
	}

	given := strset.NewWithSize(len(raw))
	for key := range raw {
		given.Add(strings.ToLower(key))
	}
	if unknown := strset.Difference(given, parameterKeys[d]); !unknown.IsEmpty() {
		list := unknown.List()
		sort.Strings(list)
		return params, errors.Wrapf(ErrInvalidParameter, "%s does not accept %s", d, strings.Join(list, ", "))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &params,
	})
	if err != nil {
		return params, errors.Wrap(err, "failed to create parameter decoder")
	}
	if err = decoder.Decode(raw); err != nil {
		return params, errors.Wrapf(ErrInvalidParameter, "%s: %v", d, err)
	}
	return params, nil
}

// EncodeParams is the inverse of DecodeParams: it returns only the keys the
// distribution reads.
func EncodeParams(d Distribution, params Params) (map[string]float64, error) {
	var all map[string]float64
	if err := mapstructure.Decode(params, &all); err != nil {
		return nil, errors.Wrap(err, "failed to encode parameters")
	}

	out := make(map[string]float64, len(all))
	if keys, ok := parameterKeys[d]; ok {
		keys.Each(func(key string) bool {
			out[key] = all[key]
			return true
		})
	}
	return out, nil
}

func invalid(d Distribution, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, "%s: %s", d, fmt.Sprintf(format, args...))
}

// Validate reports every parameter of params that lies outside the support
// of the named distribution. The samplers themselves never check.
func Validate(name string, params Params) error {
	d, err := ParseDistribution(name)
	if err != nil {
		return err
	}

	var errs error
	positive := func(key string, v float64) {
		if !(v > 0) || math.IsInf(v, 1) {
			errs = multierr.Append(errs, invalid(d, "%s must be positive and finite, got %v", key, v))
		}
	}
	nonNegative := func(key string, v float64) {
		if !(v >= 0) || math.IsInf(v, 1) {
			errs = multierr.Append(errs, invalid(d, "%s must be non-negative and finite, got %v", key, v))
		}
	}
	finite := func(key string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = multierr.Append(errs, invalid(d, "%s must be finite, got %v", key, v))
		}
	}

	switch d {
	case UniformDistribution:
		finite("low", params.Low)
		finite("high", params.High)
		if !(params.High >= params.Low) || math.IsInf(params.High-params.Low, 0) {
			errs = multierr.Append(errs, invalid(d, "high must not be below low, got [%v, %v)", params.Low, params.High))
		}
	case NormalDistribution, LaplaceDistribution, GumbelDistribution, LogisticDistribution, LogNormalDistribution:
		finite("loc", params.Loc)
		nonNegative("scale", params.Scale)
	case ExponentialDistribution, RayleighDistribution:
		nonNegative("scale", params.Scale)
	case GammaDistribution:
		nonNegative("shape", params.Shape)
		nonNegative("scale", params.Scale)
	case BetaDistribution:
		positive("a", params.A)
		positive("b", params.B)
	case ChiSquareDistribution, TDistribution:
		positive("df", params.DF)
	case FDistribution:
		positive("dfnum", params.DFNum)
		positive("dfden", params.DFDen)
	case ParetoDistribution, PowerDistribution:
		positive("a", params.A)
	case WeibullDistribution:
		nonNegative("a", params.A)
	case PoissonDistribution:
		nonNegative("lambda", params.Lambda)
	case BinomialDistribution:
		if !(params.N >= 0) || params.N != math.Trunc(params.N) || params.N >= math.MaxInt64 {
			errs = multierr.Append(errs, invalid(d, "n must be a non-negative integer, got %v", params.N))
		}
		if !(params.P >= 0 && params.P <= 1) {
			errs = multierr.Append(errs, invalid(d, "p must lie in [0, 1], got %v", params.P))
		}
	case NegativeBinomialDistribution:
		positive("n", params.N)
		if !(params.P > 0 && params.P <= 1) {
			errs = multierr.Append(errs, invalid(d, "p must lie in (0, 1], got %v", params.P))
		}
	}
	return errs
}

// New validates params and returns a closure drawing the named distribution
// from src. The closure is bound to src and inherits its single-owner rule.
func New(name string, params Params, src Source) (DistributionFunc, error) {
	d, err := ParseDistribution(name)
	if err != nil {
		return nil, err
	}
	if err = Validate(name, params); err != nil {
		return nil, err
	}

	p := params
	switch d {
	case UniformDistribution:
		return func() float64 { return Uniform(src, p.Low, p.High-p.Low) }, nil
	case NormalDistribution:
		return func() float64 { return Normal(src, p.Loc, p.Scale) }, nil
	case ExponentialDistribution:
		return func() float64 { return Exponential(src, p.Scale) }, nil
	case GammaDistribution:
		return func() float64 { return Gamma(src, p.Shape, p.Scale) }, nil
	case BetaDistribution:
		return func() float64 { return Beta(src, p.A, p.B) }, nil
	case ChiSquareDistribution:
		return func() float64 { return ChiSquare(src, p.DF) }, nil
	case FDistribution:
		return func() float64 { return F(src, p.DFNum, p.DFDen) }, nil
	case TDistribution:
		return func() float64 { return StandardT(src, p.DF) }, nil
	case CauchyDistribution:
		return func() float64 { return StandardCauchy(src) }, nil
	case ParetoDistribution:
		return func() float64 { return Pareto(src, p.A) }, nil
	case WeibullDistribution:
		return func() float64 { return Weibull(src, p.A) }, nil
	case PowerDistribution:
		return func() float64 { return Power(src, p.A) }, nil
	case LaplaceDistribution:
		return func() float64 { return Laplace(src, p.Loc, p.Scale) }, nil
	case GumbelDistribution:
		return func() float64 { return Gumbel(src, p.Loc, p.Scale) }, nil
	case LogisticDistribution:
		return func() float64 { return Logistic(src, p.Loc, p.Scale) }, nil
	case LogNormalDistribution:
		return func() float64 { return LogNormal(src, p.Loc, p.Scale) }, nil
	case RayleighDistribution:
		return func() float64 { return Rayleigh(src, p.Scale) }, nil
	case PoissonDistribution:
		return func() float64 { return float64(Poisson(src, p.Lambda)) }, nil
	case BinomialDistribution:
		n := int64(p.N)
		if b, ok := src.(binomialSource); ok {
			return func() float64 { return float64(b.Binomial(p.P, n)) }, nil
		}
		cache := &BinomialCache{}
		return func() float64 { return float64(Binomial(src, p.P, n, cache)) }, nil
	case NegativeBinomialDistribution:
		return func() float64 { return float64(NegativeBinomial(src, p.N, p.P)) }, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDistribution, "%q", name)
	}
}
