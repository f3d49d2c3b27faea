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

package metrics

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Prefix = "variates_"

var registerer = prometheus.NewRegistry()

var (
	DrawsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draws_total",
			Help: "Number of variates drawn.",
		},
		[]string{"distribution"},
	)

	BinomialCacheRecomputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binomial_cache_recomputations_total",
			Help: "Number of times a handle rebuilt its binomial coefficients.",
		},
		[]string{"method"},
	)

	BinomialCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "binomial_cache_hits_total",
			Help: "Number of binomial draws served from cached coefficients.",
		},
	)

	ShardExecutionTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shard_execution_time",
			Help:    "Time taken by a shard to draw its variates, in microseconds.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 12),
		},
		[]string{"distribution"},
	)

	ShardsRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "shards_running",
			Help: "Number of shards currently drawing.",
		},
	)

	ShardErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shard_errors",
		},
		[]string{"distribution"},
	)

	MemoryMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "memory_footprint",
		},
		[]string{"type", "context"},
	)

	FileSizeMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "file_size_bytes",
		},
		[]string{"file"},
	)
)

func init() {
	r := prometheus.WrapRegistererWithPrefix(Prefix, registerer)

	r.MustRegister(channelMetrics)

	r.MustRegister(
		DrawsTotal,
		BinomialCacheRecomputations,
		BinomialCacheHits,
		ShardExecutionTime,
		ShardsRunning,
		ShardErrors,
		MemoryMetrics,
		FileSizeMetrics,
	)

	r.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			ReportErrors: true,
			PidFn: func() (int, error) {
				return os.Getpid(), nil
			},
		}),
		collectors.NewBuildInfoCollector(),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "go_goroutines_count",
			Help: "Number of goroutines currently active.",
		}, func() float64 {
			return float64(runtime.NumGoroutine())
		}),
	)
}

// Gatherer exposes the private registry, mainly for tests.
func Gatherer() prometheus.Gatherer {
	return registerer
}

func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(registerer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          registerer,
			OfferedCompressions: []promhttp.Compression{
				promhttp.Zstd,
				promhttp.Gzip,
				promhttp.Identity,
			},
		}),
	)
}

func StartMetricsServer(ctx context.Context, bind string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		WriteTimeout:      1 * time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		Handler:           mux,
		Addr:              bind,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(errors.Wrapf(err, "failed to start metrics server on %s", bind))
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			log.Println(err)
		}
	}()
}

type RunningTime struct {
	start    time.Time
	observer prometheus.Observer
}

// ShardTimeStart starts timing one shard of distribution.
func ShardTimeStart(distribution string) RunningTime {
	return RunningTime{
		start:    time.Now(),
		observer: ShardExecutionTime.WithLabelValues(distribution),
	}
}

// Record observes the elapsed time and returns it.
func (r RunningTime) Record() time.Duration {
	elapsed := time.Since(r.start)
	r.observer.Observe(float64(elapsed.Microseconds()))
	return elapsed
}
