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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/metrics"
	"github.com/scylladb/variates/pkg/plan"
	"github.com/scylladb/variates/pkg/status"
	"github.com/scylladb/variates/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:               "variates",
	Short:             "Variates draws reproducible pseudorandom variates from named distributions.",
	RunE:              run,
	PersistentPreRunE: preRun,
	SilenceUsage:      true,
}

func init() {
	setupFlags(rootCmd)

	rootCmd.AddCommand(Plan(), Benchmark(), Version())
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger, err := createLogger(level, logFile)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	utils.AddFinalizer(func() { utils.IgnoreError(logger.Sync) })

	if metricsBind != "" {
		metrics.StartMetricsServer(cmd.Context(), metricsBind)
	}

	if profilingPort != 0 {
		go func() {
			mux := http.NewServeMux()

			mux.HandleFunc("GET /debug/pprof/", pprof.Index)
			mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
			mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
			mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
			mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

			//nolint:gosec
			if err := http.ListenAndServe("0.0.0.0:"+strconv.Itoa(profilingPort), mux); err != nil {
				logger.Error("pprof server stopped", zap.Error(err))
			}
		}()
	}

	return nil
}

func checkVersion(cmd *cobra.Command) (bool, error) {
	versionJSON, err := cmd.Flags().GetBool("version-json")
	if err != nil {
		return false, err
	}

	if !versionFlag && !versionJSON {
		return false, nil
	}

	return true, printVersion(cmd.OutOrStdout(), versionJSON)
}

func run(cmd *cobra.Command, _ []string) error {
	shouldAbort, err := checkVersion(cmd)
	if err != nil || shouldAbort {
		return err
	}

	job, err := resolveFlags()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	printSetup(out, job)

	st := status.NewRunStatus(maxErrorsToStore)
	report, err := runJob(ctx, job, st)
	if err != nil {
		zap.L().Error("sampling failed", zap.String("distribution", string(job.Distribution)), zap.Error(err))
	}

	st.PrintResult(out, version, map[string]any{"jobs": []jobReport{report}})

	if err != nil {
		return err
	}
	if st.HasErrors() {
		return errors.Errorf("%d shards failed", st.ShardsFailed.Load())
	}
	return nil
}

// resolveFlags runs the root command's flags through the same validation a
// single-job plan gets.
func resolveFlags() (plan.Resolved, error) {
	raw, err := parseParams(params)
	if err != nil {
		return plan.Resolved{}, err
	}

	p := plan.Plan{
		Seed:        seed,
		Backend:     backend,
		Compression: compression,
		Shards:      shardCount,
		Jobs: []plan.Job{{
			Name:         distribution,
			Distribution: distribution,
			Count:        count,
			Output:       outFileArg,
			Params:       raw,
		}},
	}

	jobs, err := p.Resolve()
	if err != nil {
		return plan.Resolved{}, err
	}
	return jobs[0], nil
}

// parseParams turns repeated key=value flags into a map for
// distributions.DecodeParams.
func parseParams(values []string) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, errors.Errorf("parameter %q is not in the form key=value", kv)
		}
		if _, dup := out[key]; dup {
			return nil, errors.Errorf("parameter %q given more than once", key)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

func createLogger(level, file string) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}

	w, err := utils.CreateFile(file, true, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create log file")
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderCfg.EncodeCaller = nil

	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	))
	utils.AddFinalizer(func() { utils.IgnoreError(w.Close) })

	return logger, nil
}

func printSetup(w io.Writer, job plan.Resolved) {
	tw := new(tabwriter.Writer)
	tw.Init(w, 0, 8, 2, '\t', tabwriter.AlignRight)
	_, _ = fmt.Fprintf(tw, "Job:\t%s\n", job.Name)
	_, _ = fmt.Fprintf(tw, "Distribution:\t%s\n", job.Distribution)
	_, _ = fmt.Fprintf(tw, "Parameters:\t%s\n", formatParams(job))
	_, _ = fmt.Fprintf(tw, "Count:\t%d\n", job.Count)
	_, _ = fmt.Fprintf(tw, "Seed:\t%d\n", job.Seed)
	_, _ = fmt.Fprintf(tw, "Shards:\t%d\n", job.Shards)
	_, _ = fmt.Fprintf(tw, "Backend:\t%s\n", job.Backend)
	if job.Output == "" {
		_, _ = fmt.Fprintf(tw, "Output file:\t%s\n", "<none>")
	} else {
		_, _ = fmt.Fprintf(tw, "Output file:\t%s (%s)\n", job.Output, job.Compression)
	}
	_ = tw.Flush()
}

func formatParams(job plan.Resolved) string {
	values, err := distributions.EncodeParams(job.Distribution, job.Params)
	if err != nil {
		data, _ := json.Marshal(job.Params)
		return string(data)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.FormatFloat(values[k], 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}
