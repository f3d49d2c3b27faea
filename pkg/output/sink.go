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

// Package output streams drawn variates to a file as "shard,index,value"
// lines. Every shard appends through its own ShardWriter; a single committer
// goroutine owns the file.
package output

import (
	"context"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/scylladb/variates/pkg/metrics"
	"github.com/scylladb/variates/pkg/utils"
)

const (
	defaultChanSize   = 1024
	defaultBufferSize = 32 * 1024
	errorsOnFileLimit = 5

	bufioWriterSize = 8192 * 4
)

var ErrClosed = errors.New("output sink is closed")

type (
	flusher interface {
		io.Writer
		Flush() error
	}

	Sink interface {
		// Writer returns a buffer for one shard. It must not be shared
		// between goroutines.
		Writer(shard int) *ShardWriter
		Close() error
	}

	sink struct {
		writer  flusher
		logger  *zap.Logger
		channel chan []byte
		cancel  context.CancelFunc
		wg      *sync.WaitGroup
		closers []io.Closer
		metrics metrics.ChannelMetrics
		written atomic.Uint64
		active  atomic.Bool
		mu      sync.RWMutex
		errs    error
	}

	ShardWriter struct {
		sink  *sink
		buf   []byte
		shard int
	}
)

// NewFileSink creates filename, truncating it. An empty filename yields a
// sink that discards everything; "stdout" and "stderr" write to those streams.
func NewFileSink(ctx context.Context, filename string, compression Compression) (Sink, error) {
	if filename == "" {
		return nopSink{}, nil
	}

	fd, err := utils.CreateFile(filename, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open output file")
	}

	out, err := NewSink(ctx, filename, fd, compression)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	return out, nil
}

func NewSink(ctx context.Context, name string, w io.Writer, compression Compression) (Sink, error) {
	writer, closers, err := compression.newWriter(w)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	out := &sink{
		writer:  writer,
		closers: closers,
		logger:  zap.L().Named("output").With(zap.String("name", name)),
		channel: make(chan []byte, defaultChanSize),
		cancel:  cancel,
		wg:      &sync.WaitGroup{},
		metrics: metrics.NewChannelMetrics("output", name),
	}
	out.active.Store(true)

	out.wg.Add(1)
	go out.committer()
	if f, ok := w.(*os.File); ok {
		go fileSizeReporter(ctx, f)
	}

	return out, nil
}

func fileSizeReporter(ctx context.Context, f *os.File) {
	timer := time.NewTicker(1 * time.Second)
	defer timer.Stop()

	name := f.Name()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			info, err := f.Stat()
			if err != nil {
				continue
			}

			metrics.FileSizeMetrics.WithLabelValues(name).Set(float64(info.Size()))
		}
	}
}

func (s *sink) Writer(shard int) *ShardWriter {
	return &ShardWriter{
		sink:  s,
		shard: shard,
		buf:   make([]byte, 0, defaultBufferSize),
	}
}

func (s *sink) send(data []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active.Load() {
		return ErrClosed
	}
	s.metrics.Inc(len(data))
	s.channel <- data
	return nil
}

func (s *sink) committer() {
	defer s.wg.Done()
	errsAtRow := 0

	for rec := range s.channel {
		s.metrics.Dec(len(rec))
		if errsAtRow > errorsOnFileLimit {
			continue
		}

		if _, err := s.writer.Write(rec); err != nil {
			errsAtRow++
			s.errs = multierr.Append(s.errs, err)
			s.logger.Warn("failed to write variates", zap.Error(err))
			continue
		}
		errsAtRow = 0
		s.written.Add(uint64(len(rec)))
	}

	if err := s.writer.Flush(); err != nil {
		s.errs = multierr.Append(s.errs, err)
	}
}

// Close drains queued lines, flushes them and closes the underlying writer.
// It reports every write error the committer saw.
func (s *sink) Close() error {
	s.mu.Lock()
	if !s.active.Swap(false) {
		s.mu.Unlock()
		return nil
	}
	close(s.channel)
	s.mu.Unlock()

	s.wg.Wait()
	s.cancel()

	errs := s.errs
	for _, c := range s.closers {
		errs = multierr.Append(errs, c.Close())
	}

	s.logger.Debug("output closed", zap.Uint64("bytes", s.written.Load()))
	return errs
}

// Append buffers one variate and hands the buffer to the sink once it is
// full.
func (w *ShardWriter) Append(index uint64, value float64) error {
	if w.sink == nil {
		return nil
	}

	w.buf = strconv.AppendInt(w.buf, int64(w.shard), 10)
	w.buf = append(w.buf, ',')
	w.buf = strconv.AppendUint(w.buf, index, 10)
	w.buf = append(w.buf, ',')
	w.buf = strconv.AppendFloat(w.buf, value, 'g', -1, 64)
	w.buf = append(w.buf, '\n')

	if len(w.buf) >= defaultBufferSize-64 {
		return w.Flush()
	}
	return nil
}

func (w *ShardWriter) Flush() error {
	if w.sink == nil || len(w.buf) == 0 {
		return nil
	}

	data := w.buf
	w.buf = make([]byte, 0, defaultBufferSize)
	return w.sink.send(data)
}

type nopSink struct{}

func (nopSink) Writer(shard int) *ShardWriter { return &ShardWriter{shard: shard} }

func (nopSink) Close() error { return nil }
