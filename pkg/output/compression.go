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

package output

import (
	"bufio"
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Compression int

const (
	NoCompression Compression = iota
	ZSTDCompression
	GZIPCompression
)

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case ZSTDCompression:
		return "zstd"
	case GZIPCompression:
		return "gzip"
	default:
		panic("unknown compression")
	}
}

func MustParseCompression(value string) Compression {
	c, err := ParseCompression(value)
	if err != nil {
		panic(err)
	}

	return c
}

func ParseCompression(value string) (Compression, error) {
	switch strings.ToLower(value) {
	case "none", "":
		return NoCompression, nil
	case "zstd":
		return ZSTDCompression, nil
	case "gzip":
		return GZIPCompression, nil
	default:
		return NoCompression, errors.Errorf("unknown compression %q", value)
	}
}

// newWriter wraps input in the compressor and a buffer. Closers are returned
// innermost first: the compressor, then input itself when it is closable.
func (c Compression) newWriter(input io.Writer) (flusher, []io.Closer, error) {
	var closers []io.Closer
	var sink io.Writer

	switch c {
	case ZSTDCompression:
		zstdWriter, err := zstd.NewWriter(input,
			zstd.WithEncoderLevel(zstd.SpeedFastest),
			zstd.WithAllLitEntropyCompression(true),
		)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create zstd writer")
		}
		sink = zstdWriter
		closers = append(closers, zstdWriter)
	case GZIPCompression:
		gzipWriter, err := gzip.NewWriterLevel(input, gzip.BestSpeed)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create gzip writer")
		}
		sink = gzipWriter
		closers = append(closers, gzipWriter)
	default:
		sink = input
	}

	if cl, ok := input.(io.Closer); ok {
		closers = append(closers, cl)
	}

	return bufio.NewWriterSize(sink, bufioWriterSize), closers, nil
}
