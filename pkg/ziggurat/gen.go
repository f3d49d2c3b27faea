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

//go:build ignore

// gen.go writes tables.go: the 256-layer ziggurat tables of Marsaglia & Tsang,
// "The Ziggurat Method for Generating Random Variables" (2000), for the
// standard normal and standard exponential densities in float64 and float32.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strconv"
)

const (
	layers = 256

	normalR      = 3.6541528853610087963519472518
	normalV      = 0.004928673233974658
	exponentialR = 7.6971174701310497140446280481
	exponentialV = 0.003949659822581572

	// magnitude bits drawn per precision
	normalBits64      = 52
	exponentialBits64 = 53
	bits32            = 23
)

type tables struct {
	k []uint64
	w []float64
	f []float64
}

func normalTables(bits uint) tables {
	m := math.Ldexp(1, int(bits))
	density := func(x float64) float64 { return math.Exp(-0.5 * x * x) }

	t := tables{k: make([]uint64, layers), w: make([]float64, layers), f: make([]float64, layers)}

	dn, tn := normalR, normalR
	q := normalV / density(dn)

	t.k[0] = uint64((dn / q) * m)
	t.k[1] = 0
	t.w[0] = q / m
	t.w[layers-1] = dn / m
	t.f[0] = 1
	t.f[layers-1] = density(dn)

	for i := layers - 2; i >= 1; i-- {
		dn = math.Sqrt(-2 * math.Log(normalV/dn+density(dn)))
		t.k[i+1] = uint64((dn / tn) * m)
		tn = dn
		t.f[i] = density(dn)
		t.w[i] = dn / m
	}

	return t
}

func exponentialTables(bits uint) tables {
	m := math.Ldexp(1, int(bits))

	t := tables{k: make([]uint64, layers), w: make([]float64, layers), f: make([]float64, layers)}

	de, te := exponentialR, exponentialR
	q := exponentialV / math.Exp(-de)

	t.k[0] = uint64((de / q) * m)
	t.k[1] = 0
	t.w[0] = q / m
	t.w[layers-1] = de / m
	t.f[0] = 1
	t.f[layers-1] = math.Exp(-de)

	for i := layers - 2; i >= 1; i-- {
		de = -math.Log(exponentialV/de + math.Exp(-de))
		t.k[i+1] = uint64((de / te) * m)
		te = de
		t.f[i] = math.Exp(-de)
		t.w[i] = de / m
	}

	return t
}

func writeUint(buf *bytes.Buffer, name, typ string, values []uint64, width int) {
	fmt.Fprintf(buf, "\t%s = [%d]%s{\n", name, layers, typ)
	for i := 0; i < len(values); i += 4 {
		buf.WriteString("\t\t")
		for j := i; j < i+4; j++ {
			fmt.Fprintf(buf, "0x%0*x,", width, values[j])
			if j != i+3 {
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("\t}\n")
}

func writeFloat(buf *bytes.Buffer, name string, bitSize int, values []float64) {
	fmt.Fprintf(buf, "\t%s = [%d]float%d{\n", name, layers, bitSize)
	for i := 0; i < len(values); i += 4 {
		buf.WriteString("\t\t")
		for j := i; j < i+4; j++ {
			v := values[j]
			if bitSize == 32 {
				v = float64(float32(v))
			}
			buf.WriteString(strconv.FormatFloat(v, 'e', -1, bitSize))
			buf.WriteByte(',')
			if j != i+3 {
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("\t}\n")
}

const licenseHeader = `// Copyright 2025 ScyllaDB
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

`

func main() {
	var buf bytes.Buffer

	buf.WriteString(licenseHeader)
	buf.WriteString("// Code generated by gen.go; DO NOT EDIT.\n\n")
	buf.WriteString("package ziggurat\n\n")
	buf.WriteString("var (\n")

	n64 := normalTables(normalBits64)
	writeUint(&buf, "NormalK", "uint64", n64.k, 16)
	writeFloat(&buf, "NormalW", 64, n64.w)
	writeFloat(&buf, "NormalF", 64, n64.f)
	buf.WriteByte('\n')

	e64 := exponentialTables(exponentialBits64)
	writeUint(&buf, "ExponentialK", "uint64", e64.k, 16)
	writeFloat(&buf, "ExponentialW", 64, e64.w)
	writeFloat(&buf, "ExponentialF", 64, e64.f)
	buf.WriteByte('\n')

	n32 := normalTables(bits32)
	writeUint(&buf, "NormalK32", "uint32", n32.k, 8)
	writeFloat(&buf, "NormalW32", 32, n32.w)
	writeFloat(&buf, "NormalF32", 32, n32.f)
	buf.WriteByte('\n')

	e32 := exponentialTables(bits32)
	writeUint(&buf, "ExponentialK32", "uint32", e32.k, 8)
	writeFloat(&buf, "ExponentialW32", 32, e32.w)
	writeFloat(&buf, "ExponentialF32", 32, e32.f)

	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("failed to format tables: %v", err)
	}

	if err = os.WriteFile("tables.go", src, 0o644); err != nil {
		log.Fatalf("failed to write tables.go: %v", err)
	}
}
