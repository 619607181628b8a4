// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indent provides an io.Writer that prefixes every line written
// through it, used to pretty-print nested schema trees.
package indent

import (
	"bytes"
	"io"
)

// String returns in with prefix inserted at the start of every line.
func String(prefix, in string) string {
	var b bytes.Buffer
	w := NewWriter(&b, prefix)
	w.Write([]byte(in))
	return b.String()
}

// Bytes returns in with prefix inserted at the start of every line.
func Bytes(prefix, in []byte) []byte {
	var b bytes.Buffer
	w := NewWriter(&b, string(prefix))
	w.Write(in)
	return b.Bytes()
}

// Writer is an io.Writer that inserts a fixed prefix at the start of
// every line written to it and forwards the result to an underlying
// io.Writer.
type Writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// NewWriter returns a Writer that inserts prefix at the start of each
// line written through it before forwarding to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer. The returned count always refers to bytes
// of p, not to the (possibly larger, prefix-expanded) bytes actually
// forwarded to the underlying writer.
func (iw *Writer) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	cum := make([]int, 0, len(p)+len(iw.prefix))
	atStart := iw.atLineStart
	count := 0
	for _, b := range p {
		if atStart {
			buf.Write(iw.prefix)
			for range iw.prefix {
				cum = append(cum, count)
			}
		}
		buf.WriteByte(b)
		count++
		cum = append(cum, count)
		atStart = b == '\n'
	}

	transformed := buf.Bytes()
	wn, werr := iw.w.Write(transformed)

	switch {
	case wn >= len(transformed):
		iw.atLineStart = atStart
		return len(p), werr
	case wn <= 0:
		return 0, werr
	default:
		n := cum[wn-1]
		if n > 0 {
			iw.atLineStart = p[n-1] == '\n'
		}
		return n, werr
	}
}
