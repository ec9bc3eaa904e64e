// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/dsnet/hufftext/internal/errors"
	"github.com/icza/bitio"
)

// bitWriter writes literal strings followed by MSB-first packed code bits.
// Errors from the underlying io.Writer are raised with errors.Panic.
type bitWriter struct {
	wr     *bufio.Writer
	bw     *bitio.Writer
	offset int64 // Number of complete bytes written
	nbits  uint  // Number of bits in the pending partial byte
}

func (pw *bitWriter) Init(w io.Writer) {
	if pw.wr == nil {
		pw.wr = bufio.NewWriter(w)
	} else {
		pw.wr.Reset(w)
	}
	pw.bw = bitio.NewWriter(pw.wr)
	pw.offset, pw.nbits = 0, 0
}

// WriteStr writes the bytes of s verbatim. The stream must be byte-aligned.
func (pw *bitWriter) WriteStr(s string) {
	if pw.nbits != 0 {
		errors.Panic(errorf(errors.Internal, "unaligned string write"))
	}
	if _, err := pw.bw.Write([]byte(s)); err != nil {
		errors.Panic(err)
	}
	pw.offset += int64(len(s))
}

// WriteCode writes a single bit for every '0' or '1' character in code.
func (pw *bitWriter) WriteCode(code string) {
	for i := 0; i < len(code); i++ {
		if err := pw.bw.WriteBool(code[i] == '1'); err != nil {
			errors.Panic(err)
		}
		if pw.nbits++; pw.nbits == 8 {
			pw.offset, pw.nbits = pw.offset+1, 0
		}
	}
}

// Offset reports the number of bytes the stream occupies so far, counting a
// partially filled trailing byte.
func (pw *bitWriter) Offset() int64 {
	if pw.nbits > 0 {
		return pw.offset + 1
	}
	return pw.offset
}

// Close pads the final byte with zero bits and flushes all buffered data.
// It does not close the underlying io.Writer.
func (pw *bitWriter) Close() {
	if err := pw.bw.Close(); err != nil {
		errors.Panic(err)
	}
	if err := pw.wr.Flush(); err != nil {
		errors.Panic(err)
	}
	pw.offset, pw.nbits = pw.Offset(), 0
}
