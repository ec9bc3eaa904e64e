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

type byteReader interface {
	io.Reader
	io.ByteReader
}

// bitReader is the counterpart of bitWriter.
// Errors are raised with errors.Panic; running out of input is a
// truncated error.
type bitReader struct {
	rd     *bitio.Reader
	offset int64 // Number of complete bytes consumed
	nbits  uint  // Number of bits consumed from the current byte
}

func (pr *bitReader) Init(r io.Reader) {
	rr, ok := r.(byteReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	pr.rd = bitio.NewReader(rr)
	pr.offset, pr.nbits = 0, 0
}

// ReadStr reads up to and including the next '\n' and returns what preceded
// it. A stream that is empty from the start holds an empty string.
func (pr *bitReader) ReadStr() string {
	if pr.nbits != 0 {
		errors.Panic(errorf(errors.Internal, "unaligned string read"))
	}
	var buf []byte
	for {
		c, err := pr.rd.ReadByte()
		switch {
		case err == io.EOF && pr.offset == 0:
			return ""
		case err == io.EOF || err == io.ErrUnexpectedEOF:
			errors.Panic(errTruncated)
		case err != nil:
			errors.Panic(err)
		}
		pr.offset++
		if c == '\n' {
			return string(buf)
		}
		if len(buf) >= maxHeaderLen {
			errors.Panic(errorf(errors.Corrupted, "header line exceeds %d bytes", maxHeaderLen))
		}
		buf = append(buf, c)
	}
}

// ReadBit reads a single bit and reports whether it is a one.
func (pr *bitReader) ReadBit() bool {
	b, err := pr.rd.ReadBool()
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		errors.Panic(errTruncated)
	case err != nil:
		errors.Panic(err)
	}
	if pr.nbits++; pr.nbits == 8 {
		pr.offset, pr.nbits = pr.offset+1, 0
	}
	return b
}

// Offset reports the number of input bytes consumed, counting a partially
// consumed byte.
func (pr *bitReader) Offset() int64 {
	if pr.nbits > 0 {
		return pr.offset + 1
	}
	return pr.offset
}
