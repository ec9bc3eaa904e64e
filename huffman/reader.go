// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/dsnet/hufftext/internal/errors"
)

// Reader decodes a bit-packed stream produced by Writer.
//
// The header is read and the tree rebuilt upon the first call to Read.
// Exactly as many symbols as the header announces are decoded; any padding
// bits that follow are ignored.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     bitReader // Input source
	root   *Node     // Tree rebuilt from the header
	remain int64     // Number of symbols left to decode
	toRead []byte    // Decoded data ready to be emitted from Read
	err    error     // Persistent error

	step func(*Reader) // Single step of decompression work (can panic)
	buf  [4096]byte
}

func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}

		// Perform next step in decompression process.
		func() {
			defer errors.Recover(&zr.err)
			zr.step(zr)
		}()
		zr.InputOffset = zr.rd.Offset()
	}
}

func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == errClosed {
		zr.toRead = nil // Make sure future reads fail
		zr.err = errClosed
		return nil
	}
	return zr.err // Return the persistent error
}

func (zr *Reader) Reset(r io.Reader) error {
	*zr = Reader{
		rd:   zr.rd,
		step: (*Reader).readHeader,
	}
	zr.rd.Init(r)
	return nil
}

// Tree reports the tree rebuilt from the header, which is nil if the header
// is empty. It is only valid after the first call to Read.
func (zr *Reader) Tree() *Node { return zr.root }

// readHeader reads the header line and rebuilds the tree from it.
func (zr *Reader) readHeader() {
	counts, err := ParseHeader(zr.rd.ReadStr())
	if err != nil {
		errors.Panic(err)
	}
	zr.root = BuildTree(&counts)
	zr.remain = counts.Total()
	zr.step = (*Reader).readSymbols
}

// readSymbols decodes up to len(zr.buf) symbols.
func (zr *Reader) readSymbols() {
	if zr.remain == 0 {
		errors.Panic(io.EOF)
	}
	out := zr.buf[:]
	if int64(len(out)) > zr.remain {
		out = out[:zr.remain]
	}

	// Emit whatever was decoded, even if the input ends early.
	var n int
	defer func() {
		zr.toRead = out[:n]
		zr.remain -= int64(n)
	}()

	if zr.root.IsLeaf() {
		for n < len(out) {
			out[n] = zr.root.Sym
			n++
		}
		return
	}
	for n < len(out) {
		nd := zr.root
		for !nd.IsLeaf() {
			if zr.rd.ReadBit() {
				nd = nd.Right
			} else {
				nd = nd.Left
			}
		}
		out[n] = nd.Sym
		n++
	}
}
