// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/dsnet/hufftext/internal/errors"
)

type WriterConfig struct {
	// Text optionally receives the human-readable rendition of the stream,
	// where every code bit is written as an ASCII '0' or '1'.
	Text io.Writer

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Writer encodes all data written to it. Since the code table depends on the
// frequency of every symbol, nothing is emitted until Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr   io.Writer
	text io.Writer
	buf  []byte
	err  error

	bw bitWriter
	tw *bufio.Writer
}

func NewWriter(w io.Writer, conf *WriterConfig) *Writer {
	zw := new(Writer)
	if conf != nil {
		zw.text = conf.Text
	}
	zw.Reset(w)
	return zw
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close encodes all buffered data and flushes it to the underlying writers.
// It does not close the underlying writers.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}
	if zw.err = zw.encode(); zw.err != nil {
		return zw.err
	}
	zw.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead. The text sink from the configuration
// is kept.
func (zw *Writer) Reset(w io.Writer) error {
	*zw = Writer{
		wr:   w,
		text: zw.text,
		buf:  zw.buf[:0],
		bw:   zw.bw,
		tw:   zw.tw,
	}
	if zw.text != nil {
		if zw.tw == nil {
			zw.tw = bufio.NewWriter(zw.text)
		} else {
			zw.tw.Reset(zw.text)
		}
	}
	return nil
}

func (zw *Writer) encode() (err error) {
	defer errors.Recover(&err)

	counts := CountBytes(zw.buf)
	root := BuildTree(&counts)
	codes := GenerateCodes(root)
	hdr := FormatHeader(&counts) + "\n"

	zw.bw.Init(zw.wr)
	zw.bw.WriteStr(hdr)
	zw.writeText(hdr)

	// A tree with fewer than two leaves has only empty codes.
	if root != nil && !root.IsLeaf() {
		for _, c := range zw.buf {
			zw.bw.WriteCode(codes[c])
			zw.writeText(codes[c])
		}
	}

	zw.bw.Close()
	zw.OutputOffset = zw.bw.Offset()
	if zw.tw != nil {
		if err := zw.tw.Flush(); err != nil {
			errors.Panic(err)
		}
	}
	return nil
}

func (zw *Writer) writeText(s string) {
	if zw.tw == nil {
		return
	}
	if _, err := zw.tw.WriteString(s); err != nil {
		errors.Panic(err)
	}
}
