// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package huffman

import (
	"bytes"
	"io"

	"github.com/dsnet/hufftext"
	"github.com/dsnet/hufftext/huffman"
)

func Fuzz(data []byte) int {
	testRoundTrip(data)
	if b, ok := testDecoder(data); ok {
		testRoundTrip(b)
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoder tests that the decoder either succeeds or fails with one of the
// documented error classes, and that a stream it accepts is re-encoded with
// the same bit-packed payload.
func testDecoder(data []byte) ([]byte, bool) {
	zr := huffman.NewReader(bytes.NewReader(data))
	b, err := io.ReadAll(zr)
	if err != nil {
		cerr, ok := err.(hufftext.Error)
		if !ok || !(cerr.IsCorrupted() || cerr.IsTruncated()) {
			panic(err)
		}
		return nil, false
	}
	if int64(len(b)) != zr.OutputOffset {
		panic("mismatching output offset")
	}

	var packed bytes.Buffer
	if err := huffman.Encode(nil, &packed, bytes.NewReader(b)); err != nil {
		panic(err)
	}

	// Headers may differ in white space and the input may carry arbitrary
	// padding bits, but the code bits must agree.
	counts := huffman.CountBytes(b)
	codes := huffman.GenerateCodes(huffman.BuildTree(&counts))
	nbits := codes.BitLen(&counts)

	hdr := bytes.IndexByte(data, '\n') + 1
	rehdr := bytes.IndexByte(packed.Bytes(), '\n') + 1
	got := packed.Bytes()[rehdr:]
	want := data[hdr:zr.InputOffset]
	if int64(len(got)) != (nbits+7)/8 || len(got) != len(want) {
		panic("mismatching payload length")
	}
	for i := range got {
		mask := byte(0xff)
		if r := nbits % 8; i == len(got)-1 && r > 0 {
			mask <<= uint(8 - r)
		}
		if got[i] != want[i]&mask {
			panic("mismatching payload")
		}
	}
	return b, true
}

// testRoundTrip tests that any input survives an encode and decode cycle.
func testRoundTrip(data []byte) {
	var packed, text bytes.Buffer
	if err := huffman.Encode(&text, &packed, bytes.NewReader(data)); err != nil {
		panic(err)
	}
	var output bytes.Buffer
	if _, err := huffman.Decode(&output, &packed); err != nil {
		panic(err)
	}
	if !bytes.Equal(output.Bytes(), data) {
		panic("mismatching bytes")
	}
}
