// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a deterministic, byte-oriented Huffman codec.
//
// An encoded stream starts with a header line listing the number of
// occurrences of every symbol present in the input:
//
//	<sym> <count> <sym> <count> ... '\n'
//
// Symbols are the decimal values of bytes, listed in increasing order.
// The header is followed by the code of every input byte in order. In the
// bit-packed rendition, codes are packed with the most-significant bit of each
// byte first and the stream is padded with zero bits to a byte boundary.
// In the text rendition, every bit is written as the ASCII character '0' or
// '1' instead.
//
// The header is all that is needed to rebuild the prefix tree used by the
// encoder. Ties between nodes of equal weight are broken by the smallest
// symbol within each subtree, so that every encoder and decoder agrees on the
// exact same tree.
package huffman

import (
	"fmt"

	"github.com/dsnet/hufftext/internal/errors"
)

const (
	// NumSyms is the size of the alphabet.
	NumSyms = 256

	// CompressedSuffix is inserted into the name of an encoded file to form
	// the name of its bit-packed counterpart.
	CompressedSuffix = "_compressed"

	// maxHeaderLen is the length of the longest valid header line.
	maxHeaderLen = NumSyms * len("255 9223372036854775807 ")
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "huffman", Msg: fmt.Sprintf(f, a...)}
}

func errNotFound(err error) error {
	return errors.Error{Code: errors.NotFound, Pkg: "huffman", Err: err}
}

var (
	errClosed    error = errors.Error{Code: errors.Closed, Pkg: "huffman"}
	errTruncated error = errors.Error{Code: errors.Truncated, Pkg: "huffman"}
)
