// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package hufftext is a collection of packages for a deterministic,
// byte-oriented Huffman text codec.
//
// The codec produces two renditions of the same encoding: a human-readable
// one where every code bit is written as an ASCII '0' or '1', and a bit-packed
// one suitable for storage. Both start with a textual header listing the
// frequency of every symbol, from which the decoder rebuilds the exact tree
// used by the encoder.
//
// See the huffman sub-package for the implementation.
package hufftext

import "github.com/dsnet/hufftext/internal/errors"

var _ Error = errors.Error{}

// The Error interface identifies all compression related errors.
type Error interface {
	error
	CompressError()

	// IsNotFound reports whether a named input could not be opened or a named
	// output could not be created.
	IsNotFound() bool

	// IsCorrupted reports whether the input stream had a malformed header.
	IsCorrupted() bool

	// IsTruncated reports whether the input stream ended before every symbol
	// announced by the header was decoded.
	IsTruncated() bool
}
