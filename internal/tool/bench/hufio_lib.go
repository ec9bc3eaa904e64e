// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_hufio_lib
// +build !no_hufio_lib

package bench

import (
	"io"

	"github.com/icza/huffman/hufio"
)

// The hufio format uses an adaptive Huffman code and has no levels.
func init() {
	RegisterEncoder(FormatHufio, "icza",
		func(w io.Writer, lvl int) io.WriteCloser {
			return hufio.NewWriter(w)
		})
	RegisterDecoder(FormatHufio, "icza",
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(hufio.NewReader(r))
		})
}
