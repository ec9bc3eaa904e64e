// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_std_lib
// +build !no_std_lib

package bench

import (
	"compress/flate"
	"io"
)

func init() {
	RegisterEncoder(FormatFlate, "std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	// HuffmanOnly disables LZ77 matching and only applies prefix coding.
	RegisterEncoder(FormatFlate, "std-huff",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.HuffmanOnly)
			if err != nil {
				panic(err)
			}
			return zw
		})
}
