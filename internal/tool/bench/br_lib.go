// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_br_lib
// +build !no_br_lib

package bench

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	RegisterEncoder(FormatBrotli, "ab",
		func(w io.Writer, lvl int) io.WriteCloser {
			if lvl > brotli.BestCompression {
				lvl = brotli.BestCompression
			}
			return brotli.NewWriterLevel(w, lvl)
		})
	RegisterDecoder(FormatBrotli, "ab",
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(brotli.NewReader(r))
		})
}
