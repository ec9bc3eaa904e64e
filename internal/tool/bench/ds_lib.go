// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ds_lib
// +build !no_ds_lib

package bench

import (
	"io"

	"github.com/dsnet/hufftext/huffman"
)

// The text codec has no compression levels; lvl is ignored.
func init() {
	RegisterEncoder(FormatHuffText, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			return huffman.NewWriter(w, nil)
		})
	RegisterDecoder(FormatHuffText, "ds",
		func(r io.Reader) io.ReadCloser {
			return huffman.NewReader(r)
		})
}
