// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates histogram.txt. The byte frequencies are those of an English prose
// document, so that the resulting tree is deep and lopsided. Symbols are
// emitted round-robin in ascending order until every count is used up.
package main

import (
	"os"

	"github.com/dsnet/hufftext/huffman"
)

const (
	name   = "histogram.txt"
	header = "10 166 32 1225 38 1 39 1 44 109 45 3 46 36 49 1 52 1 54 1 55 2 " +
		"58 10 59 10 65 22 66 7 67 19 68 5 69 3 70 17 71 15 72 24 73 8 74 5 " +
		"75 1 76 15 77 3 78 8 79 6 80 23 82 9 83 23 84 15 85 3 87 13 97 466 " +
		"98 88 99 171 100 253 101 875 102 169 103 116 104 331 105 451 106 12 " +
		"107 13 108 216 109 144 110 487 111 518 112 116 113 6 114 420 115 460 " +
		"116 640 117 211 118 74 119 84 120 9 121 82 122 4"
)

func main() {
	cnts, err := huffman.ParseHeader(header)
	if err != nil {
		panic(err)
	}

	b := make([]byte, 0, cnts.Total())
	for int64(len(b)) < cap(b) {
		for sym := range cnts {
			if cnts[sym] > 0 {
				b = append(b, byte(sym))
				cnts[sym]--
			}
		}
	}

	if err := os.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
