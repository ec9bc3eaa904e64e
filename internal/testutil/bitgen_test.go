// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	vectors := []struct {
		input  string
		output []byte
		fail   bool
	}{{
		input: "",
		fail:  true,
	}, {
		input: "<<< 1",
		fail:  true,
	}, {
		input:  ">>>",
		output: nil,
	}, {
		input:  ">>> 1",
		output: []byte{0x80},
	}, {
		input:  ">>> 0*7 1",
		output: []byte{0x01},
	}, {
		input:  ">>> D12:2748 H4:f",
		output: []byte{0xab, 0xcf},
	}, {
		input:  ">>> X:dead S:\"a b\" # comment",
		output: []byte{0xde, 0xad, 'a', ' ', 'b'},
	}, {
		input:  ">>> S:\"#\\n\"*2 1",
		output: []byte{'#', '\n', '#', '\n', 0x80},
	}, {
		input: ">>> 1 X:00",
		fail:  true,
	}, {
		input: ">>> S:\"open",
		fail:  true,
	}, {
		input: ">>> D3:8",
		fail:  true,
	}, {
		input:  ">>>\nS:\"97 2 98 1\\n\" # Header\n1 1 0 # Symbols: a, a, b\n",
		output: MustDecodeHex("3937203220393820310ac0"),
	}}

	for i, v := range vectors {
		output, err := DecodeBitGen(v.input)
		if fail := err != nil; fail != v.fail {
			t.Errorf("test %d, unexpected error: got %v", i, err)
			continue
		}
		if !bytes.Equal(output, v.output) {
			t.Errorf("test %d, output mismatch:\ngot  %x\nwant %x", i, output, v.output)
		}
	}
}

func TestResizeData(t *testing.T) {
	vectors := []struct {
		input  string
		n      int
		output string
	}{
		{"abc", -1, "abc"},
		{"abc", 2, "ab"},
		{"abc", 7, "abcabca"},
	}
	for i, v := range vectors {
		if got := string(ResizeData([]byte(v.input), v.n)); got != v.output {
			t.Errorf("test %d, ResizeData(%q, %d): got %q, want %q", i, v.input, v.n, got, v.output)
		}
	}
}
