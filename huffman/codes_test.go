// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"testing"

	"github.com/dsnet/hufftext/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func codesOf(m map[byte]string) (c Codes) {
	for sym, s := range m {
		c[sym] = s
	}
	return c
}

func TestGenerateCodes(t *testing.T) {
	vectors := []struct {
		file string
		want Codes
	}{{
		file: "empty_file.txt",
	}, {
		file: "single_char.txt",
	}, {
		file: "file2.txt",
		want: codesOf(map[byte]string{'a': "0000", 'f': "0001", 'b': "001", 'c': "01", 'd': "1"}),
	}, {
		file: "file1.txt",
		want: codesOf(map[byte]string{' ': "00", 'b': "01", 'd': "100", 'c': "101", 'a': "11"}),
	}, {
		file: "multiline.txt",
		want: codesOf(map[byte]string{
			'\n': "00101", ' ': "101", '.': "011100", 'T': "011101", 'a': "0011",
			'e': "1111", 'f': "01111", 'h': "11000", 'i': "100", 'l': "000",
			'm': "11001", 'n': "1101", 'o': "111000", 'p': "0100", 's': "0101",
			't': "0110", 'u': "11101", 'w': "111001", 'x': "00100",
		}),
	}, {
		file: "histogram.txt",
		want: codesOf(map[byte]string{
			'\n': "111100", ' ': "110", '&': "0100101110000", '\'': "0100101110001",
			',': "000001", '-': "00000000010", '.': "10011101", '1': "0100101110010",
			'4': "0100101110011", '6': "0100101110100", '7': "010010111011",
			':': "1011010100", ';': "1011010101", 'A': "101101011", 'B': "0100100011",
			'C': "101101001", 'D': "10011100011", 'E': "00000000011", 'F': "100111001",
			'G': "010010100", 'H': "00000011", 'I': "0100101111", 'J': "0000000000",
			'K': "0100101110101", 'L': "010010101", 'M': "00000000100", 'N': "1001110000",
			'O': "0000000011", 'P': "00000001", 'R': "1011010000", 'S': "00000010",
			'T': "010010110", 'U': "00000000101", 'W': "010010010", 'a': "0111",
			'b': "1111111", 'c': "111110", 'd': "10010", 'e': "001", 'f': "111101",
			'g': "010011", 'h': "10111", 'i': "0101", 'j': "010010000", 'k': "010010011",
			'l': "01000", 'm': "101100", 'n': "1000", 'o': "1010", 'p': "100110",
			'q': "0100100010", 'r': "0001", 's': "0110", 't': "1110", 'u': "00001",
			'v': "1001111", 'w': "1111110", 'x': "1011010001", 'y': "1011011",
			'z': "10011100010",
		}),
	}}

	for _, v := range vectors {
		counts := CountBytes(testutil.MustLoadFile(testdataPath(v.file)))
		got := GenerateCodes(BuildTree(&counts))
		if diff := cmp.Diff(v.want, got); diff != "" {
			t.Errorf("%s, GenerateCodes() mismatch (-want +got):\n%s", v.file, diff)
		}
		if !got.IsPrefixFree() {
			t.Errorf("%s, codes are not prefix-free", v.file)
		}
	}
}

func TestGenerateCodesNil(t *testing.T) {
	if got := GenerateCodes(nil); got != (Codes{}) {
		t.Errorf("GenerateCodes(nil): got %v, want all empty", got)
	}
}

func TestIsPrefixFree(t *testing.T) {
	vectors := []struct {
		codes Codes
		want  bool
	}{
		{Codes{}, true},
		{codesOf(map[byte]string{0: "0", 1: "10", 2: "11"}), true},
		{codesOf(map[byte]string{0: "0", 1: "01", 2: "11"}), false},
		{codesOf(map[byte]string{0: "10", 1: "0", 2: "101"}), false},
		{codesOf(map[byte]string{7: "1", 9: "1"}), false},
	}
	for i, v := range vectors {
		if got := v.codes.IsPrefixFree(); got != v.want {
			t.Errorf("test %d, IsPrefixFree(): got %v, want %v", i, got, v.want)
		}
	}
}

// TestCodesRandom checks that codes from arbitrary counts are prefix-free,
// assigned to exactly the symbols present, and never longer than a code of
// the same symbol with a lower count.
func TestCodesRandom(t *testing.T) {
	rand := testutil.NewRand(1)
	for i := 0; i < 100; i++ {
		var counts Counts
		for j := 2 + rand.Intn(NumSyms-1); j > 0; j-- {
			counts[rand.Intn(NumSyms)] = int64(1 + rand.Intn(1<<uint(rand.Intn(20))))
		}
		codes := GenerateCodes(BuildTree(&counts))
		if !codes.IsPrefixFree() {
			t.Fatalf("test %d, codes are not prefix-free:\n%v", i, codes)
		}
		for sym, cnt := range counts {
			if (cnt > 0) != (codes[sym] != "") && counts.Used() > 1 {
				t.Errorf("test %d, symbol %d: count %d with code %q", i, sym, cnt, codes[sym])
			}
			for sym2, cnt2 := range counts {
				if cnt > 0 && cnt2 > cnt && len(codes[sym2]) > len(codes[sym]) {
					t.Errorf("test %d, symbol %d (count %d) has a longer code than symbol %d (count %d)",
						i, sym2, cnt2, sym, cnt)
				}
			}
		}
	}
}

func TestBitLen(t *testing.T) {
	counts := CountBytes(testutil.MustLoadFile(testdataPath("histogram.txt")))
	codes := GenerateCodes(BuildTree(&counts))
	if got, want := codes.BitLen(&counts), int64(36595); got != want {
		t.Errorf("BitLen(): got %d, want %d", got, want)
	}
}
