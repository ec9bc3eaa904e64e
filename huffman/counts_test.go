// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/dsnet/hufftext/internal/errors"
	"github.com/dsnet/hufftext/internal/testutil"
)

func TestCount(t *testing.T) {
	input := "aabbbbccccccccddddddddddddddddff\n \n"
	counts, err := Count(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[byte]int64{'a': 2, 'b': 4, 'c': 8, 'd': 16, 'f': 2, '\n': 2, ' ': 1}
	for sym, cnt := range counts {
		if cnt != want[byte(sym)] {
			t.Errorf("symbol %d: got %d, want %d", sym, cnt, want[byte(sym)])
		}
	}
	if got := counts.Total(); got != int64(len(input)) {
		t.Errorf("Total(): got %d, want %d", got, len(input))
	}
	if got := counts.Used(); got != len(want) {
		t.Errorf("Used(): got %d, want %d", got, len(want))
	}
	if counts != CountBytes([]byte(input)) {
		t.Errorf("Count and CountBytes disagree")
	}
}

func TestCountEmpty(t *testing.T) {
	counts, err := Count(bytes.NewReader(nil))
	if err != nil || counts != (Counts{}) {
		t.Errorf("Count(empty): got (%v, %v), want all zero", counts.Total(), err)
	}
}

func TestCountLarge(t *testing.T) {
	input := testutil.NewRand(3).Bytes(1 << 16)
	counts, err := Count(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts != CountBytes(input) {
		t.Errorf("Count and CountBytes disagree")
	}
}

func TestCountReadError(t *testing.T) {
	errBuggy := stderrors.New("buggy reader")
	rd := &testutil.BuggyReader{R: strings.NewReader("abcdef"), N: 3, Err: errBuggy}
	if _, err := Count(rd); err != errBuggy {
		t.Errorf("Count(): got %v, want %v", err, errBuggy)
	}

	rd = &testutil.BuggyReader{R: strings.NewReader("abcdef"), N: 10, Err: io.ErrUnexpectedEOF}
	if counts, err := Count(rd); err != nil || counts.Total() != 6 {
		t.Errorf("Count(): got (%d, %v), want (6, nil)", counts.Total(), err)
	}
}

func TestCountFile(t *testing.T) {
	counts, err := CountFile(testdataPath("file2.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatHeader(&counts); got != "97 2 98 4 99 8 100 16 102 2" {
		t.Errorf("FormatHeader(): got %q", got)
	}

	_, err = CountFile(testdataPath("does_not_exist.txt"))
	if !errors.IsNotFound(err) {
		t.Errorf("CountFile(missing): got %v, want not found error", err)
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("CountFile(missing): %v does not wrap fs.ErrNotExist", err)
	}
}
