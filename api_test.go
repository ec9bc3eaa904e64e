// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package hufftext_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dsnet/hufftext"
	"github.com/dsnet/hufftext/huffman"
)

func TestErrorInterface(t *testing.T) {
	_, err := huffman.Decode(new(bytes.Buffer), strings.NewReader("97 x\n"))
	cerr, ok := err.(hufftext.Error)
	if !ok {
		t.Fatalf("error type: got %T, want hufftext.Error", err)
	}
	if !cerr.IsCorrupted() || cerr.IsTruncated() || cerr.IsNotFound() {
		t.Errorf("error class mismatch: %v", cerr)
	}

	_, err = huffman.Decode(new(bytes.Buffer), strings.NewReader("97 1 98 1\n"))
	if cerr, ok := err.(hufftext.Error); !ok || !cerr.IsTruncated() {
		t.Errorf("truncated stream: got %v, want truncated error", err)
	}

	err = huffman.DecodeFile("does/not/exist", "unused")
	if cerr, ok := err.(hufftext.Error); !ok || !cerr.IsNotFound() {
		t.Errorf("missing input: got %v, want not found error", err)
	}
}
