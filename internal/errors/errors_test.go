// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"testing"
)

func TestError(t *testing.T) {
	_, perr := os.Open("does/not/exist")
	vectors := []struct {
		err  Error
		str  string
		pred func(error) bool
	}{
		{Error{Code: Corrupted, Pkg: "huffman", Msg: "invalid symbol"}, "huffman: corrupted input: invalid symbol", IsCorrupted},
		{Error{Code: Truncated, Pkg: "huffman"}, "huffman: truncated input", IsTruncated},
		{Error{Code: Closed}, "closed handler", IsClosed},
		{Error{Code: Invalid, Msg: "bad level"}, "invalid argument: bad level", IsInvalid},
		{Error{Code: Internal, Pkg: "huffman"}, "huffman: internal error", IsInternal},
		{Error{Code: NotFound, Pkg: "huffman", Err: perr}, "huffman: not found: " + perr.Error(), IsNotFound},
	}
	for i, v := range vectors {
		if got := v.err.Error(); got != v.str {
			t.Errorf("test %d, Error(): got %q, want %q", i, got, v.str)
		}
		if !v.pred(v.err) {
			t.Errorf("test %d, predicate failed for %v", i, v.err)
		}
		if IsCorrupted(v.err) != (v.err.Code == Corrupted) {
			t.Errorf("test %d, IsCorrupted mismatch", i)
		}
	}

	if IsNotFound(perr) || IsCorrupted(io.EOF) || IsTruncated(nil) {
		t.Errorf("foreign errors must not match any predicate")
	}
	if err := error(vectors[5].err); !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(%v, fs.ErrNotExist) = false", err)
	}
}

func TestRecover(t *testing.T) {
	want := Error{Code: Corrupted, Pkg: "test"}
	got := func() (err error) {
		defer Recover(&err)
		Panic(want)
		return nil
	}()
	if got != want {
		t.Errorf("Recover: got %v, want %v", got, want)
	}

	got = func() (err error) {
		defer Recover(&err)
		Panic(io.EOF)
		return nil
	}()
	if got != io.EOF {
		t.Errorf("Recover: got %v, want %v", got, io.EOF)
	}

	defer func() {
		if ex := recover(); ex == nil {
			t.Errorf("foreign panic was swallowed")
		}
	}()
	func() (err error) {
		defer Recover(&err)
		panic("foreign")
	}()
}
