// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"os"
)

// Counts is a table of symbol frequencies indexed by symbol.
// A zero entry means that the symbol does not occur.
type Counts [NumSyms]int64

// CountBytes returns the frequency of every byte value in b.
func CountBytes(b []byte) (c Counts) {
	for _, x := range b {
		c[x]++
	}
	return c
}

// Count returns the frequency of every byte value read from r until io.EOF.
// Every byte is counted, including newlines and other whitespace.
func Count(r io.Reader) (c Counts, err error) {
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		for _, x := range buf[:n] {
			c[x]++
		}
		switch err {
		case nil:
		case io.EOF:
			return c, nil
		default:
			return c, err
		}
	}
}

// CountFile returns the frequency of every byte value in the named file.
// It reports a not found error if the file cannot be opened.
func CountFile(name string) (Counts, error) {
	f, err := os.Open(name)
	if err != nil {
		return Counts{}, errNotFound(err)
	}
	defer f.Close()
	return Count(f)
}

// Total reports the sum of all counts.
func (c *Counts) Total() (n int64) {
	for _, v := range c {
		n += v
	}
	return n
}

// Used reports the number of distinct symbols with a non-zero count.
func (c *Counts) Used() (n int) {
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}
