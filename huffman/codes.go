// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"sort"
	"strings"
)

// Codes is a table of prefix codes indexed by symbol, where every code is a
// string of '0' and '1' characters. An empty code means the symbol has none.
type Codes [NumSyms]string

// GenerateCodes returns the code of every leaf in the tree rooted at root.
// A left edge contributes a '0' and a right edge contributes a '1'.
//
// If root is nil or is itself a leaf, then every code is empty.
// A lone symbol needs no bits since the header alone reproduces it.
func GenerateCodes(root *Node) (codes Codes) {
	if root == nil || root.IsLeaf() {
		return codes
	}
	var walk func(n *Node, code []byte)
	walk = func(n *Node, code []byte) {
		if n.IsLeaf() {
			codes[n.Sym] = string(code)
			return
		}
		walk(n.Left, append(code, '0'))
		walk(n.Right, append(code, '1'))
	}
	walk(root, make([]byte, 0, 64))
	return codes
}

// IsPrefixFree reports whether no non-empty code is a prefix of another.
func (c *Codes) IsPrefixFree() bool {
	var ss []string
	for _, s := range c {
		if s != "" {
			ss = append(ss, s)
		}
	}

	// After sorting, any code that prefixes another also prefixes its
	// immediate successor.
	sort.Strings(ss)
	for i := 1; i < len(ss); i++ {
		if strings.HasPrefix(ss[i], ss[i-1]) {
			return false
		}
	}
	return true
}

// BitLen reports the number of code bits needed to encode symbols with the
// given counts.
func (c *Codes) BitLen(cnts *Counts) (n int64) {
	for sym, cnt := range cnts {
		n += cnt * int64(len(c[sym]))
	}
	return n
}
