// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func quoteSym(sym byte) string {
	return strconv.QuoteRuneToASCII(rune(sym))
}

func (c Codes) String() string {
	var maxSym, maxLen int
	for sym, s := range c {
		if s != "" {
			maxSym = sym
			if maxLen < len(s) {
				maxLen = len(s)
			}
		}
	}
	maxSymStr := lenBase10(maxSym)

	var ss []string
	ss = append(ss, "{")
	for sym, s := range c {
		if s == "" {
			continue
		}
		ss = append(ss, fmt.Sprintf("\t%s:  %-8s  {len: %s, code: %s},",
			padBase10(sym, maxSymStr), quoteSym(byte(sym)),
			padBase10(len(s), lenBase10(maxLen)), s))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the tree with one node per line, where every child is
// indented beneath its parent and labeled with the bit leading to it.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var ss []string
	var walk func(n *Node, label string, depth int)
	walk = func(n *Node, label string, depth int) {
		ind := strings.Repeat("\t", depth)
		if n.IsLeaf() {
			ss = append(ss, fmt.Sprintf("%s%s{weight: %d, sym: %s}", ind, label, n.Weight, quoteSym(n.Sym)))
			return
		}
		ss = append(ss, fmt.Sprintf("%s%s{weight: %d, rep: %s}", ind, label, n.Weight, quoteSym(n.Rep)))
		walk(n.Left, "0: ", depth+1)
		walk(n.Right, "1: ", depth+1)
	}
	walk(n, "", 0)
	return strings.Join(ss, "\n")
}
