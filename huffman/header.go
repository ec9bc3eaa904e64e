// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"math"
	"strconv"
	"strings"

	"github.com/dsnet/hufftext/internal/errors"
)

// FormatHeader serializes the non-zero counts as space separated
// "<sym> <count>" pairs in increasing symbol order.
// A table with no non-zero counts yields the empty string.
func FormatHeader(c *Counts) string {
	var b strings.Builder
	for sym, cnt := range c {
		if cnt <= 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(sym))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(cnt, 10))
	}
	return b.String()
}

// ParseHeader parses a header produced by FormatHeader.
//
// Fields may be separated by any amount of white space. It reports a corrupted
// error if the fields do not form pairs, a field is not a decimal number,
// a symbol exceeds 255, a count is less than one, the symbols are not
// strictly increasing, or the counts sum beyond the range of an int64.
func ParseHeader(s string) (c Counts, err error) {
	toks := strings.Fields(s)
	if len(toks)%2 != 0 {
		return Counts{}, errorf(errors.Corrupted, "odd number of header fields: %d", len(toks))
	}

	var total int64
	prev := -1
	for i := 0; i < len(toks); i += 2 {
		sym, ok := parseDecimal(toks[i])
		if !ok || sym >= NumSyms {
			return Counts{}, errorf(errors.Corrupted, "invalid symbol: %q", toks[i])
		}
		cnt, ok := parseDecimal(toks[i+1])
		if !ok || cnt < 1 {
			return Counts{}, errorf(errors.Corrupted, "invalid count for symbol %d: %q", sym, toks[i+1])
		}
		if int(sym) <= prev {
			return Counts{}, errorf(errors.Corrupted, "symbol %d out of order", sym)
		}
		if cnt > math.MaxInt64-total {
			return Counts{}, errorf(errors.Corrupted, "total count overflows")
		}
		c[sym] = cnt
		total += cnt
		prev = int(sym)
	}
	return c, nil
}

// parseDecimal parses an unsigned base-10 integer without sign or prefix.
func parseDecimal(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}
