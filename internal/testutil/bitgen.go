// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reStr = regexp.MustCompile(`^S:"(?:[^"\\]|\\.)*"$`)
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be generated from a series of tokens
// describing bits in the resulting string. The format is designed for testing
// purposes by aiding a human in the manual scripting of a compressed stream
// from individual bit-strings.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// The first valid token must be ">>>", which declares that bits are packed
// starting with the most-significant bit of every byte. This is the only
// packing order supported.
//
// A token of the pattern "[01]{1,64}" forms a bit-string (e.g. 11010).
// The left-most bit is written first.
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal value or a hexadecimal value, respectively.
// The first number is the bit-length (between 0 and 64) and the second is the
// value, which is written most-significant bit first.
//
// A token that is of the pattern "X:[0-9a-fA-F]+" represents literal bytes in
// hexadecimal format. A token of the form S:"..." represents the literal bytes
// of a Go quoted string. Both may only be used when the bit-stream is already
// byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times.
//
// If the total bit-stream does not end on a byte-aligned edge, then the stream
// will automatically be padded up to the nearest byte with 0 bits.
//
// Example BitGen file:
//	>>>
//	S:"97 2 98 1\n" # Header
//	1 1 0           # Symbols: a, a, b
//
// Generated output stream (in hexadecimal):
//	"3937203220393820310ac0"
func DecodeBitGen(str string) ([]byte, error) {
	toks, err := tokenize(str)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 || toks[0] != ">>>" {
		return nil, errors.New("testutil: unknown stream bit-packing mode")
	}
	toks = toks[1:]

	var bw bitBuffer
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			// Handle binary tokens.
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			// Handle decimal and hexadecimal tokens.
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(n))
			}
		case reRaw.MatchString(t) || reStr.MatchString(t):
			// Handle literal byte tokens.
			var b []byte
			var err error
			if t[0] == 'X' {
				b, err = hex.DecodeString(t[2:])
			} else {
				var s string
				s, err = strconv.Unquote(t[2:])
				b = []byte(s)
			}
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if _, err := bw.Write(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			// Handle invalid tokens.
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// tokenize splits str on white space after removing comments.
// String tokens may contain white space and '#' characters.
func tokenize(str string) ([]string, error) {
	var toks []string
	for _, line := range strings.Split(str, "\n") {
		for {
			line = strings.TrimLeft(line, " \t\r")
			if line == "" || line[0] == '#' {
				break
			}
			i := 0
			if strings.HasPrefix(line, `S:"`) {
				for i = 3; i < len(line) && line[i] != '"'; i++ {
					if line[i] == '\\' {
						i++
					}
				}
				if i >= len(line) {
					return nil, errors.New("testutil: unterminated string token")
				}
			}
			if j := strings.IndexAny(line[i:], " \t\r#"); j >= 0 {
				i += j
			} else {
				i = len(line)
			}
			toks = append(toks, line[:i])
			line = line[i:]
		}
	}
	return toks, nil
}

// bitBuffer is a minimal MSB-first bit writer.
type bitBuffer struct {
	b []byte
	m byte
}

func (b *bitBuffer) Write(buf []byte) (int, error) {
	if b.m != 0x00 {
		return 0, errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return len(buf), nil
}

// WriteBits64 writes the lower n bits of v, most-significant bit first.
func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if b.m == 0x00 {
			b.m = 0x80
			b.b = append(b.b, 0x00)
		}
		if v&(1<<(i-1)) != 0 {
			b.b[len(b.b)-1] |= b.m
		}
		b.m >>= 1
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
