// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/dsnet/golib/hashutil"
	"github.com/dsnet/hufftext/huffman"
)

func runEncode(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("encode")
	comp := fs.String("compressed", "", "Path of the bit-packed output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("encode takes 2 arguments, got %d", fs.NArg())
	}
	in, out := fs.Arg(0), fs.Arg(1)

	conf := &huffman.FileConfig{Compressed: *comp, Suffix: a.cfg.Output.Suffix}
	if err := huffman.EncodeFileConfig(in, out, conf); err != nil {
		return err
	}
	packed := conf.CompressedPath(out)
	rawSize, packedSize := fileSize(in), fileSize(packed)
	ev := a.log.Info().Str("input", in).Str("text", out).Str("compressed", packed).
		Int64("rawSize", rawSize).Int64("packedSize", packedSize)
	if packedSize > 0 {
		ev = ev.Float64("ratio", float64(rawSize)/float64(packedSize))
	}
	ev.Msg("encoded")
	return nil
}

func runDecode(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("decode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("decode takes 2 arguments, got %d", fs.NArg())
	}
	in, out := fs.Arg(0), fs.Arg(1)

	if err := huffman.DecodeFile(in, out); err != nil {
		return err
	}
	a.log.Info().Str("input", in).Str("output", out).
		Int64("packedSize", fileSize(in)).Int64("rawSize", fileSize(out)).
		Msg("decoded")
	return nil
}

func runCodes(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("codes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("codes takes 1 argument, got %d", fs.NArg())
	}

	cnts, err := huffman.CountFile(fs.Arg(0))
	if err != nil {
		return err
	}
	root := huffman.BuildTree(&cnts)
	codes := huffman.GenerateCodes(root)
	fmt.Fprintf(a.stdout, "header: %q\n", huffman.FormatHeader(&cnts))
	fmt.Fprintf(a.stdout, "tree: %v\n", root)
	fmt.Fprintf(a.stdout, "codes: %v\n", codes)
	fmt.Fprintf(a.stdout, "symbols: %d, bytes: %d, bits: %d\n", cnts.Used(), cnts.Total(), codes.BitLen(&cnts))
	return nil
}

// runVerify round trips every file in memory. The CRC-32 of each input is
// logged along with the combined checksum of all inputs, which equals the
// checksum of their concatenation.
func runVerify(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("verify")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("verify takes at least 1 argument")
	}

	var crcAll uint32
	var failed int
	for _, name := range fs.Args() {
		if err := ctx.Err(); err != nil {
			return err
		}
		crc, n, err := verifyFile(name)
		if err != nil {
			a.log.Warn().Err(err).Str("file", name).Msg("verify failed")
			failed++
			continue
		}
		crcAll = hashutil.CombineCRC32(crc32.IEEE, crcAll, crc, n)
		a.log.Debug().Str("file", name).Int64("size", n).Hex("crc32", crc32Bytes(crc)).Msg("verified")
	}
	fmt.Fprintf(a.stdout, "verified %d of %d files, crc32: %08x\n", fs.NArg()-failed, fs.NArg(), crcAll)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, fs.NArg())
	}
	return nil
}

// verifyFile encodes and decodes the named file and reports the CRC-32 and
// length of its contents.
func verifyFile(name string) (uint32, int64, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return 0, 0, err
	}
	var text, packed, decoded bytes.Buffer
	if err := huffman.Encode(&text, &packed, bytes.NewReader(b)); err != nil {
		return 0, 0, err
	}
	if _, err := huffman.Decode(&decoded, &packed); err != nil {
		return 0, 0, err
	}
	crc := crc32.ChecksumIEEE(b)
	if got := crc32.ChecksumIEEE(decoded.Bytes()); got != crc || decoded.Len() != len(b) {
		return 0, 0, fmt.Errorf("mismatching output: crc32 %08x, want %08x", got, crc)
	}
	return crc, int64(len(b)), nil
}

func crc32Bytes(crc uint32) []byte {
	return []byte{byte(crc >> 24), byte(crc >> 16), byte(crc >> 8), byte(crc)}
}

func fileSize(name string) int64 {
	fi, err := os.Stat(name)
	if err != nil {
		return -1
	}
	return fi.Size()
}
