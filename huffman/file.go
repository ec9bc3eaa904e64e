// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Encode reads src until io.EOF and writes its bit-packed encoding to packed.
// If text is non-nil, the human-readable rendition is written to it as well.
func Encode(text, packed io.Writer, src io.Reader) error {
	zw := NewWriter(packed, &WriterConfig{Text: text})
	if _, err := io.Copy(zw, src); err != nil {
		return err
	}
	return zw.Close()
}

// Decode decodes the bit-packed stream from src into dst and reports the
// number of bytes written.
func Decode(dst io.Writer, src io.Reader) (int64, error) {
	zr := NewReader(src)
	n, err := io.Copy(dst, zr)
	if err != nil {
		return n, err
	}
	return n, zr.Close()
}

type FileConfig struct {
	// Compressed is the path of the bit-packed output.
	// If empty, it is derived from the text output path using Suffix.
	Compressed string

	// Suffix is inserted by CompressedName. If empty, CompressedSuffix is used.
	Suffix string

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// CompressedPath reports where the bit-packed rendition of the text output
// out is written. A nil config yields CompressedName(out).
func (c *FileConfig) CompressedPath(out string) string {
	if c == nil {
		return CompressedName(out)
	}
	if c.Compressed != "" {
		return c.Compressed
	}
	return compressedName(out, c.Suffix)
}

// EncodeFile encodes the named input file. The human-readable rendition is
// written to out and the bit-packed rendition to CompressedName(out).
func EncodeFile(in, out string) error {
	return EncodeFileConfig(in, out, nil)
}

// EncodeFileConfig is EncodeFile with control over the bit-packed output path.
//
// A not found error is reported if the input cannot be opened or either output
// cannot be created. The input is opened before any output is created.
func EncodeFileConfig(in, out string, conf *FileConfig) (err error) {
	compressed := conf.CompressedPath(out)

	fi, err := os.Open(in)
	if err != nil {
		return errNotFound(err)
	}
	defer fi.Close()

	ft, err := os.Create(out)
	if err != nil {
		return errNotFound(err)
	}
	defer closeFile(ft, &err)

	fc, err := os.Create(compressed)
	if err != nil {
		return errNotFound(err)
	}
	defer closeFile(fc, &err)

	return Encode(ft, fc, fi)
}

// DecodeFile decodes the named bit-packed file into out.
//
// A not found error is reported if the input cannot be opened or the output
// cannot be created. The input is opened before the output is created.
func DecodeFile(in, out string) (err error) {
	fi, err := os.Open(in)
	if err != nil {
		return errNotFound(err)
	}
	defer fi.Close()

	fo, err := os.Create(out)
	if err != nil {
		return errNotFound(err)
	}
	defer closeFile(fo, &err)

	_, err = Decode(fo, fi)
	return err
}

// CompressedName returns the name of the bit-packed counterpart of the named
// text output, formed by inserting CompressedSuffix before the first '.' of
// the base name. If the base name has no '.', the suffix is appended.
//
//	CompressedName("out/file1_out.txt") == "out/file1_out_compressed.txt"
func CompressedName(name string) string {
	return compressedName(name, CompressedSuffix)
}

func compressedName(name, suffix string) string {
	if suffix == "" {
		suffix = CompressedSuffix
	}
	dir, base := filepath.Split(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return dir + base[:i] + suffix + base[i:]
	}
	return dir + base + suffix
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
}
