// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/hufftext/internal/tool/bench"
)

// The decompression speed benchmark works by decompressing some pre-compressed
// data. In order for the benchmarks to be consistent, the same encoder should
// be used to generate the pre-compressed data for all the trials.
//
// encRefs defines the priority order for which encoders to choose first as the
// reference compressor. If no compressor is found for any of the listed codecs,
// then a random encoder will be chosen.
var encRefs = []string{"ds", "icza", "std", "kp", "uk", "ab"}

var (
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

type benchConfig struct {
	files   []string
	codecs  []string
	formats []bench.Format
	tests   []int
	levels  []int
	sizes   []int
}

// parseBenchConfig validates the bench section of the configuration.
// Comma-separated flag values, if non-empty, replace the configured lists.
func parseBenchConfig(cfg *Config, files, codecs, formats, tests string) (*benchConfig, error) {
	bc := new(benchConfig)
	pick := func(flag string, conf []string) []string {
		if ss := splitList(flag); len(ss) > 0 {
			return ss
		}
		return conf
	}
	bc.files = pick(files, cfg.Bench.Files)
	bc.codecs = pick(codecs, cfg.Bench.Codecs)
	for _, s := range pick(formats, cfg.Bench.Formats) {
		f, ok := bench.ParseFormat(s)
		if !ok {
			return nil, fmt.Errorf("invalid format: %q", s)
		}
		bc.formats = append(bc.formats, f)
	}
	for _, s := range pick(tests, cfg.Bench.Tests) {
		t, ok := testToEnum[s]
		if !ok {
			return nil, fmt.Errorf("invalid test: %q", s)
		}
		bc.tests = append(bc.tests, t)
	}
	bc.levels = cfg.Bench.Levels
	for _, s := range cfg.Bench.Sizes {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid size: %q", s)
		}
		bc.sizes = append(bc.sizes, int(n))
	}
	if len(bc.files) == 0 || len(bc.codecs) == 0 || len(bc.levels) == 0 || len(bc.sizes) == 0 {
		return nil, fmt.Errorf("bench requires at least one file, codec, level, and size")
	}
	return bc, nil
}

func runBench(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("bench")
	files := fs.String("files", "", "List of input files to benchmark")
	codecs := fs.String("codecs", "", "List of codecs to benchmark")
	formats := fs.String("formats", "", "List of formats to benchmark")
	tests := fs.String("tests", "", "List of different benchmark tests")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bc, err := parseBenchConfig(a.cfg, *files, *codecs, *formats, *tests)
	if err != nil {
		return err
	}

	ts := time.Now()
	bench.Paths = a.cfg.Bench.Paths
	if err := runBenchmarks(ctx, a, bc); err != nil {
		return err
	}
	a.log.Info().Dur("runtime", time.Since(ts)).Msg("bench finished")
	return nil
}

func runBenchmarks(ctx context.Context, a *app, bc *benchConfig) error {
	for _, f := range bc.formats {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range bc.codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}
		for _, c := range bc.codecs {
			if _, ok := bench.Decoders[f][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range bc.tests {
			if err := ctx.Err(); err != nil {
				return err
			}
			var results [][]bench.Result
			var names, codecs []string
			var title, suffix string

			// Check that we can actually do this bench.
			log := a.log.With().Str("format", f.String()).Str("test", enumToTest[t]).Logger()
			if len(encs) == 0 {
				log.Warn().Msg("skip: there are no encoders available")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				log.Warn().Msg("skip: there are no decoders available")
				continue
			}

			// Progress ticker.
			var cnt int
			total := len(bc.files) * len(bc.levels) * len(bc.sizes)
			tick := func() {
				log.Debug().Int("done", cnt).Int("total", total*len(codecs)).Msg("progress")
				cnt++
			}

			// Perform the bench. This may take some time.
			switch t {
			case bench.TestEncodeRate:
				codecs, title, suffix = encs, "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(f, encs, bc.files, bc.levels, bc.sizes, tick)
			case bench.TestDecodeRate:
				ref := getReferenceEncoder(f)
				codecs, title, suffix = decs, "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(f, decs, bc.files, bc.levels, bc.sizes, ref, tick)
			case bench.TestCompressRatio:
				codecs, title, suffix = encs, "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(f, encs, bc.files, bc.levels, bc.sizes, tick)
			default:
				panic("unknown test")
			}

			fmt.Fprintf(a.stdout, "BENCHMARK: %s:%s\n", f, enumToTest[t])
			fmt.Fprintln(a.stdout, strings.TrimRight(bench.FormatResults(results, names, codecs, title, suffix), "\n"))
			fmt.Fprintln(a.stdout)
		}
	}
	return nil
}

func getReferenceEncoder(f bench.Format) bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[f][c]; ok {
			return enc // Choose by priority
		}
	}
	for _, enc := range bench.Encoders[f] {
		return enc // Choose any random encoder
	}
	return nil // There are no encoders
}
