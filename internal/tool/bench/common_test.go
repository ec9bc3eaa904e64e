// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, ft := range []Format{FormatHuffText, FormatHufio, FormatFlate, FormatZstd, FormatXZ, FormatBrotli} {
		got, ok := ParseFormat(ft.String())
		if !ok || got != ft {
			t.Errorf("ParseFormat(%q): got (%v, %v), want (%v, true)", ft.String(), got, ok, ft)
		}
	}
	if _, ok := ParseFormat("bz2"); ok {
		t.Errorf("ParseFormat(\"bz2\"): got ok, want !ok")
	}
}

func TestGetName(t *testing.T) {
	vectors := []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"testdata/histogram.txt", 6, 1e4, "histogram.txt:6:1e4"},
		{"histogram.txt", 0, 1e6, "histogram.txt:0:1e6"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, getName(): got %q, want %q", i, got, v.want)
		}
	}
}

func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../../testdata"}
	files := []string{"histogram.txt", "file2.txt"}
	encs := []string{"ds"}
	results, names := BenchmarkRatioSuite(FormatHuffText, encs, files, []int{6}, []int{1e4}, nil)
	if len(results) != 2 || len(names) != 2 {
		t.Fatalf("suite shape: got %dx%d", len(results), len(names))
	}
	for i, row := range results {
		if row[0].R <= 1 {
			t.Errorf("%s, compression ratio: got %.2f, want > 1", names[i], row[0].R)
		}
		if row[0].D != 1 {
			t.Errorf("%s, delta of primary codec: got %.2f, want 1", names[i], row[0].D)
		}
	}

	table := FormatResults(results, names, encs, "ratio", "x")
	if !strings.Contains(table, "ds ratio") || !strings.Contains(table, "histogram.txt:6:1e4") {
		t.Errorf("FormatResults():\n%s", table)
	}
}
