// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HUFF_"

const defaultConfig = `
log:
  level: info
  pretty: true
output:
  suffix: _compressed
bench:
  paths: [testdata]
  files: [histogram.txt, multiline.txt]
  codecs: [ds, icza, std, std-huff, kp, uk, ab]
  formats: [huff, hufio, fl, zstd, xz, br]
  tests: [ratio]
  levels: [6]
  sizes: ["1e4", "1e5"]
`

type Config struct {
	Log struct {
		Level  string `koanf:"level"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"log"`
	Output struct {
		Suffix string `koanf:"suffix"`
	} `koanf:"output"`
	Bench struct {
		Paths   []string `koanf:"paths"`
		Files   []string `koanf:"files"`
		Codecs  []string `koanf:"codecs"`
		Formats []string `koanf:"formats"`
		Tests   []string `koanf:"tests"`
		Levels  []int    `koanf:"levels"`
		Sizes   []string `koanf:"sizes"`
	} `koanf:"bench"`
}

// loadConfig layers the built-in defaults, the optional YAML file at path,
// environment variables prefixed with HUFF_, and finally the overrides, which
// hold the command-line flags that were explicitly set.
//
// An environment variable maps to a key by dropping the prefix, lowering its
// case and replacing '_' with '.', such that HUFF_LOG_LEVEL sets log.level.
// Values containing commas are split into lists.
func loadConfig(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(defaultConfig)), yaml.Parser()); err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", -1)
		if strings.Contains(v, ",") {
			return key, strings.Split(v, ",")
		}
		return key, v
	}), nil); err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
