// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huff encodes and decodes files using the hufftext format.
//
// Example usage:
//	$ huff encode testdata/file1.txt out/file1.txt
//	$ huff decode out/file1_compressed.txt out/file1_decoded.txt
//	$ huff codes testdata/multiline.txt
//	$ huff verify testdata/*.txt
//	$ huff -log.level=warn bench -files histogram.txt -codecs ds,icza
//
// Settings are read from the built-in defaults, the YAML file named by
// -config, the HUFF_* environment variables, and the global flags,
// with later sources taking precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

type app struct {
	cfg    *Config
	log    zerolog.Logger
	usage  string
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"encode": {"encode [-compressed file] <in> <out>", runEncode},
	"decode": {"decode <compressed> <out>", runDecode},
	"codes":  {"codes <in>", runCodes},
	"verify": {"verify <files...>", runVerify},
	"bench":  {"bench [-files f1,f2] [-codecs c1,c2] [-formats f1,f2] [-tests t1,t2]", runBench},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }
	confPath := fs.String("config", "", "YAML configuration file")
	fs.String("log.level", "info", "Minimum level of log messages")
	fs.Bool("log.pretty", true, "Human-readable log output")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	// Only flags set on the command line override other sources.
	overrides := make(map[string]interface{})
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			overrides[f.Name] = f.Value.(flag.Getter).Get()
		}
	})
	cfg, err := loadConfig(*confPath, overrides)
	if err != nil {
		fmt.Fprintf(stderr, "huff: invalid configuration: %v\n", err)
		return 1
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "huff: invalid log level: %v\n", err)
		return 1
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		log.Error().Str("command", name).Msg("unknown command")
		fs.Usage()
		return 1
	}
	a := &app{
		cfg:    cfg,
		log:    log.With().Str("command", name).Logger(),
		usage:  cmd.usage,
		stdout: stdout,
		stderr: stderr,
	}
	if err := cmd.run(ctx, a, fs.Args()[1:]); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	w := fs.Output()
	fmt.Fprintf(w, "Usage: huff [flags] <command> [args]\n\nCommands:\n")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s\n", commands[name].usage)
	}
	fmt.Fprintf(w, "\nFlags:\n")
	fs.PrintDefaults()
}

// newFlagSet returns a flag set for a command that reports errors to stderr.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: huff %s\n", a.usage)
		fs.PrintDefaults()
	}
	return fs
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var ss []string
	for _, s := range strings.Split(s, ",") {
		if s = strings.TrimSpace(s); s != "" {
			ss = append(ss, s)
		}
	}
	return ss
}
