// Copyright 2026 The tomlcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package toml implements the core of a TOML v1.0.0 decoder: a
// single-pass, lexer-free, recursive-descent parser that turns UTF-8
// text into an in-memory Value tree. It does not map that tree onto
// caller-provided Go structs; that concern belongs one layer up, the
// way cuelang.org/go's cue/parser package builds an AST without itself
// knowing what a caller will do with it.
package toml

import (
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// config collects the options a caller can set through Option values.
type config struct {
	parseFloat FloatParser
}

// Option configures a Parse call, following the functional-option shape
// cue/parser's config.go uses for its own ParseFile options.
type Option func(*config)

// WithFloatParser overrides the hook used to turn a float or inf/nan
// literal into a value. The default, DefaultParseFloat, returns a
// float64.
func WithFloatParser(fp FloatParser) Option {
	return func(c *config) { c.parseFloat = fp }
}

// ParseString parses text as a complete TOML document and returns its
// root table, or the first error encountered.
func ParseString(text string, opts ...Option) (*Table, error) {
	return parse([]byte(text), opts)
}

// ParseReader reads all of r, strips a leading UTF-8 byte order mark if
// present, and parses the result as a complete TOML document.
func ParseReader(r io.Reader, opts ...Option) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return parse(data, opts)
}

func parse(data []byte, opts []Option) (*Table, error) {
	if !utf8.Valid(data) {
		pos := 0
		for pos < len(data) {
			r, size := utf8.DecodeRune(data[pos:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			pos += size
		}
		return nil, newDecodeError(data, pos, "Input is not valid UTF-8")
	}

	cfg := config{parseFloat: DefaultParseFloat}
	for _, opt := range opts {
		opt(&cfg)
	}

	// The spec permits treating "\r\n" as "\n" everywhere, including
	// inside string literals, which keeps every other rule byte-offset
	// based instead of needing a separate line-ending mode.
	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	p := newParser(normalized, cfg.parseFloat)
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return p.out.root, nil
}
