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

package toml

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// parseValue dispatches on the value at p.pos, trying each form in
// turn: strings, inline tables, arrays, booleans, dates and times,
// radix integers, special floats, then the shared decimal-integer/float
// grammar.
func (p *parser) parseValue() (Value, error) {
	if p.done() {
		return nil, p.errorf("Invalid value")
	}

	switch c := p.char(); {
	case c == '"':
		if p.hasPrefix(`"""`) {
			return p.parseMultilineBasicString()
		}
		return p.parseBasicString()
	case c == '\'':
		if p.hasPrefix(`'''`) {
			return p.parseMultilineLiteralString()
		}
		return p.parseLiteralString()
	case c == '{':
		return p.parseInlineTable()
	case c == '[':
		return p.parseArray()
	}

	if p.hasPrefix("true") {
		p.pos += 4
		return true, nil
	}
	if p.hasPrefix("false") {
		p.pos += 5
		return false, nil
	}

	rest := p.src[p.pos:]
	if loc := reDateTime.FindSubmatchIndex(rest); loc != nil && loc[1] > loc[0] {
		return p.parseDateTime(rest, loc)
	}
	if loc := reLocalTime.FindSubmatchIndex(rest); loc != nil {
		return p.parseLocalTimeValue(rest, loc), nil
	}

	switch {
	case p.hasPrefix("0x"):
		return p.parseRadixInt(16, reHex)
	case p.hasPrefix("0o"):
		return p.parseRadixInt(8, reOct)
	case p.hasPrefix("0b"):
		return p.parseRadixInt(2, reBin)
	}

	if literal, ok := p.consumeSpecialFloat(); ok {
		v, err := p.parseFloat(literal)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		return v, nil
	}

	if m := reDecOrFloat.Find(rest); m != nil {
		literal := string(m)
		startPos := p.pos
		p.pos += len(m)
		clean := strings.ReplaceAll(literal, "_", "")
		if strings.ContainsAny(clean, ".eE") {
			v, err := p.parseFloat(clean)
			if err != nil {
				return nil, newDecodeErrorf(p.src, startPos, "%s", err)
			}
			return v, nil
		}
		n, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			return nil, newDecodeErrorf(p.src, startPos, "Invalid integer value")
		}
		return n, nil
	}

	return nil, p.errorf("Invalid value")
}

// parseRadixInt consumes the already-matched 0x/0o/0b prefix and the run
// of digits the prefix introduces, returning the full 64-bit two's
// complement bit pattern (so a hex literal like 0xFFFFFFFFFFFFFFFF
// decodes the way a 64-bit TOML integer is defined to, rather than
// overflowing the way a naive signed parse would).
func (p *parser) parseRadixInt(base int, re *regexp.Regexp) (Value, error) {
	startPos := p.pos
	p.pos += 2 // consume the 0x/0o/0b prefix
	m := re.Find(p.src[p.pos:])
	if m == nil {
		return nil, newDecodeErrorf(p.src, startPos, "Invalid value")
	}
	p.pos += len(m)
	clean := strings.ReplaceAll(string(m), "_", "")
	u, err := strconv.ParseUint(clean, base, 64)
	if err != nil {
		return nil, newDecodeErrorf(p.src, startPos, "Invalid integer value")
	}
	return int64(u), nil
}

// consumeSpecialFloat matches one of inf/+inf/-inf/nan/+nan/-nan at
// p.pos and advances past it, returning the literal for the FloatParser
// hook to interpret.
func (p *parser) consumeSpecialFloat() (string, bool) {
	rest := p.src[p.pos:]
	if len(rest) >= 4 {
		switch string(rest[:4]) {
		case "+inf", "-inf", "+nan", "-nan":
			p.pos += 4
			return string(rest[:4]), true
		}
	}
	if len(rest) >= 3 {
		switch string(rest[:3]) {
		case "inf", "nan":
			p.pos += 3
			return string(rest[:3]), true
		}
	}
	return "", false
}

// DefaultParseFloat is the FloatParser used when no WithFloatParser
// option is given: it parses a TOML float literal into a native Go
// float64 using strconv, the representation most callers expect.
func DefaultParseFloat(literal string) (any, error) {
	// strconv accepts a signed inf but not a signed nan.
	switch literal {
	case "+nan":
		return math.NaN(), nil
	case "-nan":
		return math.Copysign(math.NaN(), -1), nil
	}
	return strconv.ParseFloat(literal, 64)
}

// DecimalParseFloat is a FloatParser that preserves arbitrary precision
// by parsing the literal into a *apd.Decimal instead of a float64,
// grounded on cue/value.go's numLit, which stores every numeric literal
// as an apd.Decimal rather than a native Go number so that formatting
// and arithmetic never lose digits a float64 would round away.
func DecimalParseFloat(literal string) (any, error) {
	d, _, err := apd.NewFromString(literal)
	if err != nil {
		return nil, err
	}
	return d, nil
}
