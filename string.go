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

import "strconv"

// String value parsing. The four forms share one trait the hot path
// leans on: runs of ordinary characters are copied out of the source in
// one slice instead of byte-by-byte, and the builder only does work at a
// quote, a backslash, or an illegal character.

// parseBasicString implements a single-line "..." string.
func (p *parser) parseBasicString() (string, error) {
	p.pos++ // consume opening quote
	var out []byte
	start := p.pos
	for {
		if p.done() {
			return "", p.errorf("Closing quote of a string not found")
		}
		c := p.char()
		if c == '"' {
			out = append(out, p.src[start:p.pos]...)
			p.pos++
			return string(out), nil
		}
		if c == '\\' {
			out = append(out, p.src[start:p.pos]...)
			esc, err := p.parseEscapeSequence(false)
			if err != nil {
				return "", err
			}
			out = append(out, esc...)
			start = p.pos
			continue
		}
		if illegalBasicStrChars.has(c) {
			return "", p.errorf("Illegal character %s found in a string", charRepr(c))
		}
		p.pos++
	}
}

// parseLiteralString implements a single-line '...' string: no escapes,
// and a raw newline before the closing quote is reported distinctly from
// other illegal characters since it is also the scan's natural stop byte.
func (p *parser) parseLiteralString() (string, error) {
	p.pos++ // consume opening quote
	start := p.pos
	for {
		if p.done() {
			return "", p.errorf("Literal string closing apostrophe not found")
		}
		c := p.char()
		if c == '\'' {
			s := string(p.src[start:p.pos])
			p.pos++
			return s, nil
		}
		if c == '\n' {
			return "", p.errorf("Literal string closing apostrophe not found, got %s", charRepr(c))
		}
		if illegalLiteralStrChars.has(c) {
			return "", p.errorf("Illegal character %s found in a literal string", charRepr(c))
		}
		p.pos++
	}
}

// parseMultilineBasicString implements """...""" with escapes, a leading
// newline immediately after the opening delimiter stripped, and the
// five-way disambiguation of a quote run (one or two quotes are kept as
// content; three close the string; four or five include one or two
// literal quotes before closing).
func (p *parser) parseMultilineBasicString() (string, error) {
	openPos := p.pos
	p.pos += 3
	if !p.done() && p.char() == '\n' {
		p.pos++
	}
	var out []byte
	start := p.pos
	for {
		if p.done() {
			return "", newDecodeErrorf(p.src, openPos, "Multiline string not closed before end of the document")
		}
		c := p.char()
		if c == '"' {
			out = append(out, p.src[start:p.pos]...)
			rest := p.src[p.pos:]
			switch {
			case hasBytePrefix(rest, `"""""`):
				out = append(out, '"', '"')
				p.pos += 5
				return string(out), nil
			case hasBytePrefix(rest, `""""`):
				out = append(out, '"')
				p.pos += 4
				return string(out), nil
			case hasBytePrefix(rest, `"""`):
				p.pos += 3
				return string(out), nil
			case hasBytePrefix(rest, `""`):
				out = append(out, '"', '"')
				p.pos += 2
				start = p.pos
			default:
				out = append(out, '"')
				p.pos++
				start = p.pos
			}
			continue
		}
		if c == '\\' {
			out = append(out, p.src[start:p.pos]...)
			esc, err := p.parseEscapeSequence(true)
			if err != nil {
				return "", err
			}
			out = append(out, esc...)
			start = p.pos
			continue
		}
		if illegalMultilineBasicStrChars.has(c) {
			return "", p.errorf("Illegal character %s found in a multiline string", charRepr(c))
		}
		p.pos++
	}
}

// parseMultilineLiteralString implements '''...''' with no escapes,
// counting consecutive apostrophes so that a run of exactly three closes
// and a run of four or five includes trailing literal apostrophes, which
// a naive index-of-closing-triple search would mishandle for a literal
// "''" run not immediately followed by the closing triple.
func (p *parser) parseMultilineLiteralString() (string, error) {
	openPos := p.pos
	p.pos += 3
	if !p.done() && p.char() == '\n' {
		p.pos++
	}
	consecutive := 0
	start := p.pos
	for !p.done() {
		c := p.char()
		p.pos++
		if c == '\'' {
			consecutive++
			if consecutive == 3 {
				if !p.done() && p.char() == '\'' {
					p.pos++
					if !p.done() && p.char() == '\'' {
						p.pos++
					}
				}
				return string(p.src[start : p.pos-3]), nil
			}
			continue
		}
		consecutive = 0
		if illegalMultilineLiteralChars.has(c) {
			return "", newDecodeErrorf(p.src, p.pos-1, "Illegal character %s found in a multiline literal string", charRepr(c))
		}
	}
	return "", newDecodeErrorf(p.src, openPos, "Multiline literal string not closed before end of the document")
}

// parseEscapeSequence consumes the two bytes of an escape (the backslash
// plus the following byte) and returns the decoded UTF-8 bytes it stands
// for. In a multiline string, a backslash immediately followed by
// whitespace-then-newline (a "line ending backslash") consumes all
// following whitespace, including further newlines, and contributes
// nothing to the result.
func (p *parser) parseEscapeSequence(multiline bool) ([]byte, error) {
	startPos := p.pos
	if p.pos+2 > len(p.src) {
		return nil, newDecodeErrorf(p.src, startPos, "String value not closed before end of document")
	}
	escChar := p.src[p.pos+1]
	p.pos += 2

	if multiline && (escChar == ' ' || escChar == '\t' || escChar == '\n') {
		if escChar != '\n' {
			p.skipChars(tomlWS)
			if p.done() {
				return nil, nil
			}
			if p.char() != '\n' {
				return nil, newDecodeErrorf(p.src, startPos, `Unescaped "\" character found in a string`)
			}
			p.pos++
		}
		p.skipChars(arrayWS)
		return nil, nil
	}

	if r, ok := basicStrEscapeReplacements[escChar]; ok {
		return []byte(string(r)), nil
	}
	switch escChar {
	case 'u':
		return p.parseHexChar(startPos, 4)
	case 'U':
		return p.parseHexChar(startPos, 8)
	}
	return nil, newDecodeErrorf(p.src, startPos, `Unescaped "\" character found in a string`)
}

// parseHexChar decodes exactly length hex digits starting at p.pos into a
// single Unicode scalar value, consuming those digits on success.
func (p *parser) parseHexChar(startPos int, length int) ([]byte, error) {
	if p.pos+length > len(p.src) {
		return nil, newDecodeErrorf(p.src, startPos, "Invalid hex value")
	}
	digits := p.src[p.pos : p.pos+length]
	for _, c := range digits {
		if !isHexDigit(c) {
			return nil, newDecodeErrorf(p.src, startPos, "Invalid hex value")
		}
	}
	val, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return nil, newDecodeErrorf(p.src, startPos, "Invalid hex value")
	}
	p.pos += length

	r := rune(val)
	if !isUnicodeScalarValue(r) {
		return nil, newDecodeErrorf(p.src, startPos, "Hex value too large to convert into a character")
	}
	return []byte(string(r)), nil
}

// isUnicodeScalarValue reports whether r is a valid Unicode scalar value:
// any code point except the UTF-16 surrogate range.
func isUnicodeScalarValue(r rune) bool {
	return (r >= 0 && r <= 0xD7FF) || (r >= 0xE000 && r <= 0x10FFFF)
}

func hasBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}
