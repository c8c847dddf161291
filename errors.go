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
	"fmt"
	"strings"
)

// DecodeError is the one error kind the core surfaces to callers: a
// human-readable message plus source coordinates. Internally the parser
// distinguishes syntax, character-class, semantic, and range failures
// (see SPEC_FULL.md §2.1), but all of them are reported through this
// single public type, mirroring cue/errors' single Error interface
// trimmed down to what a document that aborts on its first error needs:
// no Path, no InputPositions, no message list.
type DecodeError struct {
	msg string
	pos position
}

// Error implements the error interface. The message ends with
// " (at line L, column C)" for a position inside the document, or
// " (at end of document)" when the failure was detected at EOF.
func (e *DecodeError) Error() string {
	if !e.pos.valid {
		return e.msg + " (at end of document)"
	}
	return fmt.Sprintf("%s (at line %d, column %d)", e.msg, e.pos.line, e.pos.column)
}

// Position reports the 1-based line and column of the error. ok is false
// when the error was detected at end of document.
func (e *DecodeError) Position() (line, column int, ok bool) {
	if !e.pos.valid {
		return 0, 0, false
	}
	return e.pos.line, e.pos.column, true
}

func newDecodeError(src []byte, pos int, msg string) *DecodeError {
	return &DecodeError{msg: msg, pos: positionAt(src, pos)}
}

func newDecodeErrorf(src []byte, pos int, format string, args ...any) *DecodeError {
	return newDecodeError(src, pos, fmt.Sprintf(format, args...))
}

// pathString renders a key path the way the rest of the diagnostics in
// this package do: a parenthesized, comma-separated list of quoted
// segments, with a trailing comma for a single-element path (so a
// one-element path is visually distinguishable from a parenthesized
// string), e.g. () for the root path, ("x",) for a single key, and
// ("a","b") for a dotted path.
func pathString(path []string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, seg := range path {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(seg)
		b.WriteByte('"')
	}
	if len(path) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// charRepr renders a single byte the way diagnostics quote an
// unexpected character: single-quoted, with the common control escapes
// spelled out and a \xHH fallback for anything else unprintable.
func charRepr(b byte) string {
	switch b {
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	default:
		if b < 0x20 || b == 0x7f {
			return fmt.Sprintf(`'\x%02x'`, b)
		}
		return "'" + string(rune(b)) + "'"
	}
}
