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

// position is a printable (line, column) pair derived from a byte offset
// into the source document. Unlike cue/token's Pos/File pair, this
// decoder only ever has one source document in play at a time, so there
// is no file table, no compact encoding, and no relative-position bits
// to carry: a position is computed on demand, only when an error is
// raised (see errors.go).
type position struct {
	valid  bool
	line   int // 1-based
	column int // 1-based, counted in bytes
}

// IsValid reports whether the position refers to a real offset in the
// document, as opposed to end-of-document.
func (p position) IsValid() bool { return p.valid }

// positionAt computes the (line, column) of byte offset pos within src.
// A pos at or past len(src) yields an invalid position, meaning
// "end of document".
func positionAt(src []byte, pos int) position {
	if pos < 0 || pos >= len(src) {
		return position{}
	}
	line := 1
	lastNewline := -1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	column := pos + 1
	if line > 1 {
		column = pos - lastNewline
	}
	return position{valid: true, line: line, column: column}
}
