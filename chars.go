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

// Character classes as [256]bool lookup tables: a byte-indexed array
// beats a map for a hot-path membership test, and every set here is
// small and fixed at init time.

type charSet [256]bool

func newCharSet(chars string) charSet {
	var cs charSet
	for i := 0; i < len(chars); i++ {
		cs[chars[i]] = true
	}
	return cs
}

func (cs charSet) has(b byte) bool { return cs[b] }

func asciiCtrlSet() charSet {
	var cs charSet
	for i := 0; i < 0x20; i++ {
		cs[i] = true
	}
	cs[0x7f] = true
	return cs
}

func (cs charSet) without(other string) charSet {
	out := cs
	for i := 0; i < len(other); i++ {
		out[other[i]] = false
	}
	return out
}

var (
	asciiCtrl = asciiCtrlSet()

	illegalBasicStrChars          = asciiCtrl.without("\t")
	illegalMultilineBasicStrChars = asciiCtrl.without("\t\n\r")
	illegalLiteralStrChars        = asciiCtrl.without("\t")
	illegalMultilineLiteralChars  = asciiCtrl.without("\t\n")
	illegalCommentChars           = asciiCtrl.without("\t")

	tomlWS       = newCharSet(" \t")
	arrayWS      = newCharSet(" \t\n")
	bareKeyChars = newCharSet(
		"abcdefghijklmnopqrstuvwxyz" +
			"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
			"0123456789-_")
)

// basicStrEscapeReplacements maps a single escaped byte to the rune it
// stands for in a basic or multiline basic string.
var basicStrEscapeReplacements = map[byte]rune{
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'f':  '\f',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
