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

import "regexp"

// Go's regexp has no "match starting at this offset" primitive, so every
// pattern here is anchored with a leading ^ and matched against the
// remaining unparsed suffix of the source instead.
var (
	reHex       = regexp.MustCompile(`^[0-9A-Fa-f](?:_?[0-9A-Fa-f])*`)
	reBin       = regexp.MustCompile(`^[01](?:_?[01])*`)
	reOct       = regexp.MustCompile(`^[0-7](?:_?[0-7])*`)
	reDecOrFloat = regexp.MustCompile(
		`^[+-]?(?:0|[1-9](?:_?[0-9])*)` + // integer part
			`(?:\.[0-9](?:_?[0-9])*)?` + // optional fractional part
			`(?:[eE][+-]?[0-9](?:_?[0-9])*)?`) // optional exponent part

	localTimeFragment = `([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?`

	reLocalTime = regexp.MustCompile(`^` + localTimeFragment)
	reDateTime  = regexp.MustCompile(`^` +
		`([0-9]{4})-(0[1-9]|1[0-2])-(0[1-9]|1[0-9]|2[0-9]|3[01])` + // date
		`(?:` +
		`[T ]` +
		localTimeFragment +
		`(?:Z|z|[+-]([01][0-9]|2[0-3]):([0-5][0-9]))?` + // time offset
		`)?`)
)
