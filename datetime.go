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
	"strconv"
	"strings"
)

// parseDateTime decodes a reDateTime match anchored at p.pos into the
// narrowest of LocalDate/LocalDateTime/OffsetDateTime the matched text
// supports. loc is the FindSubmatchIndex result against p.src[p.pos:]:
// groups, in order, are year, month, day, hour, minute, second,
// fractional-seconds, offset-hour, offset-minute. The regex bounds each
// field's digits but not its calendar validity, so the day is checked
// against daysInMonth here, the same way a date constructor would
// reject it.
func (p *parser) parseDateTime(rest []byte, loc []int) (Value, error) {
	startPos := p.pos
	group := func(i int) (string, bool) {
		if loc[2*i] < 0 {
			return "", false
		}
		return string(rest[loc[2*i]:loc[2*i+1]]), true
	}
	matchStr := string(rest[loc[0]:loc[1]])
	p.pos += loc[1]

	year := atoi(mustGroup(group, 1))
	month := atoi(mustGroup(group, 2))
	day := atoi(mustGroup(group, 3))
	if day < 1 || day > daysInMonth(year, month) {
		return nil, newDecodeErrorf(p.src, startPos, "Day is out of range for month")
	}
	date := LocalDate{Year: year, Month: month, Day: day}

	hourStr, hasTime := group(4)
	if !hasTime {
		return date, nil
	}
	hour := atoi(hourStr)
	minute := atoi(mustGroup(group, 5))
	sec := atoi(mustGroup(group, 6))
	micros := 0
	if frac, ok := group(7); ok {
		micros = fracToMicros(frac)
	}
	localTime := LocalTime{Hour: hour, Minute: minute, Second: sec, Microsecond: micros}
	localDT := LocalDateTime{Date: date, Time: localTime}

	if offHour, ok := group(8); ok {
		offMin, _ := group(9)
		sign := 1
		if !strings.ContainsRune(matchStr, '+') {
			sign = -1
		}
		offsetMinutes := sign * (atoi(offHour)*60 + atoi(offMin))
		return OffsetDateTime{DateTime: localDT, OffsetMinutes: offsetMinutes}, nil
	}
	if strings.ContainsAny(matchStr, "Zz") {
		return OffsetDateTime{DateTime: localDT, OffsetMinutes: 0}, nil
	}
	return localDT, nil
}

// daysInMonth reports how many days month has in year, honoring the
// Gregorian leap-year rule for February.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// isLeapYear reports whether year is a leap year under the Gregorian
// calendar: divisible by 4, except centuries, which must be divisible
// by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// parseLocalTimeValue decodes a reLocalTime match (hour, minute, second,
// fractional-seconds) into a bare LocalTime.
func (p *parser) parseLocalTimeValue(rest []byte, loc []int) Value {
	group := func(i int) (string, bool) {
		if loc[2*i] < 0 {
			return "", false
		}
		return string(rest[loc[2*i]:loc[2*i+1]]), true
	}
	p.pos += loc[1]
	hour := atoi(mustGroup(group, 1))
	minute := atoi(mustGroup(group, 2))
	sec := atoi(mustGroup(group, 3))
	micros := 0
	if frac, ok := group(4); ok {
		micros = fracToMicros(frac)
	}
	return LocalTime{Hour: hour, Minute: minute, Second: sec, Microsecond: micros}
}

// fracToMicros converts a ".NNN..." fractional-seconds fragment (as
// matched by the time regex, including its leading dot) into whole
// microseconds, left-justified and truncated/padded to six digits the
// way the original pads or truncates sub/super-microsecond precision.
func fracToMicros(frac string) int {
	digits := frac[1:] // drop leading '.'
	if len(digits) > 6 {
		digits = digits[:6]
	} else {
		digits += strings.Repeat("0", 6-len(digits))
	}
	return atoi(digits)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func mustGroup(group func(int) (string, bool), i int) string {
	s, _ := group(i)
	return s
}
