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

// Package toml implements a single-pass, recursive-descent decoder for
// TOML v1.0.0 documents.
package toml

import "fmt"

// Value is any decoded TOML value. It holds one of: string, int64, the
// type returned by the configured float parser, bool, LocalDate,
// LocalTime, LocalDateTime, OffsetDateTime, *Array, or *Table.
//
// There is no Value interface or class hierarchy: TOML's value grammar is
// a closed set of six categories plus two collection kinds, and a plain
// `any` with a type switch at the call site is the idiomatic way to model
// that in Go.
type Value = any

// LocalDate is a calendar date with no time-of-day or offset component,
// e.g. 1979-05-27.
type LocalDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// LocalTime is a time-of-day with no date or offset component, with
// microsecond precision, e.g. 07:32:00.999999.
type LocalTime struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// LocalDateTime is a date and time with no UTC offset, e.g.
// 1979-05-27T07:32:00.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// OffsetDateTime is a date and time with a UTC offset, e.g.
// 1979-05-27T00:32:00-07:00. OffsetMinutes is in [-1439, 1439]; its sign
// applies to both the hour and minute components of the source offset.
type OffsetDateTime struct {
	DateTime      LocalDateTime
	OffsetMinutes int
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t LocalTime) String() string {
	if t.Microsecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Microsecond)
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

func (dt OffsetDateTime) String() string {
	if dt.OffsetMinutes == 0 {
		return dt.DateTime.String() + "Z"
	}
	sign := byte('+')
	mins := dt.OffsetMinutes
	if mins < 0 {
		sign = '-'
		mins = -mins
	}
	return fmt.Sprintf("%s%c%02d:%02d", dt.DateTime.String(), sign, mins/60, mins%60)
}

// Array is an ordered, possibly heterogeneous sequence of [Value].
type Array struct {
	items []Value
}

// NewArray returns an empty array.
func NewArray() *Array { return &Array{} }

// Len reports the number of elements in the array.
func (a *Array) Len() int { return len(a.items) }

// Index returns the element at i.
func (a *Array) Index(i int) Value { return a.items[i] }

// Values returns the array's elements. The caller must not mutate the
// returned slice.
func (a *Array) Values() []Value { return a.items }

// Last returns the array's last element, or nil if the array is empty.
func (a *Array) Last() Value {
	if len(a.items) == 0 {
		return nil
	}
	return a.items[len(a.items)-1]
}

// Append adds v to the end of the array.
func (a *Array) Append(v Value) { a.items = append(a.items, v) }

// Table is an ordered mapping from string keys to [Value], preserving
// insertion order for deterministic iteration.
type Table struct {
	keys []string
	vals map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{vals: make(map[string]Value)}
}

// Get returns the value at key and whether it was present.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.vals[key]
	return ok
}

// Set assigns value to key, appending key to the insertion order the
// first time it is seen.
func (t *Table) Set(key string, value Value) {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = value
}

// Keys returns the table's keys in insertion order. The caller must not
// mutate the returned slice.
func (t *Table) Keys() []string { return t.keys }

// Len reports the number of keys in the table.
func (t *Table) Len() int { return len(t.keys) }
