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
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	qt "github.com/go-quicktest/qt"
)

func TestParseStringScenarios(t *testing.T) {
	got, err := ParseString("one=1 \n two='two' \n arr=[]")
	qt.Assert(t, qt.IsNil(err))
	one, _ := got.Get("one")
	qt.Assert(t, qt.Equals(one.(int64), 1))
	two, _ := got.Get("two")
	qt.Assert(t, qt.Equals(two.(string), "two"))
	arr, _ := got.Get("arr")
	qt.Assert(t, qt.Equals(arr.(*Array).Len(), 0))
}

func TestParseStringDottedHeaderThenOverwrite(t *testing.T) {
	got, err := ParseString("[a.b]\n c = 1\n[a]\n d = 2")
	qt.Assert(t, qt.IsNil(err))
	a, _ := got.Get("a")
	aTable := a.(*Table)
	b, _ := aTable.Get("b")
	c, _ := b.(*Table).Get("c")
	qt.Assert(t, qt.Equals(c.(int64), 1))
	d, _ := aTable.Get("d")
	qt.Assert(t, qt.Equals(d.(int64), 2))

	_, err = ParseString("[a.b]\n c = 1\n[a]\n d = 2\n[a.b]")
	qt.Assert(t, qt.ErrorMatches(err, `Can not declare \("a","b"\) twice.*`))
}

func TestParseStringInlineTableFrozen(t *testing.T) {
	_, err := ParseString("x = {y = 1}\n[x.z]\n w = 2")
	qt.Assert(t, qt.ErrorMatches(err, `Can not mutate immutable namespace \("x",\).*`))
}

func TestParseStringArrayOfTables(t *testing.T) {
	got, err := ParseString("[[arr]]\n a = 1\n[[arr]]\n b = 2")
	qt.Assert(t, qt.IsNil(err))
	arrVal, _ := got.Get("arr")
	arr := arrVal.(*Array)
	qt.Assert(t, qt.Equals(arr.Len(), 2))
	first := arr.Index(0).(*Table)
	a, _ := first.Get("a")
	qt.Assert(t, qt.Equals(a.(int64), 1))
	second := arr.Index(1).(*Table)
	b, _ := second.Get("b")
	qt.Assert(t, qt.Equals(b.(int64), 2))
}

func TestParseStringOffsetDateTime(t *testing.T) {
	got, err := ParseString("t = 1979-05-27T00:32:00.999999-07:00")
	qt.Assert(t, qt.IsNil(err))
	tv, _ := got.Get("t")
	odt, ok := tv.(OffsetDateTime)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(odt.DateTime.Date, LocalDate{Year: 1979, Month: 5, Day: 27}))
	qt.Assert(t, qt.DeepEquals(odt.DateTime.Time, LocalTime{Hour: 0, Minute: 32, Second: 0, Microsecond: 999999}))
	qt.Assert(t, qt.Equals(odt.OffsetMinutes, -7*60))
}

func TestParseStringErrors(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"invalid value", "val=.", "Invalid value (at line 1, column 5)"},
		{"invalid statement", "\n\n.", "Invalid statement (at line 3, column 1)"},
		{"invalid value at eof", "\n\nfwfw=", "Invalid value (at end of document)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.in)
			qt.Assert(t, qt.Not(qt.IsNil(err)))
			qt.Assert(t, qt.Equals(err.Error(), tc.wantMsg))
		})
	}

	_, err := ParseString("v = '\n'")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), ` '\n' `)))
}

func TestParseStringUniqueKeys(t *testing.T) {
	_, err := ParseString("a = 1\na = 2")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "twice")))
}

func TestParseStringIntegerRadices(t *testing.T) {
	got, err := ParseString("a = 0xFF\nb = 0o77\nc = 0b1010\nd = 1_000_000")
	qt.Assert(t, qt.IsNil(err))
	a, _ := got.Get("a")
	qt.Assert(t, qt.Equals(a.(int64), 255))
	b, _ := got.Get("b")
	qt.Assert(t, qt.Equals(b.(int64), 63))
	c, _ := got.Get("c")
	qt.Assert(t, qt.Equals(c.(int64), 10))
	d, _ := got.Get("d")
	qt.Assert(t, qt.Equals(d.(int64), 1000000))
}

func TestParseStringFloatHook(t *testing.T) {
	got, err := ParseString("x = 0.1\ny = inf", WithFloatParser(DecimalParseFloat))
	qt.Assert(t, qt.IsNil(err))

	x, _ := got.Get("x")
	xd, ok := x.(*apd.Decimal)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(xd.Form, apd.Finite))

	y, _ := got.Get("y")
	yd, ok := y.(*apd.Decimal)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(yd.Form, apd.Infinite))
}

func TestParseReaderStripsBOM(t *testing.T) {
	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1")...)
	got, err := ParseReader(strings.NewReader(string(bom)))
	qt.Assert(t, qt.IsNil(err))
	a, _ := got.Get("a")
	qt.Assert(t, qt.Equals(a.(int64), 1))
}

func TestParseStringCRLFNormalization(t *testing.T) {
	lf, err1 := ParseString("a = 1\nb = 2")
	crlf, err2 := ParseString("a = 1\r\nb = 2")
	qt.Assert(t, qt.IsNil(err1))
	qt.Assert(t, qt.IsNil(err2))
	la, _ := lf.Get("a")
	ca, _ := crlf.Get("a")
	qt.Assert(t, qt.Equals(la.(int64), ca.(int64)))
	lb, _ := lf.Get("b")
	cb, _ := crlf.Get("b")
	qt.Assert(t, qt.Equals(lb.(int64), cb.(int64)))
}
