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
)

func TestParseKeyDotted(t *testing.T) {
	p := newParser([]byte(`physical.color = "orange"`), DefaultParseFloat)
	path, value, err := p.parseKeyValuePair()
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 || path[0] != "physical" || path[1] != "color" {
		t.Fatalf("got path %v, want [physical color]", path)
	}
	if value.(string) != "orange" {
		t.Fatalf("got value %v, want orange", value)
	}
}

func TestParseKeyQuoted(t *testing.T) {
	p := newParser([]byte(`"127.0.0.1" = "value"`), DefaultParseFloat)
	path, _, err := p.parseKeyValuePair()
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != "127.0.0.1" {
		t.Fatalf("got path %v, want [127.0.0.1]", path)
	}
}

func TestParseKeyMultilineStringRejected(t *testing.T) {
	_, err := ParseString("\"\"\"a\"\"\" = 1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Multi-line strings are not allowed as keys") {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseDuplicateKeyInSameTable(t *testing.T) {
	_, err := ParseString("a = 1\na = 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), `Can not define ("a",) twice`) {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseMissingEquals(t *testing.T) {
	_, err := ParseString("a 1")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseTableHeaderMissingClosingBracket(t *testing.T) {
	_, err := ParseString("[a")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseArrayTableHeaderMissingClosingBrackets(t *testing.T) {
	_, err := ParseString("[[a]")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseCommentIllegalChar(t *testing.T) {
	_, err := ParseString("# illegal \x01 char")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseTrailingGarbageAfterStatement(t *testing.T) {
	_, err := ParseString("a = 1 b = 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Expected newline or end of document after a statement") {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseOverwriteValueWithTableHeader(t *testing.T) {
	_, err := ParseString("a = 1\n[a.b]")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Can not overwrite a value") {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseDottedKeyThroughTableHeaderIntermediate(t *testing.T) {
	// The latest reference implementation forbids a later [fruit.physical]
	// header once "fruit.physical.color" has been assigned as a dotted key,
	// since the dotted-key assignment already marks "fruit.physical" as
	// explicitly created.
	_, err := ParseString("fruit.physical.color = \"red\"\n[fruit.physical]\n")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseArrayOfTablesFreshNamespacePerElement(t *testing.T) {
	got, err := ParseString("[[fruit]]\nname = \"apple\"\n[[fruit]]\nname = \"banana\"\n")
	if err != nil {
		t.Fatal(err)
	}
	fruitVal, _ := got.Get("fruit")
	fruit := fruitVal.(*Array)
	if fruit.Len() != 2 {
		t.Fatalf("got length %d, want 2", fruit.Len())
	}
	for i, want := range []string{"apple", "banana"} {
		name, _ := fruit.Index(i).(*Table).Get("name")
		if name.(string) != want {
			t.Errorf("element %d: got %v, want %v", i, name, want)
		}
	}
}
