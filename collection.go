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

// parseArray parses a bracketed, comma-separated sequence of values. A
// trailing comma is allowed, and comments and newlines may appear
// freely between items.
func (p *parser) parseArray() (Value, error) {
	p.pos++ // consume '['
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return nil, p.errorf("Array nested too deeply")
	}

	arr := NewArray()
	if err := p.skipCommentsAndArrayWS(); err != nil {
		return nil, err
	}
	if p.done() {
		return nil, p.errorf("Unclosed array found")
	}
	if p.char() == ']' {
		p.pos++
		return arr, nil
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}
		if p.done() {
			return nil, p.errorf("Unclosed array found")
		}
		switch p.char() {
		case ']':
			p.pos++
			return arr, nil
		case ',':
			p.pos++
		default:
			return nil, p.errorf(`Found %s after an array item. Expected "," or "]"`, charRepr(p.char()))
		}

		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}
		if p.done() {
			return nil, p.errorf("Unclosed array found")
		}
		if p.char() == ']' {
			p.pos++
			return arr, nil
		}
	}
}

// skipCommentsAndArrayWS skips whitespace, newlines, and comments in any
// interleaving, stopping the moment neither advances the cursor.
func (p *parser) skipCommentsAndArrayWS() error {
	for {
		before := p.pos
		p.skipChars(arrayWS)
		if !p.done() && p.char() == '#' {
			if err := p.parseComment(); err != nil {
				return err
			}
		}
		if p.pos == before {
			return nil
		}
	}
}

// parseInlineTable parses a single-line, frozen-on-construction table.
// It builds over its own local nestedDict and flagsTrie so that dotted
// keys inside the braces are scoped to the inline table rather than
// leaking into the enclosing document's flags.
func (p *parser) parseInlineTable() (Value, error) {
	p.pos++ // consume '{'
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return nil, p.errorf("Inline table nested too deeply")
	}

	nested := newNestedDict()
	localFlags := newFlagsTrie()

	p.skipChars(tomlWS)
	if p.done() {
		return nil, p.errorf("Unclosed inline table found")
	}
	if p.char() == '}' {
		p.pos++
		return nested.root, nil
	}

	for {
		pairStart := p.pos
		keyPath, value, err := p.parseKeyValuePair()
		if err != nil {
			return nil, err
		}
		parentPath := keyPath[:len(keyPath)-1]
		keyStem := keyPath[len(keyPath)-1]

		if localFlags.is(parentPath, flagFrozen) {
			return nil, newDecodeErrorf(p.src, pairStart, "Can not mutate immutable namespace %s", pathString(parentPath))
		}
		localFlags.setForRelativeKey(nil, keyPath, flagExplicitNest)

		nest, err := nested.getOrCreateNest(parentPath, false)
		if err != nil {
			return nil, newDecodeErrorf(p.src, pairStart, "Can not overwrite a value")
		}
		if nest.Has(keyStem) {
			return nil, newDecodeErrorf(p.src, pairStart, "Can not define %s twice", pathString(keyPath))
		}
		if isCollection(value) {
			localFlags.set(keyPath, flagFrozen, true)
		}
		nest.Set(keyStem, value)

		p.skipChars(tomlWS)
		if p.done() {
			return nil, p.errorf("Unclosed inline table found")
		}
		switch p.char() {
		case '}':
			p.pos++
			return nested.root, nil
		case ',':
			p.pos++
			p.skipChars(tomlWS)
		default:
			return nil, p.errorf(`Found %s after an inline table key value pair. Expected "," or "}"`, charRepr(p.char()))
		}
	}
}
