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

// flag is a per-key-path annotation. flagExplicitNest marks a path that
// was opened by a [table]/[[array]] header or referenced by a dotted
// key, and so may not be re-opened by a later header; flagFrozen marks
// a path (and everything under it) as immutable, applied to inline
// tables/arrays once constructed.
type flag uint8

const (
	flagExplicitNest flag = 1 << iota
	flagFrozen
)

// flagsNode is one node of the flags trie: a local flag set (applies
// only to this exact path) and a recursive flag set (applies to this
// path and everything under it).
type flagsNode struct {
	children  map[string]*flagsNode
	local     flag
	recursive flag
}

func newFlagsNode() *flagsNode {
	return &flagsNode{children: make(map[string]*flagsNode)}
}

// flagsTrie tracks the EXPLICIT_NEST/FROZEN annotations for every key
// path seen so far, keyed by the same string segments as nestedDict's
// paths. Keeping it as a trie rather than a flat set of paths means
// is() and unsetAll() work in time proportional to the path length or
// subtree size, not a linear scan of every annotated path.
type flagsTrie struct {
	root *flagsNode
}

func newFlagsTrie() *flagsTrie {
	return &flagsTrie{root: newFlagsNode()}
}

func (t *flagsTrie) nodeAt(path []string, create bool) *flagsNode {
	n := t.root
	for _, key := range path {
		child, ok := n.children[key]
		if !ok {
			if !create {
				return nil
			}
			child = newFlagsNode()
			n.children[key] = child
		}
		n = child
	}
	return n
}

// set sets flag at path, either locally (recursive=false) or
// recursively (recursive=true).
func (t *flagsTrie) set(path []string, f flag, recursive bool) {
	n := t.nodeAt(path, true)
	if recursive {
		n.recursive |= f
	} else {
		n.local |= f
	}
}

// unsetAll clears every flag at and under path, in O(subtree size),
// by dropping the subtree entirely. This is used when a new
// [[array-of-tables]] element opens: the element is a fresh namespace
// and must not inherit flags left over from a prior element at the same
// path.
func (t *flagsTrie) unsetAll(path []string) {
	if len(path) == 0 {
		t.root = newFlagsNode()
		return
	}
	parent := t.nodeAt(path[:len(path)-1], true)
	delete(parent.children, path[len(path)-1])
}

// setForRelativeKey sets flag at every prefix of head+rel that is
// strictly longer than head, i.e. every intermediate and final segment
// of rel as appended to head. A dotted key such as a.b.c marks a, a.b,
// and a.b.c all EXPLICIT_NEST, so a later [a.b] header is rejected the
// same way a second "a.b = ..." assignment would be.
func (t *flagsTrie) setForRelativeKey(head, rel []string, f flag) {
	full := make([]string, 0, len(head)+len(rel))
	full = append(full, head...)
	full = append(full, rel...)
	for i := len(head) + 1; i <= len(full); i++ {
		t.set(full[:i], f, false)
	}
}

// is reports whether path carries flag, either because path itself
// carries it (locally or recursively) or because any ancestor of path
// carries it recursively.
func (t *flagsTrie) is(path []string, f flag) bool {
	n := t.root
	if n.recursive&f != 0 {
		return true
	}
	for i, key := range path {
		child, ok := n.children[key]
		if !ok {
			return false
		}
		n = child
		if n.recursive&f != 0 {
			return true
		}
		if i == len(path)-1 && n.local&f != 0 {
			return true
		}
	}
	return false
}

// frozenAncestor reports the shortest proper prefix of path that
// carries a recursive FROZEN flag, if any, distinguishing "path
// descends into a namespace some ancestor froze" from "path itself was
// already declared or frozen" -- the two callers of this need
// different messages for.
func (t *flagsTrie) frozenAncestor(path []string) ([]string, bool) {
	n := t.root
	if n.recursive&flagFrozen != 0 {
		return nil, true
	}
	for i, key := range path {
		if i == len(path)-1 {
			break
		}
		child, ok := n.children[key]
		if !ok {
			return nil, false
		}
		n = child
		if n.recursive&flagFrozen != 0 {
			return path[:i+1], true
		}
	}
	return nil, false
}
