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

import "errors"

// errNoNest is returned internally by nestedDict when a key path cannot
// be descended into a Table, for the statement rules to catch and
// re-wrap with a document position.
var errNoNest = errors.New("no nest behind this key")

// nestedDict is the growing document tree plus the two operations a
// statement rule needs: descend-or-create along a key path, and append
// a new table to the array found at a key path. It owns no flags of
// its own -- EXPLICIT_NEST/FROZEN annotations are tracked separately by
// flagsTrie, keeping the tree and its annotations as two independent
// structures.
type nestedDict struct {
	root *Table
}

func newNestedDict() *nestedDict {
	return &nestedDict{root: NewTable()}
}

// getOrCreateNest descends path, creating an empty Table at any missing
// segment. When a segment holds an *Array, it descends into the array's
// last element iff accessLists is true. It fails with errNoNest when a
// segment holds a value that is neither a Table nor an allowed Array.
func (n *nestedDict) getOrCreateNest(path []string, accessLists bool) (*Table, error) {
	container := n.root
	for _, key := range path {
		v, ok := container.Get(key)
		if !ok {
			t := NewTable()
			container.Set(key, t)
			v = t
		}
		switch vv := v.(type) {
		case *Table:
			container = vv
		case *Array:
			if !accessLists {
				return nil, errNoNest
			}
			last, ok := vv.Last().(*Table)
			if !ok {
				return nil, errNoNest
			}
			container = last
		default:
			return nil, errNoNest
		}
	}
	return container, nil
}

// appendNestToList descends path[:len(path)-1], then appends a new empty
// Table to the *Array found at path[len(path)-1], creating a one-element
// array there if the key is absent. It fails if an existing value at
// path[len(path)-1] is not an *Array.
func (n *nestedDict) appendNestToList(path []string) (*Table, error) {
	parent, err := n.getOrCreateNest(path[:len(path)-1], true)
	if err != nil {
		return nil, err
	}
	lastKey := path[len(path)-1]
	nest := NewTable()
	if v, ok := parent.Get(lastKey); ok {
		arr, ok := v.(*Array)
		if !ok {
			return nil, errNoNest
		}
		arr.Append(nest)
	} else {
		arr := NewArray()
		arr.Append(nest)
		parent.Set(lastKey, arr)
	}
	return nest, nil
}
