// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package node

import "github.com/salikh-student/plist/perr"

// Set attaches value under name in dict, replacing and releasing any
// existing Key with that name. value must be parentless.
func Set(dict *Node, name string, value *Node) error {
	if dict == nil || value == nil {
		return perr.New(perr.InvalidArgument, "nil dict or value")
	}
	if dict.kind != Dict {
		return perr.New(perr.InvalidKind, "Set requires a Dict, got %s", dict.kind)
	}
	if value.parent != nil {
		return perr.New(perr.AlreadyAttached, "value already attached to a %s", value.parent.kind)
	}
	if old, ok := dict.index[name]; ok {
		removeDictChild(dict, old)
		Free(old)
	}
	k := newKey(name, value)
	k.parent = dict
	dict.children = append(dict.children, k)
	dict.index[name] = k
	return nil
}

// Has reports whether dict contains a Key named name.
func Has(dict *Node, name string) bool {
	if dict == nil || dict.kind != Dict {
		return false
	}
	_, ok := dict.index[name]
	return ok
}

// Pop detaches the Key named name from dict and returns its value,
// leaving the value parentless and owned by the caller. The Key wrapper
// itself is freed. Returns perr.NotFound if absent.
func Pop(dict *Node, name string) (*Node, error) {
	if dict == nil || dict.kind != Dict {
		return nil, perr.New(perr.InvalidKind, "Pop requires a Dict")
	}
	k, ok := dict.index[name]
	if !ok {
		return nil, perr.New(perr.NotFound, "no key %q", name)
	}
	removeDictChild(dict, k)
	v := k.value
	v.parent = nil
	k.value = nil
	return v, nil
}

// Del removes and fully releases the Key named name and its value.
// Returns perr.NotFound if absent.
func Del(dict *Node, name string) error {
	v, err := Pop(dict, name)
	if err != nil {
		return err
	}
	Free(v)
	return nil
}

// removeDictChild splices key out of dict's children slice and index
// map without freeing anything. key must currently be a child of dict.
func removeDictChild(dict *Node, key *Node) {
	for i, c := range dict.children {
		if c == key {
			dict.children = append(dict.children[:i], dict.children[i+1:]...)
			break
		}
	}
	delete(dict.index, key.name)
	key.parent = nil
}

// Update merges the Key(s) of other into dict. other may be a Dict, a
// single Key, or an Array whose elements are all Keys. Each contributed
// Key is deep-copied; any same-named existing Key in dict is released.
// The merge is transactional: on any error, dict is left completely
// unchanged.
func Update(dict *Node, other *Node) error {
	if dict == nil || other == nil {
		return perr.New(perr.InvalidArgument, "nil dict or other")
	}
	if dict.kind != Dict {
		return perr.New(perr.InvalidKind, "Update requires a Dict, got %s", dict.kind)
	}
	var keys []*Node
	switch other.kind {
	case Dict:
		keys = other.children
	case Key:
		keys = []*Node{other}
	case Array:
		for _, c := range other.children {
			if c.kind != Key {
				return perr.New(perr.InvalidKind, "Array elements passed to Update must all be Key, got %s", c.kind)
			}
		}
		keys = other.children
	default:
		return perr.New(perr.InvalidKind, "Update requires Dict, Key or Array-of-Key, got %s", other.kind)
	}
	// Stage copies first; only commit to dict once every copy succeeded,
	// so a failure partway through leaves dict observably unchanged.
	staged := make([]*Node, 0, len(keys))
	for _, k := range keys {
		cp, err := Copy(k)
		if err != nil {
			for _, s := range staged {
				Free(s)
			}
			return err
		}
		staged = append(staged, cp)
	}
	for _, k := range staged {
		if old, ok := dict.index[k.name]; ok {
			removeDictChild(dict, old)
			Free(old)
		}
		k.parent = dict
		dict.children = append(dict.children, k)
		dict.index[k.name] = k
	}
	return nil
}

// Append adds value as the new last element of array.
func Append(array *Node, value *Node) error {
	if array == nil || value == nil {
		return perr.New(perr.InvalidArgument, "nil array or value")
	}
	if array.kind != Array {
		return perr.New(perr.InvalidKind, "Append requires an Array, got %s", array.kind)
	}
	if value.parent != nil {
		return perr.New(perr.AlreadyAttached, "value already attached to a %s", value.parent.kind)
	}
	value.parent = array
	array.children = append(array.children, value)
	return nil
}

// Insert adds value at position loc in array, shifting later elements
// up by one. loc must be in [0, Len(array)]; loc == Len(array) behaves
// like Append.
func Insert(array *Node, loc int, value *Node) error {
	if array == nil || value == nil {
		return perr.New(perr.InvalidArgument, "nil array or value")
	}
	if array.kind != Array {
		return perr.New(perr.InvalidKind, "Insert requires an Array, got %s", array.kind)
	}
	if loc < 0 || loc > len(array.children) {
		return perr.New(perr.OutOfRange, "index %d out of [0, %d]", loc, len(array.children))
	}
	if value.parent != nil {
		return perr.New(perr.AlreadyAttached, "value already attached to a %s", value.parent.kind)
	}
	value.parent = array
	array.children = append(array.children, nil)
	copy(array.children[loc+1:], array.children[loc:])
	array.children[loc] = value
	return nil
}

// ArrayPop detaches and returns the element at loc, leaving it
// parentless. loc must be in [0, Len(array)); Len(array) itself is out
// of range for Pop, unlike Insert.
func ArrayPop(array *Node, loc int) (*Node, error) {
	if array == nil || array.kind != Array {
		return nil, perr.New(perr.InvalidKind, "ArrayPop requires an Array")
	}
	if loc < 0 || loc >= len(array.children) {
		return nil, perr.New(perr.OutOfRange, "index %d out of [0, %d)", loc, len(array.children))
	}
	v := array.children[loc]
	array.children = append(array.children[:loc], array.children[loc+1:]...)
	v.parent = nil
	return v, nil
}

// ArrayDel removes and fully releases the element at loc.
func ArrayDel(array *Node, loc int) error {
	v, err := ArrayPop(array, loc)
	if err != nil {
		return err
	}
	Free(v)
	return nil
}
