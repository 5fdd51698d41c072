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

import "fmt"

// NewDict returns a fresh, empty, parentless Dict node.
func NewDict() *Node {
	return &Node{kind: Dict, index: make(map[string]*Node)}
}

// NewArray returns a fresh, empty, parentless Array node.
func NewArray() *Node {
	return &Node{kind: Array}
}

// NewData returns a fresh Data node, copying b.
func NewData(b []byte) *Node {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Node{kind: Data, data: cp}
}

// NewDate returns a fresh Date node, copying d.
func NewDate(d Date) *Node {
	return &Node{kind: DateKind, date: d}
}

// NewString returns a fresh String node, copying s.
func NewString(s string) *Node {
	return &Node{kind: String, str: s}
}

// NewStringf is equivalent to NewString(fmt.Sprintf(format, args...)).
func NewStringf(format string, args ...interface{}) *Node {
	return NewString(fmt.Sprintf(format, args...))
}

// NewInteger returns a fresh Integer node.
func NewInteger(v int64) *Node {
	return &Node{kind: Integer, integer: v}
}

// NewReal returns a fresh Real node.
func NewReal(v float64) *Node {
	return &Node{kind: Real, real: v}
}

// NewBoolean returns a fresh Boolean node.
func NewBoolean(v bool) *Node {
	return &Node{kind: Boolean, boolean: v}
}

// newKey returns a fresh Key node owning name and adopting value. value
// must not already have a parent; the caller (dict mutation in ops.go) is
// responsible for that check.
func newKey(name string, value *Node) *Node {
	k := &Node{kind: Key, name: name}
	k.value = value
	value.parent = k
	return k
}
