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

// Date is a broken-down calendar time, as carried by a Date node. Month
// and Day are 1-based. TZOffsetSec is the timezone offset east of UTC,
// in seconds, matching the "+HHMM" style suffix of the ASCII plist
// date grammar.
type Date struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	TZOffsetSec int
}

// Node is a tagged-union tree node. Exactly one set of payload fields is
// meaningful, selected by Kind. Non-root nodes always have a Parent; the
// tree operations in ops.go, copy.go and free.go are the only supported
// way to mutate the shape of the tree.
type Node struct {
	kind   Kind
	parent *Node

	// Dict / Array: children in insertion order. For Dict, every entry
	// is a Key node.
	children []*Node
	// Dict only: name -> Key node, kept in sync with children for O(1)
	// has/set/pop.
	index map[string]*Node

	// Key only.
	name  string
	value *Node

	// Data only.
	data []byte

	// DateKind only.
	date Date

	// String only.
	str string

	// Integer only.
	integer int64

	// Real only.
	real float64

	// Boolean only.
	boolean bool
}

// Kind returns the node's discriminator.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Len returns the number of children of a Dict or Array node. It is 0,
// not an error, for any other kind.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case Dict, Array:
		return len(n.children)
	default:
		return 0
	}
}

// At returns the i'th child of a Dict or Array in insertion order. For a
// Dict, this is a Key node; use At(i).Name() and At(i).Value(). Panics if
// i is out of [0, Len()) — callers iterating with Len()/At() never go
// out of bounds; this mirrors slice indexing semantics rather than the
// fallible perr taxonomy, which is reserved for the named operations in
// ops.go.
func (n *Node) At(i int) *Node {
	return n.children[i]
}

// Name returns a Key node's key string.
func (n *Node) Name() string { return n.name }

// Value returns a Key node's value.
func (n *Node) Value() *Node { return n.value }

// Bytes returns a Data node's byte payload. The returned slice must not
// be mutated by the caller.
func (n *Node) Bytes() []byte { return n.data }

// DateValue returns a Date node's broken-down time.
func (n *Node) DateValue() Date { return n.date }

// Str returns a String node's unescaped UTF-8 text.
func (n *Node) Str() string { return n.str }

// Int returns an Integer node's value.
func (n *Node) Int() int64 { return n.integer }

// Float returns a Real node's value.
func (n *Node) Float() float64 { return n.real }

// Bool returns a Boolean node's value.
func (n *Node) Bool() bool { return n.boolean }

// String renders a short debugging form of n, not the full dump. Use
// package dump for the format described in the pretty-printer contract.
func (n *Node) String() string {
	switch n.kind {
	case Dict:
		return fmt.Sprintf("dict[%d]", len(n.children))
	case Key:
		return fmt.Sprintf("key(%q)", n.name)
	case Array:
		return fmt.Sprintf("array[%d]", len(n.children))
	case Data:
		return fmt.Sprintf("data[%d]", len(n.data))
	case DateKind:
		return fmt.Sprintf("date(%04d-%02d-%02d)", n.date.Year, n.date.Month, n.date.Day)
	case String:
		return fmt.Sprintf("string(%q)", n.str)
	case Integer:
		return fmt.Sprintf("integer(%d)", n.integer)
	case Real:
		return fmt.Sprintf("real(%g)", n.real)
	case Boolean:
		return fmt.Sprintf("boolean(%t)", n.boolean)
	default:
		return "unknown"
	}
}
