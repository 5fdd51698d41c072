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

// Iterator yields the children of a Dict or Array in insertion order,
// exactly once. Modifying the container while an Iterator over it is in
// use invalidates the iterator: the library does not detect this.
type Iterator struct {
	children []*Node
	pos      int
}

// NewIterator returns an Iterator over n's children. n must be a Dict or
// Array; any other kind yields an iterator with zero elements.
func NewIterator(n *Node) *Iterator {
	if n == nil || (n.kind != Dict && n.kind != Array) {
		return &Iterator{}
	}
	return &Iterator{children: n.children}
}

// Next returns the next child and true, or nil and false once exhausted.
func (it *Iterator) Next() (*Node, bool) {
	if it.pos >= len(it.children) {
		return nil, false
	}
	c := it.children[it.pos]
	it.pos++
	return c, true
}

// Walk performs an iterative pre-order traversal of the subtree rooted
// at n, calling fn on every node including n itself. It stops and
// returns the first error fn returns. The traversal uses an explicit
// stack rather than recursion so it is safe on arbitrarily deep trees.
func Walk(n *Node, fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(cur); err != nil {
			return err
		}
		switch cur.kind {
		case Dict, Array:
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack = append(stack, cur.children[i])
			}
		case Key:
			if cur.value != nil {
				stack = append(stack, cur.value)
			}
		}
	}
	return nil
}
