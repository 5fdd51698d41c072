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

// copyFrame is one level of the "copy frontier": the source container
// currently being descended, the destination container being built to
// mirror it, and the index of the next source child to process. Copy
// drives a stack of these instead of recursing, so arbitrarily deep
// trees don't grow the Go call stack.
type copyFrame struct {
	src *Node
	dst *Node
	idx int
}

// Copy returns a fully disjoint subtree structurally equal to src. The
// traversal is an iterative pre-order descent (see copyFrame) rather
// than recursive, per the no-recursion requirement on whole-tree walks.
func Copy(src *Node) (*Node, error) {
	if src == nil {
		return nil, perr.New(perr.InvalidArgument, "nil src")
	}
	if src.kind == Key {
		// A standalone Key (as passed to Update for a single contributed
		// entry) is copied by copying its value and rewrapping; the
		// recursive call here is one level deep, the value's own subtree
		// is still copied iteratively inside it.
		v, err := Copy(src.value)
		if err != nil {
			return nil, err
		}
		return newKey(src.name, v), nil
	}
	dst := shallowCopy(src)
	if src.kind != Dict && src.kind != Array {
		return dst, nil
	}
	stack := []*copyFrame{{src: src, dst: dst}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx >= len(top.src.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		srcChild := top.src.children[top.idx]
		top.idx++
		switch top.src.kind {
		case Dict:
			srcVal := srcChild.value
			valCopy := shallowCopy(srcVal)
			k := newKey(srcChild.name, valCopy)
			k.parent = top.dst
			top.dst.children = append(top.dst.children, k)
			top.dst.index[srcChild.name] = k
			if srcVal.kind == Dict || srcVal.kind == Array {
				stack = append(stack, &copyFrame{src: srcVal, dst: valCopy})
			}
		case Array:
			valCopy := shallowCopy(srcChild)
			valCopy.parent = top.dst
			top.dst.children = append(top.dst.children, valCopy)
			if srcChild.kind == Dict || srcChild.kind == Array {
				stack = append(stack, &copyFrame{src: srcChild, dst: valCopy})
			}
		}
	}
	return dst, nil
}

// shallowCopy copies just the payload of n, producing an empty container
// for Dict/Array or a fully-populated leaf for the scalar kinds. It never
// descends into children; Copy's frame stack does that.
func shallowCopy(n *Node) *Node {
	switch n.kind {
	case Dict:
		return NewDict()
	case Array:
		return NewArray()
	case Data:
		return NewData(n.data)
	case DateKind:
		return NewDate(n.date)
	case String:
		return NewString(n.str)
	case Integer:
		return NewInteger(n.integer)
	case Real:
		return NewReal(n.real)
	case Boolean:
		return NewBoolean(n.boolean)
	default:
		return &Node{kind: n.kind}
	}
}
