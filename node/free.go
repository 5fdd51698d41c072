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

// Free detaches n from its parent, updating the parent's children and
// (for a Dict) its name index; freeing a Dict entry's value removes that
// entry's Key from the Dict as well. It then releases n and the entire subtree
// rooted at it. The traversal is an explicit worklist, never recursive,
// so arbitrarily deep trees are safe to release.
func Free(n *Node) {
	if n == nil {
		return
	}
	detachFromParent(n)
	worklist := []*Node{n}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		switch cur.kind {
		case Dict, Array:
			worklist = append(worklist, cur.children...)
		case Key:
			if cur.value != nil {
				worklist = append(worklist, cur.value)
			}
		}
		cur.children = nil
		cur.index = nil
		cur.value = nil
		cur.data = nil
		cur.parent = nil
	}
}

// detachFromParent removes n from whichever container holds it, without
// touching n's own subtree.
func detachFromParent(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	switch p.kind {
	case Dict:
		removeDictChild(p, n)
	case Array:
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	case Key:
		if p.value == n {
			p.value = nil
		}
		n.parent = nil
		// A Key without a value has no place in a Dict: drop the entry.
		if p.parent != nil && p.parent.kind == Dict {
			removeDictChild(p.parent, p)
		}
	}
}
