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

package parser

import (
	"github.com/salikh-student/plist/internal/charclass"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/perr"
)

// scan dispatches a single byte in the between-tokens state, per the
// grammar's first-character table.
func (p *Parser) scan(b byte) error {
	if charclass.IsBlank(b) {
		return nil
	}
	switch {
	case b == '{':
		p.frames = append(p.frames, frame{kind: frameDict, node: node.NewDict()})
		return nil
	case b == '}':
		return p.closeDict()
	case b == '(':
		p.frames = append(p.frames, frame{kind: frameArray, node: node.NewArray()})
		return nil
	case b == ')':
		return p.closeArray()
	case b == ',':
		if !p.topIs(frameArray) {
			return p.fail(perr.New(perr.Invalid, "',' outside of an array"))
		}
		return nil
	case b == ':':
		if !p.topIs(frameKey) {
			return p.fail(perr.New(perr.Invalid, "':' outside of a dict entry"))
		}
		return nil
	case b == ';':
		if !p.topIs(frameKey) {
			return p.fail(perr.New(perr.Invalid, "';' outside of a dict entry"))
		}
		p.frames = p.frames[:len(p.frames)-1]
		return nil
	case b == '<':
		p.state = stateAfterLT
		p.buf.Reset()
		return nil
	case b == '"':
		p.state = stateString
		p.escapeActive = false
		p.buf.Reset()
		return nil
	case charclass.IsNumberStart(b):
		p.state = stateNumber
		p.buf.Reset()
		p.buf.WriteByte(b)
		return nil
	case b == 't' || b == 'T':
		p.state = stateTrue
		p.litTarget = "true"
		p.litPos = 1
		p.litValue = true
		return nil
	case b == 'f' || b == 'F':
		p.state = stateFalse
		p.litTarget = "false"
		p.litPos = 1
		p.litValue = false
		return nil
	default:
		return p.fail(perr.New(perr.Invalid, "unexpected byte %q", b))
	}
}

// topIs reports whether the innermost open frame has kind k.
func (p *Parser) topIs(k frameKind) bool {
	if len(p.frames) == 0 {
		return false
	}
	return p.frames[len(p.frames)-1].kind == k
}

// closeDict handles '}': it first auto-pops a dangling Key whose value
// was just completed, then pops and attaches the Dict itself.
func (p *Parser) closeDict() error {
	if len(p.frames) == 0 {
		return p.fail(perr.New(perr.Invalid, "unmatched '}'"))
	}
	if p.topIs(frameKey) {
		p.frames = p.frames[:len(p.frames)-1]
	}
	if !p.topIs(frameDict) {
		return p.fail(perr.New(perr.Invalid, "'}' does not match an open dict"))
	}
	top := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	p.state = stateScan
	return p.attach(top.node)
}

// closeArray handles ')'.
func (p *Parser) closeArray() error {
	if !p.topIs(frameArray) {
		return p.fail(perr.New(perr.Invalid, "unmatched ')'"))
	}
	top := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	p.state = stateScan
	return p.attach(top.node)
}

// attach is the single place a freshly completed value (a scalar, or a
// container just closed) is wired into the tree, based on what's
// currently the innermost open frame.
func (p *Parser) attach(v *node.Node) error {
	if len(p.frames) == 0 {
		if p.hasRoot {
			return p.fail(perr.New(perr.Invalid, "more than one root value"))
		}
		p.root = v
		p.hasRoot = true
		p.state = stateDone
		return nil
	}
	top := &p.frames[len(p.frames)-1]
	switch top.kind {
	case frameArray:
		if err := node.Append(top.node, v); err != nil {
			return p.fail(err)
		}
		return nil
	case frameDict:
		if v.Kind() != node.String {
			return p.fail(perr.New(perr.Invalid, "dict key must be a string, got %s", v.Kind()))
		}
		name := v.Str()
		if node.Has(top.node, name) {
			return p.fail(perr.New(perr.Invalid, "duplicate dict key %q", name))
		}
		p.frames = append(p.frames, frame{kind: frameKey, dict: top.node, name: name})
		return nil
	case frameKey:
		if err := node.Set(top.dict, top.name, v); err != nil {
			return p.fail(err)
		}
		return nil
	default:
		return p.fail(perr.New(perr.Invalid, "corrupt parser frame stack"))
	}
}
