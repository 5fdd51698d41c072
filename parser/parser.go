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

// Package parser implements a resumable, single-threaded text parser for
// the NeXT/OpenStep ASCII property list grammar, extended with booleans,
// integers, reals and dates. The parser consumes the input as an
// arbitrary sequence of byte chunks (Feed), with token boundaries
// potentially falling inside any token, and produces a *node.Node tree
// (Result).
package parser

import (
	log "github.com/golang/glog"

	"github.com/salikh-student/plist/internal/charclass"
	"github.com/salikh-student/plist/internal/scanbuf"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/perr"
)

// state is the parser's current scanning mode. Scan is the only state
// that dispatches on the grammar; the rest are mid-token continuations
// that resume across a chunk boundary.
type state int

const (
	stateScan state = iota
	stateAfterLT
	stateAfterLTStar
	stateString
	stateNumber
	stateDouble
	stateData
	stateDate
	stateTrue
	stateFalse
	stateDone
	stateError
)

// frameKind discriminates the three shapes an open container on the
// parser's frame stack can have.
type frameKind int

const (
	frameDict frameKind = iota
	frameArray
	frameKey
)

// frame is one entry of the parser's stack of open containers (the
// "frontier" the grammar is currently descending into). A frameKey entry
// doesn't own a *node.Node of its own: it records the enclosing dict and
// the key name, and the Key is only created and attached to dict (by
// node.Set) once the entry's value has been completed.
type frame struct {
	kind frameKind
	node *node.Node // the Dict or Array node, for frameDict/frameArray
	dict *node.Node // the enclosing Dict, for frameKey
	name string     // the key name, for frameKey
}

// Parser is a resumable ASCII plist parser. New returns one ready to
// Feed; the zero value is in the same initial Scan state.
type Parser struct {
	state   state
	frames  []frame
	root    *node.Node
	hasRoot bool
	err     error

	buf scanbuf.Buffer

	// stateString
	escapeActive bool

	// stateTrue / stateFalse
	litTarget string
	litPos    int
	litValue  bool
}

// New returns a fresh parser, ready to Feed.
func New() *Parser {
	return &Parser{state: stateScan}
}

// fail transitions the parser into the sticky Error state and returns
// err. All further Feed calls until Result return err (or an equivalent
// Error-state error) without touching the input.
func (p *Parser) fail(err error) error {
	p.state = stateError
	p.err = err
	return err
}

// Feed advances the parser by the bytes in chunk. An empty chunk is
// always a no-op that returns nil, even if the parser is already
// sticky-failed. A chunk that ends mid-token advances internal state and
// returns nil; the next Feed call resumes exactly where this one left
// off.
func (p *Parser) Feed(chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	if p.state == stateError {
		return p.err
	}
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
	redispatch:
		switch p.state {
		case stateScan:
			if err := p.scan(b); err != nil {
				return err
			}
		case stateDone:
			if charclass.IsBlank(b) {
				continue
			}
			return p.fail(perr.New(perr.Invalid, "unexpected byte %q after parse completed", b))
		case stateString:
			if err := p.stepString(b); err != nil {
				return err
			}
		case stateNumber:
			redo, err := p.stepNumber(b)
			if err != nil {
				return err
			}
			if redo {
				goto redispatch
			}
		case stateDouble:
			redo, err := p.stepDouble(b)
			if err != nil {
				return err
			}
			if redo {
				goto redispatch
			}
		case stateTrue, stateFalse:
			if err := p.stepLiteral(b); err != nil {
				return err
			}
		case stateAfterLT:
			redo, err := p.stepAfterLT(b)
			if err != nil {
				return err
			}
			if redo {
				goto redispatch
			}
		case stateAfterLTStar:
			if err := p.stepAfterLTStar(b); err != nil {
				return err
			}
		case stateData:
			if err := p.stepData(b); err != nil {
				return err
			}
		case stateDate:
			if err := p.stepDate(b); err != nil {
				return err
			}
		default:
			return p.fail(perr.New(perr.Invalid, "parser in unknown state %d", p.state))
		}
	}
	return nil
}

// Result extracts the root of a completed parse. A number at the top
// level has no closing token, so one still pending here is completed
// first. If the parser has then reached Done, it returns the owned root
// and resets the parser to Scan so it can be reused for another
// document. Otherwise any partially-built tree is released and
// perr.NotFound is returned.
func (p *Parser) Result() (*node.Node, error) {
	if len(p.frames) == 0 {
		switch p.state {
		case stateNumber:
			p.completeInteger()
		case stateDouble:
			p.completeReal()
		}
	}
	if p.state != stateDone {
		p.releasePartial()
		p.reset()
		return nil, perr.New(perr.NotFound, "parser has not completed a value")
	}
	root := p.root
	log.V(2).Infof("parser: result ready, root kind %s", root.Kind())
	p.reset()
	return root, nil
}

// Free abandons the parser, releasing any partially- or fully-built tree
// it still owns and resetting it to a fresh Scan state.
func (p *Parser) Free() {
	p.releasePartial()
	p.reset()
}

func (p *Parser) releasePartial() {
	if len(p.frames) > 0 {
		node.Free(p.frames[0].node)
		return
	}
	if p.root != nil {
		node.Free(p.root)
	}
}

func (p *Parser) reset() {
	p.state = stateScan
	p.frames = nil
	p.root = nil
	p.hasRoot = false
	p.err = nil
	p.buf.Reset()
	p.escapeActive = false
	p.litTarget = ""
	p.litPos = 0
}
