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
	"strconv"

	"github.com/salikh-student/plist/internal/charclass"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/perr"
)

// translateEscape maps one escaped byte to its translated value, per the
// table \ / " -> literal, b/t/f/n/r -> control char. Any other escaped
// byte passes through unchanged.
func translateEscape(b byte) byte {
	switch b {
	case '\\', '/', '"':
		return b
	case 'b':
		return 0x08
	case 't':
		return 0x09
	case 'f':
		return 0x0c
	case 'n':
		return 0x0a
	case 'r':
		return 0x0d
	default:
		return b
	}
}

func (p *Parser) stepString(b byte) error {
	if p.escapeActive {
		p.buf.WriteByte(translateEscape(b))
		p.escapeActive = false
		return nil
	}
	if b == '\\' {
		p.escapeActive = true
		return nil
	}
	if b == '"' {
		s := p.buf.String()
		p.buf.Reset()
		p.state = stateScan
		return p.attach(node.NewString(s))
	}
	p.buf.WriteByte(b)
	return nil
}

// stepNumber processes one byte of an Integer token. redo reports that b
// was not consumed and belongs to whatever comes next (the number ended).
func (p *Parser) stepNumber(b byte) (redo bool, err error) {
	if charclass.IsDigit(b) {
		p.buf.WriteByte(b)
		return false, nil
	}
	if b == '.' || b == 'e' || b == 'E' {
		p.state = stateDouble
		p.buf.WriteByte(b)
		return false, nil
	}
	if err := p.completeInteger(); err != nil {
		return false, err
	}
	p.state = stateScan
	return true, nil
}

// stepDouble processes one byte of a Real token, already promoted from
// Number by a '.', 'e' or 'E'.
func (p *Parser) stepDouble(b byte) (redo bool, err error) {
	if charclass.IsDigit(b) || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-' {
		p.buf.WriteByte(b)
		return false, nil
	}
	if err := p.completeReal(); err != nil {
		return false, err
	}
	p.state = stateScan
	return true, nil
}

func (p *Parser) completeInteger() error {
	v, err := strconv.ParseInt(p.buf.String(), 0, 64)
	if err != nil {
		return p.fail(perr.New(perr.Invalid, "bad integer %q: %s", p.buf.String(), err))
	}
	p.buf.Reset()
	return p.attach(node.NewInteger(v))
}

func (p *Parser) completeReal() error {
	v, err := strconv.ParseFloat(p.buf.String(), 64)
	if err != nil {
		return p.fail(perr.New(perr.Invalid, "bad real %q: %s", p.buf.String(), err))
	}
	p.buf.Reset()
	return p.attach(node.NewReal(v))
}

// stepLiteral processes one byte of a "true" or "false" token. The
// literals are fixed, so any mismatch is unambiguously invalid input,
// unlike number termination which may redispatch the byte.
func (p *Parser) stepLiteral(b byte) error {
	if !charclass.EqualFold1(b, p.litTarget[p.litPos]) {
		return p.fail(perr.New(perr.Invalid, "malformed %s literal", p.litTarget))
	}
	p.litPos++
	if p.litPos < len(p.litTarget) {
		return nil
	}
	v := p.litValue
	p.state = stateScan
	return p.attach(node.NewBoolean(v))
}
