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
	"time"

	"github.com/salikh-student/plist/internal/charclass"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/perr"
)

// dateLayout matches the "YYYY-MM-DD HH:MM:SS <tz>" date body using
// Go's reference-time layout syntax; "-0700" accepts the "+0000"-style
// explicit offset the grammar requires.
const dateLayout = "2006-01-02 15:04:05 -0700"

// stepAfterLT processes the byte right after '<', deciding between Data
// and the "<*D...>" Date prefix. redo reports that b is the first hex
// digit of a Data token and must be redispatched in stateData.
func (p *Parser) stepAfterLT(b byte) (redo bool, err error) {
	if charclass.IsBlank(b) {
		return false, nil
	}
	if b == '*' {
		p.state = stateAfterLTStar
		return false, nil
	}
	if b == '>' {
		// Empty data, "<>".
		p.state = stateScan
		return false, p.attach(node.NewData(nil))
	}
	if charclass.IsHexDigit(b) {
		p.state = stateData
		return true, nil
	}
	return false, p.fail(perr.New(perr.Invalid, "malformed data or date, unexpected byte %q", b))
}

func (p *Parser) stepAfterLTStar(b byte) error {
	if b != 'D' {
		return p.fail(perr.New(perr.Invalid, "malformed date prefix, expected 'D', got %q", b))
	}
	p.state = stateDate
	p.buf.Reset()
	return nil
}

func (p *Parser) stepData(b byte) error {
	if b == '>' {
		data, err := decodeHex(p.buf.String())
		if err != nil {
			return p.fail(perr.New(perr.Invalid, "malformed data: %s", err))
		}
		p.buf.Reset()
		p.state = stateScan
		return p.attach(node.NewData(data))
	}
	if charclass.IsBlank(b) {
		return nil
	}
	if !charclass.IsHexDigit(b) {
		return p.fail(perr.New(perr.Invalid, "non-hex byte %q in data", b))
	}
	p.buf.WriteByte(b)
	return nil
}

// decodeHex decodes a string of hex digit characters (whitespace already
// stripped by the caller) into bytes. An odd nibble count is rejected;
// the original implementation's datacnt/2 + datacnt%2 length formula
// left it ambiguous whether a trailing nibble was intentional, and this
// reimplementation takes the stricter reading.
func decodeHex(digits string) ([]byte, error) {
	if len(digits)%2 != 0 {
		return nil, perr.New(perr.Invalid, "odd number of hex digits (%d)", len(digits))
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		hi := charclass.HexVal(digits[2*i])
		lo := charclass.HexVal(digits[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func (p *Parser) stepDate(b byte) error {
	if b == '>' {
		d, err := parseDateBody(p.buf.String())
		if err != nil {
			return p.fail(perr.New(perr.Invalid, "malformed date: %s", err))
		}
		p.buf.Reset()
		p.state = stateScan
		return p.attach(node.NewDate(d))
	}
	p.buf.WriteByte(b)
	return nil
}

// parseDateBody parses the "YYYY-MM-DD HH:MM:SS <tz>" text between
// "<*D" and ">". Any unparsed trailing character makes time.Parse itself
// fail, which satisfies the grammar's requirement that trailing garbage
// inside the Date body is an error.
func parseDateBody(s string) (node.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return node.Date{}, err
	}
	_, offset := t.Zone()
	return node.Date{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		TZOffsetSec: offset,
	}, nil
}
