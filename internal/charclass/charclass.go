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

// Package charclass provides the fixed byte classification predicates the
// parser's dispatch table needs. Unlike a general regex char-class
// engine, the ASCII plist grammar never takes user-configurable classes,
// so this is a small set of named predicates rather than a parser for
// bracket expressions.
package charclass

// IsBlank reports whether b is an ASCII blank (space or tab) the
// scanner should skip between tokens. Newlines count as blanks too, per
// the grammar.
func IsBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is an ASCII hex digit, either case.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexVal returns the value of a hex digit byte; callers must have
// already checked IsHexDigit(b).
func HexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// IsNumberStart reports whether b can start a number token (a leading
// minus sign or a digit).
func IsNumberStart(b byte) bool {
	return b == '-' || IsDigit(b)
}

// EqualFold1 reports whether the ASCII letter b matches c
// case-insensitively, where c is already lowercase. Used by the
// True/False continuation states.
func EqualFold1(b, c byte) bool {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return b == c
}
