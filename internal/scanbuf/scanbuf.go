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

// Package scanbuf implements the parser's scanner buffer: an append-only
// byte accumulator used to stitch together a token whose bytes straddle
// two or more feed() chunks.
package scanbuf

// minGrow is the smallest number of bytes Grow ever adds, even when n is
// smaller; it keeps single-byte appends from reallocating on every call.
const minGrow = 32

// Buffer is a growable byte accumulator. The zero value is ready to use.
type Buffer struct {
	buf []byte
}

// Reset empties the buffer without releasing its backing array, so the
// next token reuses the capacity built up by the previous one.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Grow ensures there is room for at least n more bytes without a further
// allocation, growing geometrically (doubling capacity, with a minGrow
// byte floor) rather than exactly to fit.
func (b *Buffer) Grow(n int) {
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	need := len(b.buf) + n
	newCap := cap(b.buf) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < len(b.buf)+minGrow {
		newCap = len(b.buf) + minGrow
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// WriteByte appends c, growing the buffer if needed.
func (b *Buffer) WriteByte(c byte) {
	b.Grow(1)
	b.buf = append(b.buf, c)
}

// Write appends p, growing the buffer if needed.
func (b *Buffer) Write(p []byte) {
	b.Grow(len(p))
	b.buf = append(b.buf, p...)
}

// Bytes returns the buffer's current contents. The slice is only valid
// until the next Reset, Grow, WriteByte or Write call.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes currently accumulated.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// String returns a copy of the buffer's contents as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}
