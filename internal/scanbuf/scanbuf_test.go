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

package scanbuf

import "testing"

func TestWriteByteAndString(t *testing.T) {
	var b Buffer
	for _, c := range []byte("hello") {
		b.WriteByte(c)
	}
	if got := b.String(); got != "hello" {
		t.Fatalf("String() = %q, want hello", got)
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
}

func TestResetReusesCapacity(t *testing.T) {
	var b Buffer
	b.Write([]byte("abcdefgh"))
	cap1 := cap(b.Bytes())
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", b.Len())
	}
	b.Write([]byte("xy"))
	if cap(b.Bytes()) > cap1 {
		t.Fatalf("Reset released capacity: cap now %d, was %d", cap(b.Bytes()), cap1)
	}
}

func TestWrite(t *testing.T) {
	var b Buffer
	b.Write([]byte("ab"))
	b.Write([]byte("cd"))
	if got := b.String(); got != "abcd" {
		t.Fatalf("String() = %q, want abcd", got)
	}
}

func TestZeroValueReady(t *testing.T) {
	var b Buffer
	if b.Len() != 0 {
		t.Fatalf("zero value Len() = %d, want 0", b.Len())
	}
	b.WriteByte('z')
	if b.String() != "z" {
		t.Fatalf("zero value usable after WriteByte")
	}
}
