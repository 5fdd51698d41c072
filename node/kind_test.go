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

import "testing"

func TestKindNameRoundTrip(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{Dict, "dict"},
		{Key, "key"},
		{Array, "array"},
		{Data, "data"},
		{DateKind, "date"},
		{String, "string"},
		{Integer, "integer"},
		{Real, "real"},
		{Boolean, "boolean"},
		{Unknown, "unknown"},
	}
	for _, tt := range tests {
		if got := KindName(tt.kind); got != tt.name {
			t.Errorf("KindName(%v) = %q, want %q", tt.kind, got, tt.name)
		}
		if got := ParseKind(tt.name); tt.kind != Unknown && got != tt.kind {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.kind)
		}
	}
}

func TestParseKindCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Dict", "DICT", "DiCt"} {
		if got := ParseKind(name); got != Dict {
			t.Errorf("ParseKind(%q) = %v, want Dict", name, got)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	if got := ParseKind("bogus"); got != Unknown {
		t.Errorf("ParseKind(bogus) = %v, want Unknown", got)
	}
}
