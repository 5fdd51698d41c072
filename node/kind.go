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

// Package node implements the plist tree data model: a discriminated
// Node type with nine kinds, parent back-references, and the tree
// operations (construction, mutation, iteration, copy, release) that
// keep the tree's structural invariants intact.
package node

import "strings"

// Kind discriminates the closed set of Node shapes.
type Kind int

const (
	Unknown Kind = iota
	Dict
	Key
	Array
	Data
	DateKind
	String
	Integer
	Real
	Boolean
)

var kindNames = [...]string{
	Unknown:  "unknown",
	Dict:     "dict",
	Key:      "key",
	Array:    "array",
	Data:     "data",
	DateKind: "date",
	String:   "string",
	Integer:  "integer",
	Real:     "real",
	Boolean:  "boolean",
}

// KindName returns the canonical lowercase name of k, or "unknown" if k
// is not one of the defined kinds.
func KindName(k Kind) string {
	if k < Unknown || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive textual kind name back to a Kind.
// Unrecognized names map to Unknown.
func ParseKind(name string) Kind {
	lower := strings.ToLower(name)
	for k, n := range kindNames {
		if n == lower {
			return Kind(k)
		}
	}
	return Unknown
}

// String satisfies fmt.Stringer so Kind values print as their canonical name.
func (k Kind) String() string {
	return KindName(k)
}
