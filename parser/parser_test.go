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
	"math/rand"
	"testing"

	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/perr"
)

// parseWhole feeds the entire input in one Feed call.
func parseWhole(t *testing.T, input string) *node.Node {
	t.Helper()
	p := New()
	if err := p.Feed([]byte(input)); err != nil {
		t.Fatalf("Feed(%q): %v", input, err)
	}
	root, err := p.Result()
	if err != nil {
		t.Fatalf("Result(%q): %v", input, err)
	}
	return root
}

// parseInChunks feeds input split at the given cut points.
func parseInChunks(t *testing.T, input string, cuts []int) *node.Node {
	t.Helper()
	p := New()
	prev := 0
	for _, c := range cuts {
		if err := p.Feed([]byte(input[prev:c])); err != nil {
			t.Fatalf("Feed(%q[%d:%d]): %v", input, prev, c, err)
		}
		prev = c
	}
	if err := p.Feed([]byte(input[prev:])); err != nil {
		t.Fatalf("Feed(%q[%d:]): %v", input, prev, err)
	}
	root, err := p.Result()
	if err != nil {
		t.Fatalf("Result(%q): %v", input, err)
	}
	return root
}

func TestTrueLiteralAndPrefixPartitions(t *testing.T) {
	partitions := [][]int{{0}, {1}, {2}, {3}, {1, 2}, {1, 3}, {2, 3}}
	for _, cuts := range partitions {
		root := parseInChunks(t, "true", cuts)
		if root.Kind() != node.Boolean || root.Bool() != true {
			t.Errorf("cuts %v: got %v, want Boolean(true)", cuts, root)
		}
	}
}

func TestFalseLiteralCaseInsensitive(t *testing.T) {
	root := parseWhole(t, "FALSE")
	if root.Kind() != node.Boolean || root.Bool() != false {
		t.Fatalf("got %v, want Boolean(false)", root)
	}
}

func TestArrayOfIntegers(t *testing.T) {
	root := parseWhole(t, "( 1 , 2 , -3 )")
	if root.Kind() != node.Array || root.Len() != 3 {
		t.Fatalf("got %v, want Array of 3", root)
	}
	want := []int64{1, 2, -3}
	for i, w := range want {
		if root.At(i).Int() != w {
			t.Errorf("At(%d) = %d, want %d", i, root.At(i).Int(), w)
		}
	}
}

func TestDictTwoKeysInOrder(t *testing.T) {
	root := parseWhole(t, `{ "name" : "Alice" ; "age" : 37 ; }`)
	if root.Kind() != node.Dict || root.Len() != 2 {
		t.Fatalf("got %v, want Dict of 2", root)
	}
	if root.At(0).Name() != "name" || root.At(0).Value().Str() != "Alice" {
		t.Errorf("entry 0 = %v", root.At(0))
	}
	if root.At(1).Name() != "age" || root.At(1).Value().Int() != 37 {
		t.Errorf("entry 1 = %v", root.At(1))
	}
}

func TestDataHexLiteral(t *testing.T) {
	root := parseWhole(t, "<48 65 6c 6c 6f>")
	if root.Kind() != node.Data {
		t.Fatalf("got %v, want Data", root)
	}
	if string(root.Bytes()) != "Hello" {
		t.Errorf("Bytes() = %q, want Hello", root.Bytes())
	}
}

func TestDateLiteral(t *testing.T) {
	root := parseWhole(t, "<*D2001-11-12 18:31:01 +0000>")
	if root.Kind() != node.DateKind {
		t.Fatalf("got %v, want Date", root)
	}
	d := root.DateValue()
	want := node.Date{Year: 2001, Month: 11, Day: 12, Hour: 18, Minute: 31, Second: 1, TZOffsetSec: 0}
	if d != want {
		t.Errorf("DateValue() = %+v, want %+v", d, want)
	}
}

func TestDuplicateDictKeyFails(t *testing.T) {
	p := New()
	err := p.Feed([]byte(`{ "a" : "x" ; "a" : "y" ; }`))
	if !perr.Is(err, perr.Invalid) {
		t.Fatalf("Feed = %v, want Invalid", err)
	}
	if _, err := p.Result(); !perr.Is(err, perr.NotFound) {
		t.Fatalf("Result after failed parse = %v, want NotFound", err)
	}
}

func TestStringEscapes(t *testing.T) {
	root := parseWhole(t, `"hello\nworld"`)
	if root.Kind() != node.String {
		t.Fatalf("got %v, want String", root)
	}
	if root.Str() != "hello\nworld" {
		t.Errorf("Str() = %q, want %q", root.Str(), "hello\nworld")
	}
}

func TestStringEscapeTable(t *testing.T) {
	root := parseWhole(t, `"\\ \/ \" \b\t\f\n\r \q"`)
	want := "\\ / \" \b\t\f\n\r q"
	if root.Str() != want {
		t.Errorf("Str() = %q, want %q", root.Str(), want)
	}
}

func TestEmptyData(t *testing.T) {
	root := parseWhole(t, "<>")
	if root.Kind() != node.Data || len(root.Bytes()) != 0 {
		t.Fatalf("got %v, want empty Data", root)
	}
}

func TestRealNumber(t *testing.T) {
	root := parseWhole(t, "3.5")
	if root.Kind() != node.Real || root.Float() != 3.5 {
		t.Fatalf("got %v, want Real(3.5)", root)
	}
}

func TestNestedContainers(t *testing.T) {
	root := parseWhole(t, `{ "items" : ( 1 , { "x" : 2 ; } ) ; }`)
	items, err := node.Pop(root, "items")
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if items.Kind() != node.Array || items.Len() != 2 {
		t.Fatalf("items = %v", items)
	}
	if items.At(0).Int() != 1 {
		t.Errorf("items[0] = %d, want 1", items.At(0).Int())
	}
	inner := items.At(1)
	if inner.Kind() != node.Dict {
		t.Fatalf("items[1] kind = %v, want Dict", inner.Kind())
	}
	xv, err := node.Pop(inner, "x")
	if err != nil || xv.Int() != 2 {
		t.Fatalf("inner.x = %v, %v", xv, err)
	}
}

func TestOddHexNibbleCountRejected(t *testing.T) {
	p := New()
	err := p.Feed([]byte("<48 65 6>"))
	if !perr.Is(err, perr.Invalid) {
		t.Fatalf("Feed(odd nibble data) = %v, want Invalid", err)
	}
}

func TestUnmatchedCloseBrace(t *testing.T) {
	p := New()
	err := p.Feed([]byte("}"))
	if !perr.Is(err, perr.Invalid) {
		t.Fatalf("Feed(}) = %v, want Invalid", err)
	}
}

func TestStickyErrorState(t *testing.T) {
	p := New()
	err1 := p.Feed([]byte("}"))
	if !perr.Is(err1, perr.Invalid) {
		t.Fatalf("first Feed = %v, want Invalid", err1)
	}
	err2 := p.Feed([]byte("true"))
	if err2 != err1 {
		t.Fatalf("second Feed after sticky error = %v, want the same error back", err2)
	}
}

func TestDoneStateRejectsTrailingGarbage(t *testing.T) {
	p := New()
	if err := p.Feed([]byte("true")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := p.Feed([]byte(" ")); err != nil {
		t.Fatalf("Feed(trailing blank): %v", err)
	}
	if err := p.Feed([]byte("x")); !perr.Is(err, perr.Invalid) {
		t.Fatalf("Feed(trailing garbage) = %v, want Invalid", err)
	}
}

func TestResultBeforeCompletionIsNotFound(t *testing.T) {
	p := New()
	if err := p.Feed([]byte("{ ")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if _, err := p.Result(); !perr.Is(err, perr.NotFound) {
		t.Fatalf("Result(incomplete) = %v, want NotFound", err)
	}
}

func TestParserReusableAfterResult(t *testing.T) {
	p := New()
	p.Feed([]byte("1"))
	if _, err := p.Result(); err != nil {
		t.Fatalf("first Result: %v", err)
	}
	p.Feed([]byte("2"))
	root, err := p.Result()
	if err != nil {
		t.Fatalf("second Result: %v", err)
	}
	if root.Int() != 2 {
		t.Fatalf("second parse = %d, want 2", root.Int())
	}
}

// TestChunkingProperty re-parses several documents under many random byte
// partitions (down to single-byte chunks) and checks every partition
// produces a tree equal in rendered form to the whole-input parse.
func TestChunkingProperty(t *testing.T) {
	docs := []string{
		`{ "name" : "Alice" ; "age" : 37 ; "tags" : ( 1 , 2 , 3 ) ; }`,
		`<48 65 6c 6c 6f>`,
		`<*D2001-11-12 18:31:01 +0000>`,
		`"hello\nworld\t!"`,
		`FALSE`,
		`-12.5e3`,
	}
	rng := rand.New(rand.NewSource(42))
	for _, doc := range docs {
		want := renderTree(t, parseWhole(t, doc))
		for round := 0; round < 25; round++ {
			cuts := randomCuts(len(doc), rng)
			got := renderTree(t, parseInChunks(t, doc, cuts))
			if got != want {
				t.Errorf("doc %q, cuts %v: tree mismatch\n got: %s\nwant: %s", doc, cuts, got, want)
			}
		}
		// Degenerate single-byte-chunk case, explicitly called out by
		// the chunking property.
		var singleByteCuts []int
		for i := 1; i <= len(doc); i++ {
			singleByteCuts = append(singleByteCuts, i)
		}
		got := renderTree(t, parseInChunks(t, doc, singleByteCuts))
		if got != want {
			t.Errorf("doc %q, single-byte chunks: tree mismatch\n got: %s\nwant: %s", doc, got, want)
		}
	}
}

func randomCuts(n int, rng *rand.Rand) []int {
	if n == 0 {
		return nil
	}
	count := rng.Intn(n + 1)
	points := make(map[int]bool, count)
	for i := 0; i < count; i++ {
		if p := rng.Intn(n); p > 0 {
			points[p] = true
		}
	}
	cuts := make([]int, 0, len(points)+1)
	for p := range points {
		cuts = append(cuts, p)
	}
	for i := 0; i < len(cuts); i++ {
		for j := i + 1; j < len(cuts); j++ {
			if cuts[j] < cuts[i] {
				cuts[i], cuts[j] = cuts[j], cuts[i]
			}
		}
	}
	cuts = append(cuts, n)
	return cuts
}

// renderTree is a minimal structural fingerprint, independent of package
// dump, so this test doesn't depend on the pretty-printer's own
// correctness.
func renderTree(t *testing.T, n *node.Node) string {
	t.Helper()
	var sb []byte
	err := node.Walk(n, func(cur *node.Node) error {
		sb = append(sb, []byte(cur.String())...)
		sb = append(sb, ';')
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return string(sb)
}
