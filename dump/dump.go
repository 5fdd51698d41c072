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

// Package dump implements the plist tree's debug pretty-printer. The
// format is informational, not a round-trip interchange: it exists so a
// human (or a test diff) can read a tree, not so it can be reparsed.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/salikh-student/plist/node"
)

// indentStep is the number of spaces each nesting level adds, per the
// pretty-printer format contract.
const indentStep = 8

// Dump writes a human-readable, indented rendering of n to w.
func Dump(n *node.Node, w io.Writer) error {
	return dump(w, n, 0)
}

// DumpString renders n the way Dump does and returns it as a string,
// mirroring the teacher's Pretty/PrettyNoErr convenience wrappers.
func DumpString(n *node.Node) (string, error) {
	var buf bytes.Buffer
	if err := Dump(n, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func dump(w io.Writer, n *node.Node, depth int) error {
	indent := strings.Repeat(" ", depth*indentStep)
	if n == nil {
		_, err := fmt.Fprintf(w, "%snil\n", indent)
		return err
	}
	switch n.Kind() {
	case node.Dict:
		if _, err := fmt.Fprintf(w, "%sdict {\n", indent); err != nil {
			return err
		}
		for i := 0; i < n.Len(); i++ {
			key := n.At(i)
			if _, err := fmt.Fprintf(w, "%s%q:\n", strings.Repeat(" ", (depth+1)*indentStep), key.Name()); err != nil {
				return err
			}
			if err := dump(w, key.Value(), depth+2); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s}\n", indent)
		return err
	case node.Array:
		if _, err := fmt.Fprintf(w, "%sarray (\n", indent); err != nil {
			return err
		}
		for i := 0; i < n.Len(); i++ {
			if err := dump(w, n.At(i), depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s)\n", indent)
		return err
	case node.String:
		_, err := fmt.Fprintf(w, "%sstring %q\n", indent, n.Str())
		return err
	case node.Integer:
		_, err := fmt.Fprintf(w, "%sinteger %d\n", indent, n.Int())
		return err
	case node.Real:
		_, err := fmt.Fprintf(w, "%sreal %g\n", indent, n.Float())
		return err
	case node.Boolean:
		_, err := fmt.Fprintf(w, "%sboolean %t\n", indent, n.Bool())
		return err
	case node.DateKind:
		_, err := fmt.Fprintf(w, "%sdate %s\n", indent, formatDate(n.DateValue()))
		return err
	case node.Data:
		if _, err := fmt.Fprintf(w, "%sdata (%d bytes)\n", indent, len(n.Bytes())); err != nil {
			return err
		}
		return hexdump(w, indent, n.Bytes())
	default:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, n.Kind())
		return err
	}
}

// formatDate renders d in ISO-8601, "%Y-%m-%dT%H:%M:%S%z".
func formatDate(d node.Date) string {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0,
		time.FixedZone("", d.TZOffsetSec))
	return t.Format("2006-01-02T15:04:05-0700")
}

// hexdump writes b as a classic hex dump: an offset prefix, 16 bytes per
// row in hex, and an ASCII column with non-printable bytes shown as '.'.
func hexdump(w io.Writer, indent string, b []byte) error {
	for off := 0; off < len(b); off += 16 {
		end := off + 16
		if end > len(b) {
			end = len(b)
		}
		row := b[off:end]
		if _, err := fmt.Fprintf(w, "%s%08x  ", indent, off); err != nil {
			return err
		}
		for i := 0; i < 16; i++ {
			if i < len(row) {
				if _, err := fmt.Fprintf(w, "%02x ", row[i]); err != nil {
					return err
				}
			} else {
				if _, err := io.WriteString(w, "   "); err != nil {
					return err
				}
			}
			if i == 7 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, " |"); err != nil {
			return err
		}
		for _, c := range row {
			if c >= 0x20 && c < 0x7f {
				if _, err := fmt.Fprintf(w, "%c", c); err != nil {
					return err
				}
			} else if _, err := io.WriteString(w, "."); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "|\n"); err != nil {
			return err
		}
	}
	return nil
}
