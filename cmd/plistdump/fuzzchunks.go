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

package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/salikh-student/plist/dump"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/parser"
)

var fuzzFlags = struct {
	seed   *int64
	rounds *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "fuzz-chunks <file>",
		Short:   "Re-parse a file under random chunk boundaries and check for equal trees",
		Example: "  plistdump fuzz-chunks example.plist --rounds 50",
		Args:    cobra.ExactArgs(1),
		RunE:    runFuzzChunks,
	}
	fuzzFlags.seed = cmd.Flags().Int64("seed", 1, "PRNG seed, for reproducible partitions")
	fuzzFlags.rounds = cmd.Flags().Int("rounds", 20, "number of random chunk partitions to try")
	rootCmd.AddCommand(cmd)
}

func runFuzzChunks(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	want, err := parseChunked(data, 0)
	if err != nil {
		return fmt.Errorf("parsing %s whole: %w", args[0], err)
	}
	wantDump, err := dump.DumpString(want)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(*fuzzFlags.seed))
	for round := 0; round < *fuzzFlags.rounds; round++ {
		chunks := randomPartition(data, rng)
		got, err := parseChunks(chunks)
		if err != nil {
			return fmt.Errorf("round %d: chunked parse failed: %w", round, err)
		}
		gotDump, err := dump.DumpString(got)
		if err != nil {
			return err
		}
		if gotDump != wantDump {
			return fmt.Errorf("round %d: chunked parse produced a different tree (%d chunks)", round, len(chunks))
		}
	}
	fmt.Fprintf(os.Stdout, "ok: %d chunk partitions of %s all agree\n", *fuzzFlags.rounds, args[0])
	return nil
}

// randomPartition splits data at a random number of random cut points.
// Cut points are drawn with repetition, so the result ranges from one
// whole chunk to many small ones; the all-single-byte-chunks partition
// can come out of it but is not produced on purpose.
func randomPartition(data []byte, rng *rand.Rand) [][]byte {
	if len(data) == 0 {
		return nil
	}
	cuts := rng.Intn(len(data) + 1)
	points := make(map[int]bool, cuts)
	for i := 0; i < cuts; i++ {
		points[rng.Intn(len(data))] = true
	}
	sorted := make([]int, 0, len(points))
	for p := range points {
		if p > 0 {
			sorted = append(sorted, p)
		}
	}
	sort.Ints(sorted)
	var chunks [][]byte
	prev := 0
	for _, p := range sorted {
		chunks = append(chunks, data[prev:p])
		prev = p
	}
	chunks = append(chunks, data[prev:])
	return chunks
}

func parseChunks(chunks [][]byte) (*node.Node, error) {
	p := parser.New()
	for _, c := range chunks {
		if err := p.Feed(c); err != nil {
			return nil, err
		}
	}
	return p.Result()
}
