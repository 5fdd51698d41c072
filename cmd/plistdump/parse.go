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
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/salikh-student/plist/dump"
	"github.com/salikh-student/plist/node"
	"github.com/salikh-student/plist/parser"
)

var parseFlags = struct {
	chunkSize *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <file>",
		Short:   "Parse a plist file and print its tree",
		Example: "  plistdump parse example.plist",
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.chunkSize = cmd.Flags().Int("chunk-size", 0, "feed the parser this many bytes at a time (default: whole file in one chunk)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	root, err := parseChunked(data, *parseFlags.chunkSize)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	log.V(1).Infof("parsed %s: root kind %s", args[0], root.Kind())
	return dump.Dump(root, os.Stdout)
}

// parseChunked feeds data to a fresh parser in chunkSize-byte pieces
// (the whole input in one call if chunkSize <= 0) and extracts the
// result.
func parseChunked(data []byte, chunkSize int) (*node.Node, error) {
	p := parser.New()
	if chunkSize <= 0 {
		if err := p.Feed(data); err != nil {
			return nil, err
		}
	} else {
		for off := 0; off < len(data); off += chunkSize {
			end := off + chunkSize
			if end > len(data) {
				end = len(data)
			}
			if err := p.Feed(data[off:end]); err != nil {
				return nil, err
			}
		}
	}
	return p.Result()
}
