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
	"flag"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plistdump",
	Short: "Parse and inspect NeXT/OpenStep ASCII property lists",
	Long: `plistdump provides two features:
- Parses an ASCII plist file and prints its tree.
- Re-parses the same file under random chunk boundaries to check that
  the incremental parser is chunk-boundary independent.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Expose glog's own flags (-v, -logtostderr, ...) on the command line.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// Execute runs the root command. It returns the command's error without
// printing it; main reports it.
func Execute() error {
	return rootCmd.Execute()
}
