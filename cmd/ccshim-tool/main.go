// Copyright 2015 Google Inc. All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ccshim-tool is a developer-facing companion to the ccwrap
// shim: it exposes the library pieces (linemarker scanning,
// reconstruction, diffing, syntax linting) as standalone subcommands
// for debugging a captured -E stream or a written side-car, the way
// goat wraps its translation library with a single cobra command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccshim-tool",
	Short: "Inspect and debug ccshim linemarker reconstruction",
}

func init() {
	rootCmd.AddCommand(linemarkersCmd)
	rootCmd.AddCommand(reconstructCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(lintCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
