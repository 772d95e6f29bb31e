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

package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/line-marker/ccshim/internal/linemarker"
)

var linemarkersCmd = &cobra.Command{
	Use:   "linemarkers <file>",
	Short: "Dump every linemarker in a captured -E stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return dumpLinemarkers(cmd, data)
	},
}

func dumpLinemarkers(cmd *cobra.Command, data []byte) error {
	pos := 0
	for pos < len(data) {
		nl := indexByte(data, pos, '\n')
		if data[pos] == '#' {
			m, _, err := linemarker.Scan(data, pos)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: parse error: %v\n", pos, err)
			} else {
				flagNames := lo.Filter([]string{"new-file", "return", "system-header", "extern-c"},
					func(_ string, i int) bool { return m.Flags.Has(i + 1) })
				fmt.Fprintf(cmd.OutOrStdout(), "%d: line=%d file=%q flags=%v\n", pos, m.Line, m.Filename, flagNames)
			}
		}
		if nl < 0 {
			break
		}
		pos = nl + 1
	}
	return nil
}

func indexByte(data []byte, from int, b byte) int {
	for i := from; i < len(data); i++ {
		if data[i] == b {
			return i
		}
	}
	return -1
}
