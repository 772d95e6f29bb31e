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

	"github.com/spf13/cobra"

	"github.com/line-marker/ccshim/internal/reconstruct"
)

var reconstructOut string

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct <file>",
	Short: "Run the Reconstructor standalone and write its output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		out, err := reconstruct.Reconstruct(data)
		if err != nil {
			return fmt.Errorf("reconstruct: %w", err)
		}
		if reconstructOut == "" {
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		}
		return os.WriteFile(reconstructOut, out.Bytes(), 0644)
	},
}

func init() {
	reconstructCmd.Flags().StringVarP(&reconstructOut, "output", "o", "", "write reconstructed bytes to this path instead of stdout")
}
