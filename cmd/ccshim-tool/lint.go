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
	"runtime"

	"github.com/spf13/cobra"
	"modernc.org/cc/v4"
)

// lintCmd is an optional, opt-in sanity check outside the core
// pipeline: it parses a reconstructed side-car with modernc.org/cc/v4
// to confirm it is at least syntactically plausible C. The shim
// itself never does this — reconstruction is a textual transform, not
// a parse — so a lint failure here never affects ccwrap's exit code.
var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Parse a reconstructed side-car as a syntax sanity check",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		cfg, err := cc.NewConfig(runtime.GOOS, runtime.GOARCH)
		if err != nil {
			return err
		}
		_, err = cc.Parse(cfg, []cc.Source{
			{Name: "<predefined>", Value: cfg.Predefined},
			{Name: "<builtin>", Value: cc.Builtin},
			{Name: args[0], Value: f},
		})
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "lint: %v\n", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
