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

// Command ccwrap is the primary shim entry point: it is invoked with
// argv identical to what a compiler driver would receive, and either
// transparently passes the call through or intercepts it to produce a
// reconstructed preprocessor side-car alongside the real artifact.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/line-marker/ccshim/internal/config"
	"github.com/line-marker/ccshim/internal/orchestrate"
)

func main() {
	// Only arguments spelled -ccshim_NAME[=VALUE] are the shim's own
	// flags; every other argument goes to the compiler unchanged and
	// in order.
	var shimArgs, ccArgs []string
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-ccshim_") || strings.HasPrefix(a, "--ccshim_") {
			shimArgs = append(shimArgs, a)
		} else {
			ccArgs = append(ccArgs, a)
		}
	}
	flag.CommandLine.Parse(shimArgs)
	os.Exit(run(ccArgs))
}

// run is the testable core of main: it never calls os.Exit itself.
func run(args []string) int {
	if config.CPUProfileFlag != "" {
		f, err := os.Create(config.CPUProfileFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return int(syscall.EINVAL)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	argv0 := filepath.Base(os.Args[0])
	cfg := config.FromEnv()

	status := orchestrate.Run(context.Background(), argv0, args, cfg)
	return exitCodeFor(status)
}

// exitCodeFor maps an orchestrate.Status onto the shim's exit codes.
// orchestrate deliberately doesn't import syscall itself, so this
// translation lives at the one place that needs it.
func exitCodeFor(status orchestrate.Status) int {
	switch status {
	case orchestrate.OK:
		return 0
	case orchestrate.LocateFailed:
		return int(syscall.ESRCH)
	case orchestrate.ChildFailed:
		return int(syscall.ECHILD)
	case orchestrate.SidecarFailed:
		return int(syscall.EINVAL)
	default:
		return 1
	}
}
