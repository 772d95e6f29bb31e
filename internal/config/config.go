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

// Package config gathers the shim's environment- and flag-driven
// settings in one place, registered at init time rather than scattered
// across the codebase as individual flag.*Var calls.
package config

import (
	"flag"
	"os"
)

// Flags controlling the shim's own diagnostics, independent of the
// environment variables that redirect it at a real compiler.
var (
	LogFlag        bool
	StatsFlag      bool
	CPUProfileFlag string
)

func init() {
	flag.BoolVar(&LogFlag, "ccshim_log", false, "Verbose ccshim specific log")
	flag.BoolVar(&StatsFlag, "ccshim_stats", false, "Show a bunch of statistics")
	flag.StringVar(&CPUProfileFlag, "ccshim_cpuprofile", "", "write cpu profile to `file`")
}

// Config holds the environment overrides that redirect the shim at a
// real compiler/preprocessor other than the one named on argv[0], or
// that suppress side-car generation outright.
type Config struct {
	// RealCC overrides the compiler binary used for the second,
	// -fpreprocessed invocation. Empty means "gcc".
	RealCC string
	// RealCPP overrides the binary used for the first, -E capture
	// invocation. Empty means "cpp".
	RealCPP string
	// NoIFiles disables side-car generation entirely: the
	// Orchestrator still runs the -E capture and compiles from the
	// captured text, but skips reconstruction and the side-car write.
	// It does not switch the Orchestrator to a plain passthrough.
	NoIFiles bool
}

// FromEnv reads REAL_CC, REAL_CPP, and X_NO_I_FILES from the process
// environment.
func FromEnv() Config {
	return Config{
		RealCC:   os.Getenv("REAL_CC"),
		RealCPP:  os.Getenv("REAL_CPP"),
		NoIFiles: os.Getenv("X_NO_I_FILES") != "",
	}
}

// PreprocessorFor returns the binary to use for the -E capture
// invocation: RealCPP if set, else the literal "cpp". It never falls
// back to argv0: when the shim is installed as a drop-in replacement
// for the real preprocessor, argv0 names the shim itself, and falling
// back to it would make the shim re-exec itself instead of the real
// tool.
func (c Config) PreprocessorFor() string {
	if c.RealCPP != "" {
		return c.RealCPP
	}
	return "cpp"
}

// CompilerFor returns the binary to use for the -fpreprocessed
// invocation: RealCC if set, else the literal "gcc". Same reasoning as
// PreprocessorFor: argv0 cannot be the fallback when the shim is
// installed as gcc itself.
func (c Config) CompilerFor() string {
	if c.RealCC != "" {
		return c.RealCC
	}
	return "gcc"
}
