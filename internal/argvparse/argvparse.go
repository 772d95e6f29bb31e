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

// Package argvparse classifies a compiler invocation's argv the way the
// original gcc-wrapper's init_arg_data/fini_arg_data pair does: split
// out -o and the compile-mode flag up front, then once the -E capture
// has run, learn the canonical input filename from its first
// linemarker and splice it back out of the passthrough argv.
package argvparse

import (
	"fmt"
	"strings"

	"github.com/line-marker/ccshim/internal/linemarker"
)

// Mode is the compile mode gcc was invoked with: one of 'c', 'S', 'E'.
type Mode byte

const (
	ModeNone Mode = 0
	ModeC    Mode = 'c'
	ModeS    Mode = 'S'
	ModeE    Mode = 'E'
)

// CommInfo holds the classified form of a compiler command line: the
// passthrough arguments (everything except -o and the mode flag), the
// output path, the compile mode, and — once ResolveInputFile has run —
// the canonical input filename.
type CommInfo struct {
	// Argv is every argument that is neither -o nor the mode flag,
	// in original order. It does not include argv[0]; callers
	// prepend the binary path when building a child's argv. It grows
	// by one extra NULL-terminator slot in C; in Go it is just the
	// argument slice, nothing more.
	Argv []string
	// OutFile is the path named by -o.
	OutFile string
	// Mode is the compile mode: -c, -S, or -E.
	Mode Mode
	// InputFile is the canonical input filename, populated by
	// ResolveInputFile. Empty until then.
	InputFile string
}

// ParseCompilerArgv splits argv (not including argv[0]) into a
// CommInfo, pulling -o/-ofoo and -c/-S/-E out of the passthrough list.
// It fails if -o is given more than once, -o's value is missing, more
// than one mode flag is given, or the mode is absent, "-E", or no -o
// was given: an -E-only or output-less invocation has nothing for the
// shim to intercept.
func ParseCompilerArgv(argv []string) (*CommInfo, error) {
	ci := &CommInfo{Argv: make([]string, 0, len(argv))}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		if strings.HasPrefix(arg, "-o") {
			if ci.OutFile != "" {
				return nil, fmt.Errorf("argvparse: -o given more than once")
			}
			if arg == "-o" {
				i++
				if i >= len(argv) {
					return nil, fmt.Errorf("argvparse: -o missing its argument")
				}
				ci.OutFile = argv[i]
			} else {
				ci.OutFile = arg[2:]
			}
			continue
		}

		if len(arg) == 2 && arg[0] == '-' && (arg[1] == 'c' || arg[1] == 'S' || arg[1] == 'E') {
			if ci.Mode != ModeNone {
				return nil, fmt.Errorf("argvparse: more than one compile-mode flag given")
			}
			ci.Mode = Mode(arg[1])
			continue
		}

		ci.Argv = append(ci.Argv, arg)
	}

	if ci.Mode == ModeNone || ci.Mode == ModeE || ci.OutFile == "" {
		return nil, fmt.Errorf("argvparse: not an interceptable invocation (mode=%c, o_file=%q)", ci.Mode, ci.OutFile)
	}

	return ci, nil
}

// ResolveInputFile learns the canonical input filename from the first
// linemarker of preprocessed output, rewrites a "<stdin>" filename to
// "-" (the canonical stand-in gcc itself uses when given "-" on the
// command line), finds exactly one occurrence of that filename in
// ci.Argv, and removes it — ci.Argv afterwards holds every passthrough
// argument except the input file itself, ready to be re-appended by
// the Orchestrator's second invocation. It fails if the first
// linemarker is missing or malformed, or if the filename does not
// appear in ci.Argv exactly once (ambiguous, or the preprocessor named
// a file the invoking command line never mentioned — both indicate a
// shape the shim cannot safely trust).
func ResolveInputFile(ci *CommInfo, preprocessed []byte) error {
	m, _, err := linemarker.Scan(preprocessed, 0)
	if err != nil {
		return fmt.Errorf("argvparse: reading first linemarker: %w", err)
	}

	filename := m.Filename
	if filename == "<stdin>" {
		filename = "-"
	}

	slot := -1
	for i, arg := range ci.Argv {
		if arg == filename {
			if slot != -1 {
				return fmt.Errorf("argvparse: input filename %q appears more than once in argv", filename)
			}
			slot = i
		}
	}
	if slot == -1 {
		return fmt.Errorf("argvparse: input filename %q not found verbatim in argv", filename)
	}

	ci.Argv = append(ci.Argv[:slot], ci.Argv[slot+1:]...)
	ci.InputFile = filename
	return nil
}
