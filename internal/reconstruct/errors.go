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

package reconstruct

import "fmt"

// Kind classifies a reconstruction failure. All reconstruction errors
// are non-fatal to the overall shim: the orchestrator treats any of
// them as "skip the side-car, compile anyway".
type Kind int

const (
	_ Kind = iota
	// MalformedInitialMarker: the first linemarker is missing, fails
	// to parse, has linenum != 1, or carries push/pop flags.
	MalformedInitialMarker
	// MalformedMarker: a non-initial marker has both push and pop
	// flags set, or a push marker has linenum != 1.
	MalformedMarker
	// RetMismatch: a pop marker popped a frame successfully but its
	// filename/linenum is inconsistent with the frame returned to.
	RetMismatch
	// GuardViolation: a marker asked to strip more trailing newlines
	// than exist above the current guard index.
	GuardViolation
	// LineOverflow: a frame's line counter would overflow uint64.
	LineOverflow
	// SkipUnderflow: a pop marker was seen with nothing left to pop —
	// the include stack was already down to the root frame, so the
	// marker names a return from a file we were never inside.
	SkipUnderflow
	// SkipOverflow: the skip-subtree counter would overflow uint32.
	SkipOverflow
)

func (k Kind) String() string {
	switch k {
	case MalformedInitialMarker:
		return "MalformedInitialMarker"
	case MalformedMarker:
		return "MalformedMarker"
	case RetMismatch:
		return "RetMismatch"
	case GuardViolation:
		return "GuardViolation"
	case LineOverflow:
		return "LineOverflow"
	case SkipUnderflow:
		return "SkipUnderflow"
	case SkipOverflow:
		return "SkipOverflow"
	default:
		return "Unknown"
	}
}

// Error is the structured result the Reconstructor returns on failure.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("reconstruct: %s", e.Kind)
	}
	return fmt.Sprintf("reconstruct: %s: %s", e.Kind, e.Detail)
}
