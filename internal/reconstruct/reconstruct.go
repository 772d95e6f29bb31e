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

// Package reconstruct drives the linemarker parser over a full -E
// capture and rebuilds, for the file the compiler was actually invoked
// on, a text buffer whose i-th line corresponds to line i of that
// file's post-preprocessing view.
//
// The state carried across the run — the include stack, the guard
// index, and the skip-subtree counter — lives in a single struct with
// two methods (onMarker, onLine), the way the design notes ask for:
// avoid scattering state across free variables.
package reconstruct

import (
	"math"

	"github.com/line-marker/ccshim/internal/includestack"
	"github.com/line-marker/ccshim/internal/linemarker"
	"github.com/line-marker/ccshim/internal/obuf"
)

type reconstructor struct {
	stack includestack.Stack
	guard int
	skip  uint32
}

// Reconstruct parses data as a complete preprocessor -E capture and
// returns the reconstructed per-file text, or a structured Error
// naming which invariant the input violated.
func Reconstruct(data []byte) (*obuf.Buffer, error) {
	var r reconstructor

	m0, next0, err := linemarker.Scan(data, 0)
	if err != nil {
		return nil, &Error{Kind: MalformedInitialMarker, Detail: err.Error()}
	}
	if m0.Line != 1 || m0.Flags.NewFile() || m0.Flags.ReturnFile() {
		return nil, &Error{Kind: MalformedInitialMarker, Detail: "initial marker must have line 1 and no push/pop flags"}
	}
	r.stack.Push(m0.Filename, 1)
	r.guard = 0
	r.skip = 0

	pos := skipNewline(data, next0)

	var out obuf.Buffer
	for pos < len(data) {
		lineStart := pos
		m, next, perr := linemarker.Scan(data, pos)
		if perr == nil {
			if err := r.onMarker(&out, m); err != nil {
				return nil, err
			}
			pos = skipNewline(data, next)
			continue
		}

		end := lineStart
		for end < len(data) && data[end] != '\n' {
			end++
		}
		if end < len(data) {
			end++ // include the trailing newline
		}
		if err := r.onLine(&out, data[lineStart:end]); err != nil {
			return nil, err
		}
		pos = end
	}

	return &out, nil
}

func skipNewline(data []byte, pos int) int {
	if pos < len(data) && data[pos] == '\n' {
		return pos + 1
	}
	return pos
}

// onMarker dispatches a parsed linemarker. The include stack is always
// kept structurally accurate — every push marker pushes a frame and
// every pop marker pops one, regardless of whether we're currently
// inside a skipped (non-root) subtree — so a malformed pop is always
// caught even several includes deep. What skip gates is strictly
// content: whether the bytes between this marker and the next get
// written to out at all, and whether the frame's own line counter (and
// the guard/newline-sync bookkeeping) is worth maintaining for a file
// whose text will never be emitted.
func (r *reconstructor) onMarker(out *obuf.Buffer, m linemarker.Marker) error {
	switch {
	case m.Flags.NewFile() && m.Flags.ReturnFile():
		return &Error{Kind: MalformedMarker, Detail: "flags 1 (push) and 2 (pop) both set"}

	case m.Flags.NewFile():
		if m.Line != 1 {
			return &Error{Kind: MalformedMarker, Detail: "push marker must have linenum 1"}
		}
		root := r.stack.Root().Filename
		r.stack.Push(m.Filename, m.Line)
		if r.skip > 0 {
			if r.skip == math.MaxUint32 {
				return &Error{Kind: SkipOverflow}
			}
			r.skip++
			return nil
		}
		if m.Filename != root {
			r.skip = 1
			return nil
		}
		r.guard = out.Len()
		return r.syncLinenum(out, m)

	case m.Flags.ReturnFile():
		if _, err := r.stack.Pop(); err != nil {
			return &Error{Kind: SkipUnderflow, Detail: err.Error()}
		}
		top := r.stack.Top()
		if !(top.Line < m.Line) || top.Filename != m.Filename {
			return &Error{Kind: RetMismatch, Detail: "returning frame does not match the marker"}
		}
		if r.skip > 0 {
			r.skip--
		}
		if r.skip > 0 {
			return nil
		}
		r.guard = out.Len()
		return r.syncLinenum(out, m)

	default:
		if r.skip <= 1 {
			// Resume only for the current frame and only when that frame
			// is the root file: a bare marker inside a skipped include
			// names the include itself and keeps it suppressed.
			top := r.stack.Top()
			if top.Filename != m.Filename || top.Filename != r.stack.Root().Filename {
				r.skip = 1
			} else {
				r.skip = 0
			}
		}
		if r.skip > 0 {
			return nil
		}
		return r.syncLinenum(out, m)
	}
}

// syncLinenum adjusts the current frame's line counter to match the
// marker, either collapsing trailing newlines already written (when
// the preprocessor rewound, typical of a macro expansion that folded
// several logical source lines into one output line) or emitting fresh
// newlines to advance (the common case of a plain line count jump).
func (r *reconstructor) syncLinenum(out *obuf.Buffer, m linemarker.Marker) error {
	frame := r.stack.Top()
	if m.Line < frame.Line {
		diff := frame.Line - m.Line
		if err := out.StripNewlines(diff, r.guard); err != nil {
			return &Error{Kind: GuardViolation, Detail: err.Error()}
		}
	} else {
		for frame.Line < m.Line {
			out.WriteByte('\n')
			frame.Line++
		}
	}
	frame.Line = m.Line
	return nil
}

func (r *reconstructor) onLine(out *obuf.Buffer, line []byte) error {
	if r.skip > 0 {
		return nil
	}
	out.Write(line)
	frame := r.stack.Top()
	if frame.Line == math.MaxUint64 {
		return &Error{Kind: LineOverflow}
	}
	frame.Line++
	return nil
}
