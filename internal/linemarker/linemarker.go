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

// Package linemarker scans the `# <linenum> "<filename>" {<flag>...}`
// directives a C preprocessor emits in its -E output.
package linemarker

import (
	"fmt"
	"math"
)

// Width is the bit width of a Flags value. The grammar allows flag
// values 1..Width; Width must be at least 8 to hold the four flags gcc
// actually emits plus headroom for future ones.
const Width = 8

// Flags is a bitset over flag values 1..Width, flag k stored at bit k-1.
type Flags uint8

// Has reports whether flag value k (1-based, as it appears on the wire)
// is set.
func (f Flags) Has(k int) bool {
	if k < 1 || k > Width {
		return false
	}
	return f&(1<<uint(k-1)) != 0
}

func (f *Flags) set(k int) {
	*f |= 1 << uint(k-1)
}

// NewFile reports flag 1: "entering new file".
func (f Flags) NewFile() bool { return f.Has(1) }

// ReturnFile reports flag 2: "returning to previous file".
func (f Flags) ReturnFile() bool { return f.Has(2) }

// SystemHeader reports flag 3: the following code comes from a system header.
func (f Flags) SystemHeader() bool { return f.Has(3) }

// ExternC reports flag 4: the following code should be treated as extern "C".
func (f Flags) ExternC() bool { return f.Has(4) }

// Marker is one parsed linemarker.
type Marker struct {
	Line     uint64
	Filename string
	Flags    Flags
}

// ParseError is returned by Scan on malformed input. It never carries
// partially-built state from the caller's perspective: Scan releases
// any intermediate filename allocation before returning it.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("linemarker: parse error at offset %d: %s", e.Offset, e.Reason)
}

type state int

const (
	expectHash state = iota
	expectLinenum
	expectFilename
	expectFlag
	stateFail
)

// Scan parses one linemarker starting at data[pos], which must point at
// the line's first byte (after any preceding newline has been
// consumed). It returns the parsed Marker and the offset of the
// terminating newline (or len(data) on EOF, if the line has no
// trailing newline). On failure it returns a non-nil error and the
// returned offset is meaningless.
//
// Scan does not itself decide whether data[pos] begins a linemarker at
// all versus a normal source line; callers should only invoke it when
// data[pos] == '#' is plausible (whitespace-prefixed '#' is valid), and
// treat EXPECT_HASH failure as "this is not a linemarker".
func Scan(data []byte, pos int) (Marker, int, error) {
	limit := len(data)
	var m Marker
	st := expectHash
	p := pos

	for st != stateFail && !isEOL(data, p, limit) {
		// Skip runs of non-newline whitespace between tokens.
		skip := p
		for skip < limit && data[skip] != '\n' && isWS(data[skip]) {
			skip++
		}
		if skip != p {
			p = skip
			continue
		}

		switch st {
		case expectHash:
			if data[p] != '#' {
				st = stateFail
				break
			}
			st = expectLinenum
			p++
			continue

		case expectLinenum:
			ln, next, ok := parseUint(data, p, limit)
			if !ok {
				st = stateFail
				break
			}
			m.Line = ln
			st = expectFilename
			p = next
			continue

		case expectFilename:
			name, next, ok := parseQuoted(data, p, limit)
			if !ok {
				st = stateFail
				break
			}
			m.Filename = name
			st = expectFlag
			p = next
			continue

		case expectFlag:
			flag, next, ok := parseUint(data, p, limit)
			if !ok {
				st = stateFail
				break
			}
			if flag < 1 || flag > Width {
				st = stateFail
				break
			}
			m.Flags.set(int(flag))
			p = next
			continue
		}

		p++
	}

	if st != expectFlag {
		return Marker{}, 0, &ParseError{Offset: pos, Reason: "malformed linemarker"}
	}
	return m, p, nil
}

func isEOL(data []byte, p, limit int) bool {
	return p >= limit || data[p] == '\n'
}

func isWS(c byte) bool {
	switch c {
	case ' ', '\f', '\r', '\t', '\v':
		return true
	}
	return false
}

// parseUint parses a run of decimal digits with no leading sign,
// requiring that whatever follows is whitespace, newline, or EOF.
// Overflow of uint64 is a parse failure.
func parseUint(data []byte, p, limit int) (uint64, int, bool) {
	start := p
	var val uint64
	for p < limit && data[p] != '\n' && data[p] >= '0' && data[p] <= '9' {
		d := uint64(data[p] - '0')
		if val > (math.MaxUint64-d)/10 {
			return 0, 0, false
		}
		val = val*10 + d
		p++
	}
	if p == start {
		return 0, 0, false
	}
	if !isEOL(data, p, limit) && !isWS(data[p]) {
		return 0, 0, false
	}
	return val, p, true
}

// parseQuoted parses a '"'-delimited string starting at data[p],
// honoring '\c' escapes where the escaped character is kept verbatim.
// A backslash immediately before EOL is a parse failure.
func parseQuoted(data []byte, p, limit int) (string, int, bool) {
	if p >= limit || data[p] != '"' {
		return "", 0, false
	}
	p++
	start := p
	buf := make([]byte, 0, 16)
	for p < limit && data[p] != '\n' && data[p] != '"' {
		if data[p] == '\\' {
			p++
			if isEOL(data, p, limit) {
				return "", 0, false
			}
			buf = append(buf, data[p])
			p++
			continue
		}
		buf = append(buf, data[p])
		p++
	}
	if isEOL(data, p, limit) {
		return "", 0, false
	}
	_ = start
	return string(buf), p + 1, true
}
