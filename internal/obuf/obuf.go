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

// Package obuf implements the reconstructor's output buffer: a
// contiguous, doubling-growth byte buffer with a small-buffer
// optimization (an inline bootstrap array to avoid a heap allocation
// for the common small-output case) and an explicit "guard" operation
// used to collapse trailing newlines without ever touching bytes below
// a caller-supplied offset.
package obuf

import (
	"errors"
	"fmt"
)

// ErrGuardViolation is returned by StripNewlines when satisfying the
// request would require rewriting a byte at an offset below guard.
var ErrGuardViolation = errors.New("obuf: newline strip would cross guard")

// Buffer is a dynamic byte buffer. The zero value is ready to use.
type Buffer struct {
	buf       []byte
	bootstrap [64]byte
}

func (b *Buffer) lazyInit() {
	if b.buf == nil {
		b.buf = b.bootstrap[:0]
	}
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.lazyInit()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.lazyInit()
	b.buf = append(b.buf, c)
	return nil
}

// WriteString appends s verbatim.
func (b *Buffer) WriteString(s string) (int, error) {
	b.lazyInit()
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Printf appends a formatted string. It never fails; formatting
// failures in fmt are not modeled as buffer errors, matching the
// contract that growth failure is fatal (handled by Go's allocator,
// not by this type).
func (b *Buffer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(b, format, args...)
}

// Bytes returns the buffer's current contents. The slice is only valid
// until the next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len reports the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// StripNewlines walks backward from the end of the buffer toward
// offset guard (exclusive lower bound: bytes at index < guard are
// never touched), replacing '\n' bytes with ' ' until n of them have
// been replaced. It returns ErrGuardViolation if it reaches guard
// first, leaving the buffer unmodified up to that point (bytes already
// rewritten before the violation was detected stay rewritten — the
// caller treats the whole reconstruction as failed in that case, so
// this is not observable).
func (b *Buffer) StripNewlines(n uint64, guard int) error {
	p := len(b.buf)
	for n > 0 {
		if p <= guard {
			return ErrGuardViolation
		}
		p--
		if b.buf[p] == '\n' {
			b.buf[p] = ' '
			n--
		}
	}
	return nil
}
