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

package obuf

import "testing"

func TestWriteAndBytes(t *testing.T) {
	var b Buffer
	b.WriteString("foo\n")
	b.WriteByte('x')
	b.Printf("%d", 42)
	if got, want := string(b.Bytes()), "foo\nx42"; got != want {
		t.Errorf("Bytes() = %q; want %q", got, want)
	}
}

func TestStripNewlinesCollapsesTail(t *testing.T) {
	var b Buffer
	b.WriteString("foo\nbar\n")
	if err := b.StripNewlines(1, 0); err != nil {
		t.Fatalf("StripNewlines: %v", err)
	}
	if got, want := string(b.Bytes()), "foo\nbar "; got != want {
		t.Errorf("Bytes() = %q; want %q", got, want)
	}
}

func TestStripNewlinesGuardViolation(t *testing.T) {
	var b Buffer
	b.WriteString("foo\nbar")
	guard := b.Len()
	b.WriteString("\nbaz")
	if err := b.StripNewlines(2, guard); err != ErrGuardViolation {
		t.Fatalf("StripNewlines = %v; want ErrGuardViolation", err)
	}
}

func TestStripNewlinesRespectsGuardBoundary(t *testing.T) {
	var b Buffer
	b.WriteString("a\n")
	guard := b.Len()
	b.WriteString("b\nc\n")
	if err := b.StripNewlines(2, guard); err != nil {
		t.Fatalf("StripNewlines: %v", err)
	}
	if got, want := string(b.Bytes()), "a\nb c "; got != want {
		t.Errorf("Bytes() = %q; want %q", got, want)
	}
}
