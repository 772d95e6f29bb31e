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

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func diffStrings(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("output mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func TestReconstructTrivialRoot(t *testing.T) {
	input := "# 1 \"a.c\"\nint x;\n"
	out, err := Reconstruct([]byte(input))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	diffStrings(t, string(out.Bytes()), "int x;\n")
}

func TestReconstructIncludeAndPop(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"int a;\n" +
		"# 1 \"b.h\" 1\n" +
		"int b;\n" +
		"# 3 \"a.c\" 2\n" +
		"int c;\n"
	out, err := Reconstruct([]byte(input))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	diffStrings(t, string(out.Bytes()), "int a;\n\nint c;\n")
}

func TestReconstructMacroInducedCollapse(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"foo\n" +
		"bar\n" +
		"# 2 \"a.c\"\n" +
		"baz\n"
	out, err := Reconstruct([]byte(input))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	diffStrings(t, string(out.Bytes()), "foo\nbar baz\n")
}

func TestReconstructMalformedInitialMarker(t *testing.T) {
	input := "# 5 \"a.c\"\nstuff\n"
	_, err := Reconstruct([]byte(input))
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T); want *Error", err, err)
	}
	if rerr.Kind != MalformedInitialMarker {
		t.Errorf("Kind = %v; want MalformedInitialMarker", rerr.Kind)
	}
}

func TestReconstructRetMismatch(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"# 1 \"b.h\" 1\n" +
		"# 1 \"c.h\" 2\n"
	_, err := Reconstruct([]byte(input))
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T); want *Error", err, err)
	}
	if rerr.Kind != RetMismatch {
		t.Errorf("Kind = %v; want RetMismatch", rerr.Kind)
	}
}

func TestReconstructSkipUnderflowOnPopPastRoot(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"int a;\n" +
		"# 2 \"a.c\" 2\n"
	_, err := Reconstruct([]byte(input))
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T); want *Error", err, err)
	}
	if rerr.Kind != SkipUnderflow {
		t.Errorf("Kind = %v; want SkipUnderflow", rerr.Kind)
	}
}

// TestReconstructNestedIncludeIsolation is property P5: bytes from any
// included file whose filename differs from the root's never appear in
// the output, at arbitrary nesting depth.
func TestReconstructNestedIncludeIsolation(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"before\n" +
		"# 1 \"b.h\" 1\n" +
		"in b\n" +
		"# 1 \"c.h\" 1\n" +
		"in c\n" +
		"# 2 \"b.h\" 2\n" +
		"# 3 \"a.c\" 2\n" +
		"after\n"
	out, err := Reconstruct([]byte(input))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	diffStrings(t, string(out.Bytes()), "before\n\nafter\n")
}

// TestReconstructGuardViolation is property P2: a marker may never ask
// to rewrite a byte at or below the last push/pop boundary.
func TestReconstructGuardViolation(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"AAA\n" +
		"# 1 \"b.h\" 1\n" +
		"# 3 \"a.c\" 2\n" +
		"X\n" +
		"# 1 \"a.c\"\n"
	_, err := Reconstruct([]byte(input))
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T); want *Error", err, err)
	}
	if rerr.Kind != GuardViolation {
		t.Errorf("Kind = %v; want GuardViolation, detail=%s", rerr.Kind, rerr.Detail)
	}
}

// TestReconstructFrameBalance is property P3: a balanced sequence of
// pushes and pops returns the stack to depth 1 and leaves no trailing
// skip state, so root content resumes normally after the last pop.
func TestReconstructFrameBalance(t *testing.T) {
	input := "# 1 \"a.c\"\n" +
		"one\n" +
		"# 1 \"b.h\" 1\n" +
		"# 3 \"a.c\" 2\n" +
		"two\n"
	out, err := Reconstruct([]byte(input))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	diffStrings(t, string(out.Bytes()), "one\n\ntwo\n")
}
