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

package childrun

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
)

func TestRunCatRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	in := bytes.Repeat([]byte("x"), 1<<20)
	out, err := Run(context.Background(), ChildCtx{
		Argv:     []string{"cat", "-"},
		Mode:     Both,
		StdinBuf: in,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(in))
	}
}

func TestRunNoStdin(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := Run(context.Background(), ChildCtx{
		Argv: []string{"sh", "-c", "echo -n Hello"},
		Mode: FromChild,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(out) != "Hello" {
		t.Fatalf("out = %q; want %q", out, "Hello")
	}
}

func TestRunNonzeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	_, err := Run(context.Background(), ChildCtx{
		Argv: []string{"sh", "-c", "exit 3"},
		Mode: None,
	})
	if err == nil {
		t.Fatal("expected error on nonzero exit")
	}
	if got := ExitStatus(err); got != 3 {
		t.Errorf("ExitStatus = %d; want 3", got)
	}
}

func TestRunMissingBinary(t *testing.T) {
	_, err := Run(context.Background(), ChildCtx{
		Argv: []string{"/no/such/binary-xyz"},
		Mode: None,
	})
	if err == nil {
		t.Fatal("expected error when binary cannot be started")
	}
}

func TestExitStatusNil(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Errorf("ExitStatus(nil) = %d; want 0", got)
	}
}
