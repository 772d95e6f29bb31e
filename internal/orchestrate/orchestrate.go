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

// Package orchestrate implements the end-to-end compile pipeline:
// capture preprocessed text, reconstruct it into a side-car, then
// re-drive the compiler from the captured text to produce the real
// artifact.
package orchestrate

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/line-marker/ccshim/internal/argvparse"
	"github.com/line-marker/ccshim/internal/childrun"
	"github.com/line-marker/ccshim/internal/config"
	"github.com/line-marker/ccshim/internal/langmap"
	"github.com/line-marker/ccshim/internal/pathutil"
	"github.com/line-marker/ccshim/internal/reconstruct"
	"github.com/line-marker/ccshim/internal/wraplog"
)

// Status classifies how a Run call concluded, letting cmd/ccwrap map
// it onto the shim's exit codes without orchestrate importing syscall
// itself.
type Status int

const (
	// OK: compilation (and, unless suppressed, side-car writing)
	// succeeded.
	OK Status = iota
	// LocateFailed: the compiler or preprocessor binary named by
	// Config could not be found on PATH.
	LocateFailed
	// ChildFailed: a passthrough or capture child process failed.
	ChildFailed
	// SidecarFailed: side-car path derivation or writing failed at
	// the Orchestrator level. Run never returns it: a side-car
	// problem downgrades to a logged skip, and a failed compilation
	// is reported as ChildFailed.
	SidecarFailed
)

// Run drives one compiler invocation through the full pipeline. argv0
// is the name the shim itself was invoked as, used only to attribute
// log and error output; args is argv[1:].
func Run(ctx context.Context, argv0 string, args []string, cfg config.Config) Status {
	cc := cfg.CompilerFor()
	cpp := cfg.PreprocessorFor()

	ccPath, ok := pathutil.LocateFile(cc)
	if !ok {
		wraplog.Error(argv0, 0, "could not locate compiler %q", cc)
		return LocateFailed
	}
	cppPath, ok := pathutil.LocateFile(cpp)
	if !ok {
		wraplog.Error(argv0, 0, "could not locate preprocessor %q", cpp)
		return LocateFailed
	}

	// Step 1: classify argv. A parse failure, or an -E invocation
	// (the caller is already asking to preprocess), falls back to a
	// direct passthrough with no side-car.
	ci, err := argvparse.ParseCompilerArgv(args)
	if err != nil {
		wraplog.Logf("argv classification failed, falling back to passthrough: %v", err)
		return passthrough(ctx, ccPath, args)
	}

	// Step 2: capture preprocessed text. At this point ci.Argv still
	// contains the input file argument verbatim (ResolveInputFile,
	// step 3, hasn't run yet), so the capture invocation sees
	// exactly the file the caller named.
	filtered := lo.Filter(ci.Argv, func(a string, _ int) bool { return a != "" })
	captureArgv := append([]string{cppPath}, filtered...)
	captureArgv = append(captureArgv, "-E", "-o-")
	preprocessed, err := childrun.Run(ctx, childrun.ChildCtx{
		Argv: captureArgv,
		Mode: childrun.FromChild,
	})
	if err != nil {
		wraplog.Error(argv0, 0, "preprocessor capture failed: %v", err)
		return ChildFailed
	}

	// Step 3: learn the canonical input filename and strip it from
	// the passthrough argv (the second invocation re-appends it via
	// stdin, not via argv).
	resolveErr := argvparse.ResolveInputFile(ci, preprocessed)
	if resolveErr != nil {
		wraplog.Logf("could not resolve input filename, skipping side-car: %v", resolveErr)
	}

	// Step 5: re-drive the compiler from the captured text. This must
	// run before the side-car write: the output path named by -o does
	// not exist yet, and the side-car's regular-file gate needs to
	// stat it after the real artifact has been produced.
	finalArgv := buildFinalArgv(ccPath, ci)
	_, err = childrun.Run(ctx, childrun.ChildCtx{
		Argv:     finalArgv,
		Mode:     childrun.ToChild,
		StdinBuf: preprocessed,
	})
	if err != nil {
		wraplog.Error(argv0, 0, "compile failed: %v", err)
		return ChildFailed
	}

	// Step 4: write the side-car now that the real output file exists.
	if resolveErr == nil && !cfg.NoIFiles {
		writeSidecar(argv0, ci, preprocessed)
	}
	return OK
}

func passthrough(ctx context.Context, ccPath string, args []string) Status {
	argv := append([]string{ccPath}, args...)
	_, err := childrun.Run(ctx, childrun.ChildCtx{Argv: argv, Mode: childrun.None})
	if err != nil {
		return ChildFailed
	}
	return OK
}

func writeSidecar(argv0 string, ci *argvparse.CommInfo, preprocessed []byte) {
	if !pathutil.IsRegularFile(ci.InputFile) || !pathutil.IsRegularFile(ci.OutFile) {
		wraplog.Logf("skipping side-car: input or output is not a regular file")
		return
	}

	out, err := reconstruct.Reconstruct(preprocessed)
	if err != nil {
		wraplog.Logf("reconstruction failed, skipping side-car: %v", err)
		return
	}

	sidecarPath := pathutil.SidecarPath(ci.OutFile, ci.InputFile)
	f, err := os.OpenFile(sidecarPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		// Already exists, or unwritable: skip silently rather than
		// fail a compile over a side-car write.
		return
	}
	defer f.Close()

	n, err := f.Write(out.Bytes())
	if err != nil || n != len(out.Bytes()) {
		wraplog.Error(argv0, 0, "partial side-car write to %s: %v", sidecarPath, err)
		f.Close()
		os.Remove(sidecarPath)
	}
}

func buildFinalArgv(ccPath string, ci *argvparse.CommInfo) []string {
	argv := []string{ccPath}
	if lang, ok := langmap.Lookup(ci.InputFile); ok {
		argv = append(argv, "-x", lang)
	}
	argv = append(argv, ci.Argv...)
	argv = append(argv, "-fpreprocessed", fmt.Sprintf("-%c", ci.Mode), "-o", ci.OutFile, "-")
	return argv
}
