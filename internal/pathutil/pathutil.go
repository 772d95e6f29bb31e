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

// Package pathutil implements the small filesystem-facing helpers the
// orchestrator needs: $PATH resolution of the compiler/preprocessor
// binaries, side-car path derivation, and regular-file gating.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// LocateFile resolves name to an executable path the way a shell
// would: if name already contains a path separator (absolute or
// relative), it is checked directly; otherwise each directory in PATH
// is tried in order. Returns ("", false) if nothing executable is
// found.
func LocateFile(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return false
	}
	return fi.Mode()&0111 != 0
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// SidecarPath derives the side-car path from the -o output path and
// the canonical input filename: strip the output's extension, append
// ".pp", then append the input's extension verbatim (or ".unk", if
// the input has none) — e.g. outPath "build/foo.o", inputFile
// "src/foo.c" yields "build/foo.pp.c".
func SidecarPath(outPath, inputFile string) string {
	ext := extOf(inputFile)
	if ext == "" {
		ext = ".unk"
	}
	return stripExt(outPath) + ".pp" + ext
}

// stripExt removes the final extension from s, where "extension"
// means the suffix starting at the last '.' that occurs after the
// last path separator. A dotless path (or one whose last dot precedes
// the last separator) is returned unchanged.
func stripExt(s string) string {
	ext := extOf(s)
	return s[:len(s)-len(ext)]
}

func extOf(s string) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return ""
	}
	sep := strings.LastIndexByte(s, filepath.Separator)
	if sep > dot {
		return ""
	}
	return s[dot:]
}
