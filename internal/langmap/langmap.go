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

// Package langmap maps a source file's extension to the `-x` language
// token the second compiler invocation needs, per the fixed table a
// real compiler driver consults internally.
package langmap

import "strings"

var byExt = map[string]string{
	".c":   "cpp-output",
	".i":   "cpp-output",
	".s":   "assembler",
	".S":   "assembler",
	".sx":  "assembler",
	".cc":  "c++-cpp-output",
	".ii":  "c++-cpp-output",
	".cp":  "c++-cpp-output",
	".cxx": "c++-cpp-output",
	".cpp": "c++-cpp-output",
	".CPP": "c++-cpp-output",
	".c++": "c++-cpp-output",
	".C":   "c++-cpp-output",
}

// Lookup returns the `-x` language token for filename's extension and
// true, or ("", false) if the extension is unrecognized — in which
// case the caller should omit -x entirely rather than guess.
func Lookup(filename string) (string, bool) {
	ext := extOf(filename)
	lang, ok := byExt[ext]
	return lang, ok
}

func extOf(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	slash := strings.LastIndexAny(filename, `/\`)
	if slash > i {
		return ""
	}
	return filename[i:]
}
