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

// Package wraplog provides the shim's logging primitives (LogAlways,
// Logf, Warn, Error) on top of glog.
package wraplog

import (
	"github.com/golang/glog"

	"github.com/line-marker/ccshim/internal/config"
)

// LogAlways unconditionally emits an informational line.
func LogAlways(f string, a ...interface{}) {
	glog.Infof(f, a...)
}

// Logf emits an informational line only when -ccshim_log is set.
func Logf(f string, a ...interface{}) {
	if !config.LogFlag {
		return
	}
	glog.Infof(f, a...)
}

// Warn reports a non-fatal condition attributed to a source location.
func Warn(filename string, lineno int, f string, a ...interface{}) {
	glog.Warningf("%s:%d: warning: "+f, append([]interface{}{filename, lineno}, a...)...)
}

// Error reports a fatal condition attributed to a source location. It
// leaves the decision to exit to the caller: the shim's exit codes are
// chosen by cmd/ccwrap, not by the logging package.
func Error(filename string, lineno int, f string, a ...interface{}) {
	glog.Errorf("%s:%d: "+f, append([]interface{}{filename, lineno}, a...)...)
}
