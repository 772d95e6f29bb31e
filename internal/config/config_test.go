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

package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("REAL_CC", "")
	t.Setenv("REAL_CPP", "")
	t.Setenv("X_NO_I_FILES", "")
	c := FromEnv()
	if c.RealCC != "" || c.RealCPP != "" || c.NoIFiles {
		t.Errorf("FromEnv() = %+v; want zero value", c)
	}
	if got := c.CompilerFor(); got != "gcc" {
		t.Errorf("CompilerFor() = %q; want gcc", got)
	}
	if got := c.PreprocessorFor(); got != "cpp" {
		t.Errorf("PreprocessorFor() = %q; want cpp", got)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REAL_CC", "/opt/cc")
	t.Setenv("REAL_CPP", "/opt/cpp")
	t.Setenv("X_NO_I_FILES", "1")
	c := FromEnv()
	if c.RealCC != "/opt/cc" {
		t.Errorf("RealCC = %q; want /opt/cc", c.RealCC)
	}
	if c.RealCPP != "/opt/cpp" {
		t.Errorf("RealCPP = %q; want /opt/cpp", c.RealCPP)
	}
	if !c.NoIFiles {
		t.Error("NoIFiles = false; want true")
	}
	if got := c.CompilerFor(); got != "/opt/cc" {
		t.Errorf("CompilerFor() = %q; want /opt/cc", got)
	}
	if got := c.PreprocessorFor(); got != "/opt/cpp" {
		t.Errorf("PreprocessorFor() = %q; want /opt/cpp", got)
	}
}
