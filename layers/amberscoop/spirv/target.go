// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package spirv disassembles SPIR-V modules into the textual assembly form
// embedded in AMBER scripts.
package spirv

import (
	"fmt"

	naga "github.com/gogpu/naga/spirv"
)

// TargetEnv is the universal SPIR-V environment a module was built for.
type TargetEnv struct {
	Version naga.Version
}

func (e TargetEnv) String() string {
	return fmt.Sprintf("spv%d.%d", e.Version.Major, e.Version.Minor)
}

var knownVersions = []naga.Version{
	naga.Version1_0,
	{Major: 1, Minor: 1},
	{Major: 1, Minor: 2},
	naga.Version1_3,
	naga.Version1_4,
	naga.Version1_5,
	naga.Version1_6,
}

// TargetEnvFromVersion returns the environment for the version word of a
// SPIR-V header, which has the layout 0x00MMmm00.
func TargetEnvFromVersion(word uint32) (TargetEnv, bool) {
	if word&0xff0000ff != 0 {
		return TargetEnv{}, false
	}
	v := naga.Version{Major: uint8(word >> 16), Minor: uint8(word >> 8)}
	for _, known := range knownVersions {
		if v == known {
			return TargetEnv{v}, true
		}
	}
	return TargetEnv{}, false
}
