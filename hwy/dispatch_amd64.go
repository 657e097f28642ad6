// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	switch {
	case hasLevel(DispatchAVX512):
		setLevel(DispatchAVX512)
	case hasLevel(DispatchAVX2):
		setLevel(DispatchAVX2)
	default:
		// SSE2 is baseline for amd64.
		setLevel(DispatchSSE2)
	}
}

func hasLevel(level DispatchLevel) bool {
	switch level {
	case DispatchSSE2:
		return true
	case DispatchAVX2:
		return cpu.X86.HasAVX2 && cpu.X86.HasFMA
	case DispatchAVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
	}
	return false
}
