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

package hwy

import (
	"fmt"
	"os"
)

// DispatchLevel identifies an instruction family and its vector width.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

var levelNames = [...]string{"scalar", "sse2", "avx2", "avx512", "neon"}

// Levels lists every dispatch level, narrowest first.
var Levels = []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON}

func (l DispatchLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("DispatchLevel(%d)", int(l))
	}
	return levelNames[l]
}

// Width returns the vector width of l in bytes. Scalar mode uses 16-byte
// vectors like sse2 and neon.
func (l DispatchLevel) Width() int {
	switch l {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	}
	return 16
}

// ParseLevel returns the level named name.
func ParseLevel(name string) (DispatchLevel, bool) {
	for i, n := range levelNames {
		if n == name {
			return DispatchLevel(i), true
		}
	}
	return DispatchScalar, false
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the level detected at init.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector width in bytes at the current level.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the name of the current level.
func CurrentName() string { return currentName }

// Available reports whether the host CPU supports level. Scalar is always
// available, including under HWY_NO_SIMD.
func Available(level DispatchLevel) bool {
	if level == DispatchScalar {
		return true
	}
	if NoSimdEnv() {
		return false
	}
	return hasLevel(level)
}

// NoSimdEnv reports whether HWY_NO_SIMD is set to a non-empty value.
func NoSimdEnv() bool {
	return os.Getenv("HWY_NO_SIMD") != ""
}

func setLevel(l DispatchLevel) {
	currentLevel = l
	currentWidth = l.Width()
	currentName = l.String()
}

func setScalarMode() { setLevel(DispatchScalar) }

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}
