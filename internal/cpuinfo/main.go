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

// Package main prints the CPU features detected by Go, the dispatch levels
// and the devices of every backend with their probe results.
package main

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/cfv/backend"
	"github.com/ajroetker/go-cfv/hwy"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	fmt.Println()
	fmt.Println("=== dispatch levels ===")
	for _, l := range hwy.Levels {
		fmt.Printf("  %-7s %2d bytes  available: %v\n", l, l.Width(), hwy.Available(l))
	}

	fmt.Println()
	printBackends()
}

// printBackends probes exp and tan of every backend on every device.
func printBackends() {
	for _, name := range backend.Names() {
		lib, err := backend.Open(name)
		if err != nil {
			fmt.Printf("=== %s: %v\n", name, err)
			continue
		}
		version, _ := lib.Version()
		fmt.Printf("=== %s %s ===\n", lib.Name(), version)
		for _, device := range lib.Devices() {
			for _, fn := range []string{"exp", "tan"} {
				f := lib.Function(fn, cfv.Complex64, device)
				fmt.Printf("  %-7s %-4s %s  ftz: %v\n", device, fn, probeStatus(f.Probe()), f.FlushesSubnormals())
			}
		}
	}
}

func probeStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cfv.ErrBackendUnavailable):
		return "unavailable"
	case errors.Is(err, cfv.ErrUnsupportedFunction):
		return "unsupported"
	}
	return err.Error()
}

type feature struct {
	name string
	has  bool
}

func printFeatures(title string, features []feature) {
	fmt.Printf("=== %s ===\n", title)
	for _, f := range features {
		fmt.Printf("  %-12s %v\n", f.name, f.has)
	}
}

// printARM64Features lists the features neon dispatch depends on.
func printARM64Features() {
	printFeatures("golang.org/x/sys/cpu.ARM64", []feature{
		{"ASIMD", cpu.ARM64.HasASIMD},
		{"FP", cpu.ARM64.HasFP},
		{"SVE", cpu.ARM64.HasSVE},
		{"SVE2", cpu.ARM64.HasSVE2},
	})
}

// printAMD64Features lists the features sse2, avx2 and avx512 dispatch
// depend on.
func printAMD64Features() {
	printFeatures("golang.org/x/sys/cpu.X86", []feature{
		{"SSE2", cpu.X86.HasSSE2},
		{"AVX", cpu.X86.HasAVX},
		{"AVX2", cpu.X86.HasAVX2},
		{"FMA", cpu.X86.HasFMA},
		{"AVX512F", cpu.X86.HasAVX512F},
		{"AVX512BW", cpu.X86.HasAVX512BW},
		{"AVX512VL", cpu.X86.HasAVX512VL},
	})
}
