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

package cfv

import "errors"

var (
	// ErrBackendUnavailable indicates a library or device cannot be exercised.
	ErrBackendUnavailable = errors.New("cfv: backend unavailable")
	// ErrUnsupportedFunction indicates a library does not provide a function.
	ErrUnsupportedFunction = errors.New("cfv: unsupported function")
	// ErrInvalidSize indicates a negative sampling size.
	ErrInvalidSize = errors.New("cfv: sampling sizes must be non-negative")
	// ErrShapeMismatch indicates a backend returned an array of the wrong shape.
	ErrShapeMismatch = errors.New("cfv: result shape does not match samples")
)
