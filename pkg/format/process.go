// Copyright 2025 walteh LLC
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

package format

// Process runs the normalization in two passes. The first pass writes to a
// Counter, which detects whether anything changes and records the largest
// intermediate size the output reaches. Only when there are changes and the
// caller wants real output does the second pass run against a Buffer sized
// to that maximum, so clean files cost no allocation at all.
//
// The returned output is nil when checkOnly is set or when the input needs
// no changes.
func Process(input []byte, opts Options, checkOnly bool) ([]byte, []Change) {
	counter := NewCounter()
	changes := Transform(input, opts, counter)
	if checkOnly || len(changes) == 0 {
		return nil, changes
	}

	buffer := NewBuffer(counter.MaxPosition())
	Transform(input, opts, buffer)
	return buffer.Bytes(), changes
}
