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

import (
	"gitlab.com/tozd/go/errors"
)

// ASCII codes of the characters the engine cares about. The engine operates
// on raw bytes, so Unicode decoding and encoding is avoided entirely.
const (
	carriageReturn byte = '\r'
	lineFeed       byte = '\n'
	space          byte = ' '
	tab            byte = '\t'
	verticalTab    byte = 0x0B // '\v' in C, C++, Java and Python
	formFeed       byte = 0x0C // '\f' in C, C++, Java and Python
)

// 📐 Marker identifies one of the three recognized new line markers.
type Marker int

const (
	// MarkerLinux is a single line feed character '\n'.
	MarkerLinux Marker = iota

	// MarkerMacOS is a single carriage return character '\r'.
	MarkerMacOS

	// MarkerWindows is a carriage return character followed by a line
	// feed character.
	MarkerWindows
)

var (
	linuxBytes   = []byte{lineFeed}
	macOSBytes   = []byte{carriageReturn}
	windowsBytes = []byte{carriageReturn, lineFeed}
)

// Bytes returns the byte sequence of the marker. Callers must not modify
// the returned slice.
func (m Marker) Bytes() []byte {
	switch m {
	case MarkerMacOS:
		return macOSBytes
	case MarkerWindows:
		return windowsBytes
	default:
		return linuxBytes
	}
}

// String returns the visible escape notation of the marker, used in change
// descriptions and error messages.
func (m Marker) String() string {
	switch m {
	case MarkerMacOS:
		return `\r`
	case MarkerWindows:
		return `\r\n`
	default:
		return `\n`
	}
}

// 🎛️ MarkerMode selects the new line marker to use in output files.
type MarkerMode int

const (
	// MarkerModeAuto uses the most common marker in each individual file.
	MarkerModeAuto MarkerMode = iota

	// MarkerModeLinux forces '\n'.
	MarkerModeLinux

	// MarkerModeMacOS forces '\r'.
	MarkerModeMacOS

	// MarkerModeWindows forces '\r\n'.
	MarkerModeWindows
)

// String returns the command line spelling of the mode.
func (m MarkerMode) String() string {
	switch m {
	case MarkerModeLinux:
		return "linux"
	case MarkerModeMacOS:
		return "macos"
	case MarkerModeWindows:
		return "windows"
	default:
		return "auto"
	}
}

// ParseMarkerMode parses the command line spelling of a marker mode.
func ParseMarkerMode(s string) (MarkerMode, error) {
	switch s {
	case "auto":
		return MarkerModeAuto, nil
	case "linux":
		return MarkerModeLinux, nil
	case "macos":
		return MarkerModeMacOS, nil
	case "windows":
		return MarkerModeWindows, nil
	default:
		return MarkerModeAuto, errors.Errorf("unknown new line marker %q (expected auto, linux, macos or windows)", s)
	}
}

// Resolve picks the concrete marker to use for output. Fixed modes map
// directly; auto mode detects the most common marker in the input.
func (m MarkerMode) Resolve(input []byte) Marker {
	switch m {
	case MarkerModeLinux:
		return MarkerLinux
	case MarkerModeMacOS:
		return MarkerMacOS
	case MarkerModeWindows:
		return MarkerWindows
	default:
		return DetectMarker(input)
	}
}

// DetectMarker computes the most common new line marker in the input. A
// carriage return immediately followed by a line feed counts as a single
// Windows marker. Ties are broken by preferring Linux to Windows to MacOS,
// so input without any markers resolves to Linux.
func DetectMarker(input []byte) Marker {
	var linuxCount, macOSCount, windowsCount int

	for i := 0; i < len(input); i++ {
		switch input[i] {
		case carriageReturn:
			if i+1 < len(input) && input[i+1] == lineFeed {
				windowsCount++
				// The Windows marker consists of two bytes. Skip the
				// extra byte.
				i++
			} else {
				macOSCount++
			}
		case lineFeed:
			linuxCount++
		}
	}

	if macOSCount > windowsCount && macOSCount > linuxCount {
		return MarkerMacOS
	}
	if windowsCount > linuxCount {
		return MarkerWindows
	}
	return MarkerLinux
}
