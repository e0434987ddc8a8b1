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

package status

import (
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// 🎨 ApplyColorMode configures colored output globally, for both the
// per-file formatter and the pterm summary printers. "auto" keeps the
// libraries' own terminal detection.
func ApplyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
		pterm.EnableColor()
	case "off":
		color.NoColor = true
		pterm.DisableColor()
	}
}
