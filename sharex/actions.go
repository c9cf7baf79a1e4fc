// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sharex

import "strings"

// Action is a ShareX command-line switch exposed as a command.
type Action struct {
	// Name is the CLI command name, e.g. "region".
	Name string
	// Flag is the ShareX switch, e.g. "-RectangleRegion".
	Flag string
	// Title is the human-readable name.
	Title string
	// Step describes the invocation step in progress output.
	Step string
	// Success is reported once ShareX accepted the switch.
	Success string
}

// Actions lists the supported ShareX switches.
var Actions = []Action{
	{Name: "region", Flag: "-RectangleRegion", Title: "Capture Region", Step: "Start region capture", Success: "Region capture triggered"},
	{Name: "window", Flag: "-CustomWindow", Title: "Capture Window", Step: "Start window capture", Success: "Window capture (picker) triggered"},
	{Name: "active-window", Flag: "-ActiveWindow", Title: "Capture Active Window", Step: "Start active window capture", Success: "Active window capture triggered"},
	{Name: "fullscreen", Flag: "-PrintScreen", Title: "Capture Fullscreen", Step: "Start fullscreen capture", Success: "Fullscreen capture triggered"},
	{Name: "open", Flag: "-OpenMainWindow", Title: "Open Main Window", Step: "Open ShareX", Success: "ShareX opened"},
}

// ResolveStep is the progress label for the resolution step.
const ResolveStep = "Resolve ShareX path"

// LookupAction finds an action by command name or ShareX switch, ignoring case.
func LookupAction(name string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(a.Name, name) || strings.EqualFold(a.Flag, name) {
			return a, true
		}
	}
	return Action{}, false
}
