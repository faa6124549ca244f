// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"plugkit-cli/pkg/types"
)

const (
	// FileName is the manifest file written at the project root.
	FileName = "manifest.json"

	// MainFilePath is the compiled main bundle referenced by the manifest.
	MainFilePath = "build/main.js"

	// UIFilePath is the compiled UI bundle referenced by the manifest.
	UIFilePath = "build/ui.js"
)

type (
	// Manifest is the plugin descriptor consumed by the host. Nil pointers,
	// nil slices and false booleans mark optional keys that are left out of
	// the serialized document.
	Manifest struct {
		API                    string
		EditorType             []types.EditorType
		Name                   string
		ID                     string
		Main                   string
		UI                     *string
		Parameters             []Parameter
		ParameterOnly          bool
		Menu                   []MenuItem
		RelaunchButtons        []RelaunchButton
		EnableProposedAPI      bool
		EnablePrivatePluginAPI bool
		Build                  *string
	}

	// MenuItem is a manifest menu entry: a separator, or a named item that
	// runs a command or opens a sub-menu.
	MenuItem struct {
		Separator     bool
		Name          string
		Command       *string
		Parameters    []Parameter
		ParameterOnly bool
		Menu          []MenuItem
	}

	// Parameter is a manifest command parameter.
	Parameter struct {
		Key           string
		Name          string
		Description   *string
		AllowFreeform bool
		Optional      bool
	}

	// RelaunchButton is a manifest relaunch button.
	RelaunchButton struct {
		Name              string
		Command           string
		MultipleSelection bool
	}
)

// MarshalJSON encodes the manifest in its canonical minified form.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return encodeCompact(m.Document())
}
