// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"encoding/json"
	"slices"

	"plugkit-cli/pkg/types"
)

type (
	// Config is the normalized plugin configuration. Every field carries an
	// explicit value; nil pointers and nil slices mean "null", never
	// "unspecified".
	Config struct {
		APIVersion             string             `json:"apiVersion"`
		Build                  *string            `json:"build"`
		EditorType             []types.EditorType `json:"editorType"`
		EnablePrivatePluginAPI bool               `json:"enablePrivatePluginApi"`
		EnableProposedAPI      bool               `json:"enableProposedApi"`
		ID                     string             `json:"id"`
		RelaunchButtons        []RelaunchButton   `json:"relaunchButtons"`

		// Command holds the top-level command: name, main, ui, menu,
		// parameters and parameterOnly.
		Command
	}

	// Command is a normalized command. CommandID is nil exactly when Main
	// is nil.
	Command struct {
		CommandID     *string     `json:"commandId"`
		Main          *File       `json:"main"`
		Menu          []MenuEntry `json:"menu"`
		Name          string      `json:"name"`
		ParameterOnly bool        `json:"parameterOnly"`
		Parameters    []Parameter `json:"parameters"`
		UI            *File       `json:"ui"`
	}

	// MenuEntry is either a separator or a command.
	MenuEntry struct {
		Separator bool
		Command   *Command
	}

	// File identifies a source entry point and the exported handler in it.
	File struct {
		Handler string `json:"handler"`
		Src     string `json:"src"`
	}

	// Parameter is a normalized command parameter.
	Parameter struct {
		AllowFreeform bool    `json:"allowFreeform"`
		Description   *string `json:"description"`
		Key           string  `json:"key"`
		Name          string  `json:"name"`
		Optional      bool    `json:"optional"`
	}

	// RelaunchButton is a normalized relaunch button.
	RelaunchButton struct {
		CommandID         string `json:"commandId"`
		Main              File   `json:"main"`
		MultipleSelection bool   `json:"multipleSelection"`
		Name              string `json:"name"`
		UI                *File  `json:"ui"`
	}
)

// DefaultConfig returns the configuration used when a project has no
// package.json or an empty configuration block.
func DefaultConfig() *Config {
	main := File{Handler: DefaultHandler, Src: DefaultMainSrc}
	commandID := ResolveCommandID(main)
	return &Config{
		APIVersion:             APIVersion,
		Build:                  nil,
		EditorType:             []types.EditorType{types.EditorFigma},
		EnablePrivatePluginAPI: false,
		EnableProposedAPI:      false,
		ID:                     DefaultPluginName,
		RelaunchButtons:        nil,
		Command: Command{
			CommandID:     &commandID,
			Main:          &main,
			Menu:          nil,
			Name:          DefaultPluginName,
			ParameterOnly: false,
			Parameters:    nil,
			UI:            nil,
		},
	}
}

// NewSeparator returns a separator menu entry.
func NewSeparator() MenuEntry {
	return MenuEntry{Separator: true}
}

// NewCommandEntry wraps cmd as a menu entry.
func NewCommandEntry(cmd Command) MenuEntry {
	return MenuEntry{Command: &cmd}
}

// MarshalJSON writes {"separator": true} for separators and the command
// object otherwise.
func (e MenuEntry) MarshalJSON() ([]byte, error) {
	if e.Separator {
		return json.Marshal(struct {
			Separator bool `json:"separator"`
		}{true})
	}
	return json.Marshal(e.Command)
}

// HasBundle reports whether c, or any command reachable through its menu,
// declares a bundle of the given kind. Separators are skipped.
func (c *Command) HasBundle(kind BundleKind) bool {
	if c.bundle(kind) != nil {
		return true
	}
	return slices.ContainsFunc(c.Menu, func(entry MenuEntry) bool {
		return !entry.Separator && entry.Command != nil && entry.Command.HasBundle(kind)
	})
}

func (c *Command) bundle(kind BundleKind) *File {
	switch kind {
	case BundleMain:
		return c.Main
	case BundleUI:
		return c.UI
	default:
		return nil
	}
}

// BundleKind selects the main or UI bundle of a command.
type BundleKind int

const (
	// BundleMain is the privileged main-context bundle.
	BundleMain BundleKind = iota
	// BundleUI is the iframe UI bundle.
	BundleUI
)

// String returns the configuration key of the bundle kind.
func (k BundleKind) String() string {
	if k == BundleUI {
		return "ui"
	}
	return "main"
}
