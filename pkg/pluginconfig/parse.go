// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"fmt"
	"slices"

	"plugkit-cli/pkg/types"
)

// Parse normalizes a raw configuration block into a Config. An empty block
// (nil, or no known key set) yields DefaultConfig.
//
// The only failures are structural: an unknown editor type, or a relaunch
// button without a main entry point. Both are reported as
// *ConfigurationError.
func Parse(raw *RawConfig) (*Config, error) {
	if raw.IsEmpty() {
		return DefaultConfig(), nil
	}
	return parse(raw)
}

// parse normalizes a block that is known to be present. Fields it does not
// set stay at their per-field defaults, so a block holding only host keys
// has no main entry point.
func parse(raw *RawConfig) (*Config, error) {
	name := DefaultPluginName
	if raw.Name != nil {
		name = *raw.Name
	}

	editorType := []types.EditorType{types.EditorFigma}
	if raw.EditorType != nil {
		for i, editor := range raw.EditorType {
			if err := editor.Validate(); err != nil {
				return nil, NewConfigurationError(fmt.Sprintf("editorType[%d]", i), "%s", err.Error())
			}
		}
		editorType = slices.Clone(raw.EditorType)
	}

	id := Slugify(name)
	if raw.ID != nil {
		id = *raw.ID
	}

	relaunchButtons, err := parseRelaunchButtons(raw.RelaunchButtons)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIVersion:             valueOr(raw.APIVersion, APIVersion),
		Build:                  clonePtr(raw.Build),
		EditorType:             editorType,
		EnablePrivatePluginAPI: valueOr(raw.EnablePrivatePluginAPI, false),
		EnableProposedAPI:      valueOr(raw.EnableProposedAPI, false),
		ID:                     id,
		RelaunchButtons:        relaunchButtons,
		Command:                parseCommand(raw.command(name)),
	}, nil
}

// parseCommand normalizes a command and, recursively, its menu.
func parseCommand(raw RawCommand) Command {
	cmd := Command{
		Name:          raw.Name,
		ParameterOnly: valueOr(raw.ParameterOnly, false),
		Parameters:    parseParameters(raw.Parameters),
		UI:            parseFile(raw.UI),
	}

	if raw.Main != nil {
		commandID := ResolveCommandID(*raw.Main)
		cmd.CommandID = &commandID
		cmd.Main = parseFile(raw.Main)
	}

	if raw.Menu != nil {
		cmd.Menu = make([]MenuEntry, 0, len(raw.Menu))
		for _, entry := range raw.Menu {
			if entry.Separator || entry.Command == nil {
				cmd.Menu = append(cmd.Menu, NewSeparator())
				continue
			}
			cmd.Menu = append(cmd.Menu, NewCommandEntry(parseCommand(*entry.Command)))
		}
	}

	return cmd
}

// parseFile resolves the path shorthand and the default handler. A nil raw
// file stays nil.
func parseFile(raw *RawFile) *File {
	if raw == nil {
		return nil
	}
	return &File{
		Handler: valueOr(raw.Handler, DefaultHandler),
		Src:     raw.Src,
	}
}

func parseParameters(raw []RawParameter) []Parameter {
	if raw == nil {
		return nil
	}
	result := make([]Parameter, 0, len(raw))
	for _, p := range raw {
		result = append(result, Parameter{
			AllowFreeform: valueOr(p.AllowFreeform, false),
			Description:   clonePtr(p.Description),
			Key:           p.Key,
			Name:          valueOr(p.Name, p.Key),
			Optional:      valueOr(p.Optional, false),
		})
	}
	return result
}

func parseRelaunchButtons(raw *RawRelaunchButtons) ([]RelaunchButton, error) {
	if raw == nil {
		return nil, nil
	}
	result := make([]RelaunchButton, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		button := entry.Button
		if button.Main == nil {
			return nil, NewConfigurationError(
				"relaunchButtons."+entry.CommandID,
				"Need a `main` for relaunch button: %s", button.Name,
			)
		}
		result = append(result, RelaunchButton{
			CommandID:         entry.CommandID,
			Main:              *parseFile(button.Main),
			MultipleSelection: valueOr(button.MultipleSelection, false),
			Name:              button.Name,
			UI:                parseFile(button.UI),
		})
	}
	return result, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
