// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"slices"

	"plugkit-cli/pkg/pluginconfig"
)

// Assemble builds the manifest for cfg.
//
// It fails with a *pluginconfig.ConfigurationError when no command in the
// tree (the root and every command reachable through nested menus) declares
// a main entry point. The ui key is derived: it is set when any command in
// the tree, or any relaunch button, declares a UI bundle.
func Assemble(cfg *pluginconfig.Config) (*Manifest, error) {
	root := cfg.Command
	if !root.HasBundle(pluginconfig.BundleMain) {
		return nil, pluginconfig.NewConfigurationError("main", "missing main entry point")
	}

	m := &Manifest{
		API:        cfg.APIVersion,
		EditorType: slices.Clone(cfg.EditorType),
		Name:       cfg.Name,
		ID:         cfg.ID,
		Main:       MainFilePath,
	}

	if root.HasBundle(pluginconfig.BundleUI) || relaunchButtonsNeedUI(cfg.RelaunchButtons) {
		ui := UIFilePath
		m.UI = &ui
	}
	if root.Parameters != nil {
		m.Parameters = createParameters(root.Parameters)
	}
	m.ParameterOnly = root.ParameterOnly
	if root.Menu != nil {
		m.Menu = createMenu(root.Menu)
	}
	if cfg.RelaunchButtons != nil {
		m.RelaunchButtons = createRelaunchButtons(cfg.RelaunchButtons)
	}
	m.EnableProposedAPI = cfg.EnableProposedAPI
	m.EnablePrivatePluginAPI = cfg.EnablePrivatePluginAPI
	if cfg.Build != nil {
		build := *cfg.Build
		m.Build = &build
	}

	return m, nil
}

func relaunchButtonsNeedUI(buttons []pluginconfig.RelaunchButton) bool {
	return slices.ContainsFunc(buttons, func(b pluginconfig.RelaunchButton) bool {
		return b.UI != nil
	})
}

func createParameters(parameters []pluginconfig.Parameter) []Parameter {
	result := make([]Parameter, 0, len(parameters))
	for _, p := range parameters {
		param := Parameter{
			Key:           p.Key,
			Name:          p.Name,
			AllowFreeform: p.AllowFreeform,
			Optional:      p.Optional,
		}
		if p.Description != nil {
			description := *p.Description
			param.Description = &description
		}
		result = append(result, param)
	}
	return result
}

func createMenu(menu []pluginconfig.MenuEntry) []MenuItem {
	result := make([]MenuItem, 0, len(menu))
	for _, entry := range menu {
		if entry.Separator || entry.Command == nil {
			result = append(result, MenuItem{Separator: true})
			continue
		}
		cmd := entry.Command
		item := MenuItem{
			Name:          cmd.Name,
			ParameterOnly: cmd.ParameterOnly,
		}
		if cmd.CommandID != nil {
			command := *cmd.CommandID
			item.Command = &command
		}
		if cmd.Parameters != nil {
			item.Parameters = createParameters(cmd.Parameters)
		}
		if cmd.Menu != nil {
			item.Menu = createMenu(cmd.Menu)
		}
		result = append(result, item)
	}
	return result
}

func createRelaunchButtons(buttons []pluginconfig.RelaunchButton) []RelaunchButton {
	result := make([]RelaunchButton, 0, len(buttons))
	for _, b := range buttons {
		result = append(result, RelaunchButton{
			Name:              b.Name,
			Command:           b.CommandID,
			MultipleSelection: b.MultipleSelection,
		})
	}
	return result
}
