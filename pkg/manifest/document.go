// SPDX-License-Identifier: MPL-2.0

package manifest

// Document is the generic form of a manifest: JSON-compatible maps, slices
// and scalars. Override hooks receive and return Documents, so they may add
// or reshape keys freely.
type Document map[string]any

// Document builds the sparse document for m. Optional keys are inserted
// only when they carry information.
func (m *Manifest) Document() Document {
	editorType := make([]any, 0, len(m.EditorType))
	for _, e := range m.EditorType {
		editorType = append(editorType, string(e))
	}

	doc := Document{
		"api":        m.API,
		"editorType": editorType,
		"name":       m.Name,
		"id":         m.ID,
		"main":       m.Main,
	}
	if m.UI != nil {
		doc["ui"] = *m.UI
	}
	if m.Parameters != nil {
		doc["parameters"] = parametersDocument(m.Parameters)
	}
	if m.ParameterOnly {
		doc["parameterOnly"] = true
	}
	if m.Menu != nil {
		doc["menu"] = menuDocument(m.Menu)
	}
	if m.RelaunchButtons != nil {
		doc["relaunchButtons"] = relaunchButtonsDocument(m.RelaunchButtons)
	}
	if m.EnableProposedAPI {
		doc["enableProposedApi"] = true
	}
	if m.EnablePrivatePluginAPI {
		doc["enablePrivatePluginApi"] = true
	}
	if m.Build != nil {
		doc["build"] = *m.Build
	}
	return doc
}

func parametersDocument(parameters []Parameter) []any {
	result := make([]any, 0, len(parameters))
	for _, p := range parameters {
		item := map[string]any{
			"key":  p.Key,
			"name": p.Name,
		}
		if p.Description != nil {
			item["description"] = *p.Description
		}
		if p.AllowFreeform {
			item["allowFreeform"] = true
		}
		if p.Optional {
			item["optional"] = true
		}
		result = append(result, item)
	}
	return result
}

func menuDocument(menu []MenuItem) []any {
	result := make([]any, 0, len(menu))
	for _, entry := range menu {
		if entry.Separator {
			result = append(result, map[string]any{"separator": true})
			continue
		}
		item := map[string]any{"name": entry.Name}
		if entry.Command != nil {
			item["command"] = *entry.Command
		}
		if entry.Parameters != nil {
			item["parameters"] = parametersDocument(entry.Parameters)
		}
		if entry.ParameterOnly {
			item["parameterOnly"] = true
		}
		if entry.Menu != nil {
			item["menu"] = menuDocument(entry.Menu)
		}
		result = append(result, item)
	}
	return result
}

func relaunchButtonsDocument(buttons []RelaunchButton) []any {
	result := make([]any, 0, len(buttons))
	for _, b := range buttons {
		item := map[string]any{
			"name":    b.Name,
			"command": b.Command,
		}
		if b.MultipleSelection {
			item["multipleSelection"] = true
		}
		result = append(result, item)
	}
	return result
}
