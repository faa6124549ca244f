// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"encoding/json"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"plugkit-cli/pkg/types"
)

// Generated menus and parameter lists are never empty: the raw types omit
// empty lists when serialized, so an empty list would not survive the JSON
// round trip as an empty list.

// rawFileGen draws a file in either shorthand or object form.
func rawFileGen() *rapid.Generator[*RawFile] {
	return rapid.Custom(func(t *rapid.T) *RawFile {
		file := RawFile{Src: rapid.StringMatching(`src/[a-z]{1,8}\.ts`).Draw(t, "src")}
		if rapid.Bool().Draw(t, "withHandler") {
			return file.WithHandler(rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "handler"))
		}
		return &file
	})
}

func rawCommandGen(depth int) *rapid.Generator[RawCommand] {
	return rapid.Custom(func(t *rapid.T) RawCommand {
		cmd := RawCommand{
			Name:          rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "name"),
			ParameterOnly: rapid.Ptr(rapid.Bool(), true).Draw(t, "parameterOnly"),
		}
		if rapid.Bool().Draw(t, "hasMain") {
			cmd.Main = rawFileGen().Draw(t, "main")
		}
		if rapid.Bool().Draw(t, "hasUI") {
			cmd.UI = rawFileGen().Draw(t, "ui")
		}
		if rapid.Bool().Draw(t, "hasParameters") {
			cmd.Parameters = rapid.SliceOfN(rapid.Custom(func(t *rapid.T) RawParameter {
				return RawParameter{
					Key:           rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "key"),
					Name:          rapid.Ptr(rapid.StringMatching(`[A-Za-z]{1,6}`), true).Draw(t, "paramName"),
					AllowFreeform: rapid.Ptr(rapid.Bool(), true).Draw(t, "allowFreeform"),
					Optional:      rapid.Ptr(rapid.Bool(), true).Draw(t, "optional"),
				}
			}), 1, 3).Draw(t, "parameters")
		}
		if depth > 0 && rapid.Bool().Draw(t, "hasMenu") {
			cmd.Menu = rapid.SliceOfN(rapid.Custom(func(t *rapid.T) RawMenuEntry {
				if rapid.Bool().Draw(t, "separator") {
					return RawMenuEntry{Separator: true}
				}
				child := rawCommandGen(depth - 1).Draw(t, "child")
				return RawMenuEntry{Command: &child}
			}), 1, 4).Draw(t, "menu")
		}
		return cmd
	})
}

func rawConfigGen() *rapid.Generator[*RawConfig] {
	return rapid.Custom(func(t *rapid.T) *RawConfig {
		root := rawCommandGen(2).Draw(t, "root")
		raw := &RawConfig{
			APIVersion:             rapid.Ptr(rapid.SampledFrom([]string{"1.0.0", "2.0.0"}), true).Draw(t, "apiVersion"),
			Build:                  rapid.Ptr(rapid.StringMatching(`[a-z ]{1,10}`), true).Draw(t, "build"),
			EnablePrivatePluginAPI: rapid.Ptr(rapid.Bool(), true).Draw(t, "enablePrivatePluginApi"),
			EnableProposedAPI:      rapid.Ptr(rapid.Bool(), true).Draw(t, "enableProposedApi"),
			ID:                     rapid.Ptr(rapid.StringMatching(`[0-9]{1,6}`), true).Draw(t, "id"),
			Name:                   rapid.Ptr(rapid.Just(root.Name), true).Draw(t, "name"),
			Main:                   root.Main,
			UI:                     root.UI,
			Menu:                   root.Menu,
			Parameters:             root.Parameters,
			ParameterOnly:          root.ParameterOnly,
		}
		if rapid.Bool().Draw(t, "hasEditorType") {
			raw.EditorType = rapid.SliceOfN(rapid.SampledFrom(types.EditorTypes()), 1, 3).Draw(t, "editorType")
		}
		if rapid.Bool().Draw(t, "hasRelaunchButtons") {
			raw.RelaunchButtons = &RawRelaunchButtons{Entries: []RawRelaunchButtonEntry{}}
			n := rapid.IntRange(0, 3).Draw(t, "relaunchCount")
			for i := range n {
				raw.RelaunchButtons.Entries = append(raw.RelaunchButtons.Entries, RawRelaunchButtonEntry{
					CommandID: rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "relaunchID") + string(rune('a'+i)),
					Button: RawRelaunchButton{
						Name:              rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(t, "relaunchName"),
						Main:              rawFileGen().Draw(t, "relaunchMain"),
						MultipleSelection: rapid.Ptr(rapid.Bool(), true).Draw(t, "multipleSelection"),
					},
				})
			}
		}
		return raw
	})
}

// Every normalized command carries an explicit value for every field and
// keeps the CommandID/Main pairing.
func checkCommand(t *rapid.T, raw RawCommand, cmd Command) {
	if (cmd.CommandID == nil) != (cmd.Main == nil) {
		t.Fatalf("command %q: CommandID nil = %v but Main nil = %v", cmd.Name, cmd.CommandID == nil, cmd.Main == nil)
	}
	if cmd.Main != nil && cmd.Main.Handler == "" {
		t.Fatalf("command %q: main handler not defaulted", cmd.Name)
	}
	if cmd.UI != nil && cmd.UI.Handler == "" {
		t.Fatalf("command %q: ui handler not defaulted", cmd.Name)
	}
	if (raw.Parameters == nil) != (cmd.Parameters == nil) {
		t.Fatalf("command %q: parameters presence changed", cmd.Name)
	}
	for _, p := range cmd.Parameters {
		if p.Name == "" {
			t.Fatalf("command %q: parameter %q has no name", cmd.Name, p.Key)
		}
	}
	if len(raw.Menu) != len(cmd.Menu) || (raw.Menu == nil) != (cmd.Menu == nil) {
		t.Fatalf("command %q: menu shape changed", cmd.Name)
	}
	for i, entry := range raw.Menu {
		if entry.Separator != cmd.Menu[i].Separator {
			t.Fatalf("command %q: menu[%d] separator mismatch", cmd.Name, i)
		}
		if !entry.Separator {
			checkCommand(t, *entry.Command, *cmd.Menu[i].Command)
		}
	}
}

func TestParse_DefaultsAreTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rawConfigGen().Draw(t, "raw")

		cfg, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse() returned error: %v", err)
		}
		if raw.IsEmpty() {
			if !reflect.DeepEqual(cfg, DefaultConfig()) {
				t.Fatalf("empty raw config should normalize to DefaultConfig")
			}
			return
		}
		if cfg.APIVersion == "" || len(cfg.EditorType) == 0 {
			t.Fatalf("apiVersion/editorType not defaulted: %+v", cfg)
		}
		if raw.ID == nil && cfg.ID != Slugify(cfg.Name) {
			t.Fatalf("id %q is not the slug of name %q", cfg.ID, cfg.Name)
		}
		if (raw.RelaunchButtons == nil) != (cfg.RelaunchButtons == nil) {
			t.Fatalf("relaunchButtons presence changed")
		}
		checkCommand(t, raw.command(cfg.Name), cfg.Command)
	})
}

func TestParse_JSONRoundTripIsStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rawConfigGen().Draw(t, "raw")

		data, err := json.Marshal(raw)
		if err != nil {
			t.Fatalf("Marshal() returned error: %v", err)
		}
		var decoded RawConfig
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", data, err)
		}

		want, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse() returned error: %v", err)
		}
		got, err := Parse(&decoded)
		if err != nil {
			t.Fatalf("Parse(decoded) returned error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("decoding the serialized raw config changed the normalized result:\n%s", data)
		}
	})
}
