// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"plugkit-cli/pkg/types"
)

var (
	// ErrInvalidRawFile is returned when a file entry is neither a path
	// string nor an object with a "src" key.
	ErrInvalidRawFile = errors.New("file must be a path string or an object with \"src\"")

	// ErrInvalidMenuEntry is returned when a menu entry is a string other
	// than the separator sentinel.
	ErrInvalidMenuEntry = errors.New("menu entry must be a command object or \"-\"")
)

type (
	// RawConfig is the plugin configuration block exactly as written in
	// package.json. Pointer and slice fields are nil when the key is absent,
	// so an explicit false or empty value stays distinguishable from a
	// missing one.
	RawConfig struct {
		APIVersion             *string             `json:"apiVersion,omitempty"`
		Build                  *string             `json:"build,omitempty"`
		EditorType             []types.EditorType  `json:"editorType,omitempty"`
		EnablePrivatePluginAPI *bool               `json:"enablePrivatePluginApi,omitempty"`
		EnableProposedAPI      *bool               `json:"enableProposedApi,omitempty"`
		ID                     *string             `json:"id,omitempty"`
		Name                   *string             `json:"name,omitempty"`
		Main                   *RawFile            `json:"main,omitempty"`
		UI                     *RawFile            `json:"ui,omitempty"`
		Menu                   []RawMenuEntry      `json:"menu,omitempty"`
		Parameters             []RawParameter      `json:"parameters,omitempty"`
		ParameterOnly          *bool               `json:"parameterOnly,omitempty"`
		RelaunchButtons        *RawRelaunchButtons `json:"relaunchButtons,omitempty"`
	}

	// RawCommand is a command entry of a raw menu.
	RawCommand struct {
		Name          string         `json:"name"`
		Main          *RawFile       `json:"main,omitempty"`
		UI            *RawFile       `json:"ui,omitempty"`
		Menu          []RawMenuEntry `json:"menu,omitempty"`
		Parameters    []RawParameter `json:"parameters,omitempty"`
		ParameterOnly *bool          `json:"parameterOnly,omitempty"`
	}

	// RawFile is a source entry point. In JSON it is either a bare path
	// ("src/main.ts") or an object ({"src": "src/main.ts", "handler": "run"}).
	RawFile struct {
		Src     string
		Handler *string
	}

	// RawMenuEntry is either a separator ("-") or a command.
	RawMenuEntry struct {
		Separator bool
		Command   *RawCommand
	}

	// RawParameter is a command parameter as written by the user.
	RawParameter struct {
		Key           string  `json:"key"`
		Name          *string `json:"name,omitempty"`
		Description   *string `json:"description,omitempty"`
		AllowFreeform *bool   `json:"allowFreeform,omitempty"`
		Optional      *bool   `json:"optional,omitempty"`
	}

	// RawRelaunchButton is a relaunch button descriptor. Main is mandatory
	// but checked by Parse so the error can name the button.
	RawRelaunchButton struct {
		Name              string   `json:"name"`
		Main              *RawFile `json:"main,omitempty"`
		UI                *RawFile `json:"ui,omitempty"`
		MultipleSelection *bool    `json:"multipleSelection,omitempty"`
	}

	// RawRelaunchButtonEntry pairs a relaunch button with the command id it
	// is keyed by.
	RawRelaunchButtonEntry struct {
		CommandID string
		Button    RawRelaunchButton
	}

	// RawRelaunchButtons is the relaunchButtons object, kept in document
	// order. A plain Go map would lose the order the user wrote the buttons
	// in, which is also the order they appear in the manifest.
	RawRelaunchButtons struct {
		Entries []RawRelaunchButtonEntry
	}
)

// IsEmpty reports whether no known field of the block is set.
func (r *RawConfig) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.APIVersion == nil && r.Build == nil && r.EditorType == nil &&
		r.EnablePrivatePluginAPI == nil && r.EnableProposedAPI == nil &&
		r.ID == nil && r.Name == nil && r.Main == nil && r.UI == nil &&
		r.Menu == nil && r.Parameters == nil && r.ParameterOnly == nil &&
		r.RelaunchButtons == nil
}

// command returns the root command embedded in the top level of the block.
func (r *RawConfig) command(name string) RawCommand {
	return RawCommand{
		Name:          name,
		Main:          r.Main,
		UI:            r.UI,
		Menu:          r.Menu,
		Parameters:    r.Parameters,
		ParameterOnly: r.ParameterOnly,
	}
}

// NewRawFile returns the shorthand form of a file entry.
func NewRawFile(src string) *RawFile {
	return &RawFile{Src: src}
}

// WithHandler returns a copy of f naming an explicit handler.
func (f RawFile) WithHandler(handler string) *RawFile {
	f.Handler = &handler
	return &f
}

// UnmarshalJSON accepts both the path shorthand and the object form.
func (f *RawFile) UnmarshalJSON(data []byte) error {
	var src string
	if err := json.Unmarshal(data, &src); err == nil {
		*f = RawFile{Src: src}
		return nil
	}

	var obj struct {
		Src     *string `json:"src"`
		Handler *string `json:"handler"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Src == nil {
		return ErrInvalidRawFile
	}
	*f = RawFile{Src: *obj.Src, Handler: obj.Handler}
	return nil
}

// MarshalJSON writes the shorthand form when no handler is set.
func (f RawFile) MarshalJSON() ([]byte, error) {
	if f.Handler == nil {
		return json.Marshal(f.Src)
	}
	return json.Marshal(struct {
		Src     string `json:"src"`
		Handler string `json:"handler"`
	}{f.Src, *f.Handler})
}

// UnmarshalJSON accepts "-" or a command object.
func (e *RawMenuEntry) UnmarshalJSON(data []byte) error {
	var sentinel string
	if err := json.Unmarshal(data, &sentinel); err == nil {
		if sentinel != SeparatorSentinel {
			return fmt.Errorf("%w (got %q)", ErrInvalidMenuEntry, sentinel)
		}
		*e = RawMenuEntry{Separator: true}
		return nil
	}

	var cmd RawCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return err
	}
	*e = RawMenuEntry{Command: &cmd}
	return nil
}

// MarshalJSON writes "-" for separators and the command object otherwise.
func (e RawMenuEntry) MarshalJSON() ([]byte, error) {
	if e.Separator {
		return json.Marshal(SeparatorSentinel)
	}
	return json.Marshal(e.Command)
}

// UnmarshalJSON decodes the relaunchButtons object token by token so that
// document order is preserved. A repeated key replaces the earlier value in
// place.
func (b *RawRelaunchButtons) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("relaunchButtons must be an object, got %v", tok)
	}

	index := make(map[string]int)
	entries := []RawRelaunchButtonEntry{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("relaunchButtons: unexpected key token %v", keyTok)
		}

		var button RawRelaunchButton
		if err := dec.Decode(&button); err != nil {
			return fmt.Errorf("relaunchButtons.%s: %w", key, err)
		}

		if i, seen := index[key]; seen {
			entries[i].Button = button
			continue
		}
		index[key] = len(entries)
		entries = append(entries, RawRelaunchButtonEntry{CommandID: key, Button: button})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	b.Entries = entries
	return nil
}

// MarshalJSON writes the buttons back as an object in entry order.
func (b RawRelaunchButtons) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range b.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.CommandID)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Button)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
