// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// keyOrder ranks every key the manifest format defines. A single ranking
// serves all object shapes because each shape's keys appear in it in that
// shape's order:
//
//	manifest:        api, editorType, name, id, main, ui, parameters,
//	                 parameterOnly, menu, relaunchButtons, enableProposedApi,
//	                 enablePrivatePluginApi, build
//	parameter:       key, name, description, allowFreeform, optional
//	menu item:       name, command, parameters, parameterOnly, menu
//	relaunch button: name, command, multipleSelection
//
// Keys outside the ranking (added by an override hook) follow in
// lexicographic order.
var keyOrder = map[string]int{
	"api":                    0,
	"editorType":             1,
	"key":                    2,
	"name":                   3,
	"id":                     4,
	"main":                   5,
	"ui":                     6,
	"command":                7,
	"description":            8,
	"allowFreeform":          9,
	"optional":               10,
	"parameters":             11,
	"parameterOnly":          12,
	"menu":                   13,
	"relaunchButtons":        14,
	"multipleSelection":      15,
	"separator":              16,
	"enableProposedApi":      17,
	"enablePrivatePluginApi": 18,
	"build":                  19,
}

// Encode serializes doc with the canonical key order, either indented with
// two spaces or minified. The result always ends with a newline.
func Encode(doc Document, minify bool) ([]byte, error) {
	compact, err := encodeCompact(doc)
	if err != nil {
		return nil, err
	}
	if minify {
		return append(compact, '\n'), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeCompact(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, map[string]any(doc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case Document:
		return appendObject(buf, val)
	case map[string]any:
		return appendObject(buf, val)
	case []map[string]any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = item
		}
		return appendValue(buf, items)
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return appendScalar(buf, val)
	}
}

func appendObject(buf *bytes.Buffer, obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendScalar(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := appendValue(buf, obj[k]); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// appendScalar writes any other JSON-marshalable value without HTML
// escaping, matching the host's own JSON writer.
func appendScalar(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func compareKeys(a, b string) int {
	ra, okA := keyOrder[a]
	rb, okB := keyOrder[b]
	switch {
	case okA && okB:
		return ra - rb
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
