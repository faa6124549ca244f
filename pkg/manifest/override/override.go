// SPDX-License-Identifier: MPL-2.0

package override

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"plugkit-cli/pkg/manifest"
)

const (
	// ScriptFileName is the Go override script looked up in the project root.
	ScriptFileName = "figma.manifest.go"

	// JQFileName is the jq override program looked up in the project root.
	JQFileName = "figma.manifest.jq"
)

var (
	// ErrInvalidOverride is returned when an override file cannot be turned
	// into a hook (syntax errors, missing Override function, wrong signature).
	ErrInvalidOverride = errors.New("invalid manifest override")

	// ErrOverrideFailed is returned when a loaded hook fails or panics while
	// transforming the manifest.
	ErrOverrideFailed = errors.New("manifest override failed")
)

// FileNames lists the override files in lookup order.
func FileNames() []string {
	return []string{ScriptFileName, JQFileName}
}

// Resolve returns the hook defined in dir, or nil when the project has no
// override file.
func Resolve(dir string) (manifest.Hook, error) {
	for _, name := range FileNames() {
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		slog.Debug("loading manifest override", "path", path)
		switch name {
		case ScriptFileName:
			return NewScriptHook(path, string(src))
		default:
			return NewJQHook(path, string(src))
		}
	}
	return nil, nil
}

// toPlain converts doc into plain JSON values (map[string]any, []any,
// float64, string, bool, nil) so interpreted code and jq see the shapes
// encoding/json would produce.
func toPlain(doc manifest.Document) (map[string]any, error) {
	data, err := json.Marshal(map[string]any(doc))
	if err != nil {
		return nil, err
	}
	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}
