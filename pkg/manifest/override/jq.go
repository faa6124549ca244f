// SPDX-License-Identifier: MPL-2.0

package override

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"

	"plugkit-cli/pkg/manifest"
)

// JQHook runs a compiled jq program on the manifest.
type JQHook struct {
	path string
	code *gojq.Code
}

// NewJQHook parses and compiles a jq program. Syntax errors surface here
// rather than at build time.
func NewJQHook(path, src string) (*JQHook, error) {
	query, err := gojq.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOverride, path, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOverride, path, err)
	}
	return &JQHook{path: path, code: code}, nil
}

// Apply runs the program and returns its only result, which must be an
// object.
func (h *JQHook) Apply(ctx context.Context, doc manifest.Document) (manifest.Document, error) {
	input, err := toPlain(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOverrideFailed, h.path, err)
	}

	var results []any
	iter := h.code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("%w: %s: %w", ErrOverrideFailed, h.path, err)
		}
		results = append(results, v)
	}

	if len(results) != 1 {
		return nil, fmt.Errorf("%w: %s: program produced %d results, want exactly one", ErrOverrideFailed, h.path, len(results))
	}
	out, ok := results[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: program produced %T, want an object", ErrOverrideFailed, h.path, results[0])
	}
	return manifest.Document(out), nil
}
