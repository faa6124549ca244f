// SPDX-License-Identifier: MPL-2.0

package override

import (
	"context"
	"fmt"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"plugkit-cli/pkg/manifest"
)

const (
	scriptPackage = "manifest"
	scriptSymbol  = scriptPackage + ".Override"
)

type (
	// ScriptHook runs the Override function of an interpreted Go file.
	ScriptHook struct {
		path string
		fn   overrideFunc
	}

	overrideFunc func(map[string]any) (map[string]any, error)
)

var (
	_ manifest.Hook = (*ScriptHook)(nil)
	_ manifest.Hook = (*JQHook)(nil)
)

// NewScriptHook validates and evaluates src, then binds its Override
// function. path is used in error messages only.
func NewScriptHook(path, src string) (*ScriptHook, error) {
	if err := validateScript(path, src); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib symbols: %w", err)
	}

	if _, err := i.Eval(src); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOverride, path, err)
	}

	v, err := i.Eval(scriptSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: no Override function: %w", ErrInvalidOverride, path, err)
	}

	fn, err := bindOverride(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOverride, path, err)
	}
	return &ScriptHook{path: path, fn: fn}, nil
}

// Apply runs the script on a plain copy of doc.
func (h *ScriptHook) Apply(ctx context.Context, doc manifest.Document) (manifest.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := toPlain(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOverrideFailed, h.path, err)
	}

	out, err := h.safeCall(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOverrideFailed, h.path, err)
	}
	if out == nil {
		return nil, nil
	}
	return manifest.Document(out), nil
}

func (h *ScriptHook) safeCall(input map[string]any) (out map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("panic in Override: %v", r)
		}
	}()
	return h.fn(input)
}

// bindOverride adapts the interpreted Override value to overrideFunc. The
// interpreter may hand back a function whose type matches structurally but
// not as the exact Go type, in which case reflection is used.
func bindOverride(v reflect.Value) (overrideFunc, error) {
	switch fn := v.Interface().(type) {
	case func(map[string]any) map[string]any:
		return func(in map[string]any) (map[string]any, error) { return fn(in), nil }, nil
	case func(map[string]any) (map[string]any, error):
		return fn, nil
	}

	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("override symbol is a %s, not a function", v.Kind())
	}
	t := v.Type()
	if t.NumIn() != 1 || (t.NumOut() != 1 && t.NumOut() != 2) {
		return nil, fmt.Errorf("override function has signature %s, want func(map[string]any) map[string]any", t)
	}

	return func(in map[string]any) (map[string]any, error) {
		results := v.Call([]reflect.Value{reflect.ValueOf(in)})

		var out map[string]any
		if !results[0].IsNil() {
			m, ok := results[0].Interface().(map[string]any)
			if !ok {
				return nil, fmt.Errorf("override function returned %T, want map[string]any", results[0].Interface())
			}
			out = m
		}
		if len(results) == 2 && !results[1].IsNil() {
			if err, ok := results[1].Interface().(error); ok {
				return nil, err
			}
		}
		return out, nil
	}, nil
}
