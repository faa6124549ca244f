// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// ParseResult contains the result of a successful CUE parse operation.
type ParseResult[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the unified CUE value, available for callers that need to
	// inspect fields beyond what the Go type captures.
	Unified cue.Value
}

// ParseAndDecode performs the 3-step CUE parsing flow on CUE source:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// Parameters:
//   - schema: The embedded CUE schema bytes (from //go:embed)
//   - data: The user-provided CUE file bytes
//   - schemaPath: The path to the root definition (e.g., "#Settings")
//   - opts: Optional configuration
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)
	filename := options.displayName()

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified, err := unifyWithSchema(ctx, schema, schemaPath, userValue, options)
	if err != nil {
		return nil, err
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

// ValidateJSON checks JSON data against a CUE schema definition and returns
// the unified value. The JSON is extracted with CUE's JSON decoder, so error
// positions refer to the original JSON document.
//
// Decoding is left to the caller: JSON inputs often need presence-aware Go
// types that CUE's decoder cannot fill.
func ValidateJSON(schema, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	options := applyOptions(opts)
	filename := options.displayName()

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return cue.Value{}, err
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return cue.Value{}, FormatError(err, filename)
	}

	ctx := cuecontext.New()
	userValue := ctx.BuildExpr(expr)
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), filename)
	}

	return unifyWithSchema(ctx, schema, schemaPath, userValue, options)
}

// unifyWithSchema compiles the schema, looks up its root definition and
// validates the user value against it.
func unifyWithSchema(ctx *cue.Context, schema []byte, schemaPath string, userValue cue.Value, options parseOptions) (cue.Value, error) {
	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, FormatError(err, options.displayName())
	}

	return unified, nil
}
