// SPDX-License-Identifier: MPL-2.0

// Package types defines leaf value types shared by the plugkit packages.
// These types carry semantic meaning and validation but have no
// domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// EditorFigma is the design editor.
	EditorFigma EditorType = "figma"
	// EditorFigJam is the whiteboard editor.
	EditorFigJam EditorType = "figjam"
	// EditorDev is the developer-mode inspector.
	EditorDev EditorType = "dev"
	// EditorSlides is the presentation editor.
	EditorSlides EditorType = "slides"
)

// ErrInvalidEditorType is the sentinel error wrapped by InvalidEditorTypeError.
var ErrInvalidEditorType = errors.New("invalid editor type")

type (
	// EditorType names a host editor a plugin can run in.
	EditorType string

	// InvalidEditorTypeError is returned when an EditorType is not one of
	// the editors the host recognizes.
	InvalidEditorTypeError struct {
		Value EditorType
	}
)

// EditorTypes returns the recognized editor types in declaration order.
func EditorTypes() []EditorType {
	return []EditorType{EditorFigma, EditorFigJam, EditorDev, EditorSlides}
}

// String returns the string representation of the EditorType.
func (e EditorType) String() string { return string(e) }

// Validate returns an error if the editor type is not recognized.
func (e EditorType) Validate() error {
	if slices.Contains(EditorTypes(), e) {
		return nil
	}
	return &InvalidEditorTypeError{Value: e}
}

// Error implements the error interface for InvalidEditorTypeError.
func (e *InvalidEditorTypeError) Error() string {
	return fmt.Sprintf("invalid editor type %q (expected one of %v)", e.Value, EditorTypes())
}

// Unwrap returns ErrInvalidEditorType for errors.Is() compatibility.
func (e *InvalidEditorTypeError) Unwrap() error { return ErrInvalidEditorType }
