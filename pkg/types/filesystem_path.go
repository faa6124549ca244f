// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath is wrapped by every InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a path setting such as the package.json location or
	// the manifest output. It may be relative or absolute.
	FilesystemPath string

	// InvalidFilesystemPathError reports a blank path or one holding a NUL
	// byte, which no operating system accepts.
	InvalidFilesystemPathError struct {
		Value  FilesystemPath
		Reason string
	}
)

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects blank paths and paths containing NUL.
func (p FilesystemPath) Validate() error {
	switch {
	case strings.TrimSpace(string(p)) == "":
		return &InvalidFilesystemPathError{Value: p, Reason: "must be non-empty"}
	case strings.ContainsRune(string(p), 0):
		return &InvalidFilesystemPathError{Value: p, Reason: "must not contain NUL"}
	default:
		return nil
	}
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: %s", e.Value, e.Reason)
}

func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
