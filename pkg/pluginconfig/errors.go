// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel wrapped by every ConfigurationError.
var ErrConfiguration = errors.New("invalid plugin configuration")

// ConfigurationError reports a violated structural invariant of the plugin
// configuration. It is fatal: no manifest is produced when one is returned.
type ConfigurationError struct {
	// Field is the configuration field at fault (e.g. "main",
	// "relaunchButtons.open").
	Field string

	// Message describes the problem.
	Message string
}

// NewConfigurationError creates a ConfigurationError for field.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Message
}

// Unwrap returns ErrConfiguration for errors.Is() compatibility.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
