// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"plugkit-cli/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultPackageJSON is the project descriptor read by default.
	DefaultPackageJSON = "package.json"
	// DefaultConfigKey is the package.json key holding the plugin block.
	DefaultConfigKey = "figma-plugin"
	// DefaultManifestPath is the manifest output path relative to the project.
	DefaultManifestPath = "manifest.json"
	// DefaultDebounce is the watch-mode rebuild debounce.
	DefaultDebounce = 500 * time.Millisecond
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPathSetting is the sentinel error wrapped by InvalidPathSettingError.
	ErrInvalidPathSetting = errors.New("invalid path setting")
	// ErrInvalidDebounce is returned when the watch debounce is not positive.
	ErrInvalidDebounce = errors.New("invalid watch debounce")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidPathSettingError is returned when a path-valued setting is
	// empty or whitespace-only.
	InvalidPathSettingError struct {
		Key   string
		Value string
		// Reason is set for path settings rejected by types.FilesystemPath.
		Reason error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds plugkit's settings.
	Config struct {
		// PackageJSON is the project descriptor file, relative to the project.
		PackageJSON string `json:"package_json" mapstructure:"package_json"`
		// ConfigKey is the package.json key of the plugin configuration block.
		ConfigKey string `json:"config_key" mapstructure:"config_key"`
		// Output configures the manifest file.
		Output OutputConfig `json:"output" mapstructure:"output"`
		// Override configures the manifest override hook.
		Override OverrideConfig `json:"override" mapstructure:"override"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Watch configures watch mode.
		Watch WatchConfig `json:"watch" mapstructure:"watch"`
	}

	// OutputConfig configures where and how the manifest is written.
	OutputConfig struct {
		// Manifest is the output path, relative to the project.
		Manifest string `json:"manifest" mapstructure:"manifest"`
		// Minify writes compact JSON instead of two-space indentation.
		Minify bool `json:"minify" mapstructure:"minify"`
	}

	// OverrideConfig controls loading of figma.manifest.go / figma.manifest.jq.
	OverrideConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// WatchConfig configures watch mode.
	WatchConfig struct {
		// Debounce coalesces bursts of file events into one rebuild.
		Debounce time.Duration `json:"debounce" mapstructure:"debounce"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidPathSettingError.
func (e *InvalidPathSettingError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("invalid %s: %v", e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: must be non-empty", e.Key, e.Value)
}

// Unwrap returns ErrInvalidPathSetting for errors.Is() compatibility.
func (e *InvalidPathSettingError) Unwrap() error { return ErrInvalidPathSetting }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the Config has valid fields. Path settings must
// be non-blank, the color scheme known and the debounce positive.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, setting := range []struct{ key, value string }{
		{"package_json", c.PackageJSON},
		{"output.manifest", c.Output.Manifest},
	} {
		if err := types.FilesystemPath(setting.value).Validate(); err != nil {
			errs = append(errs, &InvalidPathSettingError{Key: setting.key, Value: setting.value, Reason: err})
		}
	}
	if strings.TrimSpace(c.ConfigKey) == "" {
		errs = append(errs, &InvalidPathSettingError{Key: "config_key", Value: c.ConfigKey})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Watch.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDebounce, c.Watch.Debounce))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PackageJSON: DefaultPackageJSON,
		ConfigKey:   DefaultConfigKey,
		Output: OutputConfig{
			Manifest: DefaultManifestPath,
			Minify:   false,
		},
		Override: OverrideConfig{
			Enabled: true,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}
