// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import "path"

const (
	// APIVersion is the plugin API version written when none is configured.
	APIVersion = "1.0.0"

	// DefaultPluginName is used for both name and id when the project
	// carries no configuration.
	DefaultPluginName = "figma-plugin"

	// ConfigKey is the package.json key holding the plugin configuration.
	ConfigKey = "figma-plugin"

	// PackageJSONFileName is the project descriptor read by Load.
	PackageJSONFileName = "package.json"

	// SrcDirectory is the conventional source directory.
	SrcDirectory = "src"

	// DefaultHandler is the handler name implied when a file omits one.
	DefaultHandler = "default"

	// SeparatorSentinel marks a menu separator in the raw menu list.
	SeparatorSentinel = "-"

	// commandIDSeparator joins a source path and handler into a command id.
	commandIDSeparator = "--"
)

// DefaultMainSrc is the main entry point assumed by DefaultConfig.
var DefaultMainSrc = path.Join(SrcDirectory, "main.ts")
