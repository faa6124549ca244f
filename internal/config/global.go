// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the per-user settings directory when set.
// os.UserHomeDir ignores $HOME on some platforms, so tests pin it here.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir until Reset is called.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset drops the directory override.
func Reset() {
	configDirOverride = ""
}
