// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests redirect ConfigDir without touching HOME, which
// os.UserHomeDir does not honor on every platform.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes ConfigDir return dir until Reset is called.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
