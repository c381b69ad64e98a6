// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"path/filepath"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ConfigRoot returns the per-user configuration root for goos: %APPDATA% on
// Windows, ~/Library/Application Support on macOS and $XDG_CONFIG_HOME
// (default ~/.config) elsewhere. getenv and home are usually os.Getenv and
// os.UserHomeDir.
func ConfigRoot(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case Windows:
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case Darwin:
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(h, "Library", "Application Support"), nil
	default: // Linux and others
		if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(h, ".config"), nil
	}
}
