// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"patterns-cli/pkg/platform"
)

// SetHomeDir sets the platform's home directory variable (USERPROFILE on
// Windows, HOME elsewhere) and returns a cleanup function that restores it.
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case platform.Windows:
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}

// IsolateConfigHome points every variable that config lookup consults (HOME or
// USERPROFILE, XDG_CONFIG_HOME, APPDATA) at dir, and restores them when the test
// ends.
func IsolateConfigHome(t testing.TB, dir string) {
	t.Helper()

	t.Cleanup(SetHomeDir(t, dir))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", dir))
	t.Cleanup(MustSetenv(t, "APPDATA", dir))
}
