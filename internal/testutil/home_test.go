// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"testing"
)

func homeEnvVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

func TestSetHomeDir(t *testing.T) {
	tmpDir := t.TempDir()
	envVar := homeEnvVar()
	original := os.Getenv(envVar)

	cleanup := SetHomeDir(t, tmpDir)

	if got := os.Getenv(envVar); got != tmpDir {
		t.Errorf("%s = %q, want %q", envVar, got, tmpDir)
	}

	cleanup()

	if got := os.Getenv(envVar); got != original {
		t.Errorf("After cleanup, %s = %q, want %q", envVar, got, original)
	}
}

func TestIsolateConfigHome(t *testing.T) {
	tmpDir := t.TempDir()
	originalXDG, hadXDG := os.LookupEnv("XDG_CONFIG_HOME")

	t.Run("subtest", func(t *testing.T) {
		IsolateConfigHome(t, tmpDir)

		for _, key := range []string{homeEnvVar(), "XDG_CONFIG_HOME", "APPDATA"} {
			if got := os.Getenv(key); got != tmpDir {
				t.Errorf("%s = %q, want %q", key, got, tmpDir)
			}
		}
	})

	got, has := os.LookupEnv("XDG_CONFIG_HOME")
	if has != hadXDG || got != originalXDG {
		t.Errorf("After subtest, XDG_CONFIG_HOME = %q (set=%v), want %q (set=%v)", got, has, originalXDG, hadXDG)
	}
}
