// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patterns-cli/internal/config"
	"patterns-cli/internal/issue"
	"patterns-cli/internal/light"
	"patterns-cli/internal/light/script"
	"patterns-cli/internal/testutil"
	"patterns-cli/pkg/types"
)

func TestLightCommand_Demo(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, defaultsProvider(), "light")
	if err != nil {
		t.Fatalf("light failed: %v", err)
	}
	for _, want := range []string{
		"payload light",
		"Light is On with intensity 10",
		"Light is On with intensity 200",
		"Final: Light is Off",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestLightCommand_Ops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantFinal string
		wantText  []string
	}{
		{
			name:      "payload set while on",
			args:      []string{"light", "--variant", "payload", "toggle", "set", "42", "get"},
			wantFinal: "Final: Light is On with intensity 42",
		},
		{
			name:      "naive ignores set while off",
			args:      []string{"light", "--variant", "naive", "set=50", "toggle"},
			wantFinal: "Final: Light is On with intensity 10",
			wantText:  []string{"ignored"},
		},
		{
			name:      "marker toggles",
			args:      []string{"light", "--variant", "marker", "toggle", "status"},
			wantFinal: "Final: Light is On",
		},
		{
			name:      "zero intensity while on",
			args:      []string{"light", "toggle", "set", "0"},
			wantFinal: "Final: Light is On with intensity 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := runCLI(t, defaultsProvider(), tt.args...)
			if err != nil {
				t.Fatalf("light failed: %v", err)
			}
			if !strings.Contains(stdout, tt.wantFinal) {
				t.Errorf("stdout missing %q:\n%s", tt.wantFinal, stdout)
			}
			for _, want := range tt.wantText {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestLightCommand_DefaultVariantFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.DefaultVariant = light.VariantNaive

	stdout, _, err := runCLI(t, staticProvider{cfg: cfg}, "light", "set", "5")
	if err != nil {
		t.Fatalf("light failed: %v", err)
	}
	if !strings.Contains(stdout, "naive light") {
		t.Errorf("stdout = %q, want the naive variant", stdout)
	}
}

func TestLightCommand_UnavailableWhileOff(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, defaultsProvider(), "light", "--variant", "payload", "toggle", "toggle", "set", "5")
	if err == nil {
		t.Fatal("expected an error for set on an Off payload light")
	}
	if got := exitCode(t, err); got != types.ExitUnavailable {
		t.Errorf("exit code = %d, want %d", got, types.ExitUnavailable)
	}
	if !errors.Is(err, script.ErrUnavailableWhileOff) {
		t.Errorf("errors.Is(err, ErrUnavailableWhileOff) = false for %v", err)
	}
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.IntensityUnavailableId {
		t.Errorf("error should carry issue %d, got %v", issue.IntensityUnavailableId, err)
	}
	// The steps before the failing op are still shown.
	if !strings.Contains(stdout, "Light is On with intensity 10") {
		t.Errorf("stdout should hold the partial trace:\n%s", stdout)
	}
	if strings.Contains(stdout, "Final:") {
		t.Errorf("stdout should not report a final state on failure:\n%s", stdout)
	}
}

func TestLightCommand_MarkerHasNoIntensity(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, defaultsProvider(), "light", "--variant", "marker", "toggle", "get")
	if !errors.Is(err, script.ErrIntensityUntracked) {
		t.Fatalf("error = %v, want ErrIntensityUntracked", err)
	}
}

func TestLightCommand_InvalidInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "ops.sh")
	testutil.MustWriteFile(t, scriptPath, "toggle\n")
	pipelinePath := filepath.Join(dir, "pipeline.sh")
	testutil.MustWriteFile(t, pipelinePath, "toggle\nget | status\n")

	tests := []struct {
		name      string
		args      []string
		wantIs    error
		wantIssue issue.Id
		// wantOp and wantResource describe the *issue.ActionableError, if any.
		wantOp       string
		wantResource string
	}{
		{
			name:      "unknown variant",
			args:      []string{"light", "--variant", "laser", "toggle"},
			wantIs:    light.ErrInvalidVariant,
			wantIssue: issue.UnknownVariantId,
		},
		{
			name:      "bad op",
			args:      []string{"light", "dim"},
			wantIs:    script.ErrInvalidScript,
			wantIssue: issue.ScriptInvalidId,
			wantOp:    "parse light operations",
		},
		{
			name:         "script syntax",
			args:         []string{"light", "--script", pipelinePath},
			wantIs:       script.ErrInvalidScript,
			wantIssue:    issue.ScriptInvalidId,
			wantOp:       "replay light script",
			wantResource: pipelinePath,
		},
		{
			name:      "intensity out of range",
			args:      []string{"light", "toggle", "set", "256"},
			wantIs:    script.ErrInvalidScript,
			wantIssue: issue.ScriptInvalidId,
		},
		{
			name:   "script and args",
			args:   []string{"light", "--script", scriptPath, "toggle"},
			wantIs: errScriptAndArgs,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runCLI(t, defaultsProvider(), tt.args...)
			if got := exitCode(t, err); got != types.ExitInvalidInput {
				t.Errorf("exit code = %d, want %d", got, types.ExitInvalidInput)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.wantIs, err)
			}
			if tt.wantIssue != 0 {
				var svcErr *ServiceError
				if !errors.As(err, &svcErr) || svcErr.IssueID != tt.wantIssue {
					t.Errorf("error should carry issue %d, got %v", tt.wantIssue, err)
				}
			}
			if tt.wantOp != "" {
				var ae *issue.ActionableError
				if !errors.As(err, &ae) {
					t.Fatalf("error should carry an *issue.ActionableError, got %v", err)
				}
				if ae.Operation != tt.wantOp || ae.Resource != tt.wantResource {
					t.Errorf("operation %q resource %q, want %q %q", ae.Operation, ae.Resource, tt.wantOp, tt.wantResource)
				}
			}
		})
	}
}

func TestLightCommand_Script(t *testing.T) {
	t.Parallel()

	scriptPath := filepath.Join(t.TempDir(), "ops.sh")
	content := "# dim the light\ntoggle\nset 30\n\nget\n"
	if err := os.WriteFile(scriptPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, defaultsProvider(), "light", "--script", scriptPath)
	if err != nil {
		t.Fatalf("light --script failed: %v", err)
	}
	if !strings.Contains(stdout, "Final: Light is On with intensity 30") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestLightCompare(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, defaultsProvider(), "light", "compare", "set", "5", "toggle")
	if err != nil {
		t.Fatalf("light compare failed: %v", err)
	}
	for _, want := range []string{
		"naive", "marker", "payload",
		"Light is Off (ignored)",
		"not defined: no intensity",
		"not defined while Off",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCompareCell(t *testing.T) {
	t.Parallel()

	ops := []script.Op{script.Toggle(), script.Get(), script.Toggle(), script.Get(), script.Toggle()}
	trace, failure := script.Run(light.VariantPayload, ops)
	if failure == nil {
		t.Fatal("expected get on an Off payload light to fail")
	}

	want := []string{
		"Light is On with intensity 10",
		"Light is On with intensity 10",
		"Light is Off",
		"not defined while Off",
		"-",
	}
	for row, w := range want {
		if got := compareCell(trace, failure, row); got != w {
			t.Errorf("compareCell(row %d) = %q, want %q", row, got, w)
		}
	}
}
