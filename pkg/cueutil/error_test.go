// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

// blockSchema and configSchema mirror the shapes loaded by the blockconfig and
// config packages, which cannot be imported from here.
const (
	blockSchema = `
#Block: {
	title:        string & !=""
	width:        int & >0 & <=65535
	height:       int & >0 & <=65535
	should_open?: bool
	tail:         bool | *false
}
`
	configSchema = `
#Config: {
	default_variant?: "naive" | "marker" | "payload"
	ui?: {
		color_scheme?: "auto" | "dark" | "light"
		verbose?:      bool
	}
	lesson?: width?: int & >=0 & <=400
}
`
)

func TestFormatError_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schema   string
		def      string
		file     string
		data     string
		concrete bool
		wantPath string
		wantMsg  string
	}{
		{
			name:     "zero width",
			schema:   blockSchema,
			def:      "#Block",
			file:     "block.cue",
			data:     "title: \"Shed\"\nwidth: 0\nheight: 3\n",
			concrete: true,
			wantPath: "width",
			wantMsg:  "0",
		},
		{
			name:     "empty title",
			schema:   blockSchema,
			def:      "#Block",
			file:     "block.cue",
			data:     "title: \"\"\nwidth: 1\nheight: 1\n",
			concrete: true,
			wantPath: "title",
			wantMsg:  `""`,
		},
		{
			name:     "verbose is not a bool",
			schema:   configSchema,
			def:      "#Config",
			file:     "config.cue",
			data:     "ui: verbose: \"yes\"\n",
			wantPath: "ui.verbose",
			wantMsg:  `"yes"`,
		},
		{
			name:     "lesson width too large",
			schema:   configSchema,
			def:      "#Config",
			file:     "config.cue",
			data:     "lesson: width: 401\n",
			wantPath: "lesson.width",
			wantMsg:  "401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAndDecode[map[string]any]([]byte(tt.schema), []byte(tt.data), tt.def,
				WithFilename(tt.file), WithConcrete(tt.concrete))
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if verr.FilePath != tt.file {
				t.Errorf("FilePath = %q, want %q", verr.FilePath, tt.file)
			}
			if verr.CUEPath != tt.wantPath {
				t.Errorf("CUEPath = %q, want %q (message %q)", verr.CUEPath, tt.wantPath, verr.Message)
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want it to mention %s", verr.Message, tt.wantMsg)
			}
			if strings.HasPrefix(verr.Message, tt.def) || strings.HasPrefix(verr.Message, tt.wantPath+":") {
				t.Errorf("Message %q should not repeat the path", verr.Message)
			}
			if want := tt.file + ": " + tt.wantPath + ": "; !strings.HasPrefix(err.Error(), want) {
				t.Errorf("Error() = %q, want prefix %q", err, want)
			}
		})
	}
}

func TestFormatError_SeveralViolations(t *testing.T) {
	t.Parallel()

	data := []byte("title: \"Shed\"\nwidth: 0\nheight: 0\n")
	_, err := ParseAndDecode[map[string]any]([]byte(blockSchema), data, "#Block", WithFilename("block.cue"))
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("several violations should be joined, got a single %v", verr)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "block.cue: validation failed:") {
		t.Errorf("unexpected header in %q", msg)
	}
	for _, want := range []string{"\n  width: ", "\n  height: "} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should list %q, got:\n%s", want, msg)
		}
	}
}

func TestFormatError_NonCUE(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	cause := errors.New("read failed")
	err := FormatError(cause, "config.cue")
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the original error in %v", err)
	}
	if err.Error() != "config.cue: read failed" {
		t.Errorf("Error() = %q", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{path: nil, want: ""},
		{path: []string{"width"}, want: "width"},
		{path: []string{"ui", "color_scheme"}, want: "ui.color_scheme"},
		{path: []string{"#Config", "ui", "verbose"}, want: "ui.verbose"},
		{path: []string{"#Block"}, want: ""},
		{path: []string{"blocks", "0", "width"}, want: "blocks[0].width"},
		{path: []string{"rooms", "1", "blocks", "2", "title"}, want: "rooms[1].blocks[2].title"},
		{path: []string{"0", "title"}, want: "0.title"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.path, "/"), func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"within limit", 11, false},
		{"at limit", 100, false},
		{"over limit", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "block.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Error() != "block.cue: file size 101 bytes exceeds maximum 100 bytes" {
				t.Errorf("Error() = %q", err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	withPath := &ValidationError{FilePath: "config.cue", CUEPath: "ui.verbose", Message: "conflicting values"}
	if got := withPath.Error(); got != "config.cue: ui.verbose: conflicting values" {
		t.Errorf("Error() = %q", got)
	}

	withoutPath := &ValidationError{FilePath: "config.cue", Message: "expected operand"}
	if got := withoutPath.Error(); got != "config.cue: expected operand" {
		t.Errorf("Error() = %q", got)
	}
	if withoutPath.Unwrap() != nil {
		t.Error("Unwrap() should return nil")
	}
}
