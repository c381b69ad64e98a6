// SPDX-License-Identifier: MPL-2.0

package light_test

import (
	"errors"
	"testing"

	"patterns-cli/internal/light"
	"patterns-cli/internal/light/marker"
	"patterns-cli/internal/light/naive"
	"patterns-cli/internal/light/payload"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    light.Variant
		wantErr bool
	}{
		{input: "naive", want: light.VariantNaive},
		{input: "marker", want: light.VariantMarker},
		{input: "payload", want: light.VariantPayload},
		{input: "", wantErr: true},
		{input: "Naive", wantErr: true},
		{input: "phantom", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := light.ParseVariant(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVariant(%q) expected error", tt.input)
				}
				if !errors.Is(err, light.ErrInvalidVariant) {
					t.Errorf("error should wrap ErrInvalidVariant, got: %v", err)
				}
				var invalid *light.InvalidVariantError
				if !errors.As(err, &invalid) {
					t.Fatalf("error should be *InvalidVariantError, got %T", err)
				}
				if invalid.Value != light.Variant(tt.input) {
					t.Errorf("InvalidVariantError.Value = %q, want %q", invalid.Value, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariant(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVariant_Capabilities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant   light.Variant
		typestate bool
		intensity bool
	}{
		{light.VariantNaive, false, true},
		{light.VariantMarker, true, false},
		{light.VariantPayload, true, true},
	}

	for _, tt := range tests {
		if got := tt.variant.IsTypestate(); got != tt.typestate {
			t.Errorf("%s.IsTypestate() = %v, want %v", tt.variant, got, tt.typestate)
		}
		if got := tt.variant.TracksIntensity(); got != tt.intensity {
			t.Errorf("%s.TracksIntensity() = %v, want %v", tt.variant, got, tt.intensity)
		}
	}

	if len(light.Variants()) != 3 {
		t.Errorf("Variants() returned %d variants, want 3", len(light.Variants()))
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	if light.StateOff.String() != "Off" || light.StateOn.String() != "On" {
		t.Errorf("unexpected state names %q/%q", light.StateOff, light.StateOn)
	}
	if light.StateOff.Next() != light.StateOn || light.StateOn.Next() != light.StateOff {
		t.Error("Next() must alternate between Off and On")
	}
	if got := light.State(7).String(); got != "State(7)" {
		t.Errorf("State(7).String() = %q", got)
	}
}

func TestStateOf_AllImplementations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sw   light.Switch
		want light.State
	}{
		{"naive off", naive.New(), light.StateOff},
		{"marker off", marker.New(), light.StateOff},
		{"marker on", marker.New().Toggle(), light.StateOn},
		{"payload off", payload.New(), light.StateOff},
		{"payload on", payload.New().Toggle(), light.StateOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := light.StateOf(tt.sw); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultIntensityIsConsistent(t *testing.T) {
	t.Parallel()

	n := naive.New()
	n.Toggle()
	p := payload.New().Toggle()

	if n.Intensity() != p.Intensity() {
		t.Errorf("naive default %d != payload default %d", n.Intensity(), p.Intensity())
	}
	if light.DefaultIntensity < 1 {
		t.Error("default intensity must be at least 1 for an On light")
	}
}
