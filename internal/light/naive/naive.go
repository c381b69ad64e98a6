// SPDX-License-Identifier: MPL-2.0

// Package naive implements the light as a single mutable type whose invariants are
// enforced by runtime checks.
//
// Every operation is callable in every state. SetIntensity on an Off light is a
// silent no-op, and the caller cannot tell from the call whether it had any effect.
// The typestate packages (marker, payload) exist to remove that class of mistake.
package naive

import (
	"fmt"

	"patterns-cli/internal/light"
)

// Light is a light whose state lives in a boolean next to its intensity.
// The zero value is an Off light with intensity 0.
type Light struct {
	on        bool
	intensity light.Intensity
}

// New returns an Off light with intensity 0.
func New() *Light {
	return &Light{
		on:        false,
		intensity: light.IntensityOff,
	}
}

// Toggle flips the light in place. Turning on assigns light.DefaultIntensity;
// turning off resets the intensity to 0.
func (l *Light) Toggle() {
	if l.on {
		l.intensity = light.IntensityOff
	} else {
		l.intensity = light.DefaultIntensity
	}
	l.on = !l.on
}

// SetIntensity changes the intensity while the light is on and does nothing
// while it is off.
func (l *Light) SetIntensity(level light.Intensity) {
	if l.on {
		l.intensity = level
	}
}

// IsOn reports whether the light is emitting.
func (l *Light) IsOn() bool {
	return l.on
}

// Intensity returns the current level; always 0 while off.
func (l *Light) Intensity() light.Intensity {
	return l.intensity
}

// String renders "Light is Off" or "Light is On with intensity N".
func (l *Light) String() string {
	if !l.on {
		return "Light is Off"
	}
	return fmt.Sprintf("Light is On with intensity %d", l.intensity)
}
