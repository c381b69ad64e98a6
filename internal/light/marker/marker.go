// SPDX-License-Identifier: MPL-2.0

// Package marker implements the light as two zero-width types, Off and On.
//
// The state is nominal: it lives in the type of the value and nowhere else, so
// neither type stores a field. Toggle returns a value of the other type. Nothing in
// this package tracks intensity; a state that carries data belongs in package
// payload instead.
//
// The package imports nothing so its method sets can be type-checked
// in isolation.
package marker

type (
	// Off is a light that is not emitting.
	Off struct{}

	// On is a light that is emitting.
	On struct{}
)

// New returns an Off light.
func New() Off {
	return Off{}
}

// Toggle turns the light on.
func (Off) Toggle() On {
	return On{}
}

// IsOn is always false for Off.
func (Off) IsOn() bool { return false }

// String returns "Light is Off".
func (Off) String() string { return "Light is Off" }

// Toggle turns the light off.
func (On) Toggle() Off {
	return Off{}
}

// IsOn is always true for On.
func (On) IsOn() bool { return true }

// String returns "Light is On".
func (On) String() string { return "Light is On" }
