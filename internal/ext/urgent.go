// SPDX-License-Identifier: MPL-2.0

package ext

// Urgent is a string that can be made more urgent in place.
type Urgent string

// AddUrgency appends "!".
func (u *Urgent) AddUrgency() {
	*u += "!"
}

// AddUrgencyInSpanish wraps the text in "¡" and "!".
func (u *Urgent) AddUrgencyInSpanish() {
	*u = "¡" + *u + "!"
}

func (u Urgent) String() string { return string(u) }
