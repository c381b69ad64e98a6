// SPDX-License-Identifier: MPL-2.0

// Package person shows a value builder for a type with many optional fields.
//
// New takes the required fields. Each With method returns an updated copy, so a
// Person can be specialized without disturbing the value it came from:
//
//	base := person.New("Hector", "Alarcon", 28)
//	engineer := base.WithJobTitle("Software Engineer").WithPhone(12345678)
package person

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned by IsValid when the given name is empty.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrEmptyFamilyName is returned by IsValid when the family name is empty.
	ErrEmptyFamilyName = errors.New("family name must not be empty")
)

// Person holds three required fields and six optional ones.
// Optional fields are nil until set.
type Person struct {
	name       string
	familyName string
	age        uint8

	phone       *uint64
	homeAddress *string
	jobTitle    *string
	education   *string
	residency   *string
	nationality *string
}

// New returns a Person with only the required fields set.
func New(name, familyName string, age uint8) Person {
	return Person{
		name:       name,
		familyName: familyName,
		age:        age,
	}
}

func (p Person) WithPhone(phone uint64) Person {
	p.phone = &phone
	return p
}

func (p Person) WithHomeAddress(address string) Person {
	p.homeAddress = &address
	return p
}

func (p Person) WithJobTitle(title string) Person {
	p.jobTitle = &title
	return p
}

func (p Person) WithEducation(education string) Person {
	p.education = &education
	return p
}

func (p Person) WithResidency(residency string) Person {
	p.residency = &residency
	return p
}

func (p Person) WithNationality(nationality string) Person {
	p.nationality = &nationality
	return p
}

func (p Person) Name() string       { return p.name }
func (p Person) FamilyName() string { return p.familyName }
func (p Person) Age() uint8         { return p.age }

func (p Person) Phone() (uint64, bool)       { return get(p.phone) }
func (p Person) HomeAddress() (string, bool) { return get(p.homeAddress) }
func (p Person) JobTitle() (string, bool)    { return get(p.jobTitle) }
func (p Person) Education() (string, bool)   { return get(p.education) }
func (p Person) Residency() (string, bool)   { return get(p.residency) }
func (p Person) Nationality() (string, bool) { return get(p.nationality) }

// IsValid returns whether the required fields are usable,
// and a list of validation errors if they are not.
func (p Person) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(p.name) == "" {
		errs = append(errs, ErrEmptyName)
	}
	if strings.TrimSpace(p.familyName) == "" {
		errs = append(errs, ErrEmptyFamilyName)
	}
	return len(errs) == 0, errs
}

// String renders the required fields followed by whichever optional fields are set.
func (p Person) String() string {
	parts := []string{
		"name: " + p.name,
		"family name: " + p.familyName,
		fmt.Sprintf("age: %d", p.age),
	}
	if v, ok := p.Phone(); ok {
		parts = append(parts, fmt.Sprintf("phone: %d", v))
	}
	optional := []struct {
		label string
		value *string
	}{
		{"home address", p.homeAddress},
		{"job title", p.jobTitle},
		{"education", p.education},
		{"residency", p.residency},
		{"nationality", p.nationality},
	}
	for _, f := range optional {
		if f.value != nil {
			parts = append(parts, f.label+": "+*f.value)
		}
	}
	return "Person{" + strings.Join(parts, ", ") + "}"
}

func get[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
