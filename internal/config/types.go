// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"patterns-cli/internal/light"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LessonStyleAuto picks dark or light from the terminal background.
	LessonStyleAuto LessonStyle = "auto"
	// LessonStyleDark renders lessons for dark terminals.
	LessonStyleDark LessonStyle = "dark"
	// LessonStyleLight renders lessons for light terminals.
	LessonStyleLight LessonStyle = "light"
	// LessonStyleNoTTY renders plain text without ANSI sequences.
	LessonStyleNoTTY LessonStyle = "notty"
	// LessonStyleASCII renders with ASCII-only decorations.
	LessonStyleASCII LessonStyle = "ascii"

	// DefaultLessonWidth is the word-wrap width used when none is configured.
	DefaultLessonWidth = 80
	maxLessonWidth     = 400
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLessonStyle is returned when a LessonStyle value is not recognized.
	ErrInvalidLessonStyle = errors.New("invalid lesson style")
	// ErrInvalidLessonWidth is returned when a lesson width is out of range.
	ErrInvalidLessonWidth = errors.New("invalid lesson width")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the application configuration.
	Config struct {
		// DefaultVariant is the light variant used when --variant is not given.
		DefaultVariant light.Variant `json:"default_variant" mapstructure:"default_variant"`
		// UI holds terminal output settings.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Lesson holds "patterns explain" rendering settings.
		Lesson LessonConfig `json:"lesson" mapstructure:"lesson"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// ColorScheme selects the palette: auto, dark, or light.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LessonConfig configures lesson rendering.
	LessonConfig struct {
		// Style is the glamour style name.
		Style LessonStyle `json:"style" mapstructure:"style"`
		// Width is the word-wrap width; 0 disables wrapping.
		Width int `json:"width" mapstructure:"width"`
	}

	// ColorScheme selects the output palette.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LessonStyle is a glamour standard style name.
	LessonStyle string

	// InvalidLessonStyleError is returned when a LessonStyle value is not recognized.
	// It wraps ErrInvalidLessonStyle for errors.Is() compatibility.
	InvalidLessonStyleError struct {
		Value LessonStyle
	}

	// InvalidLessonWidthError is returned when a lesson width is out of range.
	InvalidLessonWidthError struct {
		Value int
	}

	// InvalidConfigError aggregates field errors found by Config.IsValid.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.DefaultVariant.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Lesson.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid checks the style and width.
func (c LessonConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Style.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Width < 0 || c.Width > maxLessonWidth {
		errs = append(errs, &InvalidLessonWidthError{Value: c.Width})
	}
	return len(errs) == 0, errs
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the category and the specific field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the LessonStyle.
func (s LessonStyle) String() string { return string(s) }

// IsValid returns whether the LessonStyle is a known glamour style,
// and a list of validation errors if it is not.
func (s LessonStyle) IsValid() (bool, []error) {
	switch s {
	case LessonStyleAuto, LessonStyleDark, LessonStyleLight, LessonStyleNoTTY, LessonStyleASCII:
		return true, nil
	default:
		return false, []error{&InvalidLessonStyleError{Value: s}}
	}
}

// Error implements the error interface for InvalidLessonStyleError.
func (e *InvalidLessonStyleError) Error() string {
	return fmt.Sprintf("invalid lesson style %q (valid: auto, dark, light, notty, ascii)", e.Value)
}

// Unwrap returns ErrInvalidLessonStyle for errors.Is() compatibility.
func (e *InvalidLessonStyleError) Unwrap() error { return ErrInvalidLessonStyle }

// Error implements the error interface for InvalidLessonWidthError.
func (e *InvalidLessonWidthError) Error() string {
	return fmt.Sprintf("invalid lesson width %d (valid: 0-%d)", e.Value, maxLessonWidth)
}

// Unwrap returns ErrInvalidLessonWidth for errors.Is() compatibility.
func (e *InvalidLessonWidthError) Unwrap() error { return ErrInvalidLessonWidth }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultVariant: light.VariantPayload,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Lesson: LessonConfig{
			Style: LessonStyleAuto,
			Width: DefaultLessonWidth,
		},
	}
}
