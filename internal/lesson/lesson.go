// SPDX-License-Identifier: MPL-2.0

// Package lesson holds the short Markdown explanations shown by "patterns explain".
package lesson

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	Typestate Name = "typestate"
	Block     Name = "block"
	Builder   Name = "builder"
	Extension Name = "extension"
)

//go:embed lessons/*.md
var lessonFS embed.FS

// ErrUnknownLesson is returned when a lesson name is not in the catalog.
var ErrUnknownLesson = errors.New("unknown lesson")

type (
	// Name identifies a lesson.
	Name string

	// Lesson is one Markdown document.
	Lesson struct {
		name Name
		md   string
	}

	// UnknownLessonError is returned by Get for names outside the catalog.
	UnknownLessonError struct {
		Name Name
	}
)

// Names returns every lesson name in sorted order.
func Names() []Name {
	names := []Name{Typestate, Block, Builder, Extension}
	slices.Sort(names)
	return names
}

// Get loads the named lesson.
func Get(name Name) (*Lesson, error) {
	if !slices.Contains(Names(), name) {
		return nil, &UnknownLessonError{Name: name}
	}
	data, err := lessonFS.ReadFile("lessons/" + string(name) + ".md")
	if err != nil {
		return nil, fmt.Errorf("read lesson %s: %w", name, err)
	}
	return &Lesson{name: name, md: string(data)}, nil
}

func (l *Lesson) Name() Name { return l.name }

// Title is the text of the first heading.
func (l *Lesson) Title() string {
	first, _, _ := strings.Cut(l.md, "\n")
	return strings.TrimSpace(strings.TrimPrefix(first, "#"))
}

func (l *Lesson) Markdown() string { return l.md }

// Render renders the lesson with a glamour style ("auto", "dark", "light",
// "notty", "ascii"). width <= 0 disables word wrapping.
func (l *Lesson) Render(style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width, 0)),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(l.md)
}

// Error implements the error interface.
func (e *UnknownLessonError) Error() string {
	names := make([]string, 0, len(Names()))
	for _, n := range Names() {
		names = append(names, string(n))
	}
	return fmt.Sprintf("unknown lesson %q (available: %s)", e.Name, strings.Join(names, ", "))
}

// Unwrap returns ErrUnknownLesson so callers can use errors.Is for category checks.
func (e *UnknownLessonError) Unwrap() error { return ErrUnknownLesson }
