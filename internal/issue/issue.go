// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigParseErrorId
	BlockConfigInvalidId
	ScriptInvalidId
	IntensityUnavailableId
	UnknownVariantId
	LessonNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for the concept behind the issue
}

func (i *Issue) Id() Id {
	return i.id
}

// Render renders the issue markdown with the given glamour style
// ("auto", "dark", "light", "notty", "ascii" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be read.

## Things you can try:
- Check where the file is expected:
~~~
$ patterns config path
~~~

- Recreate it with the defaults:
~~~
$ patterns config init --force
~~~

- Or point to another file:
~~~
$ patterns --config ./config.cue light
~~~`,
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Configuration does not match the schema!

Every key in 'config.cue' is checked against the built-in schema.

## Valid keys:
~~~cue
default_variant: "naive" | "marker" | "payload"
ui: {
    color_scheme: "auto" | "dark" | "light"
    verbose:      bool
}
lesson: style: "auto" | "dark" | "light" | "notty" | "ascii"
~~~

## Things you can try:
- Print the effective configuration:
~~~
$ patterns config dump
~~~`,
		docLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	blockConfigInvalidIssue = &Issue{
		id: BlockConfigInvalidId,
		mdMsg: `
# Invalid block file!

A block file must set a non-empty 'title' and positive 'width' and 'height'.

## Example block.toml:
~~~toml
title = "Garden shed"
width = 4
height = 3
should_open = true
tail = false
~~~

The same block may be written as 'block.cue'.`,
		docLinks: []HttpLink{"https://toml.io/en/v1.0.0"},
	}

	scriptInvalidIssue = &Issue{
		id: ScriptInvalidId,
		mdMsg: `
# Invalid light script!

A light script holds one operation per line:

~~~sh
# comments are fine
toggle
set 200
get
status
~~~

Pipelines, redirections, variables and subshells are not supported.`,
	}

	intensityUnavailableIssue = &Issue{
		id: IntensityUnavailableId,
		mdMsg: `
# Intensity is not available here!

Typestate lights only define intensity operations on the state that carries an
intensity. In Go source the same call would not compile:

~~~go
l := payload.New()
l.SetIntensity(5) // l.SetIntensity undefined (type payload.Off has no field or method SetIntensity)
~~~

## Things you can try:
- Turn the light on first:
~~~
$ patterns light toggle set 5
~~~

- Compare with the naive light, which silently ignores the call:
~~~
$ patterns light --variant naive set 5
~~~`,
		docLinks: []HttpLink{"https://go.dev/ref/spec#Method_sets"},
	}

	unknownVariantIssue = &Issue{
		id: UnknownVariantId,
		mdMsg: `
# Unknown light variant!

Valid variants are:

- **naive**: one mutable type with runtime checks
- **marker**: zero-width Off and On types
- **payload**: Off and On types where On carries the intensity

Set a default in your configuration:
~~~cue
default_variant: "payload"
~~~`,
	}

	lessonNotFoundIssue = &Issue{
		id: LessonNotFoundId,
		mdMsg: `
# Lesson not found!

## Things you can try:
- List the available lessons:
~~~
$ patterns explain
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		configParseErrorIssue.Id():     configParseErrorIssue,
		blockConfigInvalidIssue.Id():   blockConfigInvalidIssue,
		scriptInvalidIssue.Id():        scriptInvalidIssue,
		intensityUnavailableIssue.Id(): intensityUnavailableIssue,
		unknownVariantIssue.Id():       unknownVariantIssue,
		lessonNotFoundIssue.Id():       lessonNotFoundIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
