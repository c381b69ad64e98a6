// SPDX-License-Identifier: MPL-2.0

// Package script parses and replays light scripts.
//
// A light script is a shell-syntax file with one operation per simple command:
//
//	# turn on, brighten, report
//	toggle
//	set 200
//	get
//	status
//
// Scripts are parsed with mvdan.cc/sh/v3/syntax but never executed by a shell.
// Anything beyond plain words (pipelines, redirections, expansions, assignments)
// is rejected with a *SyntaxError.
//
// Run replays the operations against one light variant. Because the operations
// arrive at runtime, the runner keeps the current typed value behind an interface
// and type-switches on it. An intensity operation against a typestate value that
// does not declare it is reported as an *UnavailableError rather than skipped,
// which mirrors the compile error the same call would produce in Go source.
package script
