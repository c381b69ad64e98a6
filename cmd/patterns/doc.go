// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for patterns.
//
// This package implements the Cobra command hierarchy: the light state machine
// demonstrations (light, light compare), the block-config loader (block), the
// builder and extension-method idioms (person, shout, factorial), the lesson
// viewer (explain) and configuration management (config).
package cmd
