// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError attaches an operation, a resource and remediation hints to an
// error. The issue catalog holds longer Markdown guidance, rendered with glamour,
// for the failures a user is most likely to hit: bad configuration, invalid block
// files and light scripts, and intensity operations on a light that is off.
package issue
