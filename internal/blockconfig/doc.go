// SPDX-License-Identifier: MPL-2.0

// Package blockconfig loads small block descriptions from TOML or CUE files.
//
// The package shows two shapes of the same loader. LoadSequential binds every
// intermediate value (raw bytes, decoded text, undecoded config) to its own local
// variable, all of which stay in scope for the rest of the function. Load runs the
// same steps inside a function literal, so only the validated Config escapes into
// the caller's scope.
package blockconfig
