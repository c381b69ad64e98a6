// SPDX-License-Identifier: MPL-2.0

// Package ext gives existing data types new behavior.
//
// Go only allows methods on types declared in the same package, so "extending"
// string or int means declaring a named type (Urgent, Int) whose underlying type
// is the original. Conversions between the two are free. Behavior that should work
// for every integer type is written once as a generic function instead.
package ext
