// SPDX-License-Identifier: MPL-2.0

// Package light holds the vocabulary shared by the three light implementations.
//
// The naive implementation (package naive) keeps the state in a boolean and checks
// it at runtime. The typestate implementations give each state its own type:
// package marker uses zero-width Off/On types that carry no data, and package
// payload uses a sealed sum type whose On variant carries the intensity. In the
// typestate packages an intensity operation on an Off light does not compile.
package light
