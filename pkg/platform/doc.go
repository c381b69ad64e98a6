// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems that need their own
// configuration directory layout.
package platform
