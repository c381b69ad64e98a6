// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation utilities.
//
// Every CUE document the CLI reads goes through the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile (or encode) user data and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed block_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Config](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Block",
//	    cueutil.WithFilename("block.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
//
// Data that arrives in another format (TOML, flags) is checked against the
// same schema with ValidateGo, so one definition governs every input.
package cueutil
