// SPDX-License-Identifier: MPL-2.0

package main

import cmd "patterns-cli/cmd/patterns"

func main() {
	cmd.Execute()
}
