// SPDX-License-Identifier: MPL-2.0

package main

import cmd "plugkit-cli/cmd/plugkit"

func main() {
	cmd.Execute()
}
