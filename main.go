// SPDX-License-Identifier: MPL-2.0

package main

import cmd "bringup-cli/cmd/bringup"

func main() {
	cmd.Execute()
}
