/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"github.com/clapdb/clapctl/cmd"
)

func main() {
	cmd.Execute()
}
