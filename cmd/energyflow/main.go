// SPDX-License-Identifier: MIT

// Command energyflow builds, prices and browses energy flow graphs from
// hierarchy snapshots.
package main

import (
	"os"

	"github.com/katalvlaran/energyflow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
