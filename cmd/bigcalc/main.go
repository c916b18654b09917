// Command bigcalc is a command-line calculator for arbitrary-precision decimals.
package main

import (
	"os"

	"github.com/govalues/bigdecimal/cmd/bigcalc/cli"
)

func main() {
	if err := cli.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
