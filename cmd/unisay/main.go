// unisay - Speech-bubble unicorn for your terminal
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/unisay

package main

import (
	"os"

	"github.com/ariel-frischer/unisay/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
