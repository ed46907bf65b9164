// main is the entry point for the trustgate CLI.
package main

import (
	"github.com/trustgate/trustgate/cmd"
	"github.com/trustgate/trustgate/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
