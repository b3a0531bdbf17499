// Moanote - Japanese article prompts from a structured brief
package main

import (
	"os"

	"github.com/HartBrook/moanote/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
