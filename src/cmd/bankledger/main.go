package main

import (
	"os"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
