package main

import (
	"os"

	"github.com/mistakeknot/hearthplan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
