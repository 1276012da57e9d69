package main

import (
	"os"

	"github.com/jask/scenescope/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
